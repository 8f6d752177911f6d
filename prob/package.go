// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// prob computes joint, union, and mutually exclusive probabilities of
// partially dependent events.
//
// Events may be independent, perfectly positively or negatively
// dependent, or coupled through a Gaussian copula with an arbitrary
// correlation matrix. Joint probabilities under a correlation matrix
// use the product-of-conditional-marginals (PCM) recurrence, an
// O(N²) approximation to the multivariate normal orthant probability
// that is exact for two events. Union probabilities use
// inclusion-exclusion over subsets grouped by size, with early
// termination once successive size groups stop moving the total.
package prob // import "github.com/aclements/go-riskmath/prob"

import "math"

var inf = math.Inf(1)

func clamp01(p float64) float64 {
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
