// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides scalar numerical routines used by the probability
// aggregation packages: binomial coefficients, the bivariate standard
// normal CDF, and a bracketing scalar root finder.
package mathx // import "github.com/aclements/go-riskmath/mathx"
