// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides the marginal distribution capability consumed by the
// probability aggregation engine, plus a small catalog of continuous
// marginals backed by gonum's distuv.
package dist // import "github.com/aclements/go-riskmath/dist"

import "math"

// A Dist is a continuous univariate distribution as consumed by the
// aggregation and competing-risks machinery.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in [0, 1].
	InvCDF(p float64) float64

	// CCDF returns the survival function 1 - CDF(x).
	CCDF(x float64) float64

	// HF returns the hazard function PDF(x)/CCDF(x). Where the
	// survival probability is zero the hazard is +Inf.
	HF(x float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A PosSupported distribution has support on the positive reals.
// Such distributions are candidates for log-stratified sampling when
// the competing-risks machinery builds an empirical CDF table.
type PosSupported interface {
	PosSupport() bool
}

// PosSupport reports whether d declares strictly positive support.
func PosSupport(d Dist) bool {
	p, ok := d.(PosSupported)
	return ok && p.PosSupport()
}

// hf is the shared hazard computation for the catalog types.
func hf(pdf, ccdf float64) float64 {
	if ccdf <= 0 {
		if pdf > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return pdf / ccdf
}

// boundsEps is the tail mass excluded on each side by the default
// Bounds of unbounded distributions.
const boundsEps = 1e-10
