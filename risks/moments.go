// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package risks

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// momentNodes is the Gauss-Legendre node count for the moment
// integrals.
const momentNodes = 200

type moments struct {
	mean, variance float64
}

// Mean returns the expectation of the composed distribution,
// computed by quadrature against the survival function and cached.
func (d *CompetingRisks) Mean() float64 {
	return d.momentCache().mean
}

// Variance returns the variance of the composed distribution,
// computed by quadrature and cached.
func (d *CompetingRisks) Variance() float64 {
	return d.momentCache().variance
}

// StdDev returns the standard deviation of the composed
// distribution.
func (d *CompetingRisks) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

func (d *CompetingRisks) momentCache() *moments {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.moments == nil {
		d.moments = d.computeMoments()
	}
	return d.moments
}

// computeMoments integrates the tail identities
//
//	E[X]       = lo  + ∫ S(x) dx
//	E[X²]      = lo² + ∫ 2x S(x) dx
//
// over the effective support. Integrating the survival function
// rather than the density avoids the numerically differentiated PDF
// under dependent models.
func (d *CompetingRisks) computeMoments() *moments {
	lo, hi := d.Bounds()
	mean := lo + quad.Fixed(func(x float64) float64 {
		return d.CCDF(x)
	}, lo, hi, momentNodes, nil, 0)
	m2 := lo*lo + quad.Fixed(func(x float64) float64 {
		return 2 * x * d.CCDF(x)
	}, lo, hi, momentNodes, nil, 0)
	v := m2 - mean*mean
	if v < 0 {
		v = 0
	}
	return &moments{mean: mean, variance: v}
}
