// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// negCorrEps keeps the implied equicorrelation of PerfectlyNegative
// events strictly above the Fréchet bound -1/(n-1) so the matrix
// stays positive semi-definite.
const negCorrEps = 1e-6

// zScores projects marginal probabilities into standard normal space:
// z = Φ⁻¹(p) for events flagged as occurring, and the Φ⁻¹(1) = +Inf
// sentinel for events left out of the intersection. A sentinel event
// contributes a factor of 1 to the joint product, so it is ignored
// by the PCM recurrence.
func zScores(probs []float64, indicators []bool) []float64 {
	z := make([]float64, len(probs))
	for i, p := range probs {
		if indicators == nil || indicators[i] {
			z[i] = distuv.UnitNormal.Quantile(p)
		} else {
			z[i] = inf
		}
	}
	return z
}

// EquiCorrelation returns the n×n correlation matrix implied by
// PerfectlyNegative dependency between n events: unit diagonal and
// all off-diagonal entries at -1/(n-1) + ε, just above the
// theoretical lower bound for an equicorrelated matrix.
func EquiCorrelation(n int) *mat.SymDense {
	c := mat.NewSymDense(n, nil)
	rho := -1.0
	if n > 1 {
		rho = -1/float64(n-1) + negCorrEps
	}
	for i := 0; i < n; i++ {
		c.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			c.SetSym(i, j, rho)
		}
	}
	return c
}

// workingCorr returns the correlation matrix the PCM recurrence
// should deflate in place for model m, as a fresh copy owned by the
// caller. Cloning per evaluation keeps Joint pure: concurrent
// callers never alias a shared working buffer.
func workingCorr(m Model, n int) *mat.SymDense {
	var src *mat.SymDense
	switch m.Dep {
	case Correlated:
		src = m.Corr
	case PerfectlyNegative:
		return EquiCorrelation(n)
	default:
		return nil
	}
	w := mat.NewSymDense(n, nil)
	w.CopySym(src)
	return w
}
