// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package risks

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-riskmath/prob"
)

// An IncidenceTable holds cause-specific cumulative incidence
// functions: for each marginal ("cause"), the probability that this
// cause is the one that occurs first (Minimum mode) or last (Maximum
// mode) by the end of each bin.
type IncidenceTable struct {
	// Edges are the bin edges, len(bins)+1 values ascending.
	Edges []float64

	// CIF[j][b] is the cumulative incidence of cause j at
	// Edges[b+1]. Each row is non-decreasing and the across-cause
	// sum never exceeds 1.
	CIF [][]float64
}

// Incidence computes per-cause cumulative incidence over the given
// number of bins spanning the composed distribution's support.
//
// Under Independent or PerfectlyPositive dependency the per-bin
// increment of the composed CDF is split across causes by their
// relative hazard at the bin midpoint (the fast "delta method").
// Under PerfectlyNegative or Correlated dependency each cause's
// increment is an exact mixed-orthant interval probability of the
// underlying multivariate normal, evaluated with the PCM recurrence
// (slow, one orthant per cause per bin).
//
// A renormalization pass caps the across-cause cumulative sum at 1:
// once a bin reaches the cap, the cause that crossed it keeps the
// clipped remainder and every later delta is frozen to zero.
func (d *CompetingRisks) Incidence(bins int) *IncidenceTable {
	if bins < 1 {
		panic("risks: incidence needs at least one bin")
	}
	k := len(d.marginals)
	lo, hi := d.Bounds()

	t := &IncidenceTable{
		Edges: make([]float64, bins+1),
		CIF:   make([][]float64, k),
	}
	logGrid := d.logStratified(lo, hi)
	for b := 0; b <= bins; b++ {
		frac := float64(b) / float64(bins)
		if logGrid {
			t.Edges[b] = lo * math.Exp(frac*math.Log(hi/lo))
		} else {
			t.Edges[b] = lo + frac*(hi-lo)
		}
	}
	for j := range t.CIF {
		t.CIF[j] = make([]float64, bins)
	}

	exact := d.model.Dep == prob.PerfectlyNegative || d.model.Dep == prob.Correlated
	deltas := make([]float64, k)
	total := 0.0
	frozen := false
	for b := 0; b < bins; b++ {
		t0, t1 := t.Edges[b], t.Edges[b+1]
		if !frozen {
			if exact {
				d.exactDeltas(t0, t1, deltas)
			} else {
				d.hazardDeltas(t0, t1, deltas)
			}
		} else {
			for j := range deltas {
				deltas[j] = 0
			}
		}
		for j := 0; j < k; j++ {
			dj := deltas[j]
			if total+dj >= 1 {
				// Cap: this cause keeps the remainder,
				// everything after is frozen.
				dj = 1 - total
				frozen = true
			}
			total += dj
			if b == 0 {
				t.CIF[j][b] = dj
			} else {
				t.CIF[j][b] = t.CIF[j][b-1] + dj
			}
			if frozen {
				for jj := j + 1; jj < k; jj++ {
					if b == 0 {
						t.CIF[jj][b] = 0
					} else {
						t.CIF[jj][b] = t.CIF[jj][b-1]
					}
				}
				break
			}
		}
	}
	return t
}

// hazardDeltas splits the composed CDF increment over (t0, t1]
// across causes in proportion to their hazard (Minimum mode) or
// reversed hazard (Maximum mode) at the bin midpoint.
func (d *CompetingRisks) hazardDeltas(t0, t1 float64, deltas []float64) {
	df := d.CDF(t1) - d.CDF(t0)
	if df < 0 {
		df = 0
	}
	tm := (t0 + t1) / 2
	wsum := 0.0
	for j, m := range d.marginals {
		var w float64
		if d.mode == Minimum {
			w = m.HF(tm)
		} else {
			// Reversed hazard f/F attributes the increment
			// of the maximum.
			if cdf := m.CDF(tm); cdf > 0 {
				w = m.PDF(tm) / cdf
			}
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			w = 0
		}
		deltas[j] = w
		wsum += w
	}
	if wsum <= 0 {
		for j := range deltas {
			deltas[j] = df / float64(len(deltas))
		}
		return
	}
	for j := range deltas {
		deltas[j] = df * deltas[j] / wsum
	}
}

// exactDeltas computes, for each cause j, the interval probability
// that cause j resolves in (t0, t1] while remaining the first
// (Minimum) or last (Maximum) cause, as a mixed-orthant multivariate
// normal probability under the Gaussian copula.
func (d *CompetingRisks) exactDeltas(t0, t1 float64, deltas []float64) {
	corr := d.model.Corr
	if d.model.Dep == prob.PerfectlyNegative {
		corr = prob.EquiCorrelation(len(d.marginals))
	}
	for j := range d.marginals {
		var hi, lo float64
		if d.mode == Minimum {
			// P(X_j ≤ t, X_k > t1 ∀k≠j) at t = t1 and t = t0.
			hi = d.mixedOrthant(j, t1, t1, corr)
			lo = d.mixedOrthant(j, t0, t1, corr)
		} else {
			// P(X_j ≤ t, X_k ≤ t1 ∀k≠j) at t = t1 and t = t0.
			hi = d.lowerOrthant(j, t1, t1, corr)
			lo = d.lowerOrthant(j, t0, t1, corr)
		}
		dj := hi - lo
		if math.IsNaN(dj) || dj < 0 {
			dj = 0
		}
		deltas[j] = dj
	}
}

// mixedOrthant returns P(X_j ≤ a, X_k > b ∀k≠j). Flipping the sign
// of the other variables' z-scores and of their correlations with
// variable j turns the mixed orthant into a lower orthant for the
// PCM recurrence.
func (d *CompetingRisks) mixedOrthant(j int, a, b float64, corr *mat.SymDense) float64 {
	k := len(d.marginals)
	z := make([]float64, k)
	flip := make([]float64, k)
	for i, m := range d.marginals {
		if i == j {
			z[i] = distuv.UnitNormal.Quantile(clamp01(m.CDF(a)))
			flip[i] = 1
		} else {
			z[i] = distuv.UnitNormal.Quantile(clamp01(m.CCDF(b)))
			flip[i] = -1
		}
	}
	return prob.OrthantPCM(z, flipCorr(corr, flip, k))
}

// lowerOrthant returns P(X_j ≤ a, X_k ≤ b ∀k≠j).
func (d *CompetingRisks) lowerOrthant(j int, a, b float64, corr *mat.SymDense) float64 {
	k := len(d.marginals)
	z := make([]float64, k)
	for i, m := range d.marginals {
		x := b
		if i == j {
			x = a
		}
		z[i] = distuv.UnitNormal.Quantile(clamp01(m.CDF(x)))
	}
	return prob.OrthantPCM(z, corr)
}

// flipCorr returns the correlation matrix of the sign-flipped
// variables flip[i]·Z_i.
func flipCorr(corr *mat.SymDense, flip []float64, k int) *mat.SymDense {
	out := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		out.SetSym(i, i, 1)
		for j := i + 1; j < k; j++ {
			out.SetSym(i, j, flip[i]*flip[j]*corr.At(i, j))
		}
	}
	return out
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
