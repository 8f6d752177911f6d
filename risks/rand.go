// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package risks

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-riskmath/prob"
)

// Rand returns n random values from the composed distribution,
// deterministically seeded. Each draw samples every marginal once
// through a dependency-respecting uniform coupling and takes the
// elementwise minimum or maximum; order statistics of a direct
// sample do not need the analytic joint form.
func (d *CompetingRisks) Rand(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	k := len(d.marginals)
	out := make([]float64, n)
	us := make([]float64, k)
	for i := range out {
		d.drawUniforms(rng, us)
		v := d.marginals[0].InvCDF(us[0])
		for j := 1; j < k; j++ {
			x := d.marginals[j].InvCDF(us[j])
			if d.mode == Minimum {
				v = math.Min(v, x)
			} else {
				v = math.Max(v, x)
			}
		}
		out[i] = v
	}
	return out
}

// drawUniforms fills us with one uniform per marginal, coupled
// according to the dependency model: a shared uniform for
// comonotonic events, a Gaussian copula for correlated or
// countermonotonic events, independent uniforms otherwise.
func (d *CompetingRisks) drawUniforms(rng *rand.Rand, us []float64) {
	switch d.model.Dep {
	case prob.PerfectlyPositive:
		u := rng.Float64()
		for i := range us {
			us[i] = u
		}
	case prob.PerfectlyNegative, prob.Correlated:
		if l := d.copulaChol(); l != nil {
			zs := make([]float64, len(us))
			for i := range zs {
				zs[i] = rng.NormFloat64()
			}
			for i := range us {
				z := 0.0
				for j := 0; j <= i; j++ {
					z += l.At(i, j) * zs[j]
				}
				us[i] = distuv.UnitNormal.CDF(z)
			}
			return
		}
		// Factorization failed (matrix not positive definite):
		// degrade to independent draws.
		fallthrough
	default:
		for i := range us {
			us[i] = rng.Float64()
		}
	}
}

// copulaChol returns the cached Cholesky factor of the copula
// correlation matrix, or nil if the matrix cannot be factorized.
func (d *CompetingRisks) copulaChol() *mat.TriDense {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.chol == nil && !d.cholFailed {
		corr := d.model.Corr
		if d.model.Dep == prob.PerfectlyNegative {
			corr = prob.EquiCorrelation(len(d.marginals))
		}
		var ch mat.Cholesky
		if ch.Factorize(corr) {
			d.chol = &mat.TriDense{}
			ch.LTo(d.chol)
		} else {
			d.cholFailed = true
		}
	}
	return d.chol
}
