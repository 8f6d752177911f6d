// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// risks composes several marginal distributions and a dependency
// model into a single competing-risks distribution: the distribution
// of the minimum (first event to occur) or maximum (last event) of
// the marginal variables.
//
// Evaluation delegates to the prob package: the CDF of the minimum
// is the union probability of the per-marginal events {Xᵢ ≤ x}, the
// CDF of the maximum is their joint probability. Where no closed
// form exists the distribution degrades tier by tier: analytic PDF →
// numerical differentiation, root-found quantiles → interpolation of
// a lazily built empirical CDF table.
package risks // import "github.com/aclements/go-riskmath/risks"

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/aclements/go-riskmath/dist"
	"github.com/aclements/go-riskmath/mathx"
	"github.com/aclements/go-riskmath/prob"
)

// Mode selects which order statistic the composed distribution
// represents.
type Mode int

const (
	// Minimum composes min(X₁, ..., Xₖ): the first competing
	// event to occur.
	Minimum Mode = iota

	// Maximum composes max(X₁, ..., Xₖ): the last competing
	// event to occur.
	Maximum
)

func (m Mode) String() string {
	switch m {
	case Minimum:
		return "Minimum"
	case Maximum:
		return "Maximum"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// A CompetingRisks distribution is the minimum or maximum of several
// dependent random variables. It implements dist.Dist.
//
// Methods are safe for concurrent use; the lazily built caches
// (empirical CDF table, moments) are guarded internally.
type CompetingRisks struct {
	marginals []dist.Dist
	model     prob.Model
	mode      Mode
	tol       prob.Tol

	mu         sync.Mutex
	ecdf       *ecdfTable
	moments    *moments
	chol       *mat.TriDense
	cholFailed bool
}

// New returns the competing-risks distribution of the given
// marginals under the given dependency model. The model is validated
// against the number of marginals; an invalid configuration is
// reported here rather than at evaluation time.
func New(marginals []dist.Dist, model prob.Model, mode Mode) (*CompetingRisks, error) {
	if len(marginals) == 0 {
		return nil, fmt.Errorf("risks: need at least one marginal distribution")
	}
	if err := model.Validate(len(marginals)); err != nil {
		return nil, err
	}
	d := &CompetingRisks{model: model, mode: mode}
	d.marginals = append(d.marginals, marginals...)
	return d, nil
}

// SetModel replaces the dependency model and invalidates all cached
// artifacts.
func (d *CompetingRisks) SetModel(model prob.Model) error {
	if err := model.Validate(len(d.marginals)); err != nil {
		return err
	}
	d.model = model
	d.invalidate()
	return nil
}

// SetMarginals replaces the marginal distributions and invalidates
// all cached artifacts. The current model must remain valid for the
// new marginal count.
func (d *CompetingRisks) SetMarginals(marginals []dist.Dist) error {
	if len(marginals) == 0 {
		return fmt.Errorf("risks: need at least one marginal distribution")
	}
	if err := d.model.Validate(len(marginals)); err != nil {
		return err
	}
	d.marginals = append(d.marginals[:0:0], marginals...)
	d.invalidate()
	return nil
}

// SetTol replaces the convergence tolerance handed to the union
// engine. The zero Tol means prob.DefaultTol.
func (d *CompetingRisks) SetTol(tol prob.Tol) {
	d.tol = tol
	d.invalidate()
}

func (d *CompetingRisks) invalidate() {
	d.mu.Lock()
	d.ecdf = nil
	d.moments = nil
	d.chol = nil
	d.cholFailed = false
	d.mu.Unlock()
}

// CDF returns P(min ≤ x) or P(max ≤ x) under the configured
// dependency model.
func (d *CompetingRisks) CDF(x float64) float64 {
	ps := make([]float64, len(d.marginals))
	for i, m := range d.marginals {
		p := m.CDF(x)
		if math.IsNaN(p) {
			p = 0
		}
		ps[i] = math.Max(0, math.Min(1, p))
	}
	if d.mode == Minimum {
		return prob.Union(ps, d.model, d.tol)
	}
	return prob.Joint(ps, nil, d.model)
}

// CCDF returns the survival function 1 - CDF(x).
func (d *CompetingRisks) CCDF(x float64) float64 {
	return 1 - d.CDF(x)
}

// HF returns the hazard function PDF(x)/CCDF(x).
func (d *CompetingRisks) HF(x float64) float64 {
	s := d.CCDF(x)
	if s <= 0 {
		if d.PDF(x) > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return d.PDF(x) / s
}

// PDF returns the density at x. Under Independent dependency this is
// the closed hazard-form sum; under any other dependency it is a
// central difference of the CDF. Negative results from numerical
// noise are clamped to zero.
func (d *CompetingRisks) PDF(x float64) float64 {
	if d.model.Dep == prob.Independent {
		return d.pdfIndependent(x)
	}
	// Central difference. The CDF is exact (up to the union
	// tolerance), so a mild step is enough.
	h := 1e-5 * math.Max(math.Abs(x), 1)
	f := (d.CDF(x+h) - d.CDF(x-h)) / (2 * h)
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return f
}

// pdfIndependent is the analytic density of the minimum,
//
//	f(x) = Σᵢ fᵢ(x) Πⱼ≠ᵢ Sⱼ(x),
//
// and the analogous form with CDF factors for the maximum.
func (d *CompetingRisks) pdfIndependent(x float64) float64 {
	sum := 0.0
	for i, mi := range d.marginals {
		term := mi.PDF(x)
		if term == 0 {
			continue
		}
		for j, mj := range d.marginals {
			if j == i {
				continue
			}
			if d.mode == Minimum {
				term *= mj.CCDF(x)
			} else {
				term *= mj.CDF(x)
			}
			if term == 0 {
				break
			}
		}
		sum += term
	}
	if math.IsNaN(sum) || sum < 0 {
		return 0
	}
	return sum
}

// Bounds returns the effective support of the composed distribution.
func (d *CompetingRisks) Bounds() (float64, float64) {
	lo, hi := d.marginals[0].Bounds()
	for _, m := range d.marginals[1:] {
		mlo, mhi := m.Bounds()
		if d.mode == Minimum {
			lo = math.Min(lo, mlo)
			hi = math.Min(hi, mhi)
		} else {
			lo = math.Max(lo, mlo)
			hi = math.Max(hi, mhi)
		}
	}
	return lo, hi
}

// InvCDF returns the p quantile of the composed distribution.
//
// The root of p - CDF(x) is bracketed starting from the marginals'
// own p quantiles and solved with Brent's method. If bracketing or
// solving fails, the quantile is interpolated from the lazily built
// empirical CDF table instead; the failure never surfaces to the
// caller.
func (d *CompetingRisks) InvCDF(p float64) float64 {
	lo, hi := d.Bounds()
	if p <= 0 {
		return lo
	}
	if p >= 1 {
		return hi
	}
	if len(d.marginals) == 1 {
		return d.marginals[0].InvCDF(p)
	}

	qlo, qhi := math.Inf(1), math.Inf(-1)
	for _, m := range d.marginals {
		q := m.InvCDF(p)
		qlo = math.Min(qlo, q)
		qhi = math.Max(qhi, q)
	}
	f := func(x float64) float64 { return d.CDF(x) - p }
	if a, b, err := mathx.Bracket(f, qlo, qhi); err == nil {
		xtol := 1e-10 * math.Max(1, math.Abs(b)+math.Abs(a))
		if x, err := mathx.Brent(f, a, b, xtol); err == nil {
			return x
		}
	}
	return d.ecdfTable().quantile(p)
}
