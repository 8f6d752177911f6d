// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package risks

import (
	"math"
	"sort"

	"github.com/aclements/go-riskmath/dist"
)

// ecdfBins is the number of stratified sample points used to build
// the empirical CDF fallback table.
const ecdfBins = 256

// An ecdfTable is a piecewise-linear approximation of the composed
// CDF: (x, p) pairs strictly increasing in both coordinates, built by
// sampling CDF over a stratified x range. It backs InvCDF when
// bracketed root finding fails.
type ecdfTable struct {
	xs, ps []float64
}

// ecdfTable returns the cached fallback table, building it on first
// use.
func (d *CompetingRisks) ecdfTable() *ecdfTable {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ecdf == nil {
		d.ecdf = buildECDF(d)
	}
	return d.ecdf
}

// logStratified reports whether the sample grid should be spaced
// logarithmically: every marginal lives on the positive reals and
// the support spans enough decades that linear bins would starve the
// low end.
func (d *CompetingRisks) logStratified(lo, hi float64) bool {
	if lo <= 0 || hi <= lo || hi/lo < 100 {
		return false
	}
	for _, m := range d.marginals {
		if !dist.PosSupport(m) {
			return false
		}
	}
	return true
}

func buildECDF(d *CompetingRisks) *ecdfTable {
	lo, hi := d.Bounds()
	if d.logStratified(lo, hi) {
		return sampleECDF(d, func(t float64) float64 {
			return lo * math.Exp(t*math.Log(hi/lo))
		})
	}
	return sampleECDF(d, func(t float64) float64 {
		return lo + t*(hi-lo)
	})
}

// sampleECDF evaluates the CDF on the stratified grid x(i/bins) and
// keeps only the strictly increasing (x, p) pairs, so interpolation
// stays invertible across flat CDF stretches.
func sampleECDF(d *CompetingRisks, grid func(t float64) float64) *ecdfTable {
	t := &ecdfTable{
		xs: make([]float64, 0, ecdfBins+1),
		ps: make([]float64, 0, ecdfBins+1),
	}
	lastP := math.Inf(-1)
	for i := 0; i <= ecdfBins; i++ {
		x := grid(float64(i) / ecdfBins)
		p := d.CDF(x)
		if math.IsNaN(p) || p <= lastP {
			continue
		}
		t.xs = append(t.xs, x)
		t.ps = append(t.ps, p)
		lastP = p
	}
	return t
}

// quantile interpolates the p quantile from the table.
func (t *ecdfTable) quantile(p float64) float64 {
	n := len(t.ps)
	if n == 0 {
		return math.NaN()
	}
	if p <= t.ps[0] {
		return t.xs[0]
	}
	if p >= t.ps[n-1] {
		return t.xs[n-1]
	}
	i := sort.SearchFloat64s(t.ps, p)
	// t.ps[i-1] < p ≤ t.ps[i]; interpolate linearly.
	frac := (p - t.ps[i-1]) / (t.ps[i] - t.ps[i-1])
	return t.xs[i-1] + frac*(t.xs[i]-t.xs[i-1])
}
