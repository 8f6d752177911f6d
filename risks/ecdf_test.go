// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package risks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-riskmath/dist"
	"github.com/aclements/go-riskmath/prob"
)

func TestECDFTableMonotone(t *testing.T) {
	d := minExp(t)
	tab := d.ecdfTable()
	require.NotEmpty(t, tab.xs)
	require.Len(t, tab.ps, len(tab.xs))
	for i := 1; i < len(tab.xs); i++ {
		assert.Greater(t, tab.xs[i], tab.xs[i-1])
		assert.Greater(t, tab.ps[i], tab.ps[i-1])
	}
}

func TestECDFQuantileFallback(t *testing.T) {
	// The fallback tier must round-trip within the resolution of
	// the sampled table.
	d := minExp(t)
	tab := d.ecdfTable()
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		x := tab.quantile(p)
		assert.InDelta(t, p, d.CDF(x), 5e-3, "p=%v (x=%v)", p, x)
	}
}

func TestECDFLogStratified(t *testing.T) {
	// All-positive marginals with a wide support use a log grid, so
	// low quantiles keep their resolution.
	d, err := New([]dist.Dist{
		dist.LogNormal{Mu: 0, Sigma: 1},
		dist.LogNormal{Mu: 1, Sigma: 0.5},
	}, prob.Model{}, Minimum)
	require.NoError(t, err)

	lo, hi := d.Bounds()
	assert.True(t, d.logStratified(lo, hi))

	tab := d.ecdfTable()
	for _, p := range []float64{0.01, 0.1, 0.5, 0.9} {
		x := tab.quantile(p)
		assert.InDelta(t, p, d.CDF(x), 5e-3, "p=%v (x=%v)", p, x)
	}
}

func TestECDFLinearForMixedSupport(t *testing.T) {
	d := minExp(t)
	lo, hi := d.Bounds()
	// Exponential support starts at 0: a log grid is impossible.
	assert.False(t, d.logStratified(lo, hi))
}
