// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/stat/distuv"

// LogNormal is a log-normal distribution: ln(X) is normal with mean
// Mu and standard deviation Sigma.
type LogNormal struct {
	Mu, Sigma float64
}

func (d LogNormal) dist() distuv.LogNormal {
	return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d LogNormal) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d LogNormal) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d LogNormal) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d LogNormal) CCDF(x float64) float64 { return d.dist().Survival(x) }

func (d LogNormal) HF(x float64) float64 { return hf(d.PDF(x), d.CCDF(x)) }

func (d LogNormal) Bounds() (float64, float64) {
	n := d.dist()
	return n.Quantile(boundsEps), n.Quantile(1 - boundsEps)
}

func (d LogNormal) PosSupport() bool { return true }

func (d LogNormal) Mean() float64 { return d.dist().Mean() }

func (d LogNormal) Variance() float64 { return d.dist().Variance() }
