// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/stat/distuv"

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

func (d Normal) dist() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d Normal) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d Normal) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d Normal) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d Normal) CCDF(x float64) float64 { return d.dist().Survival(x) }

func (d Normal) HF(x float64) float64 { return hf(d.PDF(x), d.CCDF(x)) }

func (d Normal) Bounds() (float64, float64) {
	n := d.dist()
	return n.Quantile(boundsEps), n.Quantile(1 - boundsEps)
}

func (d Normal) Mean() float64 { return d.Mu }

func (d Normal) Variance() float64 { return d.Sigma * d.Sigma }
