// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/stat/distuv"

// Weibull is a Weibull distribution with shape K and scale Lambda,
// both > 0.
type Weibull struct {
	K, Lambda float64
}

func (d Weibull) dist() distuv.Weibull {
	return distuv.Weibull{K: d.K, Lambda: d.Lambda}
}

func (d Weibull) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d Weibull) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d Weibull) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d Weibull) CCDF(x float64) float64 { return d.dist().Survival(x) }

func (d Weibull) HF(x float64) float64 { return hf(d.PDF(x), d.CCDF(x)) }

func (d Weibull) Bounds() (float64, float64) {
	return 0, d.dist().Quantile(1 - boundsEps)
}

func (d Weibull) PosSupport() bool { return true }

func (d Weibull) Mean() float64 { return d.dist().Mean() }

func (d Weibull) Variance() float64 { return d.dist().Variance() }
