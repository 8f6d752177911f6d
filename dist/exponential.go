// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/stat/distuv"

// Exponential is an exponential distribution with rate parameter
// Rate > 0.
type Exponential struct {
	Rate float64
}

func (d Exponential) dist() distuv.Exponential {
	return distuv.Exponential{Rate: d.Rate}
}

func (d Exponential) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d Exponential) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d Exponential) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d Exponential) CCDF(x float64) float64 { return d.dist().Survival(x) }

// HF is the hazard function. For the exponential distribution this is
// the constant Rate on the support.
func (d Exponential) HF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Rate
}

func (d Exponential) Bounds() (float64, float64) {
	return 0, d.dist().Quantile(1 - boundsEps)
}

func (d Exponential) PosSupport() bool { return true }

func (d Exponential) Mean() float64 { return 1 / d.Rate }

func (d Exponential) Variance() float64 { return 1 / (d.Rate * d.Rate) }
