// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/stat/distuv"

// Uniform is a continuous uniform distribution on [Min, Max].
type Uniform struct {
	Min, Max float64
}

func (d Uniform) dist() distuv.Uniform {
	return distuv.Uniform{Min: d.Min, Max: d.Max}
}

func (d Uniform) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d Uniform) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d Uniform) InvCDF(p float64) float64 { return d.dist().Quantile(p) }

func (d Uniform) CCDF(x float64) float64 { return d.dist().Survival(x) }

func (d Uniform) HF(x float64) float64 { return hf(d.PDF(x), d.CCDF(x)) }

func (d Uniform) Bounds() (float64, float64) { return d.Min, d.Max }

func (d Uniform) Mean() float64 { return (d.Min + d.Max) / 2 }

func (d Uniform) Variance() float64 {
	w := d.Max - d.Min
	return w * w / 12
}
