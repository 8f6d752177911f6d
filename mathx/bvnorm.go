// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Gauss-Legendre abscissas and weights on [-1, 1], halved by symmetry.
// The rule order is selected by |rho|: low correlations need few
// points, |rho| near 1 switches to the 20 point rule plus the
// asymptotic expansion below.
var (
	gl6x = [...]float64{0.2386191860831969, 0.6612093864662645, 0.9324695142031521}
	gl6w = [...]float64{0.4679139345726910, 0.3607615730481386, 0.1713244923791704}

	gl12x = [...]float64{
		0.1252334085114689, 0.3678314989981802, 0.5873179542866175,
		0.7699026741943047, 0.9041172563704749, 0.9815606342467192,
	}
	gl12w = [...]float64{
		0.2491470458134028, 0.2334925365383548, 0.2031674267230659,
		0.1600783285433462, 0.1069393259953184, 0.0471753363865118,
	}

	gl20x = [...]float64{
		0.0765265211334973, 0.2277858511416451, 0.3737060887154195,
		0.5108670019508271, 0.6360536807265150, 0.7463319064601508,
		0.8391169718222188, 0.9122344282513259, 0.9639719272779138,
		0.9931285991850949,
	}
	gl20w = [...]float64{
		0.1527533871307258, 0.1491729864726037, 0.1420961093183820,
		0.1316886384491766, 0.1181945319615184, 0.1019301198172404,
		0.0832767415767048, 0.0626720483341091, 0.0406014298003869,
		0.0176140071391521,
	}
)

// phid is the standard normal CDF Φ.
func phid(x float64) float64 {
	return math.Erfc(-x/math.Sqrt2) / 2
}

// BvNorm returns the bivariate standard normal lower orthant
// probability P(X ≤ x, Y ≤ y) where X and Y have correlation rho.
//
// This is a transcription of the Drezner-Wesolowsky method with
// Genz's refinement for |rho| > 0.925 (Genz, A. (2004). "Numerical
// computation of rectangular bivariate and trivariate normal and t
// probabilities". Statistics and Computing 14, 251-260). The maximum
// absolute error is below 5e-16 for |rho| ≤ 0.925 and below 5e-9
// otherwise.
func BvNorm(x, y, rho float64) float64 {
	// The core routine computes the upper orthant P(X > h, Y > k);
	// by central symmetry the lower orthant at (x, y) is the upper
	// orthant at (-x, -y).
	return bvnu(-x, -y, rho)
}

// bvnu returns the upper orthant probability P(X > h, Y > k).
func bvnu(h, k, r float64) float64 {
	switch {
	case math.IsInf(h, 1) || math.IsInf(k, 1):
		return 0
	case math.IsInf(h, -1):
		if math.IsInf(k, -1) {
			return 1
		}
		return phid(-k)
	case math.IsInf(k, -1):
		return phid(-h)
	case r == 0:
		return phid(-h) * phid(-k)
	}

	var xs, ws []float64
	switch ar := math.Abs(r); {
	case ar < 0.3:
		xs, ws = gl6x[:], gl6w[:]
	case ar < 0.75:
		xs, ws = gl12x[:], gl12w[:]
	default:
		xs, ws = gl20x[:], gl20w[:]
	}

	const twoPi = 2 * math.Pi
	hk := h * k
	bvn := 0.0

	if math.Abs(r) < 0.925 {
		// Drezner-Wesolowsky: integrate over the correlation
		// angle from 0 to asin(r).
		hs := (h*h + k*k) / 2
		asr := math.Asin(r)
		for i, x := range xs {
			for is := -1.0; is <= 1; is += 2 {
				sn := math.Sin(asr * (is*x + 1) / 2)
				bvn += ws[i] * math.Exp((sn*hk-hs)/(1-sn*sn))
			}
		}
		return clamp01(bvn*asr/(2*twoPi) + phid(-h)*phid(-k))
	}

	// |r| close to 1: transform so the singular part is handled by
	// a Taylor expansion and integrate the smooth remainder.
	if r < 0 {
		k = -k
		hk = -hk
	}
	if math.Abs(r) < 1 {
		as := (1 - r) * (1 + r)
		a := math.Sqrt(as)
		bs := (h - k) * (h - k)
		c := (4 - hk) / 8
		d := (12 - hk) / 16
		asr := -(bs/as + hk) / 2
		if asr > -100 {
			bvn = a * math.Exp(asr) * (1 - c*(bs-as)*(1-d*bs/5)/3 + c*d*as*as/5)
		}
		if -hk < 100 {
			b := math.Sqrt(bs)
			bvn -= math.Exp(-hk/2) * math.Sqrt(twoPi) * phid(-b/a) * b * (1 - c*bs*(1-d*bs/5)/3)
		}
		a /= 2
		for i, x := range xs {
			for is := -1.0; is <= 1; is += 2 {
				xsq := (a * (is*x + 1)) * (a * (is*x + 1))
				rs := math.Sqrt(1 - xsq)
				asr := -(bs/xsq + hk) / 2
				if asr > -100 {
					bvn += a * ws[i] * math.Exp(asr) *
						(math.Exp(-hk*(1-rs)/(2*(1+rs)))/rs - (1 + c*xsq*(1+d*xsq)))
				}
			}
		}
		bvn /= -twoPi
	}
	if r > 0 {
		bvn += phid(-math.Max(h, k))
	} else {
		bvn = -bvn
		if k > h {
			bvn += phid(k) - phid(h)
		}
	}
	return clamp01(bvn)
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
