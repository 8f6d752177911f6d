// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"math"
)

// ErrNoBracket is returned when a root cannot be bracketed: the
// function has the same sign at both ends of every interval tried.
var ErrNoBracket = errors.New("mathx: root is not bracketed")

// ErrNoConverge is returned when the root finder exhausts its
// iteration budget without meeting the requested tolerance.
var ErrNoConverge = errors.New("mathx: root finder did not converge")

const brentMaxIter = 100

// Brent finds a root of f in [a, b] using Brent's method (inverse
// quadratic interpolation with bisection safeguards). f(a) and f(b)
// must have opposite signs; otherwise ErrNoBracket is returned.
//
// tol is the absolute x tolerance. The result is NaN on error.
func Brent(f func(float64) float64, a, b, tol float64) (float64, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.IsNaN(fa) || math.IsNaN(fb) || fa*fb > 0 {
		return math.NaN(), ErrNoBracket
	}

	c, fc := a, fa
	d, e := b-a, b-a
	for i := 0; i < brentMaxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		m := (c - b) / 2
		const eps = 2.220446049250313e-16
		tol1 := 2*eps*math.Abs(b) + tol/2
		if math.Abs(m) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) < tol1 || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation is making no progress; bisect.
			d, e = m, m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic step.
				qq := fa / fc
				r := fb / fc
				p = s * (2*m*qq*(qq-r) - (b-a)*(r-1))
				q = (qq - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e, d = d, p/q
			} else {
				d, e = m, m
			}
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else if m > 0 {
			b += tol1
		} else {
			b -= tol1
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return math.NaN(), ErrNoConverge
		}
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d, e = b-a, b-a
		}
	}
	return math.NaN(), ErrNoConverge
}

// Bracket expands [lo, hi] until f changes sign across it, scanning
// interior points first and then widening geometrically. It returns a
// bracketing interval, or ErrNoBracket if none is found.
func Bracket(f func(float64) float64, lo, hi float64) (a, b float64, err error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, fhi := f(lo), f(hi)
	if flo == 0 || flo*fhi < 0 {
		return lo, hi, nil
	}

	// Scan interior points in case the sign change is inside a
	// same-signed interval (possible with flat CDF tails).
	const scan = 32
	prevX, prevF := lo, flo
	for i := 1; i <= scan; i++ {
		x := lo + (hi-lo)*float64(i)/scan
		fx := f(x)
		if fx == 0 || prevF*fx < 0 {
			return prevX, x, nil
		}
		prevX, prevF = x, fx
	}

	// Widen geometrically around the original interval.
	w := hi - lo
	if w <= 0 {
		w = math.Max(math.Abs(lo), 1)
	}
	for i := 0; i < 32; i++ {
		w *= 2
		nlo, nhi := lo-w, hi+w
		fnlo, fnhi := f(nlo), f(nhi)
		if fnlo*flo < 0 {
			return nlo, lo, nil
		}
		if fnhi*fhi < 0 {
			return hi, nhi, nil
		}
		if math.IsInf(nlo, 0) || math.IsInf(nhi, 0) {
			break
		}
	}
	return 0, 0, ErrNoBracket
}
