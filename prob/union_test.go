// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"
	"testing"
)

// exactTol effectively disables early termination.
var exactTol = Tol{Abs: 1e-300, Rel: 1e-300}

func TestUnionIndependentClosedForm(t *testing.T) {
	for _, probs := range [][]float64{
		{0.5},
		{0.2, 0.3},
		{0.2, 0.3, 0.4},
		{0.01, 0.02, 0.5, 0.9},
		{0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
	} {
		want := 1.0
		for _, p := range probs {
			want *= 1 - p
		}
		want = 1 - want
		if got := Union(probs, Model{}, exactTol); !aeq(want, got) {
			t.Errorf("Union(%v) = %v, want %v", probs, got, want)
		}
	}

	// 1 - 0.8*0.7*0.6 = 0.664.
	if got := Union([]float64{0.2, 0.3, 0.4}, Model{}, exactTol); math.Abs(got-0.664) > 1e-12 {
		t.Errorf("Union([.2 .3 .4]) = %v, want 0.664", got)
	}
}

func TestUnionDegenerate(t *testing.T) {
	if got := Union(nil, Model{}, Tol{}); got != 0 {
		t.Errorf("Union(nil) = %v, want 0", got)
	}
	if got := Union([]float64{0.37}, Model{Dep: PerfectlyNegative}, Tol{}); got != 0.37 {
		t.Errorf("Union single = %v, want 0.37", got)
	}
}

func TestUnionPerfectlyPositive(t *testing.T) {
	// Comonotonic union is the maximum probability.
	probs := []float64{0.2, 0.7, 0.4}
	if got := Union(probs, Model{Dep: PerfectlyPositive}, exactTol); !aeq(0.7, got) {
		t.Errorf("Union = %v, want 0.7", got)
	}
}

func TestUnionPerfectlyNegative(t *testing.T) {
	// Countermonotonic events with Σp ≤ 1 are disjoint, so the
	// union is the plain sum.
	probs := []float64{0.2, 0.3, 0.4}
	if got := Union(probs, Model{Dep: PerfectlyNegative}, exactTol); !aeq(0.9, got) {
		t.Errorf("Union = %v, want 0.9", got)
	}
}

func TestUnionCorrelatedBounds(t *testing.T) {
	// Positive correlation shrinks the union toward max(p);
	// negative correlation grows it toward min(1, Σp).
	probs := []float64{0.25, 0.4}
	indep := Union(probs, Model{}, exactTol)
	pos := Union(probs, corr2(0.8), exactTol)
	neg := Union(probs, corr2(-0.8), exactTol)
	if !(pos < indep && indep < neg) {
		t.Errorf("want pos %v < indep %v < neg %v", pos, indep, neg)
	}
	if pos < 0.4-1e-9 || neg > 0.65+1e-9 {
		t.Errorf("union outside Fréchet bounds: pos %v, neg %v", pos, neg)
	}
}

func TestUnionComonotoneMatrix(t *testing.T) {
	probs := []float64{0.2, 0.5}
	if got := Union(probs, corr2(1), exactTol); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("Union(rho=1) = %v, want 0.5", got)
	}
}

func TestUnionTruncation(t *testing.T) {
	// Many small independent probabilities converge after a few
	// size groups; the truncated result must stay within the
	// requested absolute tolerance of the closed form.
	probs := make([]float64, 12)
	want := 1.0
	for i := range probs {
		probs[i] = 0.02 + 0.005*float64(i)
		want *= 1 - probs[i]
	}
	want = 1 - want

	got := Union(probs, Model{}, Tol{Abs: 1e-4, Rel: 1e-4})
	if math.Abs(want-got) > 1e-4 {
		t.Errorf("truncated union = %v, want %v ± 1e-4", got, want)
	}
}
