// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-riskmath/mathx"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func corr2(rho float64) Model {
	return Model{Dep: Correlated, Corr: mat.NewSymDense(2, []float64{1, rho, rho, 1})}
}

func corrN(n int, rho float64) Model {
	c := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		c.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			c.SetSym(i, j, rho)
		}
	}
	return Model{Dep: Correlated, Corr: c}
}

func TestJointIndependent(t *testing.T) {
	probs := []float64{0.2, 0.3, 0.4}
	if got := Joint(probs, nil, Model{}); !aeq(0.024, got) {
		t.Errorf("Joint(all) = %v, want 0.024", got)
	}
	if got := Joint(probs, []bool{true, false, true}, Model{}); !aeq(0.08, got) {
		t.Errorf("Joint({0,2}) = %v, want 0.08", got)
	}
	if got := Joint(probs, []bool{false, false, false}, Model{}); got != 1 {
		t.Errorf("Joint(empty) = %v, want 1", got)
	}
}

func TestJointPerfectlyPositive(t *testing.T) {
	probs := []float64{0.2, 0.7, 0.4}
	m := Model{Dep: PerfectlyPositive}
	if got := Joint(probs, nil, m); !aeq(0.2, got) {
		t.Errorf("Joint(all) = %v, want 0.2", got)
	}
	if got := Joint(probs, []bool{false, true, true}, m); !aeq(0.4, got) {
		t.Errorf("Joint({1,2}) = %v, want 0.4", got)
	}
}

func TestJointPerfectlyNegative(t *testing.T) {
	m := Model{Dep: PerfectlyNegative}

	// Three half-probability events cannot all occur.
	if got := Joint([]float64{0.5, 0.5, 0.5}, nil, m); got != 0 {
		t.Errorf("Joint([.5 .5 .5]) = %v, want 0", got)
	}

	// Σp - (k-1) when positive.
	if got := Joint([]float64{0.9, 0.8}, nil, m); !aeq(0.7, got) {
		t.Errorf("Joint([.9 .8]) = %v, want 0.7", got)
	}

	// Subset selection applies the bound to the subset only.
	if got := Joint([]float64{0.9, 0.8, 0.1}, []bool{true, true, false}, m); !aeq(0.7, got) {
		t.Errorf("Joint({0,1}) = %v, want 0.7", got)
	}
}

func TestJointPCMBivariateExact(t *testing.T) {
	// For two events the PCM recurrence must reproduce the exact
	// bivariate normal joint probability for any correlation.
	for _, rho := range []float64{-0.95, -0.7, -0.4, -0.1, 0, 0.1, 0.4, 0.7, 0.95, 0.999} {
		for _, p1 := range []float64{0.05, 0.3, 0.5, 0.8} {
			for _, p2 := range []float64{0.1, 0.45, 0.9} {
				want := mathx.BvNorm(
					distuv.UnitNormal.Quantile(p1),
					distuv.UnitNormal.Quantile(p2), rho)
				got := Joint([]float64{p1, p2}, nil, corr2(rho))
				if math.Abs(want-got) > 1e-6 {
					t.Errorf("Joint(%v, %v; rho=%v) = %v, want %v",
						p1, p2, rho, got, want)
				}
			}
		}
	}
}

func TestJointPCMZeroCorrelation(t *testing.T) {
	probs := []float64{0.2, 0.5, 0.7, 0.35}
	got := Joint(probs, nil, corrN(4, 0))
	if want := 0.2 * 0.5 * 0.7 * 0.35; math.Abs(want-got) > 1e-9 {
		t.Errorf("Joint(rho=0) = %v, want %v", got, want)
	}
}

func TestJointPCMComonotoneLimit(t *testing.T) {
	probs := []float64{0.6, 0.3, 0.8}
	got := Joint(probs, nil, corrN(3, 1))
	if !aeq(0.3, got) {
		t.Errorf("Joint(rho=1) = %v, want 0.3", got)
	}
}

func TestJointPCMSubset(t *testing.T) {
	// Excluded events must not affect the joint probability of the
	// included ones.
	m := corrN(3, 0.5)
	full := Joint([]float64{0.4, 0.99, 0.6}, []bool{true, false, true}, m)
	pair := Joint([]float64{0.4, 0.6}, nil, corr2(0.5))
	if math.Abs(full-pair) > 1e-9 {
		t.Errorf("subset joint = %v, pair joint = %v", full, pair)
	}
}

func TestJointPCMMonotoneInRho(t *testing.T) {
	probs := []float64{0.3, 0.6, 0.45}
	prev := math.Inf(-1)
	for _, rho := range []float64{-0.45, -0.2, 0, 0.3, 0.6, 0.9} {
		p := Joint(probs, nil, corrN(3, rho))
		if p < prev-1e-9 {
			t.Errorf("Joint(rho=%v) = %v decreased from %v", rho, p, prev)
		}
		prev = p
	}
}

func TestJointZeroAndOneProbabilities(t *testing.T) {
	m := corrN(3, 0.4)
	if got := Joint([]float64{0, 0.5, 0.6}, nil, m); got != 0 {
		t.Errorf("joint with an impossible event = %v, want 0", got)
	}
	got := Joint([]float64{1, 0.5, 0.6}, nil, m)
	pair := Joint([]float64{0.5, 0.6}, nil, corr2(0.4))
	if math.Abs(got-pair) > 1e-6 {
		t.Errorf("joint with a sure event = %v, want %v", got, pair)
	}
}

func TestJointHPCMAgreesWithPCM(t *testing.T) {
	for _, rho := range []float64{-0.3, 0, 0.25, 0.6, 0.85} {
		for _, probs := range [][]float64{
			{0.3, 0.7},
			{0.2, 0.5, 0.8},
			{0.15, 0.35, 0.55, 0.75},
		} {
			m := corrN(len(probs), rho)
			pcm := Joint(probs, nil, m)
			hpcm := JointHPCM(probs, nil, m)
			if math.Abs(pcm-hpcm) > 1e-9 {
				t.Errorf("rho=%v probs=%v: PCM %v, HPCM %v", rho, probs, pcm, hpcm)
			}
		}
	}
}

func TestJointEach(t *testing.T) {
	probs := []float64{0.2, 0.4, 0.6, 0.8}
	m := corrN(4, 0.35)
	pats := Patterns(4)
	got := JointEach(probs, pats, m)
	for i, pat := range pats {
		if want := Joint(probs, pat, m); want != got[i] {
			t.Errorf("row %d: JointEach %v, Joint %v", i, got[i], want)
		}
	}
}

func TestJointPanics(t *testing.T) {
	for _, fn := range []func(){
		func() { Joint([]float64{0.5}, []bool{true, false}, Model{}) },
		func() { Joint([]float64{1.5}, nil, Model{}) },
		func() { Joint([]float64{-0.1}, nil, Model{}) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		}()
	}
}
