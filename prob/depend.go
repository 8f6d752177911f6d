// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dependency identifies the assumed statistical relationship between
// events.
type Dependency int

const (
	// Independent events have no statistical relationship.
	Independent Dependency = iota

	// PerfectlyPositive events are comonotonic: the joint
	// probability of a subset is the minimum of its marginal
	// probabilities (the Fréchet upper bound).
	PerfectlyPositive

	// PerfectlyNegative events are countermonotonic: the joint
	// probability of a subset is the Fréchet lower bound
	// max(0, Σpᵢ - (k-1)).
	PerfectlyNegative

	// Correlated events are coupled through a Gaussian copula
	// with an explicit correlation matrix.
	Correlated
)

func (d Dependency) String() string {
	switch d {
	case Independent:
		return "Independent"
	case PerfectlyPositive:
		return "PerfectlyPositive"
	case PerfectlyNegative:
		return "PerfectlyNegative"
	case Correlated:
		return "Correlated"
	}
	return fmt.Sprintf("Dependency(%d)", int(d))
}

// A Model is a dependency model for a set of events: a dependency
// type plus, for Correlated, the correlation matrix of the
// underlying Gaussian copula.
//
// The zero Model is Independent.
type Model struct {
	Dep Dependency

	// Corr is the correlation matrix of the Gaussian copula. It
	// must be set if and only if Dep is Correlated. It must be
	// positive semi-definite; this is assumed, not verified.
	Corr *mat.SymDense
}

// Validate checks that m is a valid model for n events. It reports
// malformed configuration (wrong matrix size, off-unit diagonal,
// entries outside [-1, 1]); positive semi-definiteness is not
// checked.
func (m Model) Validate(n int) error {
	if n < 1 {
		return fmt.Errorf("prob: need at least one event, have %d", n)
	}
	if m.Dep != Correlated {
		if m.Corr != nil {
			return fmt.Errorf("prob: correlation matrix given for %v dependency", m.Dep)
		}
		return nil
	}
	if m.Corr == nil {
		return fmt.Errorf("prob: Correlated dependency requires a correlation matrix")
	}
	if d := m.Corr.SymmetricDim(); d != n {
		return fmt.Errorf("prob: correlation matrix is %dx%d for %d events", d, d, n)
	}
	for i := 0; i < n; i++ {
		if m.Corr.At(i, i) != 1 {
			return fmt.Errorf("prob: correlation matrix diagonal entry (%d,%d) is %v, want 1",
				i, i, m.Corr.At(i, i))
		}
		for j := i + 1; j < n; j++ {
			if r := m.Corr.At(i, j); math.IsNaN(r) || r < -1 || r > 1 {
				return fmt.Errorf("prob: correlation (%d,%d) = %v outside [-1, 1]", i, j, r)
			}
		}
	}
	return nil
}

// Tol bounds the truncation error of the inclusion-exclusion
// engines. Early termination requires the last size group to move
// the running union total by no more than Abs, and by no more than
// Rel times the smaller of the inclusion and exclusion partial sums.
//
// The zero Tol means DefaultTol.
type Tol struct {
	Abs, Rel float64
}

// DefaultTol is the convergence tolerance used when the caller
// passes a zero Tol.
var DefaultTol = Tol{Abs: 1e-4, Rel: 1e-4}

func (t Tol) orDefault() Tol {
	if t == (Tol{}) {
		return DefaultTol
	}
	return t
}

// checkProbs panics if any probability is outside [0, 1]. Length and
// range errors are programmer errors; configuration-time validation
// belongs to Model.Validate and the callers' constructors.
func checkProbs(probs []float64) {
	for _, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			panic(fmt.Sprintf("prob: probability %v outside [0, 1]", p))
		}
	}
}
