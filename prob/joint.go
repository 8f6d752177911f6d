// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-riskmath/mathx"
)

// Joint returns the probability that every event flagged in
// indicators occurs, under dependency model m. Events whose
// indicator is false are left out of the intersection entirely; use
// Exclusive for exact occurrence patterns.
//
// indicators may be nil, meaning all events. probs and indicators
// must have equal length and probabilities must lie in [0, 1];
// violations panic. Model validity is the caller's responsibility
// (Model.Validate).
func Joint(probs []float64, indicators []bool, m Model) float64 {
	if indicators != nil && len(indicators) != len(probs) {
		panic("prob: probabilities and indicators have different lengths")
	}
	checkProbs(probs)

	k := 0
	for i := range probs {
		if indicators == nil || indicators[i] {
			k++
		}
	}
	if k == 0 {
		return 1
	}

	switch m.Dep {
	case Independent:
		p := 1.0
		for i, pi := range probs {
			if indicators == nil || indicators[i] {
				p *= pi
			}
		}
		return clamp01(p)

	case PerfectlyPositive:
		p := 1.0
		for i, pi := range probs {
			if (indicators == nil || indicators[i]) && pi < p {
				p = pi
			}
		}
		return clamp01(p)

	case PerfectlyNegative:
		// Fréchet lower bound over the included events.
		sum := 0.0
		for i, pi := range probs {
			if indicators == nil || indicators[i] {
				sum += pi
			}
		}
		return clamp01(sum - float64(k-1))

	default:
		z := zScores(probs, indicators)
		return jointPCM(z, workingCorr(m, len(probs)))
	}
}

// jointPCM approximates the multivariate normal orthant probability
// P(Zᵢ ≤ zᵢ ∀i) by the product-of-conditional-marginals recurrence
// (Pandey, M.D. (1998). "An effective approximation to evaluate
// multinormal integrals". Structural Safety 20, 51-67).
//
// Each pivot j conditions all later variables on the event
// {Z_j ≤ z_j}: their z-scores are replaced through the exact
// bivariate normal ratio Φ₂(z_j, z_k, ρ_jk)/Φ(z_j), and the residual
// correlations are deflated by the truncated-normal variance factor
// B = A(z_j + A), A = φ(z_j)/Φ(z_j). The joint probability is the
// product of the final conditional marginals, accumulated in log
// space. jointPCM mutates z and work, which the caller must own.
//
// The result is exact for two variables and an O(N²) approximation
// beyond that. Non-finite intermediate results collapse to 0.
func jointPCM(z []float64, work *mat.SymDense) float64 {
	n := len(z)
	for j := 0; j < n-1; j++ {
		if math.IsInf(z[j], 1) {
			// Sentinel pivot: conditioning on a sure event
			// changes nothing.
			continue
		}
		pj := distuv.UnitNormal.CDF(z[j])
		if pj <= 0 {
			return 0
		}
		a := distuv.UnitNormal.Prob(z[j]) / pj
		b := a * (z[j] + a)

		// Condition the later z-scores on this pivot.
		for k := j + 1; k < n; k++ {
			if math.IsInf(z[k], 1) {
				continue
			}
			cond := mathx.BvNorm(z[j], z[k], work.At(j, k)) / pj
			z[k] = distuv.UnitNormal.Quantile(clamp01(cond))
		}

		// Deflate the residual correlations of all later pairs.
		for ir := j + 1; ir < n; ir++ {
			rj1 := work.At(j, ir)
			for ic := ir + 1; ic < n; ic++ {
				rj2 := work.At(j, ic)
				den := math.Sqrt((1 - rj1*rj1*b) * (1 - rj2*rj2*b))
				if den <= 0 || math.IsNaN(den) {
					continue
				}
				r := (work.At(ir, ic) - rj1*rj2*b) / den
				work.SetSym(ir, ic, math.Max(-1, math.Min(1, r)))
			}
		}
	}

	logp := 0.0
	for _, zi := range z {
		if math.IsInf(zi, 1) {
			continue
		}
		logp += math.Log(distuv.UnitNormal.CDF(zi))
	}
	p := math.Exp(logp)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return clamp01(p)
}

// OrthantPCM approximates the multivariate normal lower orthant
// probability P(Zᵢ ≤ z[i] ∀i) for standard normal variables with
// correlation matrix corr, using the PCM recurrence. A +Inf entry in
// z drops that variable from the orthant. corr is not modified.
//
// This is the raw projection the dependency-aware engines are built
// on; it is exposed for callers that need mixed-direction orthants
// (flip the sign of z[i] and of row/column i of corr to turn
// "Zᵢ ≤ zᵢ" into "Zᵢ > -zᵢ").
func OrthantPCM(z []float64, corr *mat.SymDense) float64 {
	if corr.SymmetricDim() != len(z) {
		panic("prob: z-score and correlation dimensions differ")
	}
	zw := make([]float64, len(z))
	copy(zw, z)
	n := len(z)
	work := mat.NewSymDense(n, nil)
	work.CopySym(corr)
	return jointPCM(zw, work)
}

// JointHPCM is the slower reference variant of the PCM recurrence:
// it carries conditional probabilities rather than z-scores and
// re-derives every z-score from its conditional probability at each
// pivot instead of updating in log space. It exists for verification
// against Joint on small event counts; the two agree to well within
// the accuracy of the approximation itself.
func JointHPCM(probs []float64, indicators []bool, m Model) float64 {
	if m.Dep != Correlated && m.Dep != PerfectlyNegative {
		return Joint(probs, indicators, m)
	}
	if indicators != nil && len(indicators) != len(probs) {
		panic("prob: probabilities and indicators have different lengths")
	}
	checkProbs(probs)

	n := len(probs)
	work := workingCorr(m, n)
	pc := make([]float64, n) // conditional marginal probabilities
	for i, p := range probs {
		if indicators == nil || indicators[i] {
			pc[i] = p
		} else {
			pc[i] = 1
		}
	}

	joint := 1.0
	for j := 0; j < n-1; j++ {
		if pc[j] >= 1 {
			continue
		}
		if pc[j] <= 0 {
			return 0
		}
		zj := distuv.UnitNormal.Quantile(pc[j])
		a := distuv.UnitNormal.Prob(zj) / pc[j]
		b := a * (zj + a)

		for k := j + 1; k < n; k++ {
			if pc[k] >= 1 {
				continue
			}
			zk := distuv.UnitNormal.Quantile(pc[k])
			pc[k] = clamp01(mathx.BvNorm(zj, zk, work.At(j, k)) / pc[j])
		}
		for ir := j + 1; ir < n; ir++ {
			rj1 := work.At(j, ir)
			for ic := ir + 1; ic < n; ic++ {
				rj2 := work.At(j, ic)
				den := math.Sqrt((1 - rj1*rj1*b) * (1 - rj2*rj2*b))
				if den <= 0 || math.IsNaN(den) {
					continue
				}
				r := (work.At(ir, ic) - rj1*rj2*b) / den
				work.SetSym(ir, ic, math.Max(-1, math.Min(1, r)))
			}
		}
	}
	for _, p := range pc {
		joint *= p
	}
	if math.IsNaN(joint) || math.IsInf(joint, 0) {
		return 0
	}
	return clamp01(joint)
}

// JointEach returns Joint(probs, indicators[i], m) for each i. Rows
// are independent, so they are fanned out across GOMAXPROCS
// goroutines; every evaluation clones its own working state.
func JointEach(probs []float64, indicators [][]bool, m Model) []float64 {
	out := make([]float64, len(indicators))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(indicators) {
		workers = len(indicators)
	}
	if workers <= 1 {
		for i, ind := range indicators {
			out[i] = Joint(probs, ind, m)
		}
		return out
	}

	var wg sync.WaitGroup
	next := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				out[i] = Joint(probs, indicators[i], m)
			}
		}()
	}
	for i := range indicators {
		next <- i
	}
	close(next)
	wg.Wait()
	return out
}
