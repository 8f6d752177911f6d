// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import "math"

// Union returns the probability that at least one of the events
// occurs, under dependency model m, by inclusion-exclusion:
//
//	P(∪ Eᵢ) = Σ over non-empty subsets S of (-1)^(|S|+1) P(∩ S)
//
// Subsets are evaluated grouped by size ascending. Odd-size groups
// push the running total up (inclusion), even-size groups pull it
// down (exclusion). Once a completed group moves the total by no
// more than tol.Abs and by no more than tol.Rel times the smaller of
// the two enclosing partial sums, the remaining groups are skipped
// and the midpoint of the last two totals is returned as a
// bias-corrected estimate. This bounds the worst case 2ⁿ-1 joint
// evaluations to near-linear work for weakly coupled events.
//
// A zero tol means DefaultTol.
func Union(probs []float64, m Model, tol Tol) float64 {
	n := len(probs)
	if n == 0 {
		return 0
	}
	checkProbs(probs)
	if n == 1 {
		return probs[0]
	}
	tol = tol.orDefault()

	var (
		total     float64
		prevTotal float64
		inclTotal float64 // total after the last odd-size group
		exclTotal float64 // total after the last even-size group
	)
	ind := make([]bool, n)
	for k := 1; k <= n; k++ {
		groupSum := 0.0
		combinations(n, k, func(idx []int) {
			for i := range ind {
				ind[i] = false
			}
			for _, i := range idx {
				ind[i] = true
			}
			groupSum += Joint(probs, ind, m)
		})
		prevTotal = total
		if k%2 == 1 {
			total += groupSum
			inclTotal = total
		} else {
			total -= groupSum
			exclTotal = total
		}

		if k >= 2 && k < n {
			delta := math.Abs(total - prevTotal)
			if delta <= tol.Abs && delta <= tol.Rel*math.Min(inclTotal, exclTotal) {
				// Split the residual oscillation between
				// the inclusion and exclusion bounds.
				return clamp01((total + prevTotal) / 2)
			}
		}
	}
	return clamp01(total)
}
