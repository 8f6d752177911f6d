// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import "math/bits"

// exclusiveMaxEvents caps the subset table at 2^20 joint values.
const exclusiveMaxEvents = 20

// Exclusive returns, for every non-empty occurrence pattern in
// Patterns order, the probability that exactly that pattern occurs:
// the flagged events happen and the unflagged events do not.
//
// Each pattern probability is a nested inclusion-exclusion over the
// pattern's supersets,
//
//	P(exactly S) = Σ over T ⊇ S of (-1)^(|T|-|S|) P(∩ T),
//
// evaluated against a table of joint probabilities computed once per
// call. Small negative results from floating-point cancellation (or
// from the PCM approximation) are clamped to zero.
//
// The outputs plus the "none occur" complement partition the sample
// space: they sum to 1 up to the accuracy of the joint
// approximation.
func Exclusive(probs []float64, m Model) []float64 {
	n := len(probs)
	if n == 0 {
		return nil
	}
	if n > exclusiveMaxEvents {
		panic("prob: too many events for exclusive-pattern enumeration")
	}
	checkProbs(probs)

	// Joint probability of every subset, indexed by bitmask.
	joints := make([]float64, 1<<uint(n))
	joints[0] = 1
	ind := make([]bool, n)
	for mask := 1; mask < len(joints); mask++ {
		for i := range ind {
			ind[i] = mask&(1<<uint(i)) != 0
		}
		joints[mask] = Joint(probs, ind, m)
	}

	full := (1 << uint(n)) - 1
	out := make([]float64, 0, full)
	for _, pat := range Patterns(n) {
		s := 0
		for i, on := range pat {
			if on {
				s |= 1 << uint(i)
			}
		}
		// Sum over supersets of s: s plus any subset of its
		// complement, alternating sign by the number of added
		// events.
		comp := full &^ s
		sum := 0.0
		for sub := comp; ; sub = (sub - 1) & comp {
			if bits.OnesCount(uint(sub))%2 == 0 {
				sum += joints[s|sub]
			} else {
				sum -= joints[s|sub]
			}
			if sub == 0 {
				break
			}
		}
		if sum < 0 {
			sum = 0
		}
		out = append(out, sum)
	}
	return out
}
