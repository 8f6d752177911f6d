// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import "github.com/aclements/go-riskmath/mathx"

// Patterns returns all 2ⁿ-1 non-empty indicator vectors over n
// events, grouped by subset size ascending and in lexicographic
// combination order within each group.
//
// This ordering is relied on by the truncation logic of Union and by
// the output order of Exclusive and must not change.
func Patterns(n int) [][]bool {
	pats := make([][]bool, 0, (1<<uint(n))-1)
	for k := 1; k <= n; k++ {
		combinations(n, k, func(idx []int) {
			ind := make([]bool, n)
			for _, i := range idx {
				ind[i] = true
			}
			pats = append(pats, ind)
		})
	}
	return pats
}

// GroupSizes returns C(n, k) for k = 1..n. The cumulative sums mark
// the group boundaries in the Patterns enumeration.
func GroupSizes(n int) []int {
	sizes := make([]int, n)
	for k := 1; k <= n; k++ {
		sizes[k-1] = int(mathx.Choose(n, k))
	}
	return sizes
}

// combinations calls fn with each size-k subset of {0, ..., n-1} in
// lexicographic order. The index slice is reused across calls.
func combinations(n, k int, fn func(idx []int)) {
	if k < 1 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// Advance to the next combination: find the rightmost
		// index that can move and reset everything after it.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
