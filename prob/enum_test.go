// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"reflect"
	"testing"
)

func TestPatternsOrder(t *testing.T) {
	// Size groups ascending, lexicographic combinations within a
	// group. This exact order is a correctness invariant for the
	// union truncation logic.
	want := [][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
		{true, true, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	if got := Patterns(3); !reflect.DeepEqual(want, got) {
		t.Errorf("Patterns(3) = %v, want %v", got, want)
	}

	if got := Patterns(1); !reflect.DeepEqual([][]bool{{true}}, got) {
		t.Errorf("Patterns(1) = %v", got)
	}
}

func TestPatternsCount(t *testing.T) {
	for n := 1; n <= 8; n++ {
		if got, want := len(Patterns(n)), 1<<uint(n)-1; got != want {
			t.Errorf("len(Patterns(%d)) = %d, want %d", n, got, want)
		}
	}
}

func TestGroupSizes(t *testing.T) {
	if got, want := GroupSizes(4), []int{4, 6, 4, 1}; !reflect.DeepEqual(want, got) {
		t.Errorf("GroupSizes(4) = %v, want %v", got, want)
	}

	// Group boundaries must match the enumeration.
	n := 5
	pats := Patterns(n)
	i := 0
	for k, size := range GroupSizes(n) {
		for j := 0; j < size; j++ {
			count := 0
			for _, on := range pats[i] {
				if on {
					count++
				}
			}
			if count != k+1 {
				t.Fatalf("pattern %d has %d events, want %d", i, count, k+1)
			}
			i++
		}
	}
}
