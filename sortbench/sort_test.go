// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import (
	"math/rand/v2"
	"slices"
	"testing"
)

var algorithms = []Algorithm{
	{"MergeSort", MergeSort},
	{"HybridMergeSort", HybridMergeSort},
	{"QuickSort", QuickSort},
	{"IntroSort", IntroSort},
	{"heapSort", heapSort},
	{"insertionSort", insertionSort},
}

func TestSorts(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	inputs := map[string][]int{
		"empty":  {},
		"one":    {1},
		"two":    {2, 1},
		"dups":   {3, 1, 3, 2, 1, 3},
		"random": Random(1000, r),
		"small":  Random(15, r),
		"edge":   Random(16, r),
		"rev":    Reverse(2000),
		"nearly": NearlySorted(2000, 10, r),
		"equal":  make([]int, 100),
	}
	for _, alg := range algorithms {
		for name, in := range inputs {
			a := slices.Clone(in)
			alg.Sort(a)
			want := slices.Clone(in)
			slices.Sort(want)
			if !slices.Equal(a, want) {
				t.Errorf("%s(%s): result is not the sorted input", alg.Name, name)
			}
		}
	}
}

func TestIntroSortDepthLimit(t *testing.T) {
	// Reversed input drives Lomuto partitioning to its worst case,
	// so the depth limit hands the work to heap sort.
	a := Reverse(5000)
	introSort(a, 0)
	if !slices.IsSorted(a) {
		t.Errorf("heap sort fallback did not sort")
	}
}

func TestGenerators(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, v := range Random(10000, r) {
		if v < 0 || v > RandomMax {
			t.Fatalf("random value %d out of [0, %d]", v, RandomMax)
		}
	}
	if got := Reverse(4); !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("Reverse(4) = %v, want [4 3 2 1]", got)
	}

	a := NearlySorted(1000, 10, r)
	displaced := 0
	for i, v := range a {
		if v != i {
			displaced++
		}
	}
	if displaced > 20 {
		t.Errorf("NearlySorted displaced %d elements, want at most 20", displaced)
	}
	s := slices.Clone(a)
	slices.Sort(s)
	for i, v := range s {
		if v != i {
			t.Fatalf("NearlySorted is not a permutation: %v", a)
		}
	}
	if got := NearlySorted(0, 10, r); len(got) != 0 {
		t.Errorf("NearlySorted(0) = %v", got)
	}
}
