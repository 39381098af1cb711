// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortbench

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// An ArrayType generates input arrays of one shape.
type ArrayType struct {
	Name string
	Gen  func(n int, r *rand.Rand) []int
}

// RandomMax is the largest value produced by the Random array type.
const RandomMax = 6000

// NearlySortedSwaps is the number of random swaps applied by the
// NearlySorted array type.
const NearlySortedSwaps = 10

// ArrayTypes lists the array types in the order Run visits them.
var ArrayTypes = []ArrayType{
	{"Random", Random},
	{"Reverse", func(n int, _ *rand.Rand) []int { return Reverse(n) }},
	{"NearlySorted", func(n int, r *rand.Rand) []int { return NearlySorted(n, NearlySortedSwaps, r) }},
}

// Random returns n values drawn uniformly from [0, RandomMax].
func Random(n int, r *rand.Rand) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = r.IntN(RandomMax + 1)
	}
	return a
}

// Reverse returns n, n-1, ..., 1.
func Reverse(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = n - i
	}
	return a
}

// NearlySorted returns 0, 1, ..., n-1 with swaps pairs of random
// positions exchanged.
func NearlySorted(n, swaps int, r *rand.Rand) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	if n == 0 {
		return a
	}
	for i := 0; i < swaps; i++ {
		x, y := r.IntN(n), r.IntN(n)
		a[x], a[y] = a[y], a[x]
	}
	return a
}

func lookupTypes(names []string) ([]ArrayType, error) {
	if len(names) == 0 {
		return ArrayTypes, nil
	}
	var out []ArrayType
	for _, name := range names {
		found := false
		for _, at := range ArrayTypes {
			if at.Name == name {
				out = append(out, at)
				found = true
				break
			}
		}
		if !found {
			var all []string
			for _, at := range ArrayTypes {
				all = append(all, at.Name)
			}
			return nil, fmt.Errorf("unknown array type %q; want %s", name, strings.Join(all, ", "))
		}
	}
	return out, nil
}
