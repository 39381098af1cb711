// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortbench times sorting algorithms on arrays of several
// shapes and sizes and writes the timings as a table whose labels
// have the form "<ArrayType>_<Algorithm>".
package sortbench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/labnotes/seriesplot/seriesfmt"
)

// An Algorithm is a named in-place sort.
type Algorithm struct {
	Name string
	Sort func([]int)
}

// Suites are the sets of algorithms compared by one run. Each suite
// pairs a classic algorithm with its hybrid variant.
var Suites = map[string][]Algorithm{
	"merge": {
		{"MergeSort", MergeSort},
		{"HybridSort", HybridMergeSort},
	},
	"quick": {
		{"QuickSort", QuickSort},
		{"HybridSort", IntroSort},
	},
}

// SuiteNames returns the names of Suites in sorted order.
func SuiteNames() []string {
	var names []string
	for name := range Suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns are the columns written by Run.
var Columns = []string{"ArrayType", "ArraySize", "ExecutionTime(ms)"}

// Config controls a Run.
type Config struct {
	// Suite names an entry of Suites.
	Suite string

	// Types names the array types to generate, in order. If
	// empty, all ArrayTypes are used.
	Types []string

	Sizes []int

	// Repeat is the number of timed runs per measurement. The
	// recorded time is their mean. Values below 1 mean 1.
	Repeat int

	// Seed seeds the array generators. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the configuration of the reference
// experiment for suite.
func DefaultConfig(suite string) Config {
	return Config{
		Suite:  suite,
		Sizes:  []int{500, 1000, 2000, 5000, 10000},
		Repeat: 1,
	}
}

// A SortError reports an algorithm that produced unsorted output.
type SortError struct {
	Label string
	Size  int
}

func (e *SortError) Error() string {
	return fmt.Sprintf("%s produced unsorted output for size %d", e.Label, e.Size)
}

// Run times every algorithm of the suite on every array type and
// size in cfg, writing one row per measurement to w. The header of w
// must be Columns. Every sorted output is checked, and Run fails with
// a *SortError if one is out of order.
func Run(ctx context.Context, cfg Config, w *seriesfmt.Writer) error {
	algs, ok := Suites[cfg.Suite]
	if !ok {
		return fmt.Errorf("unknown suite %q; want %s", cfg.Suite, strings.Join(SuiteNames(), ", "))
	}
	types, err := lookupTypes(cfg.Types)
	if err != nil {
		return err
	}
	for _, n := range cfg.Sizes {
		if n < 0 {
			return fmt.Errorf("negative array size %d", n)
		}
	}
	repeat := max(cfg.Repeat, 1)
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed>>1|1))

	for _, at := range types {
		for _, n := range cfg.Sizes {
			input := at.Gen(n, r)
			for _, alg := range algs {
				label := at.Name + "_" + alg.Name
				ms, sorted, err := measure(ctx, alg, input, repeat)
				if err != nil {
					return err
				}
				if !sorted {
					return &SortError{Label: label, Size: n}
				}
				if err := w.Write(label, n, ms); err != nil {
					return err
				}
			}
		}
	}
	return w.Flush()
}

// measure returns the mean time in milliseconds alg takes to sort a
// copy of input and whether every result was sorted.
func measure(ctx context.Context, alg Algorithm, input []int, repeat int) (ms float64, sorted bool, err error) {
	times := make([]float64, 0, repeat)
	a := make([]int, len(input))
	for i := 0; i < repeat; i++ {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}
		copy(a, input)
		start := time.Now()
		alg.Sort(a)
		d := time.Since(start)
		if !slices.IsSorted(a) {
			return 0, false, nil
		}
		times = append(times, float64(d)/float64(time.Millisecond))
	}
	return stats.Mean(times), true, nil
}
