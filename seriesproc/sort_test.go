// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesproc

import (
	"math"
	"testing"
)

func TestParseNum(t *testing.T) {
	check := func(x string, want float64) {
		t.Helper()
		got, err := parseNum(x)
		if err != nil {
			t.Errorf("%s: want %v, got error %s", x, want, err)
		} else if want != got && !(math.IsNaN(want) && math.IsNaN(got)) {
			t.Errorf("%s: want %v, got %v", x, want, got)
		}
	}

	check("1", 1)
	check("100.5", 100.5)
	check("1k", 1000)
	check("3K", 3000)
	check("1.5M", 1500000)
	check("2G", 2e9)
	check("NaN", math.NaN())

	if _, err := parseNum("Random"); err == nil {
		t.Errorf("Random: got success")
	}
	for _, bad := range []string{"10x", "k", "1kB", "1ki"} {
		if _, err := parseNum(bad); err == nil {
			t.Errorf("%s: got success", bad)
		}
	}
}

func TestSortCategories(t *testing.T) {
	names := []string{"b", "10", "a", "2"}
	sortCategories(names, "first")
	if names[0] != "b" {
		t.Errorf("first order changed names: %v", names)
	}
	sortCategories(names, "num")
	want := []string{"2", "10", "a", "b"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("num order: got %v, want %v", names, want)
		}
	}
}
