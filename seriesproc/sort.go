// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesproc

import (
	"cmp"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Orders lists the category orders understood by Grouper.Order.
// "first" keeps categories in the order they were first observed.
var Orders = []string{"first", "alpha", "num"}

// builtinOrders is the built-in comparison functions.
var builtinOrders = map[string]func(a, b string) int{
	"alpha": strings.Compare,
	// "num" puts numeric names first, in numeric order, followed by
	// the rest in alphabetical order.
	"num": func(a, b string) int {
		x, errx := parseNum(a)
		y, erry := parseNum(b)
		switch {
		case errx == nil && erry == nil:
			return cmp.Compare(x, y)
		case errx == nil:
			return -1
		case erry == nil:
			return 1
		}
		return strings.Compare(a, b)
	},
}

func checkOrder(order string) error {
	if order == "" || order == "first" {
		return nil
	}
	if _, ok := builtinOrders[order]; ok {
		return nil
	}
	return fmt.Errorf("unknown order %q; want %s", order, strings.Join(Orders, ", "))
}

// sortCategories sorts names in place by order. The "first" order
// leaves names as they are. Equal names keep their relative order.
func sortCategories(names []string, order string) {
	compare, ok := builtinOrders[order]
	if !ok {
		return
	}
	sort.SliceStable(names, func(i, j int) bool {
		return compare(names[i], names[j]) < 0
	})
}

// siScale maps the SI suffixes accepted by parseNum to their scale.
var siScale = map[byte]float64{'k': 1e3, 'K': 1e3, 'M': 1e6, 'G': 1e9}

// parseNum parses a category name as a number. It accepts a single
// SI suffix, so that array sizes like "10k" sort numerically.
func parseNum(x string) (float64, error) {
	if n := len(x); n > 1 {
		if scale, ok := siScale[x[n-1]]; ok {
			v, err := strconv.ParseFloat(x[:n-1], 64)
			return v * scale, err
		}
	}
	return strconv.ParseFloat(x, 64)
}
