// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/labnotes/seriesplot/seriesproc"
)

// A preset is a fixed analysis of a known experiment output.
type preset struct {
	// file is read when no inputs are named.
	file string

	label, x string
	prefix   string
	views    []view
}

// A view is one set of charts drawn from a grouping.
type view struct {
	name string
	y    string
	mode seriesproc.Mode

	// ref is the default reference line: "", "exact", "mean", or
	// a number.
	ref string

	// text holds the titles and axis labels, by language.
	text map[string]viewText
}

type viewText struct {
	title, titleFormat string
	xlabel, ylabel     string
	refLabel           string
}

var presets = map[string]*preset{
	"montecarlo": {
		file:   "monte_carlo_results.csv",
		label:  "Scale",
		x:      "N",
		prefix: "Scale ",
		views: []view{
			{
				name: "monte_carlo_area",
				y:    "ApproxArea",
				mode: seriesproc.PrimaryOnly,
				ref:  "exact",
				text: map[string]viewText{
					"en": {title: "Approximate area", xlabel: "Number of points (N)", ylabel: "Approximate area", refLabel: "Exact area"},
					"ru": {title: "Изменение приближённой площади", xlabel: "Количество точек (N)", ylabel: "Приближённая площадь", refLabel: "Точная площадь"},
				},
			},
			{
				name: "monte_carlo_error",
				y:    "RelativeError",
				mode: seriesproc.PrimaryOnly,
				text: map[string]viewText{
					"en": {title: "Relative error of the estimate", xlabel: "Number of points (N)", ylabel: "Relative error"},
					"ru": {title: "Относительное отклонение от точного значения", xlabel: "Количество точек (N)", ylabel: "Относительное отклонение"},
				},
			},
		},
	},
	"sorting": {
		file:  "sorting_results.csv",
		label: "ArrayType",
		x:     "ArraySize",
		views: []view{sortingAll("Comparison of sorting times", "Сравнение времени выполнения сортировок")},
	},
	"sorting-by-type": {
		file:  "sorting_results.csv",
		label: "ArrayType",
		x:     "ArraySize",
		views: []view{
			{
				name: "sorting",
				y:    "ExecutionTime(ms)",
				mode: seriesproc.PerPrimary,
				text: map[string]viewText{
					"en": {titleFormat: "Sorting times for %s arrays", xlabel: "Array size", ylabel: "Execution time (ms)"},
					"ru": {titleFormat: "Сравнение времени выполнения для %s массивов", xlabel: "Размер массива", ylabel: "Время выполнения (мс)"},
				},
			},
			sortingAll("Overall comparison of all sorting times", "Общее сравнение времени выполнения всех сортировок"),
		},
	},
}

func (p *preset) hasRefs() bool {
	for _, v := range p.views {
		if v.ref != "" {
			return true
		}
	}
	return false
}

func sortingAll(en, ru string) view {
	return view{
		name: "sorting_all",
		y:    "ExecutionTime(ms)",
		mode: seriesproc.Combined,
		text: map[string]viewText{
			"en": {title: en, xlabel: "Array size", ylabel: "Execution time (ms)"},
			"ru": {title: ru, xlabel: "Размер массива", ylabel: "Время выполнения (мс)"},
		},
	}
}

func presetNames() string {
	var names []string
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupPreset(name string) (*preset, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q; want %s", name, presetNames())
	}
	return p, nil
}

// customPreset builds a single-view preset from command-line flags.
func customPreset(label, x, y, mode, ref string) (*preset, error) {
	if label == "" || x == "" || y == "" {
		return nil, fmt.Errorf("-label, -x, and -y are required without -preset")
	}
	m, err := seriesproc.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return &preset{
		label: label,
		x:     x,
		views: []view{{
			name: "chart",
			y:    y,
			mode: m,
			ref:  ref,
			text: map[string]viewText{},
		}},
	}, nil
}
