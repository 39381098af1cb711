// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seriesplot lays out grouped series as line charts and
// renders them with gonum.org/v1/plot.
//
// Plan turns a seriesproc.Grouping into Charts for one display mode.
// Each Chart can be rendered as PNG, SVG, or PDF, and Save writes a
// set of charts to a Sink, which is either a local directory or a
// Cloud Storage prefix.
package seriesplot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/labnotes/seriesplot/seriesproc"
)

// A Chart is one figure: a set of series drawn as lines over shared
// axes.
type Chart struct {
	// Name is the base file name of the chart, without extension.
	Name string

	Title          string
	XLabel, YLabel string

	Series []*seriesproc.Series

	// Refs are horizontal reference lines, drawn dashed and
	// listed in the legend.
	Refs []RefLine

	// LogY selects a logarithmic Y axis.
	LogY bool
}

// A RefLine is a labeled horizontal line at Y.
type RefLine struct {
	Label string
	Y     float64
}

// Options control how Plan lays out charts.
type Options struct {
	// Name is the base file name of the chart. In the PerPrimary
	// mode, each chart's name is Name followed by "_" and the
	// primary category. If empty, "chart" is used.
	Name string

	// Title is the title of the chart in the Combined and
	// PrimaryOnly modes.
	Title string

	// TitleFormat is a fmt format with one %s verb, replaced by
	// the primary category in the PerPrimary mode. If empty, the
	// title is Title followed by ": " and the primary category.
	TitleFormat string

	XLabel, YLabel string

	Mode seriesproc.Mode
	Refs []RefLine
	LogY bool
}

// Plan lays out the series of g as charts for opts.Mode.
//
// The Combined and PrimaryOnly modes produce a single chart. The
// PerPrimary mode produces one chart per primary category, in the
// order of g.Primaries. In the other modes an empty grouping still
// produces one chart, with no series.
func Plan(g *seriesproc.Grouping, opts Options) []*Chart {
	name := opts.Name
	if name == "" {
		name = "chart"
	}
	newChart := func(name, title string) *Chart {
		return &Chart{
			Name:   name,
			Title:  title,
			XLabel: opts.XLabel,
			YLabel: opts.YLabel,
			Refs:   opts.Refs,
			LogY:   opts.LogY,
		}
	}

	if opts.Mode != seriesproc.PerPrimary {
		c := newChart(fileName(name), opts.Title)
		c.Series = g.Iter(opts.Mode).All()
		return []*Chart{c}
	}

	var charts []*Chart
	var cur *Chart
	for it := g.Iter(seriesproc.PerPrimary); it.Scan(); {
		p := it.Key().Primary
		if cur == nil || cur.Series[0].Key.Primary != p {
			cur = newChart(fileName(name+"_"+p), primaryTitle(opts, p))
			charts = append(charts, cur)
		}
		cur.Series = append(cur.Series, it.Series())
	}
	return charts
}

func primaryTitle(opts Options, p string) string {
	if opts.TitleFormat != "" {
		return fmt.Sprintf(opts.TitleFormat, p)
	}
	if opts.Title == "" {
		return p
	}
	return opts.Title + ": " + p
}

// fileName replaces characters that are unsafe in file and object
// names with '_'. Letters and digits of any script are kept.
func fileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, name)
}
