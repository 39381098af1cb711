// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesproc

import (
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/labnotes/seriesplot/seriesfmt"
)

// A Grouper describes how to group the records of a table into
// series.
type Grouper struct {
	// Label is the column holding the compound label.
	Label string

	// X and Y are the numeric columns giving the independent and
	// dependent variable of each record.
	X, Y string

	// Sep separates the primary and secondary categories of a
	// label. If empty, DefaultSep is used.
	Sep string

	// Match is the policy for selecting the records of a category.
	Match Match

	// Order is the order of categories: "first" (or ""), "alpha",
	// or "num". See Orders.
	Order string

	// Prefix is prepended to every series label, as in "Scale 3".
	Prefix string
}

// A Grouping is a table whose records have been indexed by Key
// according to a Grouper. It is immutable.
type Grouping struct {
	cfg Grouper

	labels []string
	keys   []Key
	xs, ys []float64

	primaries   []string
	secondaries map[string][]string

	// rows maps each Key to its record indexes in table order.
	// Only populated for MatchExact.
	rows map[Key][]int

	// view is the go-gg table of labels and row indexes used for
	// containment matching.
	view *table.Table
}

// Group validates the columns of t and indexes its records. It
// returns a *seriesfmt.MissingColumnError if a column named by g is
// absent and a *seriesfmt.SyntaxError if the X or Y column is not
// numeric.
func (g *Grouper) Group(t *seriesfmt.Table) (*Grouping, error) {
	if err := checkOrder(g.Order); err != nil {
		return nil, err
	}
	if err := t.Require(g.Label, g.X, g.Y); err != nil {
		return nil, err
	}
	labels, err := t.Strings(g.Label)
	if err != nil {
		return nil, err
	}
	xs, err := t.Floats(g.X)
	if err != nil {
		return nil, err
	}
	ys, err := t.Floats(g.Y)
	if err != nil {
		return nil, err
	}

	gr := &Grouping{
		cfg:         *g,
		labels:      labels,
		xs:          xs,
		ys:          ys,
		keys:        make([]Key, len(labels)),
		secondaries: make(map[string][]string),
	}
	prims := make([]string, len(labels))
	secs := make([]string, len(labels))
	rowIdx := make([]int, len(labels))
	seen := make(map[string]bool)
	for i, label := range labels {
		k := ParseKey(label, g.Sep)
		gr.keys[i] = k
		prims[i], secs[i], rowIdx[i] = k.Primary, k.Secondary, i
		if !seen[k.Primary] {
			seen[k.Primary] = true
			gr.primaries = append(gr.primaries, k.Primary)
		}
	}
	sortCategories(gr.primaries, g.Order)

	switch g.Match {
	case MatchExact:
		gr.rows = make(map[Key][]int)
		var b table.Builder
		b.Add("primary", prims).Add("secondary", secs).Add("row", rowIdx)
		// GroupBy keeps groups in first-observed order and rows
		// in table order within each group.
		grouped := table.GroupBy(b.Done(), "primary", "secondary")
		for _, gid := range grouped.Tables() {
			k := Key{gid.Parent().Label().(string), gid.Label().(string)}
			gr.rows[k] = grouped.Table(gid).MustColumn("row").([]int)
			gr.secondaries[k.Primary] = append(gr.secondaries[k.Primary], k.Secondary)
		}
		for _, secs := range gr.secondaries {
			sortCategories(secs, g.Order)
		}
	case MatchContains:
		var b table.Builder
		b.Add("label", labels).Add("row", rowIdx)
		gr.view = b.Done()
	}
	return gr, nil
}

// Grouper returns the configuration g was built with.
func (g *Grouping) Grouper() Grouper {
	return g.cfg
}

// Len returns the number of records in g.
func (g *Grouping) Len() int {
	return len(g.keys)
}

// Key returns the parsed label of record i.
func (g *Grouping) Key(i int) Key {
	return g.keys[i]
}

// Primaries returns the distinct primary categories of all records.
// Each category appears once, in the Grouper's order. The caller must
// not modify the returned slice.
func (g *Grouping) Primaries() []string {
	return g.primaries
}

// Secondaries returns the distinct secondary categories of the
// records in primary category p.
//
// Under MatchContains, the records of p are those whose label
// contains p, so the result may include secondary categories of other
// primary categories whose names contain p.
func (g *Grouping) Secondaries(p string) []string {
	if g.cfg.Match == MatchExact {
		return g.secondaries[p]
	}
	var secs []string
	seen := make(map[string]bool)
	for _, i := range g.filter(p) {
		s := g.keys[i].Secondary
		if !seen[s] {
			seen[s] = true
			secs = append(secs, s)
		}
	}
	sortCategories(secs, g.cfg.Order)
	return secs
}

// Select returns the series of records in primary category p and
// secondary category s, in table order. Its label is formed for the
// Combined mode.
//
// Under MatchContains, a record is selected if its label contains
// both p and s.
func (g *Grouping) Select(p, s string) *Series {
	k := Key{p, s}
	var rows []int
	if g.cfg.Match == MatchExact {
		rows = g.rows[k]
	} else {
		rows = g.filter(p, s)
	}
	return g.series(k, rows, Combined)
}

// SelectPrimary returns the series of all records in primary category
// p, in table order. Its label is formed for the PrimaryOnly mode.
func (g *Grouping) SelectPrimary(p string) *Series {
	var rows []int
	if g.cfg.Match == MatchExact {
		for i, k := range g.keys {
			if k.Primary == p {
				rows = append(rows, i)
			}
		}
	} else {
		rows = g.filter(p)
	}
	return g.series(Key{Primary: p}, rows, PrimaryOnly)
}

// filter returns the indexes of records whose label contains every
// one of subs.
func (g *Grouping) filter(subs ...string) []int {
	if g.view == nil || g.view.Len() == 0 {
		return nil
	}
	matched := table.Filter(g.view, func(label string) bool {
		for _, sub := range subs {
			if !strings.Contains(label, sub) {
				return false
			}
		}
		return true
	}, "label")
	t := matched.Table(table.RootGroupID)
	if t == nil || t.Len() == 0 {
		return nil
	}
	return t.MustColumn("row").([]int)
}

func (g *Grouping) series(k Key, rows []int, mode Mode) *Series {
	s := &Series{
		Key:   k,
		Label: g.cfg.Prefix + SeriesLabel(k.Primary, k.Secondary, mode),
		Rows:  rows,
		X:     make([]float64, len(rows)),
		Y:     make([]float64, len(rows)),
	}
	for j, i := range rows {
		s.X[j], s.Y[j] = g.xs[i], g.ys[i]
	}
	return s
}
