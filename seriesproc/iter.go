// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesproc

// An Iter visits the series of a Grouping for one Mode. Series are
// produced lazily, one per call to Scan.
//
// Its API is modeled on bufio.Scanner.
type Iter struct {
	g    *Grouping
	mode Mode

	pi, si int
	secs   []string
	cur    *Series
}

// Iter returns an iterator over the series of g for mode.
//
// In the Combined and PerPrimary modes, Iter visits every primary
// category and, within it, every secondary category. In the
// PrimaryOnly mode, it visits one series per primary category.
func (g *Grouping) Iter(mode Mode) *Iter {
	return &Iter{g: g, mode: mode, pi: -1}
}

// Scan advances to the next series and reports whether there is one.
func (it *Iter) Scan() bool {
	prims := it.g.Primaries()
	if it.mode == PrimaryOnly {
		it.pi++
		if it.pi >= len(prims) {
			it.cur = nil
			return false
		}
		it.cur = it.g.SelectPrimary(prims[it.pi])
		return true
	}

	for {
		if it.pi >= 0 && it.si+1 < len(it.secs) {
			it.si++
			p, s := prims[it.pi], it.secs[it.si]
			it.cur = it.g.Select(p, s)
			it.cur.Label = it.g.cfg.Prefix + SeriesLabel(p, s, it.mode)
			return true
		}
		it.pi++
		if it.pi >= len(prims) {
			it.cur = nil
			return false
		}
		it.secs, it.si = it.g.Secondaries(prims[it.pi]), -1
	}
}

// Series returns the series found by the last call to Scan.
func (it *Iter) Series() *Series {
	return it.cur
}

// Key returns the Key of the current series.
func (it *Iter) Key() Key {
	return it.cur.Key
}

// Label returns the display label of the current series.
func (it *Iter) Label() string {
	return it.cur.Label
}

// All collects the remaining series of it.
func (it *Iter) All() []*Series {
	var out []*Series
	for it.Scan() {
		out = append(out, it.Series())
	}
	return out
}
