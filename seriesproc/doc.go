// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seriesproc groups the records of a results table into
// series suitable for plotting.
//
// Each record carries a compound label such as "Random_QuickSort",
// which joins a primary category (the array type) and a secondary
// category (the algorithm) with a separator. A label without the
// separator, such as a scale factor "3", has only a primary category.
//
// The typical steps are:
//
// 1. Load a seriesfmt.Table, usually with seriesfmt.Files.
//
// 2. Describe the grouping with a Grouper: the label column, the
// independent (X) and dependent (Y) columns, and the match policy.
//
// 3. Call Grouper.Group to parse every label once into a Key and
// index the records by Key.
//
// 4. Either walk the categories explicitly with Primaries,
// Secondaries, and Select, or use Iter to visit every Series in
// category order together with its display label.
//
// Keys are matched exactly by default. MatchContains reproduces
// substring matching of labels, which over-matches when one category
// name is a substring of another (for example "Sort" and
// "QuickSort").
package seriesproc
