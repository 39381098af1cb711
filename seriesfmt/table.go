// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seriesfmt reads and writes the tabular CSV files produced
// by experiment runs.
//
// A file is a header row followed by one row per measurement. The
// reader loads a whole file into an immutable Table. Cells are kept
// as text; numeric views of a column are derived on demand using the
// column type coercion of github.com/aclements/go-gg/table, so a
// column is numeric exactly when every cell in it parses as a number.
//
// This package is designed to be used with the higher-level packages
// seriesproc and seriesplot.
package seriesfmt

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Table is an ordered, immutable sequence of records read from one
// or more CSV files.
//
// The zero value is an empty Table with no columns.
type Table struct {
	// FileName is the name of the source used in error messages.
	// For tables combined from several files, it is the first
	// file's name.
	FileName string

	cols  []string
	index map[string]int
	rows  [][]string

	// lines gives the input line number of each row, for
	// diagnostics. It may be nil, in which case rows are assumed
	// to follow a single header line.
	lines []int
	// files gives the source file of each row when t combines
	// several files. It may be nil.
	files []string

	// typed is the coerced go-gg view of rows, built on first use.
	typed *table.Table
}

// NewTable returns a Table with the given header and rows. Every row
// must have exactly len(cols) cells. NewTable takes ownership of rows.
func NewTable(fileName string, cols []string, rows [][]string) (*Table, error) {
	t := &Table{FileName: fileName, cols: cols, rows: rows}
	t.index = make(map[string]int, len(cols))
	for i, col := range cols {
		if _, ok := t.index[col]; ok {
			return nil, &SyntaxError{t.name(), 1, fmt.Sprintf("duplicate column %q", col)}
		}
		t.index[col] = i
	}
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, &SyntaxError{t.name(), t.line(i), fmt.Sprintf("got %d fields, want %d", len(row), len(cols))}
		}
	}
	return t, nil
}

func (t *Table) name() string {
	if t.FileName == "" {
		return "<unknown>"
	}
	return t.FileName
}

// line returns the input line number of row i.
func (t *Table) line(i int) int {
	if t.lines != nil {
		return t.lines[i]
	}
	return i + 2
}

// pos returns the source file and line of row i.
func (t *Table) pos(i int) (string, int) {
	if t.files != nil {
		return t.files[i], t.line(i)
	}
	return t.name(), t.line(i)
}

// Len returns the number of records in t.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the header of t. The caller must not modify the
// returned slice.
func (t *Table) Columns() []string {
	return t.cols
}

// Has reports whether t has a column named col.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Require checks that t has all of the named columns. It returns a
// *MissingColumnError for the first one that is absent.
func (t *Table) Require(cols ...string) error {
	for _, col := range cols {
		if !t.Has(col) {
			return &MissingColumnError{FileName: t.name(), Column: col}
		}
	}
	return nil
}

// Row returns the cells of record i. The caller must not modify the
// returned slice.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Strings returns the text of column col for every record.
func (t *Table) Strings(col string) ([]string, error) {
	ci, ok := t.index[col]
	if !ok {
		return nil, &MissingColumnError{FileName: t.name(), Column: col}
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[ci]
	}
	return out, nil
}

// Floats returns column col as numbers. If any cell of the column is
// not a number, it returns a *SyntaxError pointing at the first such
// cell. The returned slice may be shared with t and must not be
// modified.
func (t *Table) Floats(col string) ([]float64, error) {
	ci, ok := t.index[col]
	if !ok {
		return nil, &MissingColumnError{FileName: t.name(), Column: col}
	}
	if len(t.rows) == 0 {
		return []float64{}, nil
	}
	var out []float64
	switch data := t.coerced().MustColumn(col).(type) {
	case []int, []float64:
		slice.Convert(&out, data)
	default:
		// Coercion left the column as text, so at least one
		// cell failed to parse. Find it for the error.
		for i, row := range t.rows {
			if _, err := parseFloat(row[ci]); err != nil {
				file, line := t.pos(i)
				return nil, &SyntaxError{file, line, fmt.Sprintf("column %q: %q is not a number", col, row[ci])}
			}
		}
		panic(fmt.Sprintf("column %q has unexpected type %T", col, data))
	}
	return out, nil
}

// coerced returns the go-gg view of t with numeric columns converted.
func (t *Table) coerced() *table.Table {
	if t.typed == nil {
		t.typed = table.TableFromStrings(t.cols, t.rows, true)
	}
	return t.typed
}
