// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// A Writer writes results in CSV form: a header row followed by one
// row per call to Write.
type Writer struct {
	w    *csv.Writer
	cols []string
	row  []string

	wroteHeader bool
}

// NewWriter returns a writer that writes rows with the given columns
// to w. The header is written with the first row, or by Flush if no
// rows are written.
func NewWriter(w io.Writer, cols ...string) *Writer {
	return &Writer{w: csv.NewWriter(w), cols: cols, row: make([]string, len(cols))}
}

// Columns returns the header of w.
func (w *Writer) Columns() []string {
	return w.cols
}

// Write writes a single row. There must be exactly one value per
// column. Strings are written as is, integers in decimal, and
// floating-point numbers in the shortest form that round-trips.
func (w *Writer) Write(vals ...interface{}) error {
	if len(vals) != len(w.cols) {
		return fmt.Errorf("got %d values, want %d", len(vals), len(w.cols))
	}
	if err := w.header(); err != nil {
		return err
	}
	for i, v := range vals {
		switch v := v.(type) {
		case string:
			w.row[i] = v
		case int:
			w.row[i] = strconv.Itoa(v)
		case int64:
			w.row[i] = strconv.FormatInt(v, 10)
		case float64:
			w.row[i] = strconv.FormatFloat(v, 'g', -1, 64)
		case fmt.Stringer:
			w.row[i] = v.String()
		default:
			return fmt.Errorf("column %q: unsupported value type %T", w.cols[i], v)
		}
	}
	return w.w.Write(w.row)
}

// WriteTable writes every record of t. The columns of t are matched
// to the writer's columns by name.
func (w *Writer) WriteTable(t *Table) error {
	if err := t.Require(w.cols...); err != nil {
		return err
	}
	if err := w.header(); err != nil {
		return err
	}
	for _, row := range t.rows {
		for i, col := range w.cols {
			w.row[i] = row[t.index[col]]
		}
		if err := w.w.Write(w.row); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) header() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	return w.w.Write(w.cols)
}

// Flush writes any buffered data to the underlying io.Writer and
// reports any error that occurred during a previous Write or Flush.
func (w *Writer) Flush() error {
	if err := w.header(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}
