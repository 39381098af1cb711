// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfmt

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingColumn is matched by every *MissingColumnError using
// errors.Is.
var ErrMissingColumn = errors.New("missing column")

// A MissingColumnError reports that a table lacks a column that an
// operation requires.
type MissingColumnError struct {
	FileName string
	Column   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q", e.FileName, e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// A SyntaxError represents a malformed line or cell in a results
// file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// parseFloat accepts exactly what table coercion accepts.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
