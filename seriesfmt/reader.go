// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfmt

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

const bom = "\ufeff"

// Read reads a complete CSV results file from r. The first row is the
// header. fileName is used in error messages; it is purely
// diagnostic.
//
// An input with no header at all yields an empty Table with no
// columns. An input with only a header yields a Table with zero
// records.
func Read(r io.Reader, fileName string) (*Table, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return &Table{FileName: fileName}, nil
	} else if err != nil {
		return nil, csvError(fileName, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	var lines []int
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row)
		lines = append(lines, line)
	}

	t, err := NewTable(fileName, header, rows)
	if err != nil {
		return nil, err
	}
	t.lines = lines
	return t, nil
}

// csvError converts an encoding/csv error into a *SyntaxError.
func csvError(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SyntaxError{fileName, pe.Line, pe.Err.Error()}
	}
	return err
}

// Open reads the results file at path. The path "-" reads standard
// input.
func Open(path string) (*Table, error) {
	if path == "-" {
		return Read(os.Stdin, "<stdin>")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}
