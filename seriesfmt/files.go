// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfmt

import (
	"fmt"
	"strings"
)

// FileColumn is the column Files adds to identify the source of each
// record.
const FileColumn = ".file"

// A Files reads results from a sequence of input files and combines
// them into a single Table.
//
// The combined Table has the columns of the first file followed by a
// FileColumn column. By default, the value of FileColumn is the file
// name directly from Paths, except that duplicate strings will be
// disambiguated by appending "#N". If AllowLabels is true, then
// entries in Paths may be of the form label=path, and the label part
// will be used for FileColumn (without any disambiguation).
//
// Every later file must have at least the columns of the first file;
// columns are matched by name, so their order may differ. Extra
// columns in later files are dropped.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	AllowLabels bool
}

type input struct {
	path, label string
	isLabeled   bool
}

func (f *Files) inputs() []input {
	var inputs []input
	pathCount := make(map[string]int)
	paths := f.Paths
	if f.AllowStdin && len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		label := path
		isLabeled := false
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			pathCount[path]++
		}
		inputs = append(inputs, input{path, label, isLabeled})
	}

	// If the same path is given multiple times, disambiguate its
	// label so the copies form distinct groups.
	pathI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if inp.isLabeled || pathCount[inp.path] == 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", inp.path, pathI[inp.path])
		pathI[inp.path]++
	}
	return inputs
}

// Load reads every input and returns the combined Table.
func (f *Files) Load() (*Table, error) {
	var out *Table
	var rows [][]string
	var lines []int
	var files []string
	for _, inp := range f.inputs() {
		if inp.path == "-" && !f.AllowStdin {
			return nil, fmt.Errorf("reading standard input is not allowed")
		}
		t, err := Open(inp.path)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = t
			if t.Has(FileColumn) {
				return nil, &SyntaxError{t.name(), 1, fmt.Sprintf("reserved column %q", FileColumn)}
			}
		}
		// Map this file's columns onto the first file's.
		perm := make([]int, len(out.cols))
		for i, col := range out.cols {
			ci, ok := t.index[col]
			if !ok {
				return nil, &MissingColumnError{FileName: t.name(), Column: col}
			}
			perm[i] = ci
		}
		for i, row := range t.rows {
			nrow := make([]string, 0, len(perm)+1)
			for _, ci := range perm {
				nrow = append(nrow, row[ci])
			}
			rows = append(rows, append(nrow, inp.label))
			lines = append(lines, t.line(i))
			files = append(files, t.name())
		}
	}
	if out == nil {
		return &Table{}, nil
	}
	if out.cols == nil {
		// The first file was completely empty; so is the result.
		return out, nil
	}
	cols := append(append([]string(nil), out.cols...), FileColumn)
	t, err := NewTable(out.FileName, cols, rows)
	if err != nil {
		return nil, err
	}
	t.lines, t.files = lines, files
	return t, nil
}
