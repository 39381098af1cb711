// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesproc

// A Series is the data for one plotted line: the X and Y values of
// the records selected for a Key, in table order.
//
// Series implements gonum.org/v1/plot/plotter.XYer.
type Series struct {
	Key   Key
	Label string

	// Rows are the indexes of the selected records in the table.
	Rows []int

	// X and Y are parallel to Rows.
	X, Y []float64
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.X)
}

// XY returns the i'th point of s.
func (s *Series) XY(i int) (x, y float64) {
	return s.X[i], s.Y[i]
}

// DuplicateX returns the X values that occur more than once in s, in
// order of their second occurrence.
//
// A series is expected to have one record per X value. Duplicates
// usually mean the grouping hides a dimension of the data, such as
// repeated runs or records from several files.
func DuplicateX(s *Series) []float64 {
	if s.Len() <= 1 {
		return nil
	}
	var out []float64
	count := make(map[float64]int, s.Len())
	for _, x := range s.X {
		count[x]++
		if count[x] == 2 {
			out = append(out, x)
		}
	}
	return out
}
