// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfmt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "ArrayType,ArraySize\nRandom_MergeSort,500\n")
	b := writeFile(t, dir, "b.csv", "ArraySize,ArrayType,Extra\n1000,Reverse_MergeSort,x\n")

	check := func(f *Files, wantFiles ...string) {
		t.Helper()
		tab, err := f.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := tab.Columns(), []string{"ArrayType", "ArraySize", FileColumn}; !cmp.Equal(got, want) {
			t.Errorf("got columns %v, want %v", got, want)
		}
		got, err := tab.Strings(FileColumn)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantFiles, got); diff != "" {
			t.Errorf(".file (-want +got):\n%s", diff)
		}
	}

	check(&Files{Paths: []string{a, b}}, a, b)
	check(&Files{Paths: []string{a, a}}, a+"#0", a+"#1")
	check(&Files{Paths: []string{"x=" + a, "y=" + b}, AllowLabels: true}, "x", "y")

	tab, err := (&Files{Paths: []string{a, b}}).Load()
	if err != nil {
		t.Fatal(err)
	}
	labels, _ := tab.Strings("ArrayType")
	if diff := cmp.Diff([]string{"Random_MergeSort", "Reverse_MergeSort"}, labels); diff != "" {
		t.Errorf("columns not matched by name (-want +got):\n%s", diff)
	}
}

func TestFilesMissingColumn(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "ArrayType,ArraySize\nRandom_MergeSort,500\n")
	b := writeFile(t, dir, "b.csv", "ArrayType\nReverse_MergeSort\n")
	_, err := (&Files{Paths: []string{a, b}}).Load()
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("got %v, want missing column", err)
	}
}

func TestFilesErrorPosition(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "N,Y\n1,2\n")
	b := writeFile(t, dir, "b.csv", "N,Y\n1,2\n3,oops\n")
	tab, err := (&Files{Paths: []string{a, b}}).Load()
	if err != nil {
		t.Fatal(err)
	}
	_, err = tab.Floats("Y")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	if file, line := se.Pos(); file != b || line != 3 {
		t.Errorf("got %s:%d, want %s:3", file, line, b)
	}
}
