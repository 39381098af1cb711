// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfmt

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustRead(t *testing.T, data string) *Table {
	t.Helper()
	tab, err := Read(strings.NewReader(data), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tab
}

func TestReadBasic(t *testing.T) {
	tab := mustRead(t, "ArrayType,ArraySize,ExecutionTime(ms)\nRandom_MergeSort,500,0\nRandom_HybridSort, 500 ,1.5\n")
	if got, want := tab.Columns(), []string{"ArrayType", "ArraySize", "ExecutionTime(ms)"}; !cmp.Equal(got, want) {
		t.Errorf("columns: got %v, want %v", got, want)
	}
	if tab.Len() != 2 {
		t.Fatalf("got %d records, want 2", tab.Len())
	}
	labels, err := tab.Strings("ArrayType")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Random_MergeSort", "Random_HybridSort"}, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	sizes, err := tab.Floats("ArraySize")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{500, 500}, sizes); diff != "" {
		t.Errorf("sizes (-want +got):\n%s", diff)
	}
	times, err := tab.Floats("ExecutionTime(ms)")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0, 1.5}, times); diff != "" {
		t.Errorf("times (-want +got):\n%s", diff)
	}
}

func TestReadBOM(t *testing.T) {
	tab := mustRead(t, "\ufeffN,Scale\n100,3\n")
	if !tab.Has("N") {
		t.Errorf("BOM not stripped from header: %q", tab.Columns())
	}
}

func TestReadEmpty(t *testing.T) {
	tab := mustRead(t, "")
	if tab.Len() != 0 || len(tab.Columns()) != 0 {
		t.Errorf("got %d records and columns %v, want empty", tab.Len(), tab.Columns())
	}
	if _, err := tab.Strings("Scale"); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("got %v, want missing column", err)
	}

	tab = mustRead(t, "N,Scale\n")
	if tab.Len() != 0 {
		t.Errorf("got %d records, want 0", tab.Len())
	}
	xs, err := tab.Floats("N")
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 0 {
		t.Errorf("got %v, want no values", xs)
	}
}

func TestReadSyntaxError(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2\n3\n"), "bad.csv")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	if file, line := se.Pos(); file != "bad.csv" || line != 3 {
		t.Errorf("got position %s:%d, want bad.csv:3", file, line)
	}
}

func TestFloatsMalformed(t *testing.T) {
	tab := mustRead(t, "N,ApproxArea\n100,0.9\n600,n/a\n")
	_, err := tab.Floats("ApproxArea")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	if want := `test:3: column "ApproxArea": "n/a" is not a number`; se.Error() != want {
		t.Errorf("got %q, want %q", se.Error(), want)
	}
}

func TestRequire(t *testing.T) {
	tab := mustRead(t, "N,Scale\n100,3\n")
	if err := tab.Require("N", "Scale"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := tab.Require("N", "ApproxArea")
	var mc *MissingColumnError
	if !errors.As(err, &mc) {
		t.Fatalf("got %v, want *MissingColumnError", err)
	}
	if mc.Column != "ApproxArea" {
		t.Errorf("got column %q, want ApproxArea", mc.Column)
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("errors.Is(%v, ErrMissingColumn) = false", err)
	}
}

func TestNewTableErrors(t *testing.T) {
	if _, err := NewTable("x", []string{"a", "a"}, nil); err == nil {
		t.Errorf("duplicate column: got success")
	}
	if _, err := NewTable("x", []string{"a", "b"}, [][]string{{"1"}}); err == nil {
		t.Errorf("short row: got success")
	}
}
