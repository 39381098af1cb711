// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labnotes/seriesplot/seriesfmt"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-o", "-", "-scales", "3, 4", "-min", "100", "-max", "600", "-step", "500", "-seed", "1"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	tb, err := seriesfmt.Read(&stdout, "stdout")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"N", "Scale", "ApproxArea", "RelativeError"}, tb.Columns()); diff != "" {
		t.Errorf("columns (-want +got):\n%s", diff)
	}
	scales, _ := tb.Strings("Scale")
	if diff := cmp.Diff([]string{"3", "3", "4", "4"}, scales); diff != "" {
		t.Errorf("scales (-want +got):\n%s", diff)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var stdout, stderr bytes.Buffer
	args := []string{"-o", path, "-scales", "3", "-min", "100", "-max", "100", "-seed", "2"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	tb, err := seriesfmt.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if tb.Len() != 1 {
		t.Errorf("got %d rows, want 1", tb.Len())
	}
}

func TestRunErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-o", "-", "-scales", "three"},
		{"-o", "-", "-step", "0"},
		{"-o", "-", "extra"},
	} {
		var stdout, stderr bytes.Buffer
		if err := run(context.Background(), args, &stdout, &stderr); err == nil {
			t.Errorf("%v: got success", args)
		}
	}
}
