// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labnotes/seriesplot/seriesfmt"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-o", "-", "-suite", "merge", "-sizes", "20,40", "-types", "Random, Reverse", "-seed", "1"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	tb, err := seriesfmt.Read(&stdout, "stdout")
	if err != nil {
		t.Fatal(err)
	}
	labels, _ := tb.Strings("ArrayType")
	want := []string{
		"Random_MergeSort", "Random_HybridSort", "Random_MergeSort", "Random_HybridSort",
		"Reverse_MergeSort", "Reverse_HybridSort", "Reverse_MergeSort", "Reverse_HybridSort",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-o", "-", "-suite", "bubble"},
		{"-o", "-", "-sizes", "ten"},
		{"-o", "-", "-types", "Sorted"},
		{"-o", "-", "extra"},
	} {
		var stdout, stderr bytes.Buffer
		if err := run(context.Background(), args, &stdout, &stderr); err == nil {
			t.Errorf("%v: got success", args)
		}
	}
}
