// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesplot

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "out")
	sink, err := OpenSink(ctx, dir, "")
	if err != nil {
		t.Fatal(err)
	}
	defer sink.Close()

	c2 := testChart()
	c2.Name, c2.Title = "second", "Second"
	outs, err := Save(ctx, sink, []*Chart{testChart(), c2}, []Format{PNG, SVG}, DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 4 {
		t.Fatalf("got %d outputs, want 4", len(outs))
	}
	for _, name := range []string{"test.png", "test.svg", "second.png", "second.svg"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
		} else if fi.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if err := SaveIndex(ctx, sink, "Results", outs); err != nil {
		t.Fatal(err)
	}
	page, err := os.ReadFile(filepath.Join(dir, IndexName))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<title>Results</title>", `<img src="test.png"`, `<a href="second.svg">svg</a>`, "<h2>Second</h2>"} {
		if !strings.Contains(string(page), want) {
			t.Errorf("index does not contain %q:\n%s", want, page)
		}
	}
}

func TestSaveFailedChart(t *testing.T) {
	dir := t.TempDir()
	bad := testChart()
	bad.LogY = true
	bad.Series[0].Y[0] = -1
	outs, err := Save(context.Background(), &DirSink{Dir: dir}, []*Chart{bad}, []Format{PNG}, DefaultSize)
	if err == nil || len(outs) != 0 {
		t.Fatalf("got %d outputs, %v; want error", len(outs), err)
	}
	if _, err := os.Stat(filepath.Join(dir, "test.png")); !os.IsNotExist(err) {
		t.Errorf("failed chart left a file behind: %v", err)
	}
}

func TestSaveDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	charts := []*Chart{testChart(), testChart(), testChart()}
	outs, err := Save(context.Background(), &DirSink{Dir: dir}, charts, []Format{SVG}, DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, o := range outs {
		names = append(names, o.Name)
		if _, err := os.Stat(filepath.Join(dir, o.Name)); err != nil {
			t.Error(err)
		}
	}
	if got, want := strings.Join(names, " "), "test.svg test_2.svg test_3.svg"; got != want {
		t.Errorf("got names %s, want %s", got, want)
	}
}

func TestSaveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outs, err := Save(ctx, &DirSink{Dir: t.TempDir()}, []*Chart{testChart()}, []Format{PNG}, DefaultSize)
	if err == nil || len(outs) != 0 {
		t.Errorf("got %d outputs, %v; want context error", len(outs), err)
	}
}

func TestWriteIndexEscapes(t *testing.T) {
	c := testChart()
	c.Title = "<script>"
	var buf bytes.Buffer
	if err := WriteIndex(&buf, "a & b", []Output{{Chart: c, Format: PDF, Name: "test.pdf"}}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("title not escaped:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "<img") {
		t.Errorf("PDF-only chart has an image:\n%s", buf.String())
	}
}

func TestParseGCS(t *testing.T) {
	for _, test := range []struct {
		dest           string
		bucket, prefix string
		ok             bool
	}{
		{"gs://bucket/charts/run1", "bucket", "charts/run1", true},
		{"gs://bucket", "bucket", "", true},
		{"gs://bucket/", "bucket", "", true},
		{"gs://", "", "", false},
		{"out/charts", "", "", false},
	} {
		bucket, prefix, ok := parseGCS(test.dest)
		if bucket != test.bucket || prefix != test.prefix || ok != test.ok {
			t.Errorf("parseGCS(%q) = %q, %q, %v, want %q, %q, %v", test.dest, bucket, prefix, ok, test.bucket, test.prefix, test.ok)
		}
	}

	if _, err := OpenSink(context.Background(), "gs://", ""); err == nil {
		t.Errorf("OpenSink(gs://): got success")
	}
}

func TestContentType(t *testing.T) {
	for name, want := range map[string]string{
		"a.png":      "image/png",
		"a.svg":      "image/svg+xml",
		"a.pdf":      "application/pdf",
		"index.html": "text/html; charset=utf-8",
	} {
		if got := contentType(name); got != want {
			t.Errorf("contentType(%q) = %q, want %q", name, got, want)
		}
	}
}
