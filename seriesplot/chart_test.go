// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesplot

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labnotes/seriesplot/seriesfmt"
	"github.com/labnotes/seriesplot/seriesproc"
)

const sortingCSV = `ArrayType,ArraySize,ExecutionTime(ms)
Random_MergeSort,500,1.5
Random_HybridSort,500,1.25
Reverse_MergeSort,500,2
Random_MergeSort,1000,3
Random_HybridSort,1000,2.5
Reverse_MergeSort,1000,4
`

func grouping(t *testing.T, csv string, g seriesproc.Grouper) *seriesproc.Grouping {
	t.Helper()
	tb, err := seriesfmt.Read(strings.NewReader(csv), "test.csv")
	if err != nil {
		t.Fatal(err)
	}
	gr, err := g.Group(tb)
	if err != nil {
		t.Fatal(err)
	}
	return gr
}

var sortingGrouper = seriesproc.Grouper{Label: "ArrayType", X: "ArraySize", Y: "ExecutionTime(ms)"}

func chartLabels(c *Chart) []string {
	var out []string
	for _, s := range c.Series {
		out = append(out, s.Label)
	}
	return out
}

func TestPlanCombined(t *testing.T) {
	gr := grouping(t, sortingCSV, sortingGrouper)
	charts := Plan(gr, Options{Name: "sorting", Title: "Sorting", XLabel: "Size", YLabel: "Time"})
	if len(charts) != 1 {
		t.Fatalf("got %d charts, want 1", len(charts))
	}
	c := charts[0]
	if c.Name != "sorting" || c.Title != "Sorting" || c.XLabel != "Size" || c.YLabel != "Time" {
		t.Errorf("got chart %+v", c)
	}
	want := []string{"Random (MergeSort)", "Random (HybridSort)", "Reverse (MergeSort)"}
	if diff := cmp.Diff(want, chartLabels(c)); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

func TestPlanPerPrimary(t *testing.T) {
	gr := grouping(t, sortingCSV, sortingGrouper)
	charts := Plan(gr, Options{Name: "sorting", TitleFormat: "Sorting %s arrays", Mode: seriesproc.PerPrimary})
	if len(charts) != 2 {
		t.Fatalf("got %d charts, want 2", len(charts))
	}
	for i, want := range []struct {
		name, title string
		labels      []string
	}{
		{"sorting_Random", "Sorting Random arrays", []string{"MergeSort", "HybridSort"}},
		{"sorting_Reverse", "Sorting Reverse arrays", []string{"MergeSort"}},
	} {
		c := charts[i]
		if c.Name != want.name || c.Title != want.title {
			t.Errorf("chart %d: got %s %q, want %s %q", i, c.Name, c.Title, want.name, want.title)
		}
		if diff := cmp.Diff(want.labels, chartLabels(c)); diff != "" {
			t.Errorf("chart %d labels (-want +got):\n%s", i, diff)
		}
	}

	charts = Plan(gr, Options{Title: "Sorting", Mode: seriesproc.PerPrimary})
	if charts[0].Title != "Sorting: Random" || charts[0].Name != "chart_Random" {
		t.Errorf("got %s %q, want chart_Random \"Sorting: Random\"", charts[0].Name, charts[0].Title)
	}
}

func TestPlanPrimaryOnly(t *testing.T) {
	const csv = "Scale,N,ApproxArea\n3,100,0.9\n4,100,1.1\n3,600,0.95\n"
	gr := grouping(t, csv, seriesproc.Grouper{Label: "Scale", X: "N", Y: "ApproxArea", Prefix: "Scale "})
	charts := Plan(gr, Options{Mode: seriesproc.PrimaryOnly, Refs: []RefLine{{"Exact area", 0.944517}}})
	if len(charts) != 1 {
		t.Fatalf("got %d charts, want 1", len(charts))
	}
	if diff := cmp.Diff([]string{"Scale 3", "Scale 4"}, chartLabels(charts[0])); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if len(charts[0].Refs) != 1 {
		t.Errorf("got %d reference lines, want 1", len(charts[0].Refs))
	}
}

func TestPlanEmpty(t *testing.T) {
	gr := grouping(t, "ArrayType,ArraySize,ExecutionTime(ms)\n", sortingGrouper)
	charts := Plan(gr, Options{})
	if len(charts) != 1 || len(charts[0].Series) != 0 {
		t.Errorf("combined: got %d charts, want 1 empty chart", len(charts))
	}
	if charts := Plan(gr, Options{Mode: seriesproc.PerPrimary}); len(charts) != 0 {
		t.Errorf("per-primary: got %d charts, want none", len(charts))
	}
}

func TestFileName(t *testing.T) {
	for in, want := range map[string]string{
		"sorting_Random":    "sorting_Random",
		"a b/c":             "a_b_c",
		"x.y-z":             "x.y-z",
		"sorting_Случайный": "sorting_Случайный",
		"sorting_Обратный":  "sorting_Обратный",
		"a:b\x00":           "a_b_",
	} {
		if got := fileName(in); got != want {
			t.Errorf("fileName(%q) = %q, want %q", in, got, want)
		}
	}
}
