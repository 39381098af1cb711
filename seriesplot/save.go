// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesplot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/safehtml/template"
)

// An Output is one rendered file of a chart.
type Output struct {
	Chart  *Chart
	Format Format
	// Name is the object name within the sink.
	Name string
}

// Save renders every chart in every format and stores the results in
// sink. It stops at the first error. A chart whose name was already
// used by an earlier chart is stored under the name with a "_2",
// "_3", ... suffix.
func Save(ctx context.Context, sink Sink, charts []*Chart, formats []Format, sz Size) ([]Output, error) {
	var outs []Output
	used := make(map[string]bool)
	for _, c := range charts {
		base := c.Name
		for n := 2; used[base]; n++ {
			base = fmt.Sprintf("%s_%d", c.Name, n)
		}
		used[base] = true
		for _, f := range formats {
			if err := ctx.Err(); err != nil {
				return outs, err
			}
			name := base + "." + string(f)
			if err := saveOne(ctx, sink, name, func(w io.Writer) error {
				return c.Render(w, f, sz)
			}); err != nil {
				return outs, err
			}
			outs = append(outs, Output{Chart: c, Format: f, Name: name})
		}
	}
	return outs, nil
}

// saveOne stores the output of write in sink as name. Nothing is
// created in sink if write fails.
func saveOne(ctx context.Context, sink Sink, name string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	w, err := sink.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// IndexName is the name of the page written by SaveIndex.
const IndexName = "index.html"

const indexTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
img { max-width: 100%; border: 1px solid #ddd; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Charts}}
<h2>{{.Title}}</h2>
{{with .Image}}<p><img src="{{.}}" alt="{{$.Title}}"></p>{{end}}
<p>{{range .Files}}<a href="{{.Name}}">{{.Format}}</a> {{end}}</p>
{{end}}
</body>
</html>
`

var indexPage = template.Must(template.New("index").Parse(indexTmpl))

type indexChart struct {
	Title string
	Image string
	Files []Output
}

// WriteIndex writes an HTML page titled title that shows the charts
// in outs. Each chart is displayed using its PNG or SVG output, if it
// has one, and every output is linked.
func WriteIndex(w io.Writer, title string, outs []Output) error {
	var charts []*indexChart
	byChart := make(map[*Chart]*indexChart)
	for _, o := range outs {
		ic := byChart[o.Chart]
		if ic == nil {
			ic = &indexChart{Title: o.Chart.Title}
			if ic.Title == "" {
				ic.Title = o.Chart.Name
			}
			byChart[o.Chart] = ic
			charts = append(charts, ic)
		}
		if ic.Image == "" && (o.Format == PNG || o.Format == SVG) {
			ic.Image = o.Name
		}
		ic.Files = append(ic.Files, o)
	}
	return indexPage.Execute(w, struct {
		Title  string
		Charts []*indexChart
	}{title, charts})
}

// SaveIndex writes the page produced by WriteIndex to sink as
// IndexName.
func SaveIndex(ctx context.Context, sink Sink, title string, outs []Output) error {
	return saveOne(ctx, sink, IndexName, func(w io.Writer) error {
		return WriteIndex(w, title, outs)
	})
}
