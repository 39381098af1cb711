// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, SVG, PDF}

// ParseFormats parses a comma-separated list of format names.
func ParseFormats(list string) ([]Format, error) {
	var out []Format
	for _, name := range strings.Split(list, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(name)))
		switch f {
		case "":
			continue
		case PNG, SVG, PDF:
			out = append(out, f)
		default:
			return nil, fmt.Errorf("unknown format %q; want png, svg, or pdf", name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output formats in %q", list)
	}
	return out, nil
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case SVG:
		return "image/svg+xml"
	case PDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// A Size is the physical size of a rendered chart. DPI applies only
// to raster formats.
type Size struct {
	Width, Height vg.Length
	DPI           int
}

// DefaultSize is a 10x6 inch chart at 100 DPI.
var DefaultSize = Size{Width: 10 * vg.Inch, Height: 6 * vg.Inch, DPI: 100}

var refColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

// Plot builds the gonum plot for c.
func (c *Chart) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	if c.LogY {
		for _, s := range c.Series {
			for _, y := range s.Y {
				if y <= 0 {
					return nil, fmt.Errorf("chart %s: series %q has non-positive value %v on a log scale", c.Name, s.Label, y)
				}
			}
		}
		for _, r := range c.Refs {
			if r.Y <= 0 {
				return nil, fmt.Errorf("chart %s: reference line %q has non-positive value %v on a log scale", c.Name, r.Label, r.Y)
			}
		}
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	for i, s := range c.Series {
		l, err := plotter.NewLine(s)
		if err != nil {
			return nil, fmt.Errorf("chart %s: series %q: %w", c.Name, s.Label, err)
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Label, l)
	}

	xmin, xmax := c.xRange()
	for _, r := range c.Refs {
		l, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: r.Y}, {X: xmax, Y: r.Y}})
		if err != nil {
			return nil, fmt.Errorf("chart %s: reference line %q: %w", c.Name, r.Label, err)
		}
		l.Color = refColor
		l.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("%s: %.4g", r.Label, r.Y), l)
	}
	if c.LogY {
		// gonum widens an empty or single-valued range to
		// [y-1, y+1], which a log axis cannot show.
		if lo, hi := c.yRange(); lo > hi {
			p.Y.Min, p.Y.Max = 1, 10
		} else if lo == hi {
			p.Y.Min, p.Y.Max = lo/10, hi*10
		}
	}
	return p, nil
}

// yRange returns the extent of the Y values of all series and
// reference lines. If there are none, min > max.
func (c *Chart) yRange() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, y := range s.Y {
			min = math.Min(min, y)
			max = math.Max(max, y)
		}
	}
	for _, r := range c.Refs {
		min = math.Min(min, r.Y)
		max = math.Max(max, r.Y)
	}
	return min, max
}

// xRange returns the extent of the X values of all series, or [0, 1]
// if there are none.
func (c *Chart) xRange() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, x := range s.X {
			min = math.Min(min, x)
			max = math.Max(max, x)
		}
	}
	if min > max {
		return 0, 1
	}
	return min, max
}

// Render draws c in format f at size sz and writes it to w.
func (c *Chart) Render(w io.Writer, f Format, sz Size) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}

	var canvas interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch f {
	case PNG:
		img := vgimg.NewWith(vgimg.UseWH(sz.Width, sz.Height), vgimg.UseDPI(sz.DPI))
		canvas = vgimg.PngCanvas{Canvas: img}
	case SVG:
		canvas = vgsvg.New(sz.Width, sz.Height)
	case PDF:
		canvas = vgpdf.New(sz.Width, sz.Height)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
	p.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s chart %s: %w", f, c.Name, err)
	}
	return nil
}
