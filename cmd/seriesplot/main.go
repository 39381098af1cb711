// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Seriesplot draws line charts from CSV result tables.
//
// Usage:
//
//	seriesplot [flags] [inputs...]
//
// Each record of the input carries a compound label such as
// "Random_QuickSort", which seriesplot splits at the first separator
// into a primary category ("Random") and a secondary category
// ("QuickSort"). Records with the same categories form one line of a
// chart, with the -x column on the horizontal axis and the -y column
// on the vertical axis.
//
// The -mode flag selects how lines are arranged:
//
//	combined     one chart, one line per (primary, secondary) pair,
//	             labeled "primary (secondary)"
//	per-primary  one chart per primary category, one line per
//	             secondary category
//	primary      one chart, one line per primary category
//
// With -preset, seriesplot runs one of the built-in analyses:
//
//	montecarlo       approximate area and relative error against the
//	                 number of points, one line per scale
//	sorting          execution time against array size for every
//	                 array type and algorithm
//	sorting-by-type  one chart per array type, plus the combined chart
//
// A preset reads its experiment's result file from the current
// directory if no inputs are named.
//
// Multiple inputs are concatenated by column name. An input of the
// form label=path is read from path. The input "-" is standard input.
//
// Charts are written to the directory named by -o, or to a Cloud
// Storage prefix if -o has the form gs://bucket/prefix. With -html,
// an index.html page showing every chart is written alongside them.
//
// Settings not given on the command line come from the -config file
// and from SERIESPLOT_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"

	"github.com/labnotes/seriesplot/internal/config"
	"github.com/labnotes/seriesplot/internal/texttab"
	"github.com/labnotes/seriesplot/montecarlo"
	"github.com/labnotes/seriesplot/seriesdb"
	_ "github.com/labnotes/seriesplot/seriesdb/sqlite3"
	"github.com/labnotes/seriesplot/seriesfmt"
	"github.com/labnotes/seriesplot/seriesplot"
	"github.com/labnotes/seriesplot/seriesproc"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("seriesplot failed")
		os.Exit(1)
	}
}

type flags struct {
	preset, lang               string
	label, x, y, mode, sep     string
	match, order               string
	title, xlabel, ylabel, ref string
	out, format, config        string
	html, summary, logY        bool
	db, fromDB                 string
}

func (f *flags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.preset, "preset", "", "run a built-in `analysis`: "+presetNames())
	fs.StringVar(&f.lang, "lang", "en", "`language` of preset titles: en or ru")
	fs.StringVar(&f.label, "label", "", "`column` holding the compound label")
	fs.StringVar(&f.x, "x", "", "`column` of the horizontal axis")
	fs.StringVar(&f.y, "y", "", "`column` of the vertical axis")
	fs.StringVar(&f.mode, "mode", "combined", "chart `mode`: combined, per-primary, or primary")
	fs.StringVar(&f.sep, "sep", "", "label `separator` (default from config, \"_\")")
	fs.StringVar(&f.match, "match", "", "category `policy`: exact, or contains to match categories as substrings of labels (default from config, exact)")
	fs.StringVar(&f.order, "order", "", "category `order`: first, alpha, or num (default from config, first)")
	fs.StringVar(&f.title, "title", "", "chart `title`; in per-primary mode, a format with one %s for the category")
	fs.StringVar(&f.xlabel, "xlabel", "", "horizontal axis `label`")
	fs.StringVar(&f.ylabel, "ylabel", "", "vertical axis `label`")
	fs.StringVar(&f.ref, "ref", "", "draw a reference line at `y`: exact, mean, a number, or none")
	fs.BoolVar(&f.logY, "logy", false, "use a logarithmic vertical axis")
	fs.StringVar(&f.out, "o", "", "output `dir` or gs://bucket/prefix (default from config, \".\")")
	fs.StringVar(&f.format, "format", "", "comma-separated output `formats`: png, svg, pdf (default from config, png)")
	fs.BoolVar(&f.html, "html", false, "also write an index.html page")
	fs.BoolVar(&f.summary, "summary", false, "print a summary of every series")
	fs.StringVar(&f.config, "config", "", "read settings from `file`")
	fs.StringVar(&f.db, "db", "", "archive the input table under `name`")
	fs.StringVar(&f.fromDB, "from-db", "", "read the input table archived under `name`")
}

// apply copies the flags that were set onto cfg.
func (f *flags) apply(cfg *config.Config) {
	set := func(key, val string) {
		if val != "" {
			cfg.Set(key, val)
		}
	}
	set("grouping.sep", f.sep)
	set("grouping.match", f.match)
	set("grouping.order", f.order)
	set("output.dir", f.out)
	set("output.formats", f.format)
	if f.html {
		cfg.Set("output.html", true)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("seriesplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: seriesplot [flags] [inputs...]\n\n")
		fs.PrintDefaults()
	}
	var f flags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.New()
	if f.config != "" {
		if err := cfg.LoadFromFile(f.config); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	f.apply(cfg)
	log := cfg.CreateLogger(stderr, "seriesplot")

	p, err := f.resolvePreset()
	if err != nil {
		return err
	}
	match, err := seriesproc.ParseMatch(cfg.Match())
	if err != nil {
		return err
	}
	formats, err := seriesplot.ParseFormats(cfg.OutputFormats())
	if err != nil {
		return err
	}

	tb, err := f.load(ctx, cfg, p, fs.Args())
	if err != nil {
		return err
	}
	log.Debug().Str("file", tb.FileName).Int("records", tb.Len()).Msg("loaded table")
	if tb.Len() == 0 {
		log.Warn().Str("file", tb.FileName).Msg("table has no records")
	}
	if f.db != "" {
		if err := archive(ctx, cfg, f.db, tb); err != nil {
			return err
		}
		log.Info().Str("name", f.db).Msg("archived table")
	}

	var charts []*seriesplot.Chart
	for _, v := range p.views {
		g := seriesproc.Grouper{
			Label:  p.label,
			X:      p.x,
			Y:      v.y,
			Sep:    cfg.Sep(),
			Match:  match,
			Order:  cfg.Order(),
			Prefix: p.prefix,
		}
		gr, err := g.Group(tb)
		if err != nil {
			return err
		}
		opts, err := f.options(p, v, gr)
		if err != nil {
			return err
		}
		charts = append(charts, seriesplot.Plan(gr, opts)...)
	}
	for _, c := range charts {
		for _, s := range c.Series {
			if dups := seriesproc.DuplicateX(s); len(dups) > 0 {
				log.Warn().Str("chart", c.Name).Str("series", s.Label).Floats64("x", dups).Msg("series has several records per X value")
			}
		}
	}

	if f.summary {
		if err := summarize(stdout, charts); err != nil {
			return err
		}
	}

	sink, err := seriesplot.OpenSink(ctx, cfg.OutputDir(), cfg.GCSCredentials())
	if err != nil {
		return err
	}
	defer sink.Close()
	sz := seriesplot.Size{
		Width:  vg.Length(cfg.ChartWidthIn()) * vg.Inch,
		Height: vg.Length(cfg.ChartHeightIn()) * vg.Inch,
		DPI:    cfg.ChartDPI(),
	}
	outs, err := seriesplot.Save(ctx, sink, charts, formats, sz)
	if err != nil {
		return err
	}
	for _, o := range outs {
		log.Debug().Str("name", o.Name).Msg("wrote chart")
	}
	if cfg.OutputHTML() {
		title := "seriesplot"
		if f.preset != "" {
			title = f.preset
		}
		if err := seriesplot.SaveIndex(ctx, sink, title, outs); err != nil {
			return err
		}
	}
	log.Info().Str("dest", sink.String()).Int("charts", len(charts)).Int("files", len(outs)).Msg("wrote charts")
	return nil
}

func (f *flags) resolvePreset() (*preset, error) {
	if f.preset == "" {
		return customPreset(f.label, f.x, f.y, f.mode, f.ref)
	}
	if f.lang != "en" && f.lang != "ru" {
		return nil, fmt.Errorf("unknown language %q; want en or ru", f.lang)
	}
	return lookupPreset(f.preset)
}

// load reads the input table from the archive, the named inputs, or
// the preset's result file.
func (f *flags) load(ctx context.Context, cfg *config.Config, p *preset, paths []string) (*seriesfmt.Table, error) {
	if f.fromDB != "" {
		if len(paths) > 0 {
			return nil, fmt.Errorf("-from-db and input files are mutually exclusive")
		}
		db, err := seriesdb.OpenSQL(cfg.DBDriver(), cfg.DBDSN())
		if err != nil {
			return nil, fmt.Errorf("opening archive: %w", err)
		}
		defer db.Close()
		return db.Get(ctx, f.fromDB)
	}
	if len(paths) == 0 && p.file != "" {
		paths = []string{p.file}
	}
	files := seriesfmt.Files{Paths: paths, AllowStdin: true, AllowLabels: true}
	return files.Load()
}

func archive(ctx context.Context, cfg *config.Config, name string, tb *seriesfmt.Table) error {
	db, err := seriesdb.OpenSQL(cfg.DBDriver(), cfg.DBDSN())
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer db.Close()
	if err := db.Put(ctx, name, tb); err != nil {
		return fmt.Errorf("archiving %q: %w", name, err)
	}
	return nil
}

// options builds the chart options of view v of p, letting flags
// override the preset's text and reference line.
func (f *flags) options(p *preset, v view, gr *seriesproc.Grouping) (seriesplot.Options, error) {
	text := v.text[f.lang]
	opts := seriesplot.Options{
		Name:        v.name,
		Title:       text.title,
		TitleFormat: text.titleFormat,
		XLabel:      text.xlabel,
		YLabel:      text.ylabel,
		Mode:        v.mode,
		LogY:        f.logY,
	}
	if opts.XLabel == "" {
		opts.XLabel = gr.Grouper().X
	}
	if opts.YLabel == "" {
		opts.YLabel = gr.Grouper().Y
	}
	if f.title != "" {
		if v.mode == seriesproc.PerPrimary {
			opts.TitleFormat = f.title
		} else {
			opts.Title = f.title
		}
	}
	if f.xlabel != "" {
		opts.XLabel = f.xlabel
	}
	if f.ylabel != "" {
		opts.YLabel = f.ylabel
	}

	// -ref replaces the preset's reference lines, or adds one to
	// every chart if the preset has none.
	ref := v.ref
	if f.ref != "" && (ref != "" || !p.hasRefs()) {
		ref = f.ref
	}
	label := ""
	if ref == v.ref {
		label = text.refLabel
	}
	r, ok, err := refLine(ref, label, gr)
	if err != nil {
		return opts, err
	}
	if ok {
		opts.Refs = []seriesplot.RefLine{r}
	}
	return opts, nil
}

// refLine resolves a reference line specification against gr.
func refLine(spec, label string, gr *seriesproc.Grouping) (seriesplot.RefLine, bool, error) {
	var r seriesplot.RefLine
	switch spec {
	case "", "none":
		return r, false, nil
	case "exact":
		r = seriesplot.RefLine{Label: "Exact area", Y: montecarlo.ExactArea()}
	case "mean":
		var ys []float64
		for it := gr.Iter(seriesproc.PrimaryOnly); it.Scan(); {
			ys = append(ys, it.Series().Y...)
		}
		if len(ys) == 0 {
			return r, false, nil
		}
		r = seriesplot.RefLine{Label: "Mean", Y: stats.Mean(ys)}
	default:
		y, err := strconv.ParseFloat(spec, 64)
		if err != nil {
			return r, false, fmt.Errorf("bad -ref %q: want exact, mean, none, or a number", spec)
		}
		r = seriesplot.RefLine{Label: "Reference", Y: y}
	}
	if label != "" {
		r.Label = label
	}
	return r, true, nil
}

// summarize prints the extent of every series of charts.
func summarize(w io.Writer, charts []*seriesplot.Chart) error {
	var tab texttab.Table
	tab.Row().Cell("chart").Cell("series").Cell("n", texttab.Right).
		Cell("min x", texttab.Right).Cell("max x", texttab.Right).
		Cell("mean y", texttab.Right).Cell("min y", texttab.Right).Cell("max y", texttab.Right)
	for _, c := range charts {
		for _, s := range c.Series {
			tab.Row().Cell(c.Name).Cell(s.Label).Cell(strconv.Itoa(s.Len()), texttab.Right)
			if s.Len() == 0 {
				continue
			}
			xlo, xhi := stats.Bounds(s.X)
			ylo, yhi := stats.Bounds(s.Y)
			for _, v := range []float64{xlo, xhi, stats.Mean(s.Y), ylo, yhi} {
				tab.Cell(strconv.FormatFloat(v, 'g', 5, 64), texttab.Right)
			}
		}
	}
	return tab.Format(w)
}
