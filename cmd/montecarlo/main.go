// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Montecarlo estimates the area of the intersection of three circles
// by uniform sampling and writes the estimates as CSV.
//
// Usage:
//
//	montecarlo [flags]
//
// For every scale s and every sample count N, montecarlo samples N
// points from the square [0, s]² and records the estimated area and
// its relative error against the exact area. The output has the
// columns N, Scale, ApproxArea, and RelativeError, and is written to
// monte_carlo_results.csv unless -o says otherwise. Plot it with
// "seriesplot -preset montecarlo".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/labnotes/seriesplot/internal/config"
	"github.com/labnotes/seriesplot/montecarlo"
	"github.com/labnotes/seriesplot/seriesfmt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("montecarlo failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	def := montecarlo.DefaultConfig()
	fs := flag.NewFlagSet("montecarlo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagOut    = fs.String("o", "monte_carlo_results.csv", "write results to `file`; - means standard output")
		flagScales = fs.String("scales", "3,4", "comma-separated side `lengths` of the sampling squares")
		flagMin    = fs.Int("min", def.MinN, "smallest sample `count`")
		flagMax    = fs.Int("max", def.MaxN, "largest sample `count`")
		flagStep   = fs.Int("step", def.Step, "sample count `step`")
		flagSeed   = fs.Uint64("seed", 0, "random `seed`; 0 uses the configured seed or a random one")
		flagConfig = fs.String("config", "", "read settings from `file`")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := config.New()
	if *flagConfig != "" {
		if err := cfg.LoadFromFile(*flagConfig); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	log := cfg.CreateLogger(stderr, "montecarlo")

	scales, err := parseFloats(*flagScales)
	if err != nil {
		return fmt.Errorf("bad -scales: %w", err)
	}
	mc := montecarlo.Config{
		Scales: scales,
		MinN:   *flagMin,
		MaxN:   *flagMax,
		Step:   *flagStep,
		Seed:   *flagSeed,
	}
	if mc.Seed == 0 {
		mc.Seed = cfg.Seed()
	}

	w, closeOut, err := create(*flagOut, stdout)
	if err != nil {
		return err
	}
	if err := montecarlo.Run(ctx, mc, seriesfmt.NewWriter(w, montecarlo.Columns...)); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	log.Info().Str("file", *flagOut).Floats64("scales", scales).Float64("exact", montecarlo.ExactArea()).Msg("wrote estimates")
	return nil
}

// create opens path for writing, or returns stdout if path is "-".
func create(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
