// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sortbench times a classic sorting algorithm against its hybrid
// variant and writes the timings as CSV.
//
// Usage:
//
//	sortbench [flags]
//
// The merge suite compares merge sort with a merge sort that sorts
// short runs by insertion. The quick suite compares quicksort with an
// introsort that falls back to insertion sort and heap sort. Each
// algorithm sorts Random, Reverse, and NearlySorted arrays of every
// size in -sizes. The output has the columns ArrayType, ArraySize, and
// ExecutionTime(ms), where ArrayType is a label such as
// "Random_QuickSort", and is written to sorting_results.csv unless -o
// says otherwise. Plot it with "seriesplot -preset sorting".
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
	"github.com/labnotes/seriesplot/seriesfmt"
	"github.com/labnotes/seriesplot/sortbench"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("sortbench failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sortbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagOut    = fs.String("o", "sorting_results.csv", "write results to `file`; - means standard output")
		flagSuite  = fs.String("suite", "quick", "algorithm `suite`: "+strings.Join(sortbench.SuiteNames(), ", "))
		flagSizes  = fs.String("sizes", "500,1000,2000,5000,10000", "comma-separated array `sizes`")
		flagTypes  = fs.String("types", "", "comma-separated array `types` (default all)")
		flagRepeat = fs.Int("repeat", 0, "timed runs per measurement; 0 uses the configured count")
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
	log := cfg.CreateLogger(stderr, "sortbench")

	sizes, err := parseInts(*flagSizes)
	if err != nil {
		return fmt.Errorf("bad -sizes: %w", err)
	}
	bc := sortbench.Config{
		Suite:  *flagSuite,
		Sizes:  sizes,
		Repeat: *flagRepeat,
		Seed:   *flagSeed,
	}
	if *flagTypes != "" {
		for _, t := range strings.Split(*flagTypes, ",") {
			bc.Types = append(bc.Types, strings.TrimSpace(t))
		}
	}
	if bc.Repeat == 0 {
		bc.Repeat = cfg.Repeat()
	}
	if bc.Seed == 0 {
		bc.Seed = cfg.Seed()
	}

	var w io.Writer = stdout
	var f *os.File
	if *flagOut != "-" {
		f, err = os.Create(*flagOut)
		if err != nil {
			return err
		}
		w = f
	}
	err = sortbench.Run(ctx, bc, seriesfmt.NewWriter(w, sortbench.Columns...))
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}
	log.Info().Str("file", *flagOut).Str("suite", bc.Suite).Ints("sizes", sizes).Msg("wrote timings")
	return nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
