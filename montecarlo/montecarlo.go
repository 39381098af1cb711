// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package montecarlo estimates the area of an intersection of circles
// by uniform sampling and records how the estimate converges as the
// number of samples grows.
package montecarlo

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/labnotes/seriesplot/seriesfmt"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Circle is a closed disc.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether (x, y) is inside or on c.
func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// A Region is the intersection of a set of circles.
type Region []Circle

// Contains reports whether (x, y) is in every circle of r.
func (r Region) Contains(x, y float64) bool {
	for _, c := range r {
		if !c.Contains(x, y) {
			return false
		}
	}
	return true
}

// Circles is the region measured by Run.
var Circles = Region{
	{X: 1, Y: 1, R: 1},
	{X: 1.5, Y: 2, R: math.Sqrt(5) / 2},
	{X: 2, Y: 1.5, R: math.Sqrt(5) / 2},
}

// ExactArea returns the analytic area of Circles.
func ExactArea() float64 {
	return 0.25*math.Pi + 1.25*math.Asin(0.8) - 1
}

// A Rect is an axis-aligned sampling box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Square returns the box [0, side]².
func Square(side float64) Rect {
	return Rect{MaxX: side, MaxY: side}
}

func (b Rect) Area() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Estimate samples n points uniformly from box and returns the share
// that fall in r, scaled by the area of box. It returns 0 if n <= 0.
// A nil src uses the global source.
func Estimate(r Region, box Rect, n int, src rand.Source) float64 {
	if n <= 0 {
		return 0
	}
	ux := distuv.Uniform{Min: box.MinX, Max: box.MaxX, Src: src}
	uy := distuv.Uniform{Min: box.MinY, Max: box.MaxY, Src: src}
	hits := 0
	for i := 0; i < n; i++ {
		if r.Contains(ux.Rand(), uy.Rand()) {
			hits++
		}
	}
	return float64(hits) / float64(n) * box.Area()
}

// Columns are the columns written by Run.
var Columns = []string{"N", "Scale", "ApproxArea", "RelativeError"}

// Config controls a Run.
type Config struct {
	// Scales are the side lengths of the square sampling boxes.
	Scales []float64

	// Sample counts run from MinN to MaxN inclusive in steps of
	// Step.
	MinN, MaxN, Step int

	// Seed seeds the sampler. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the configuration of the reference
// experiment.
func DefaultConfig() Config {
	return Config{
		Scales: []float64{3, 4},
		MinN:   100,
		MaxN:   100000,
		Step:   500,
	}
}

func (c Config) check() error {
	if len(c.Scales) == 0 {
		return fmt.Errorf("no scales")
	}
	for _, s := range c.Scales {
		if !(s > 0) {
			return fmt.Errorf("scale %v is not positive", s)
		}
	}
	if c.MinN <= 0 || c.MaxN < c.MinN {
		return fmt.Errorf("bad sample range %d..%d", c.MinN, c.MaxN)
	}
	if c.Step <= 0 {
		return fmt.Errorf("step %d is not positive", c.Step)
	}
	return nil
}

// Run estimates the area of Circles for every scale and sample count
// in cfg and writes one row per estimate to w. The header of w must
// be Columns. Run checks ctx between estimates.
func Run(ctx context.Context, cfg Config, w *seriesfmt.Writer) error {
	if err := cfg.check(); err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	exact := ExactArea()

	for _, scale := range cfg.Scales {
		box := Square(scale)
		for n := cfg.MinN; n <= cfg.MaxN; n += cfg.Step {
			if err := ctx.Err(); err != nil {
				return err
			}
			approx := Estimate(Circles, box, n, src)
			relErr := math.Abs(approx-exact) / exact
			if err := w.Write(n, scale, approx, relErr); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
