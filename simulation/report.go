// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulation

import (
	"io"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ava-labs/goblinsim/utils/wrappers"
)

// Bin is one point of the gold histogram: Count goblins own exactly Gold.
type Bin struct {
	Gold  int64 `json:"gold"`
	Count int   `json:"count"`
}

// Report with the results of simulating the model.
type Report struct {
	// AliveCount is the number of goblins that are still alive.
	AliveCount int `json:"alive"`
	// DeadCount is the number of goblins that died.
	DeadCount int `json:"dead"`
	// ZeroCount and NonZeroCount split the population by whether the goblin
	// owns any gold.
	ZeroCount    int `json:"zero"`
	NonZeroCount int `json:"nonZero"`

	Max    int64   `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`

	Duration time.Duration `json:"duration"`

	// gold of every goblin of the population, including the dead ones, which
	// keep the gold they owned when they died.
	gold []int64
}

func newReport(gold []int64, deadCount int, duration time.Duration) *Report {
	r := &Report{
		AliveCount: len(gold) - deadCount,
		DeadCount:  deadCount,
		Duration:   duration,
		gold:       append([]int64(nil), gold...),
	}
	if len(gold) == 0 {
		return r
	}

	values := make([]float64, len(gold))
	r.Max = math.MinInt64
	for i, g := range gold {
		values[i] = float64(g)
		if g == 0 {
			r.ZeroCount++
		} else {
			r.NonZeroCount++
		}
		if g > r.Max {
			r.Max = g
		}
	}

	r.Mean, r.StdDev = stat.MeanStdDev(values, nil)
	if len(gold) == 1 {
		// The sample standard deviation of a single value is undefined.
		r.StdDev = 0
	}
	return r
}

// Gold returns the gold of every goblin of the population.
func (r *Report) Gold() []int64 {
	return r.gold
}

// Histogram counts how many goblins own each amount of gold, sorted by gold.
func (r *Report) Histogram() []Bin {
	counts := make(map[int64]int)
	for _, g := range r.gold {
		counts[g]++
	}
	bins := make([]Bin, 0, len(counts))
	for g, count := range counts {
		bins = append(bins, Bin{
			Gold:  g,
			Count: count,
		})
	}
	sort.Slice(bins, func(i, j int) bool {
		return bins[i].Gold < bins[j].Gold
	})
	return bins
}

// Print writes a summary of the report to [w].
func (r *Report) Print(w io.Writer) error {
	p := wrappers.Printer{W: w}
	p.Printf("Alive: %d\n", r.AliveCount)
	p.Printf("Dead: %d\n", r.DeadCount)
	p.Printf("Zero gold: %d\n", r.ZeroCount)
	p.Printf("Non-zero gold: %d\n", r.NonZeroCount)
	p.Printf("Max gold: %d\n", r.Max)
	p.Printf("Mean: %.2f\n", r.Mean)
	p.Printf("Stdev: %.2f\n", r.StdDev)
	return p.Errs.Err
}

// PrintVerbose writes the gold of every goblin to [w], followed by the
// summary.
func (r *Report) PrintVerbose(w io.Writer) error {
	p := wrappers.Printer{W: w}
	p.Printf("Gold: %v\n", r.gold)
	if p.Errs.Errored() {
		return p.Errs.Err
	}
	return r.Print(w)
}

// WriteHistogram writes one "gold count" line per histogram bin. The output
// can be plotted directly, for example with gnuplot on log-log axes.
func (r *Report) WriteHistogram(w io.Writer) error {
	p := wrappers.Printer{W: w}
	p.Printf("# gold count\n")
	for _, bin := range r.Histogram() {
		p.Printf("%d %d\n", bin.Gold, bin.Count)
	}
	return p.Errs.Err
}
