// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulation

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReportStatistics(t *testing.T) {
	require := require.New(t)

	gold := []int64{0, 3, 10, 3}
	r := newReport(gold, 1, time.Second)

	require.Equal(3, r.AliveCount)
	require.Equal(1, r.DeadCount)
	require.Equal(1, r.ZeroCount)
	require.Equal(3, r.NonZeroCount)
	require.Equal(int64(10), r.Max)
	require.InDelta(4.0, r.Mean, 1e-9)
	require.InDelta(math.Sqrt(18), r.StdDev, 1e-9)
	require.Equal(time.Second, r.Duration)

	// The report must not alias the gold of the model.
	gold[0] = 100
	require.Equal([]int64{0, 3, 10, 3}, r.Gold())

	require.Equal([]Bin{
		{Gold: 0, Count: 1},
		{Gold: 3, Count: 2},
		{Gold: 10, Count: 1},
	}, r.Histogram())
}

func TestReportEmpty(t *testing.T) {
	require := require.New(t)

	r := newReport(nil, 0, 0)
	require.Zero(r.AliveCount)
	require.Zero(r.Max)
	require.Zero(r.Mean)
	require.Empty(r.Histogram())
}

func TestReportSingleGoblin(t *testing.T) {
	require := require.New(t)

	r := newReport([]int64{7}, 0, 0)
	require.Equal(int64(7), r.Max)
	require.InDelta(7.0, r.Mean, 1e-9)
	require.Zero(r.StdDev)
}

func TestReportPrint(t *testing.T) {
	require := require.New(t)

	r := newReport([]int64{0, 3, 10, 3}, 1, 0)

	var buf bytes.Buffer
	require.NoError(r.Print(&buf))
	require.Equal(`Alive: 3
Dead: 1
Zero gold: 1
Non-zero gold: 3
Max gold: 10
Mean: 4.00
Stdev: 4.24
`, buf.String())

	buf.Reset()
	require.NoError(r.PrintVerbose(&buf))
	require.Contains(buf.String(), "Gold: [0 3 10 3]\nAlive: 3\n")
}

func TestReportWriteHistogram(t *testing.T) {
	require := require.New(t)

	r := newReport([]int64{5, 1, 5, 5}, 0, 0)

	var buf bytes.Buffer
	require.NoError(r.WriteHistogram(&buf))
	require.Equal("# gold count\n1 1\n5 3\n", buf.String())
}
