// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type testSource struct {
	onInvalid func()
	nums      []uint64
}

func (s *testSource) Uint64() uint64 {
	if len(s.nums) == 0 {
		s.onInvalid()
	}
	num := s.nums[0]
	s.nums = s.nums[1:]
	return num
}

func TestRNG(t *testing.T) {
	tests := []struct {
		max      uint64
		nums     []uint64
		expected uint64
	}{
		{
			max: math.MaxUint64,
			nums: []uint64{
				0x01,
			},
			expected: 0x01,
		},
		{
			max: math.MaxUint64,
			nums: []uint64{
				0x0102030405060708,
			},
			expected: 0x0102030405060708,
		},
		{
			max: math.MaxUint64 - 1,
			nums: []uint64{
				math.MaxUint64,
				0x01,
			},
			expected: 0x01,
		},
		{
			max: math.MaxInt64,
			nums: []uint64{
				0x8000000000000001,
			},
			expected: 0x01,
		},
		{
			max: 0,
			nums: []uint64{
				0x1234,
			},
			expected: 0,
		},
		{
			max: 2,
			nums: []uint64{
				0x07,
			},
			expected: 0x01,
		},
		{
			max: 2,
			nums: []uint64{
				math.MaxInt64 - 1,
				0x05,
			},
			expected: 0x02,
		},
	}
	for i, test := range tests {
		t.Run(string(rune('a'+i)), func(t *testing.T) {
			require := require.New(t)

			source := &testSource{
				onInvalid: t.FailNow,
				nums:      test.nums,
			}
			r := NewRNG(source)
			val := r.Uint64Inclusive(test.max)
			require.Equal(test.expected, val)
			require.Empty(source.nums)
		})
	}
}

func TestSeededRNGReproducible(t *testing.T) {
	require := require.New(t)

	a := NewSeededRNG(1234)
	b := NewSeededRNG(1234)
	c := NewSeededRNG(4321)

	var differs bool
	for i := 0; i < 100; i++ {
		av := a.Uint64Inclusive(1_000_000)
		require.Equal(av, b.Uint64Inclusive(1_000_000))
		require.LessOrEqual(av, uint64(1_000_000))
		if av != c.Uint64Inclusive(1_000_000) {
			differs = true
		}
	}
	require.True(differs)
}

func TestRNGBool(t *testing.T) {
	require := require.New(t)

	// Certain outcomes must not consume any randomness.
	source := &testSource{onInvalid: t.FailNow}
	r := NewRNG(source)
	require.False(r.Bool(0))
	require.False(r.Bool(-1))
	require.True(r.Bool(1))
	require.True(r.Bool(2))

	source.nums = []uint64{0, math.MaxUint64}
	require.True(r.Bool(0.5))
	require.False(r.Bool(0.5))
}

func TestRNGFloat64(t *testing.T) {
	require := require.New(t)

	r := NewSeededRNG(7)
	var sum float64
	for i := 0; i < 10_000; i++ {
		f := r.Float64()
		require.GreaterOrEqual(f, 0.0)
		require.Less(f, 1.0)
		sum += f
	}
	require.InDelta(0.5, sum/10_000, 0.02)
}
