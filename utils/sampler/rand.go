// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

var _ Uniform = (*RNG)(nil)

// Source provides the raw bits consumed by an RNG.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Uniform draws values uniformly from an inclusive range.
type Uniform interface {
	// Uint64Inclusive returns a pseudo-random number in [0, n].
	Uint64Inclusive(n uint64) uint64
}

// RNG is not safe for concurrent use. It is expected to be owned by a single
// driver for its whole lifetime.
type RNG struct {
	source Source
}

func NewRNG(source Source) *RNG {
	return &RNG{source: source}
}

// NewSeededRNG returns an RNG backed by a Mersenne Twister seeded with [seed].
// Two RNGs created with the same seed and driven by the same sequence of calls
// return the same sequence of values.
func NewSeededRNG(seed uint64) *RNG {
	source := prng.NewMT19937()
	source.Seed(seed)
	return NewRNG(source)
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
//
// Invariant: The sequence of values returned for a given source is part of
// the reproducibility guarantee of a run, so any modifications are considered
// breaking.
func (r *RNG) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.source.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		v := r.source.Uint64()
		for v > n {
			v = r.source.Uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// Float64 returns a pseudo-random number in [0, 1).
func (r *RNG) Float64() float64 {
	// 53 bits of precision is all a float64 mantissa can hold.
	return float64(r.source.Uint64()>>11) / (1 << 53)
}

// Bool returns true with probability [p]. Values of [p] outside of [0, 1] are
// clamped.
func (r *RNG) Bool(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return r.Float64() < p
	}
}

// uint63 returns a random number in [0, MaxInt64]
func (r *RNG) uint63() uint64 {
	return r.source.Uint64() & math.MaxInt64
}
