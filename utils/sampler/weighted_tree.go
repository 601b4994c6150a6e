// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	safemath "github.com/ava-labs/goblinsim/utils/math"
)

// WeightedTree samples indices with probability proportional to their
// current weight.
//
// Indices are appended with Push and are never removed. An index whose weight
// has been reduced to zero can no longer be sampled.
//
// Push, Add and Sub take O(log(n)) time. Sampling takes O(log(n)) accumulator
// queries.
type WeightedTree[W Weight] struct {
	acc *Accumulator[W]
	len int
}

func NewWeightedTree[W Weight](n int) *WeightedTree[W] {
	return &WeightedTree[W]{
		acc: NewAccumulator[W](n),
	}
}

// Len returns the number of indices that have been pushed.
func (t *WeightedTree[W]) Len() int {
	return t.len
}

// Cap returns the maximum number of indices that can be pushed.
func (t *WeightedTree[W]) Cap() int {
	return t.acc.Len()
}

// Push appends a new index with the provided weight.
//
// Panics if [weight] is negative.
func (t *WeightedTree[W]) Push(weight W) error {
	if t.len == t.acc.Len() {
		return fmt.Errorf("%w: %d", ErrCapacityExceeded, t.acc.Len())
	}
	if weight < 0 {
		panic(fmt.Errorf("pushing %d: %w", weight, ErrNegativeWeight))
	}
	if err := t.acc.Add(t.len, weight); err != nil {
		return err
	}
	t.len++
	return nil
}

// Add increases the weight of [index] by [delta].
//
// Panics if the weight of [index] would overflow or become negative.
func (t *WeightedTree[W]) Add(index int, delta W) error {
	return t.update(index, delta, safemath.Add[W], t.acc.Add)
}

// Sub decreases the weight of [index] by [delta].
//
// Panics if the weight of [index] would underflow or become negative.
func (t *WeightedTree[W]) Sub(index int, delta W) error {
	return t.update(index, delta, safemath.Sub[W], t.acc.Sub)
}

func (t *WeightedTree[W]) update(
	index int,
	delta W,
	op func(W, W) (W, error),
	accOp func(int, W) error,
) error {
	if err := t.verifyIndex(index); err != nil {
		return err
	}
	// A node of the accumulator can cover several indices, so a negative
	// index weight isn't always visible as a negative node.
	weight, err := t.acc.Sum(index, index+1)
	if err != nil {
		return err
	}
	newWeight, err := op(weight, delta)
	if err != nil {
		panic(fmt.Errorf("updating index %d by %d: %w", index, delta, err))
	}
	if newWeight < 0 {
		panic(fmt.Errorf("updating index %d by %d: %w", index, delta, ErrNegativeWeight))
	}
	return accOp(index, delta)
}

// Weight returns the current weight of [index].
func (t *WeightedTree[W]) Weight(index int) (W, error) {
	if err := t.verifyIndex(index); err != nil {
		return 0, err
	}
	return t.acc.Sum(index, index+1)
}

// Total returns the sum of the weights of every pushed index.
func (t *WeightedTree[W]) Total() W {
	total, _ := t.acc.Sum(0, t.len)
	return total
}

// WeightedIndex returns an index with probability proportional to its current
// weight. If every index has zero weight, false is returned.
//
// Exactly one value is drawn from [u] when the total weight is non-zero and
// none is drawn otherwise.
//
// When the drawn value lands exactly on the boundary between two halves of the
// search window, the lower half is chosen.
func (t *WeightedTree[W]) WeightedIndex(u Uniform) (int, bool) {
	total := t.Total()
	if total == 0 {
		return 0, false
	}

	need := draw(u, total)
	a, b := 0, t.len
	for b-a > 1 {
		half := a + (b-a)/2
		// The window is always within [0, len), so the range is valid.
		s, _ := t.acc.Sum(a, half)
		if s < need {
			need -= s
			a = half
		} else {
			b = half
		}
	}
	return a, true
}

func (t *WeightedTree[W]) verifyIndex(index int) error {
	if index < 0 || index >= t.len {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, t.len)
	}
	return nil
}
