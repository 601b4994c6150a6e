// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	safemath "github.com/ava-labs/goblinsim/utils/math"
)

// Accumulator is a fixed capacity binary indexed (Fenwick) tree.
//
// Node i stores the sum of the contributions applied to the positions in
// [i&(i+1), i]. Both point updates and prefix sums take O(log(n)) time, where
// n is the capacity of the tree.
type Accumulator[W Weight] struct {
	tree []W
}

// NewAccumulator returns a zeroed accumulator for exactly [n] positions.
func NewAccumulator[W Weight](n int) *Accumulator[W] {
	return &Accumulator[W]{
		tree: make([]W, n),
	}
}

// Len returns the number of positions this accumulator was created with.
func (a *Accumulator[W]) Len() int {
	return len(a.tree)
}

// Add applies [delta] to the weight stored at [index].
//
// Panics if the update overflows the weight type or drives a node negative.
// A node covers a range of positions, so a single position can still end up
// negative while every node stays non-negative; WeightedTree checks the
// position itself.
func (a *Accumulator[W]) Add(index int, delta W) error {
	return a.update(index, delta, safemath.Add[W])
}

// Sub removes [delta] from the weight stored at [index].
//
// Panics if the update underflows the weight type or drives a node negative.
func (a *Accumulator[W]) Sub(index int, delta W) error {
	return a.update(index, delta, safemath.Sub[W])
}

func (a *Accumulator[W]) update(index int, delta W, op func(W, W) (W, error)) error {
	if index < 0 || index >= len(a.tree) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(a.tree))
	}
	for ; index < len(a.tree); index |= index + 1 {
		newWeight, err := op(a.tree[index], delta)
		if err != nil {
			panic(fmt.Errorf("updating node %d by %d: %w", index, delta, err))
		}
		if newWeight < 0 {
			panic(fmt.Errorf("updating node %d by %d: %w", index, delta, ErrNegativeWeight))
		}
		a.tree[index] = newWeight
	}
	return nil
}

// Sum returns the total of all the contributions applied to the positions in
// [start, end). An empty range sums to zero.
func (a *Accumulator[W]) Sum(start, end int) (W, error) {
	if start < 0 || start > end || end > len(a.tree) {
		return 0, fmt.Errorf("%w: [%d, %d) not in [0, %d)", ErrIndexOutOfRange, start, end, len(a.tree))
	}
	return a.prefix(end) - a.prefix(start), nil
}

// prefix returns the sum of the contributions applied to [0, k).
func (a *Accumulator[W]) prefix(k int) W {
	var sum W
	for i := k - 1; i >= 0; i = i&(i+1) - 1 {
		newSum, err := safemath.Add(sum, a.tree[i])
		if err != nil {
			panic(fmt.Errorf("summing [0, %d): %w", k, err))
		}
		sum = newSum
	}
	return sum
}
