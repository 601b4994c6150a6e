// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	safemath "github.com/ava-labs/goblinsim/utils/math"
)

// WeightedCollection pairs the raw value of every slot with a WeightedTree
// that samples slots proportionally to the values of the slots that are still
// enabled.
//
// Disabling a slot removes it from sampling but keeps its raw value, so
// reporting can still observe the value the slot had when it was disabled.
type WeightedCollection[W Weight] struct {
	values   []W
	disabled []bool
	tree     *WeightedTree[W]
}

func NewWeightedCollection[W Weight](n int) *WeightedCollection[W] {
	return &WeightedCollection[W]{
		values:   make([]W, 0, n),
		disabled: make([]bool, 0, n),
		tree:     NewWeightedTree[W](n),
	}
}

// Len returns the number of slots that have been pushed, including disabled
// slots.
func (c *WeightedCollection[W]) Len() int {
	return len(c.values)
}

// Total returns the sum of the values of every enabled slot.
func (c *WeightedCollection[W]) Total() W {
	return c.tree.Total()
}

// Push appends [value] as a new slot and returns the slot's index.
//
// Panics if [value] is negative.
func (c *WeightedCollection[W]) Push(value W) (int, error) {
	if err := c.tree.Push(value); err != nil {
		return 0, err
	}
	c.values = append(c.values, value)
	c.disabled = append(c.disabled, false)
	return len(c.values) - 1, nil
}

// Add increases the value of [index] by [delta]. Disabled slots can't be
// updated.
//
// Panics if the value of [index] would overflow or become negative.
func (c *WeightedCollection[W]) Add(index int, delta W) error {
	return c.update(index, delta, safemath.Add[W], c.tree.Add)
}

// Sub decreases the value of [index] by [delta]. Disabled slots can't be
// updated.
//
// Panics if the value of [index] would underflow or become negative.
func (c *WeightedCollection[W]) Sub(index int, delta W) error {
	return c.update(index, delta, safemath.Sub[W], c.tree.Sub)
}

func (c *WeightedCollection[W]) update(
	index int,
	delta W,
	op func(W, W) (W, error),
	treeOp func(int, W) error,
) error {
	if err := c.verifyIndex(index); err != nil {
		return err
	}
	if c.disabled[index] {
		return fmt.Errorf("%w: %d", ErrDisabled, index)
	}
	newValue, err := op(c.values[index], delta)
	if err != nil {
		panic(fmt.Errorf("updating slot %d by %d: %w", index, delta, err))
	}
	if newValue < 0 {
		panic(fmt.Errorf("updating slot %d by %d: %w", index, delta, ErrNegativeWeight))
	}
	if err := treeOp(index, delta); err != nil {
		return err
	}
	c.values[index] = newValue
	return nil
}

// Disable removes [index] from sampling. The raw value of [index] is kept.
func (c *WeightedCollection[W]) Disable(index int) error {
	if err := c.verifyIndex(index); err != nil {
		return err
	}
	if c.disabled[index] {
		return fmt.Errorf("%w: %d", ErrDisabled, index)
	}
	if err := c.tree.Sub(index, c.values[index]); err != nil {
		return err
	}
	c.disabled[index] = true
	return nil
}

// Disabled returns true if [index] was disabled.
func (c *WeightedCollection[W]) Disabled(index int) bool {
	return index >= 0 && index < len(c.disabled) && c.disabled[index]
}

// Sample returns an enabled slot with probability proportional to its value.
// If no slot has a positive value, false is returned.
func (c *WeightedCollection[W]) Sample(u Uniform) (int, bool) {
	return c.tree.WeightedIndex(u)
}

// RawValues returns the value of every slot, including disabled slots.
//
// The returned slice is owned by the collection and must not be modified.
func (c *WeightedCollection[W]) RawValues() []W {
	return c.values
}

func (c *WeightedCollection[W]) verifyIndex(index int) error {
	if index < 0 || index >= len(c.values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.values))
	}
	return nil
}
