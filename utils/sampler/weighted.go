// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrDisabled         = errors.New("slot already disabled")
	ErrNegativeWeight   = errors.New("negative weight")
)

// Weight is the numeric type that can be stored and sampled by the weighted
// structures in this package.
//
// The zero value is the additive identity and 1 is the smallest positive
// increment, which is the lower bound of every sampling draw.
type Weight interface {
	constraints.Integer
}

// draw returns a value uniformly distributed in [1, total].
//
// Assumes [total] > 0.
func draw[W Weight](u Uniform, total W) W {
	return 1 + W(u.Uint64Inclusive(uint64(total-1)))
}
