// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrOverflow  = errors.New("overflow")
	ErrUnderflow = errors.New("underflow")
)

// Add returns:
// 1) a + b
// 2) If there is overflow or underflow, an error
func Add[T constraints.Integer](a, b T) (T, error) {
	c := a + b
	switch {
	case b > 0 && c < a:
		return 0, ErrOverflow
	case b < 0 && c > a:
		return 0, ErrUnderflow
	}
	return c, nil
}

// Sub returns:
// 1) a - b
// 2) If there is overflow or underflow, an error
func Sub[T constraints.Integer](a, b T) (T, error) {
	c := a - b
	switch {
	case b > 0 && c > a:
		return 0, ErrUnderflow
	case b < 0 && c < a:
		return 0, ErrOverflow
	}
	return c, nil
}
