// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errInvalidMaxSteps    = errors.New("max steps must be positive")
	errInvalidInitialGold = errors.New("initial gold must not be negative")
	errInvalidProbability = errors.New("probability must be in [0, 1]")
	errMissingIncome      = errors.New("missing income function")
	errUnknownStrategy    = errors.New("unknown strategy")
)

// Strategy is how a goblin is chosen among the living ones.
type Strategy int

const (
	// Uniform chooses every living goblin with the same probability.
	Uniform Strategy = iota
	// Weighted chooses a living goblin with probability proportional to its
	// gold.
	Weighted
)

func (s Strategy) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Weighted:
		return "weighted"
	default:
		return "unknown"
	}
}

// ToStrategy is the inverse of Strategy.String()
func ToStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "uniform":
		return Uniform, nil
	case "weighted":
		return Weighted, nil
	default:
		return Uniform, fmt.Errorf("%w: %q", errUnknownStrategy, s)
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(b []byte) error {
	var err error
	*s, err = ToStrategy(string(b))
	return err
}

// IncomeFunc returns the gold a goblin owns after receiving an income, given
// the gold it owned before.
type IncomeFunc func(current int64) int64

// ConstantIncome adds [amount] gold per income.
func ConstantIncome(amount int64) IncomeFunc {
	return func(current int64) int64 {
		return current + amount
	}
}

// ProportionalIncome grows the gold of a goblin by [rate], with a gain of at
// least one gold per income.
func ProportionalIncome(rate float64) IncomeFunc {
	return func(current int64) int64 {
		gain := int64(float64(current) * rate)
		if gain < 1 {
			gain = 1
		}
		return current + gain
	}
}

// Options of the simulation model.
type Options struct {
	// MaxSteps is the maximum number of steps the model can simulate. Every
	// structure of the model is allocated for this many goblins upfront.
	MaxSteps int
	// InitialGold is the gold a newborn goblin owns.
	InitialGold int64
	// Income is applied to the gold of a lucky goblin.
	Income IncomeFunc

	// IncomeStrategy chooses the goblin that receives an income.
	IncomeStrategy Strategy
	// DeathStrategy chooses the goblin that dies.
	DeathStrategy Strategy

	// PIncome is the probability that a goblin receives an income in a step.
	PIncome float64
	// PBirth is the probability that a goblin is born in a step.
	PBirth float64
	// PDeath is the probability that a goblin dies in a step.
	PDeath float64

	// Seed of the random source. Runs with equal options are identical.
	Seed uint64
}

func (o *Options) Verify() error {
	switch {
	case o.MaxSteps <= 0:
		return fmt.Errorf("%w: %d", errInvalidMaxSteps, o.MaxSteps)
	case o.InitialGold < 0:
		return fmt.Errorf("%w: %d", errInvalidInitialGold, o.InitialGold)
	case o.Income == nil:
		return errMissingIncome
	}
	probabilities := []struct {
		name string
		p    float64
	}{
		{name: "income", p: o.PIncome},
		{name: "birth", p: o.PBirth},
		{name: "death", p: o.PDeath},
	}
	for _, prob := range probabilities {
		if prob.p < 0 || prob.p > 1 {
			return fmt.Errorf("%w: %s probability is %f", errInvalidProbability, prob.name, prob.p)
		}
	}
	for _, s := range []Strategy{o.IncomeStrategy, o.DeathStrategy} {
		if s != Uniform && s != Weighted {
			return fmt.Errorf("%w: %d", errUnknownStrategy, s)
		}
	}
	return nil
}
