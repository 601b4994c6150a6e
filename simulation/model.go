// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/goblinsim/utils/logging"
	"github.com/ava-labs/goblinsim/utils/sampler"
	"github.com/ava-labs/goblinsim/utils/timer"
	"github.com/ava-labs/goblinsim/utils/timer/mockable"
)

const (
	// progressInterval is the number of steps between progress logs.
	progressInterval = 10_000
	etaWindow        = 5
	etaSlowdown      = 1.0
)

var (
	errAlreadyInitialized = errors.New("model already initialized")
	errNotInitialized     = errors.New("model not initialized")
	errTooManySteps       = errors.New("steps exceed the model capacity")
	errNoSteps            = errors.New("steps must be positive")
	errNegativeGold       = errors.New("income would leave a goblin with negative gold")
)

// Model simulates a population of goblins being born, earning gold and dying.
//
// Every goblin owns one slot in two weighted collections:
//   - alive, where a living goblin weighs 1
//   - gold, where a living goblin weighs the gold it owns
//
// A dead goblin is disabled in both collections, so it can never be chosen
// again, but its gold is kept for the report.
//
// Model is not safe for concurrent use.
type Model struct {
	log     logging.Logger
	metrics *metrics
	clock   mockable.Clock

	options Options
	rng     *sampler.RNG

	alive *sampler.WeightedCollection[int64]
	gold  *sampler.WeightedCollection[int64]

	initialized bool
	deadCount   int
	start       time.Time
	elapsed     time.Duration
}

// New constructs a model according to [options]. Metrics are registered on
// [registerer].
func New(log logging.Logger, registerer prometheus.Registerer, options Options) (*Model, error) {
	if err := options.Verify(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return &Model{
		log:     log,
		metrics: m,
		options: options,
		rng:     sampler.NewSeededRNG(options.Seed),
		alive:   sampler.NewWeightedCollection[int64](options.MaxSteps),
		gold:    sampler.NewWeightedCollection[int64](options.MaxSteps),
	}, nil
}

// Init gives life to the first goblin.
func (m *Model) Init() error {
	if m.initialized {
		return errAlreadyInitialized
	}
	m.initialized = true
	m.start = m.clock.Time()
	return m.giveLife()
}

// Step advances the model by one step of simulation: a lucky goblin may
// receive an income, then a goblin may be born, then a goblin may die.
func (m *Model) Step() error {
	if !m.initialized {
		return errNotInitialized
	}
	if err := m.simIncome(); err != nil {
		return fmt.Errorf("income: %w", err)
	}
	if err := m.simBirth(); err != nil {
		return fmt.Errorf("birth: %w", err)
	}
	if err := m.simDeath(); err != nil {
		return fmt.Errorf("death: %w", err)
	}
	return nil
}

// Run initializes the model and simulates it for a total of [steps] steps,
// the first of which is the initialization.
//
// Cancellation of [ctx] is checked between steps.
func (m *Model) Run(ctx context.Context, steps int) error {
	if steps < 1 {
		return fmt.Errorf("%w: %d", errNoSteps, steps)
	}
	if steps > m.options.MaxSteps {
		return fmt.Errorf("%w: %d > %d", errTooManySteps, steps, m.options.MaxSteps)
	}
	if err := m.Init(); err != nil {
		return err
	}

	eta := timer.NewEtaTracker(etaWindow, etaSlowdown)
	for i := 1; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Step(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if i%progressInterval != 0 {
			continue
		}

		fields := []zap.Field{
			zap.Int("step", i),
			zap.Int("alive", m.aliveCount()),
			zap.Int("dead", m.deadCount),
		}
		if remaining, percent, ok := eta.AddSample(i, steps, m.clock.Time()); ok {
			fields = append(fields,
				zap.Duration("eta", remaining),
				zap.Float64("percentComplete", percent),
			)
		}
		m.log.Debug("simulating", fields...)
	}

	m.elapsed = m.clock.Since(m.start)
	m.log.Info("simulation finished",
		zap.Int("steps", steps),
		zap.Int("alive", m.aliveCount()),
		zap.Int("dead", m.deadCount),
		zap.Duration("duration", m.elapsed),
	)
	return nil
}

// Finish constructs the report of the simulation.
func (m *Model) Finish() *Report {
	return newReport(m.gold.RawValues(), m.deadCount, m.elapsed)
}

func (m *Model) simIncome() error {
	if !m.rng.Bool(m.options.PIncome) {
		return nil
	}
	goblin, ok := m.randomGoblin(m.options.IncomeStrategy)
	if !ok {
		m.metrics.emptySelections.WithLabelValues("income").Inc()
		return nil
	}
	return m.addIncome(goblin)
}

func (m *Model) simBirth() error {
	if !m.rng.Bool(m.options.PBirth) {
		return nil
	}
	return m.giveLife()
}

func (m *Model) simDeath() error {
	if !m.rng.Bool(m.options.PDeath) {
		return nil
	}
	goblin, ok := m.randomGoblin(m.options.DeathStrategy)
	if !ok {
		m.metrics.emptySelections.WithLabelValues("death").Inc()
		return nil
	}
	return m.kill(goblin)
}

func (m *Model) giveLife() error {
	goblin, err := m.alive.Push(1)
	if err != nil {
		return err
	}
	if _, err := m.gold.Push(m.options.InitialGold); err != nil {
		return err
	}

	m.metrics.births.Inc()
	m.metrics.alive.Inc()
	m.log.Verbo("goblin born",
		zap.Int("goblin", goblin),
	)
	return nil
}

func (m *Model) addIncome(goblin int) error {
	current := m.gold.RawValues()[goblin]
	next := m.options.Income(current)
	switch {
	case next < 0:
		return fmt.Errorf("%w: goblin %d from %d to %d", errNegativeGold, goblin, current, next)
	case next >= current:
		if err := m.gold.Add(goblin, next-current); err != nil {
			return err
		}
	default:
		if err := m.gold.Sub(goblin, current-next); err != nil {
			return err
		}
	}

	m.metrics.incomes.Inc()
	m.log.Verbo("goblin paid",
		zap.Int("goblin", goblin),
		zap.Int64("gold", next),
	)
	return nil
}

func (m *Model) kill(goblin int) error {
	if err := m.alive.Disable(goblin); err != nil {
		return err
	}
	if err := m.gold.Disable(goblin); err != nil {
		return err
	}

	m.deadCount++
	m.metrics.deaths.Inc()
	m.metrics.alive.Dec()
	m.log.Verbo("goblin died",
		zap.Int("goblin", goblin),
		zap.Int64("gold", m.gold.RawValues()[goblin]),
	)
	return nil
}

func (m *Model) randomGoblin(s Strategy) (int, bool) {
	if s == Weighted {
		return m.gold.Sample(m.rng)
	}
	return m.alive.Sample(m.rng)
}

func (m *Model) aliveCount() int {
	return m.alive.Len() - m.deadCount
}
