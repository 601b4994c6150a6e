// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulation

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/goblinsim/utils/wrappers"
)

const namespace = "goblinsim"

type metrics struct {
	births          prometheus.Counter
	deaths          prometheus.Counter
	incomes         prometheus.Counter
	emptySelections *prometheus.CounterVec
	alive           prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		births: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "births",
			Help:      "Number of goblins born",
		}),
		deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deaths",
			Help:      "Number of goblins killed",
		}),
		incomes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incomes",
			Help:      "Number of incomes paid",
		}),
		emptySelections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "empty_selections",
				Help:      "Number of steps where no goblin could be chosen",
			},
			[]string{"event"},
		),
		alive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alive",
			Help:      "Number of living goblins",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.births),
		registerer.Register(m.deaths),
		registerer.Register(m.incomes),
		registerer.Register(m.emptySelections),
		registerer.Register(m.alive),
	)
	return m, errs.Err
}
