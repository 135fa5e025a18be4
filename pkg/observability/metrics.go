package observability

import (
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeError labels runs that stopped on a fatal error.
const OutcomeError = "error"

// Metrics holds the Prometheus collectors fed by run hooks.
type Metrics struct {
	Steps     *prometheus.CounterVec
	Halts     *prometheus.CounterVec
	Runs      *prometheus.CounterVec
	RunLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labyrinth_steps_total",
				Help: "Total number of transitions taken, by symbol",
			},
			[]string{"symbol"},
		),
		Halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labyrinth_halts_total",
				Help: "Runs stopped by an undefined transition, by state",
			},
			[]string{"state"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labyrinth_runs_total",
				Help: "Finished runs, by outcome",
			},
			[]string{"outcome"},
		),
		RunLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "labyrinth_run_length",
				Help:    "Number of states visited per run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Steps, m.Halts, m.Runs, m.RunLength)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			m.Steps.WithLabelValues(e.SymbolName).Inc()
		},
		OnHalt: func(e *domain.StepEvent) {
			m.Halts.WithLabelValues(e.FromName).Inc()
		},
		OnFinish: func(e *domain.RunEvent) {
			if e.Err != nil {
				m.Runs.WithLabelValues(OutcomeError).Inc()
				return
			}
			m.Runs.WithLabelValues(string(e.Outcome)).Inc()
			m.RunLength.Observe(float64(e.Steps))
		},
	}
}
