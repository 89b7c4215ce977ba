package http

import (
	"net/http"

	"github.com/okanara/markov/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics bundles the Prometheus collectors of one server. Each server owns
// its registry so that tests can spin up several handlers without collector
// collisions.
type metrics struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	stateVisits *prometheus.CounterVec
	runSteps    prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "markov_simulations_total",
				Help: "Total number of simulation runs served",
			},
			[]string{"chain"},
		),
		stateVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "markov_state_visits_total",
				Help: "Total state visits across served simulations",
			},
			[]string{"chain", "state"},
		),
		runSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "markov_simulation_steps",
				Help:    "Steps per simulation run",
				Buckets: prometheus.ExponentialBuckets(10, 10, 6),
			},
		),
	}
	m.registry.MustRegister(m.simulations, m.stateVisits, m.runSteps)
	return m
}

func (m *metrics) observe(run *domain.RunRecord) {
	m.simulations.WithLabelValues(run.Chain).Inc()
	m.runSteps.Observe(float64(run.Steps))
	for state, count := range run.Counts {
		m.stateVisits.WithLabelValues(run.Chain, string(state)).Add(float64(count))
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
