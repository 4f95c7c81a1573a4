package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	simulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lcoh_simulations_total",
		Help: "Simulation requests handled, by outcome.",
	}, []string{"outcome"})

	simulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lcoh_simulation_duration_seconds",
		Help:    "Wall-clock time of successful simulation runs.",
		Buckets: prometheus.DefBuckets,
	})
)
