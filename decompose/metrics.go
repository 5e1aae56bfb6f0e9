// SPDX-License-Identifier: MIT

package decompose

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcome label values.
const (
	outcomeFound     = "found"
	outcomeNotFound  = "not_found"
	outcomeStepLimit = "step_limit"
	outcomeError     = "error"
)

// Metrics groups the collectors a Decomposer updates. Build one per
// registry and share it between runs.
type Metrics struct {
	Searches       *prometheus.CounterVec
	CyclesFound    prometheus.Counter
	EdgesRemoved   prometheus.Counter
	EdgesRemaining prometheus.Gauge
	SearchDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cycledecomp_searches_total",
			Help: "Cycle searches performed, labelled by outcome.",
		}, []string{"outcome"}),

		CyclesFound: f.NewCounter(prometheus.CounterOpts{
			Name: "cycledecomp_cycles_found_total",
			Help: "Cycles found and removed from working graphs.",
		}),

		EdgesRemoved: f.NewCounter(prometheus.CounterOpts{
			Name: "cycledecomp_edges_removed_total",
			Help: "Edges removed from working graphs as part of found cycles.",
		}),

		EdgesRemaining: f.NewGauge(prometheus.GaugeOpts{
			Name: "cycledecomp_edges_remaining",
			Help: "Edges left in the most recently stepped working graph.",
		}),

		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cycledecomp_search_duration_seconds",
			Help:    "Wall time of a single cycle search.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
}
