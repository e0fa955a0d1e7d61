package ui

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jdziat/jobs-filter/pkg/core"
)

type metrics struct {
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobs_filter_queries_total",
			Help: "Filter requests by state parameter and outcome.",
		}, []string{"state", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jobs_filter_query_duration_seconds",
			Help:    "Time to read the store and build a filter.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.queries, m.duration)
	return m
}

// stateLabel bounds the label's cardinality to the known state names.
func stateLabel(state string) string {
	if state == "" {
		return "all"
	}
	if core.State(state) == core.StateFinished {
		return state
	}
	if _, ok := core.ParseState(state); ok {
		return state
	}
	return "unknown"
}
