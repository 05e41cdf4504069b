// Package metrics exposes Prometheus collectors for search outcomes.
//
// The benchmark driver observes every timed call; the collected families can be
// exported to a node_exporter textfile after a run. A nil *Metrics is valid and
// records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lvlpath"

// Outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeCapped   = "capped"
	OutcomeTimeout  = "timeout"
)

// Metrics groups the collectors of one registry.
type Metrics struct {
	reg prometheus.Gatherer

	SearchDuration *prometheus.HistogramVec
	SearchesTotal  *prometheus.CounterVec
	PathLength     *prometheus.HistogramVec
}

// New registers the collectors on reg. Passing a fresh prometheus.NewRegistry
// keeps repeated runs in one process independent.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		SearchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall-clock duration of one fixed-length path search",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
			},
			[]string{"algorithm", "outcome"},
		),
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of fixed-length path searches",
			},
			[]string{"algorithm", "outcome"},
		),
		PathLength: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_length",
				Help:      "Vertex count of the paths found",
				Buckets:   prometheus.LinearBuckets(1, 10, 11),
			},
			[]string{"algorithm"},
		),
	}
}

// Observe records one search call.
// pathLen is only recorded for OutcomeFound.
func (m *Metrics) Observe(algorithm, outcome string, d time.Duration, pathLen int) {
	if m == nil {
		return
	}
	m.SearchDuration.WithLabelValues(algorithm, outcome).Observe(d.Seconds())
	m.SearchesTotal.WithLabelValues(algorithm, outcome).Inc()
	if outcome == OutcomeFound {
		m.PathLength.WithLabelValues(algorithm).Observe(float64(pathLen))
	}
}

// WriteTextfile writes every collected family in the text exposition format,
// atomically, for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.reg)
}
