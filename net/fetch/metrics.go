// File: metrics.go
// Title: Fetch Metrics
// Description: Prometheus request counter and latency histogram.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-09
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-09 v0.1.0: Initial implementation

package fetch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes used as the "outcome" label
const (
	OutcomeOK              = "ok"
	OutcomeInvalidResponse = "invalid_response"
	OutcomeRequestFailed   = "request_failed"
)

// Metrics holds the collectors of one client
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates and registers the fetch collectors on reg. A nil reg
// creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gopress_fetch_requests_total",
				Help: "Number of fetch requests by outcome.",
			},
			[]string{"outcome"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gopress_fetch_duration_seconds",
				Help:    "Duration of fetch requests.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *Metrics) observe(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
