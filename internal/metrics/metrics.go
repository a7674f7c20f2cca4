// Package metrics provides observability for the storage layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// Store operation counts by operation and outcome
	StoreOps *prometheus.CounterVec

	// Store operation latency by operation
	StoreLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all store metrics registered on
// the default registry.
func New() *Metrics {
	return &Metrics{
		StoreOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tradebook_store_operations_total",
			Help: "Total durable store operations by operation and outcome",
		}, []string{"op", "outcome"}), // op: "read", "write", "clear"

		StoreLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tradebook_store_operation_duration_seconds",
			Help:    "Duration of durable store operations by operation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),
	}
}

// ObserveStoreOp records one store operation.
func (m *Metrics) ObserveStoreOp(op string, d time.Duration, err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	m.StoreOps.WithLabelValues(op, outcome).Inc()
	m.StoreLatency.WithLabelValues(op).Observe(d.Seconds())
}
