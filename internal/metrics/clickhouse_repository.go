package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "ClickHouse operations by outcome.",
	}, []string{"operation", "status"})
	storageOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainpulse",
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Help:      "Latency of ClickHouse operations.",
		Buckets:   []float64{.002, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "status"})
	storageLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainpulse",
		Subsystem: "storage",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful operation.",
	}, []string{"operation"})
)

// ClickhouseRepository observes the persistence collaborator.
type ClickhouseRepository struct{}

// NewClickhouseRepository creates a ClickhouseRepository metrics collector.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records the outcome and latency of one repository call.
func (m ClickhouseRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	storageOperationsTotal.WithLabelValues(operation, status).Inc()
	storageOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
	if err == nil {
		storageLastSuccess.WithLabelValues(operation).SetToCurrentTime()
	}
}
