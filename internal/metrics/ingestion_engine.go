package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingestionBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "blocks_total",
		Help:      "Count of handled block heights.",
	}, []string{"status"})

	ingestionBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "block_duration_seconds",
		Help:      "Duration of handling one block height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ingestionTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "transactions_total",
		Help:      "Count of transaction fetches.",
	}, []string{"status"})

	ingestionDiscardedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "discarded_heads_total",
		Help:      "Count of heights at or below the current head.",
	}, []string{"source"})

	ingestionReconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "reconnects_total",
		Help:      "Count of stream reconnect attempts by attempt number.",
	}, []string{"attempt"})

	ingestionHead = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "head_height",
		Help:      "Highest processed block height.",
	})

	ingestionConnected = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "upstream_connected",
		Help:      "1 while the engine holds a working upstream of the given role.",
	}, []string{"endpoint"})

	ingestionBuffered = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainpulse",
		Subsystem: "ingestion",
		Name:      "buffered_items",
		Help:      "Items held in the in-memory buffers.",
	}, []string{"buffer"})
)

// IngestionEngine tracks metrics for the ingestion engine.
type IngestionEngine struct{}

// NewIngestionEngine constructs an IngestionEngine collector.
func NewIngestionEngine() *IngestionEngine {
	return &IngestionEngine{}
}

// ObserveBlock records one handled height.
func (m IngestionEngine) ObserveBlock(err error, started time.Time) {
	status := statusOf(err)
	ingestionBlocksTotal.WithLabelValues(status).Inc()
	ingestionBlockDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveTransaction records one transaction fetch.
func (m IngestionEngine) ObserveTransaction(err error) {
	status := statusOf(err)
	ingestionTransactionsTotal.WithLabelValues(status).Inc()
}

// ObserveDiscard records a stale or duplicate height.
func (m IngestionEngine) ObserveDiscard(source string) {
	ingestionDiscardedTotal.WithLabelValues(source).Inc()
}

// ObserveReconnect records a stream reconnect attempt.
func (m IngestionEngine) ObserveReconnect(attempt int) {
	ingestionReconnectsTotal.WithLabelValues(strconv.Itoa(attempt)).Inc()
}

// SetHead publishes the processed head height.
func (m IngestionEngine) SetHead(height uint64) {
	ingestionHead.Set(float64(height))
}

// SetConnected publishes upstream connectivity for an endpoint role.
func (m IngestionEngine) SetConnected(endpoint string, connected bool) {
	v := 0.0
	if connected {
		v = 1
	}
	ingestionConnected.WithLabelValues(endpoint).Set(v)
}

// SetBuffers publishes buffer occupancy.
func (m IngestionEngine) SetBuffers(history, pool int) {
	ingestionBuffered.WithLabelValues("history").Set(float64(history))
	ingestionBuffered.WithLabelValues("pool").Set(float64(pool))
}
