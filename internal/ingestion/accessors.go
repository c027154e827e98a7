package ingestion

import (
	"github.com/goodnatureofminers/chainpulse-backend/internal/aggregator"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

// CurrentMetrics returns the newest sample, if any.
func (e *Engine) CurrentMetrics() (model.MetricsSample, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.history) == 0 {
		return model.MetricsSample{}, false
	}
	return e.history[len(e.history)-1], true
}

// MetricsHistory returns up to limit of the newest samples, oldest first. limit <= 0 means all.
func (e *Engine) MetricsHistory(limit int) []model.MetricsSample {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return lastSamples(e.history, limit)
}

// RecentTransactions returns up to limit transactions, newest first. limit <= 0 means all.
func (e *Engine) RecentTransactions(limit int) []model.TransactionRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return firstTransactions(e.pool, limit)
}

// ProcessedMetrics summarizes the newest TPSWindow samples.
func (e *Engine) ProcessedMetrics() model.ProcessedMetrics {
	return aggregator.Summarize(e.MetricsHistory(aggregator.TPSWindow))
}

// Head returns the highest processed height.
func (e *Engine) Head() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.head
}

// Connected reports whether the last upstream interaction succeeded.
func (e *Engine) Connected() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.connected
}

// Endpoint names the active endpoint role, primary or fallback.
func (e *Engine) Endpoint() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.role
}
