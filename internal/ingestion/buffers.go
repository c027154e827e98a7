package ingestion

import "github.com/goodnatureofminers/chainpulse-backend/internal/model"

// appendSample adds s to history, oldest first, evicting past capacity.
func appendSample(history []model.MetricsSample, s model.MetricsSample, capacity int) []model.MetricsSample {
	history = append(history, s)
	if over := len(history) - capacity; over > 0 {
		copy(history, history[over:])
		clear(history[len(history)-over:])
		history = history[:len(history)-over]
	}
	return history
}

// prependTransactions puts txs in front of pool, newest first, trimming past capacity.
// txs are in block order, so the last one becomes the newest.
func prependTransactions(pool, txs []model.TransactionRecord, capacity int) []model.TransactionRecord {
	if len(txs) == 0 {
		return pool
	}
	out := make([]model.TransactionRecord, 0, min(len(pool)+len(txs), capacity))
	for i := len(txs) - 1; i >= 0 && len(out) < capacity; i-- {
		out = append(out, txs[i])
	}
	for i := 0; i < len(pool) && len(out) < capacity; i++ {
		out = append(out, pool[i])
	}
	return out
}

func lastSamples(history []model.MetricsSample, limit int) []model.MetricsSample {
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}
	out := make([]model.MetricsSample, limit)
	copy(out, history[len(history)-limit:])
	return out
}

func firstTransactions(pool []model.TransactionRecord, limit int) []model.TransactionRecord {
	if limit <= 0 || limit > len(pool) {
		limit = len(pool)
	}
	out := make([]model.TransactionRecord, limit)
	copy(out, pool[:limit])
	return out
}
