package ingestion

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/aggregator"
	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"github.com/goodnatureofminers/chainpulse-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// HandleHead ingests the block at height. Heights at or below the current head are discarded,
// which is the only deduplication between the stream and the poller.
func (e *Engine) HandleHead(ctx context.Context, height uint64) error {
	return e.handle(ctx, height, sourceStream)
}

func (e *Engine) handle(ctx context.Context, height uint64, source string) (err error) {
	e.processMu.Lock()
	defer e.processMu.Unlock()

	if height <= e.Head() {
		e.metrics.ObserveDiscard(source)
		e.logger.Debug("stale head discarded", zap.Uint64("height", height), zap.String("source", source))
		return nil
	}

	upstream := e.current()
	if upstream == nil {
		return ErrNotInitialized
	}

	started := time.Now()
	defer func() {
		e.metrics.ObserveBlock(err, started)
	}()

	block, err := upstream.FetchBlock(ctx, height)
	if err != nil {
		fetchErr := &TransientFetchError{Op: "fetch block", Height: height, Err: err}
		e.logger.Warn("block fetch failed", zap.Uint64("height", height), zap.String("source", source), zap.Error(err))
		return fetchErr
	}

	sample := e.buildSample(ctx, upstream, block)

	e.mu.Lock()
	e.history = appendSample(e.history, sample, e.cfg.HistoryCapacity)
	e.head = height
	historyLen, poolLen := len(e.history), len(e.pool)
	e.mu.Unlock()

	e.metrics.SetHead(height)
	e.metrics.SetBuffers(historyLen, poolLen)

	if e.samples != nil && !e.samples.Offer(sample) {
		e.logger.Warn("sample dropped from persistence queue", zap.Uint64("height", height))
	}
	for _, o := range e.observers {
		o.ObserveSample(ctx, sample)
	}

	txs := e.fetchTransactions(ctx, upstream, block)

	e.mu.Lock()
	e.pool = prependTransactions(e.pool, txs, e.cfg.PoolCapacity)
	historyLen, poolLen = len(e.history), len(e.pool)
	e.mu.Unlock()

	e.metrics.SetBuffers(historyLen, poolLen)
	if e.txs != nil {
		for _, tx := range txs {
			if !e.txs.Offer(tx) {
				e.logger.Warn("transaction dropped from persistence queue", zap.String("tx", tx.Hash))
			}
		}
	}

	e.logger.Debug("block ingested",
		zap.Uint64("height", height),
		zap.String("source", source),
		zap.Int("transactions", len(txs)),
		zap.Float64("tps", sample.TPS),
		zap.Float64("health", sample.NetworkHealth),
	)
	return nil
}

// buildSample computes the sample for block over the recent history. A computation failure
// yields zero-valued metrics; BlockNumber and Timestamp are always kept.
func (e *Engine) buildSample(ctx context.Context, upstream chain.Upstream, block *chain.Block) model.MetricsSample {
	e.mu.RLock()
	window := lastSamples(e.history, aggregator.TPSWindow-1)
	poolSize := len(e.pool)
	var lastGasPrice float64
	if n := len(e.history); n > 0 {
		lastGasPrice = e.history[n-1].GasPrice
	}
	e.mu.RUnlock()

	gasPrice, err := upstream.GasPrice(ctx)
	if err != nil {
		e.logger.Warn("gas price fetch failed, keeping last value", zap.Uint64("height", block.Number), zap.Error(err))
		gasPrice = lastGasPrice
	}

	gasRatio := aggregator.GasRatio(block.GasUsed, block.GasLimit)
	sample := model.MetricsSample{
		BlockNumber:       block.Number,
		GasPrice:          gasPrice,
		TotalTransactions: poolSize,
		BlockTransactions: len(block.TxHashes),
		GasUtilization:    gasRatio,
		Timestamp:         block.Timestamp,
	}

	values, err := e.aggregator.Compute(append(window, sample), gasRatio)
	if err != nil {
		e.logger.Error("metrics computation failed, using zero sample", zap.Uint64("height", block.Number), zap.Error(err))
		return model.MetricsSample{
			BlockNumber: block.Number,
			Timestamp:   block.Timestamp,
		}
	}

	sample.TPS = values.TPS
	sample.BlockTime = values.BlockTime
	sample.NetworkHealth = values.NetworkHealth
	return sample
}

// fetchTransactions loads up to TxPerBlock transactions of block concurrently. Failed fetches are
// logged and skipped.
func (e *Engine) fetchTransactions(ctx context.Context, upstream chain.Upstream, block *chain.Block) []model.TransactionRecord {
	hashes := block.TxHashes
	if len(hashes) > e.cfg.TxPerBlock {
		hashes = hashes[:e.cfg.TxPerBlock]
	}
	if len(hashes) == 0 {
		return nil
	}

	txs, err := workerpool.Map(ctx, e.cfg.TxWorkers, hashes,
		func(ctx context.Context, hash string) (model.TransactionRecord, error) {
			rec, err := upstream.FetchTransaction(ctx, hash, block)
			e.metrics.ObserveTransaction(err)
			if err != nil {
				return rec, &TransientFetchError{Op: "fetch transaction", Height: block.Number, Hash: hash, Err: err}
			}
			return rec, nil
		},
		func(hash string, err error) {
			e.logger.Warn("transaction skipped", zap.String("tx", hash), zap.Error(err))
		},
	)
	if err != nil {
		e.logger.Warn("transaction fetch interrupted", zap.Uint64("height", block.Number), zap.Error(err))
	}
	return txs
}
