// Package ingestion follows the upstream chain head and keeps bounded buffers of recent samples
// and transactions.
package ingestion

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/aggregator"
	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse-backend/internal/clock"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"github.com/goodnatureofminers/chainpulse-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Engine connects to the upstream, follows its head through a stream and a poller, and exposes
// read-only copies of what it has ingested.
type Engine struct {
	cfg        Config
	connector  Connector
	aggregator *aggregator.Aggregator
	metrics    Metrics
	observers  []SampleObserver
	logger     *zap.Logger
	sleep      func(context.Context, time.Duration) error
	backoff    clock.Backoff

	samples *batcher.Batcher[model.MetricsSample]
	txs     *batcher.Batcher[model.TransactionRecord]

	// processMu serializes HandleHead so the head check and the state update are atomic.
	processMu sync.Mutex

	mu        sync.RWMutex
	upstream  chain.Upstream
	role      string
	connected bool
	head      uint64
	history   []model.MetricsSample
	pool      []model.TransactionRecord

	lifecycleMu sync.Mutex
	started     bool
	closed      bool
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// New builds an Engine. persistence may be nil, in which case nothing is stored.
func New(
	cfg Config,
	connector Connector,
	agg *aggregator.Aggregator,
	metrics Metrics,
	persistence Persistence,
	logger *zap.Logger,
	observers ...SampleObserver,
) (*Engine, error) {
	if connector == nil {
		return nil, errors.New("ingestion connector is required")
	}
	if metrics == nil {
		return nil, errors.New("ingestion metrics is required")
	}
	if agg == nil {
		agg = aggregator.New(aggregator.DefaultThresholds())
	}
	cfg = cfg.withDefaults()

	e := &Engine{
		cfg:        cfg,
		connector:  connector,
		aggregator: agg,
		metrics:    metrics,
		observers:  observers,
		logger:     logger,
		sleep:      clock.Sleep,
		backoff:    clock.Backoff{Base: cfg.ReconnectBase, Max: cfg.ReconnectMax},
		history:    make([]model.MetricsSample, 0, cfg.HistoryCapacity),
	}

	if persistence != nil {
		e.samples = batcher.New(logger.Named("sampleBatcher"), persistence.SaveMetricsBatch, persistBatchSize, persistFlushInterval, persistRPS)
		e.txs = batcher.New(logger.Named("transactionBatcher"), persistence.SaveTransactions, persistBatchSize, persistFlushInterval, persistRPS)
	}

	return e, nil
}

// Initialize connects to the primary endpoint, falling back to the secondary, and starts the
// head stream and the poller. It returns a *ConnectivityError when no endpoint answers.
func (e *Engine) Initialize(ctx context.Context) error {
	e.lifecycleMu.Lock()
	defer e.lifecycleMu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.started {
		return ErrAlreadyInitialized
	}

	if err := e.connect(ctx); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.started = true

	if e.samples != nil {
		e.samples.Start(runCtx)
		e.txs.Start(runCtx)
	}

	if upstream := e.current(); upstream != nil {
		if latest, err := upstream.LatestHeight(ctx); err != nil {
			e.logger.Warn("initial head fetch failed", zap.Error(err))
		} else if err := e.handle(ctx, latest, sourceInit); err != nil {
			e.logger.Warn("initial block not ingested", zap.Uint64("height", latest), zap.Error(err))
		}
	}

	e.wg.Add(2)
	go func() {
		defer e.wg.Done()
		e.runStream(runCtx)
	}()
	go func() {
		defer e.wg.Done()
		e.runPoller(runCtx)
	}()

	e.logger.Info("ingestion started", zap.String("endpoint", e.Endpoint()))
	return nil
}

// Close stops both producers, flushes pending persistence and releases the upstream.
// It is safe to call more than once.
func (e *Engine) Close() {
	e.lifecycleMu.Lock()
	if e.closed {
		e.lifecycleMu.Unlock()
		return
	}
	e.closed = true
	cancel := e.cancel
	e.lifecycleMu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()

	if e.samples != nil {
		e.samples.Stop()
		e.txs.Stop()
	}

	e.mu.Lock()
	upstream, role := e.upstream, e.role
	e.upstream = nil
	e.connected = false
	e.mu.Unlock()

	if upstream != nil {
		upstream.Close()
		e.metrics.SetConnected(role, false)
	}
	e.logger.Info("ingestion stopped")
}

// connect tries every configured endpoint in order, each bounded by ConnectTimeout, and swaps in
// the first that answers.
func (e *Engine) connect(ctx context.Context) error {
	endpoints := e.cfg.endpoints()
	errs := make([]error, 0, len(endpoints))

	for _, ep := range endpoints {
		cctx, cancel := context.WithTimeout(ctx, e.cfg.ConnectTimeout)
		upstream, err := e.connector.Connect(cctx, ep.url)
		cancel()
		if err != nil {
			e.logger.Warn("upstream endpoint unreachable", zap.String("role", ep.role), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		e.mu.Lock()
		previous, previousRole := e.upstream, e.role
		e.upstream = upstream
		e.role = ep.role
		e.connected = true
		e.mu.Unlock()

		if previous != nil {
			previous.Close()
			if previousRole != ep.role {
				e.metrics.SetConnected(previousRole, false)
			}
		}
		e.metrics.SetConnected(ep.role, true)
		e.logger.Info("upstream connected", zap.String("role", ep.role))
		return nil
	}

	return &ConnectivityError{Attempted: len(endpoints), Err: errors.Join(errs...)}
}

func (e *Engine) current() chain.Upstream {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.upstream
}

func (e *Engine) setConnected(connected bool) {
	e.mu.Lock()
	changed := e.connected != connected
	e.connected = connected
	role := e.role
	e.mu.Unlock()

	if changed {
		e.metrics.SetConnected(role, connected)
	}
}
