package ingestion

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"go.uber.org/zap"
)

var errSubscriptionClosed = errors.New("head subscription closed")

// runStream keeps a head subscription open, reconnecting with capped exponential backoff. After
// ReconnectAttempts consecutive failures it returns and the poller is the only producer.
func (e *Engine) runStream(ctx context.Context) {
	attempt := 0
	for {
		delivered, err := e.stream(ctx)
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, chain.ErrStreamingUnsupported) {
			e.logger.Info("endpoint has no head subscriptions, relying on polling")
			return
		}
		if delivered {
			attempt = 0
		}

		attempt++
		if attempt > e.cfg.ReconnectAttempts {
			e.logger.Warn("stream reconnect attempts exhausted, relying on polling",
				zap.Int("attempts", e.cfg.ReconnectAttempts), zap.Error(err))
			e.setConnected(false)
			return
		}

		delay := e.backoff.Delay(attempt)
		e.metrics.ObserveReconnect(attempt)
		e.logger.Warn("head stream lost, reconnecting",
			zap.Int("attempt", attempt), zap.Duration("delay", delay), zap.Error(err))
		if err := e.sleep(ctx, delay); err != nil {
			return
		}

		if err := e.connect(ctx); err != nil {
			e.logger.Warn("reconnect failed", zap.Int("attempt", attempt), zap.Error(err))
			e.setConnected(false)
		}
	}
}

// stream consumes one subscription until it fails. delivered reports whether any head arrived.
func (e *Engine) stream(ctx context.Context) (delivered bool, err error) {
	upstream := e.current()
	if upstream == nil {
		return false, ErrNotInitialized
	}

	heads := make(chan uint64, headBufferSize)
	sub, err := upstream.SubscribeHeads(ctx, heads)
	if err != nil {
		return false, err
	}
	defer sub.Unsubscribe()

	e.setConnected(true)
	for {
		select {
		case <-ctx.Done():
			return delivered, ctx.Err()
		case err, ok := <-sub.Err():
			if !ok || err == nil {
				err = errSubscriptionClosed
			}
			return delivered, err
		case height := <-heads:
			delivered = true
			if err := e.handle(ctx, height, sourceStream); err != nil {
				e.logger.Debug("streamed head not ingested", zap.Uint64("height", height), zap.Error(err))
			}
		}
	}
}
