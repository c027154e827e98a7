package ingestion

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// runPoller checks the upstream head every PollInterval and feeds newer heights through the same
// handler as the stream.
func (e *Engine) runPoller(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.poll(ctx)
		}
	}
}

func (e *Engine) poll(ctx context.Context) {
	upstream := e.current()
	if upstream == nil {
		return
	}

	latest, err := upstream.LatestHeight(ctx)
	if err != nil {
		if ctx.Err() == nil {
			e.logger.Warn("poll head failed", zap.Error(err))
			e.setConnected(false)
		}
		return
	}
	e.setConnected(true)

	if latest <= e.Head() {
		return
	}
	if err := e.handle(ctx, latest, sourcePoll); err != nil {
		e.logger.Debug("polled head not ingested", zap.Uint64("height", latest), zap.Error(err))
	}
}
