// Package clock holds the waiting primitives used by the upstream reconnect loop.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done. A done context wins even when d is not positive,
// so a cancelled reconnect loop never starts another attempt.
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
