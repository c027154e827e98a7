package ratelimit

import (
	"fmt"
	"time"
)

// RateLimitExceeded describes a rejected request.
type RateLimitExceeded struct {
	Class      Class
	Limit      int
	RetryAfter time.Duration
}

func (e *RateLimitExceeded) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s: %d requests per window, retry in %s", e.Class, e.Limit, e.RetryAfter)
}
