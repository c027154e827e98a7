// Package ratelimit admits or rejects inbound requests against per-client, per-class budgets.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Budget is the number of points a key may spend per window.
type Budget struct {
	Points int
	Window time.Duration
}

// Decision is the outcome of one Consume.
type Decision struct {
	Allowed    bool
	Class      Class
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds, never below 1.
func (d Decision) RetryAfterSeconds() int {
	secs := int(math.Ceil(d.RetryAfter.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Limiter applies class budgets on top of a Store.
type Limiter struct {
	store   Store
	budgets map[Class]Budget
	now     func() time.Time
}

// NewLimiter builds a Limiter. Classes missing from budgets fall back to the general budget.
func NewLimiter(store Store, budgets map[Class]Budget) *Limiter {
	return &Limiter{store: store, budgets: budgets, now: time.Now}
}

// Budget returns the budget that applies to class.
func (l *Limiter) Budget(class Class) Budget {
	if b, ok := l.budgets[class]; ok {
		return b
	}
	return l.budgets[ClassGeneral]
}

// Consume spends one point from the (key, class) bucket.
func (l *Limiter) Consume(ctx context.Context, key string, class Class) (Decision, error) {
	budget := l.Budget(class)
	if budget.Points <= 0 || budget.Window <= 0 {
		return Decision{}, fmt.Errorf("no budget configured for class %s", class)
	}

	res, err := l.store.Consume(ctx, bucketKey(key, class), budget.Points, budget.Window)
	if err != nil {
		return Decision{}, fmt.Errorf("consume %s bucket: %w", class, err)
	}

	d := Decision{
		Allowed:   res.Allowed,
		Class:     class,
		Limit:     budget.Points,
		Remaining: max(res.Remaining, 0),
		ResetAt:   res.ResetAt,
	}
	if !d.Allowed {
		d.Remaining = 0
		d.RetryAfter = d.ResetAt.Sub(l.now())
		if d.RetryAfter < time.Second {
			d.RetryAfter = time.Second
		}
	}
	return d, nil
}

func bucketKey(key string, class Class) string {
	return string(class) + ":" + key
}
