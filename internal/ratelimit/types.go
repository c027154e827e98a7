package ratelimit

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is an atomic counter with expiry shared by every admission instance.
	Store interface {
		Consume(ctx context.Context, key string, points int, window time.Duration) (Result, error)
	}
	Metrics interface {
		ObserveDecision(class string, allowed bool)
		ObserveStoreError(class string)
	}
)

// Result is the bucket state after one consume attempt. A rejected attempt leaves the bucket
// unchanged.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}
