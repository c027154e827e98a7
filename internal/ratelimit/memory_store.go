package ratelimit

import (
	"context"
	"sync"
	"time"
)

const sweepEvery = 1024

type bucket struct {
	remaining int
	resetAt   time.Time
}

// MemoryStore keeps fixed-window buckets in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	calls   int
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*bucket), now: time.Now}
}

// Consume implements Store.
func (s *MemoryStore) Consume(_ context.Context, key string, points int, window time.Duration) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.calls++
	if s.calls%sweepEvery == 0 {
		s.sweep(now)
	}

	b, ok := s.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = &bucket{remaining: points, resetAt: now.Add(window)}
		s.buckets[key] = b
	}

	if b.remaining <= 0 {
		return Result{Allowed: false, Remaining: 0, ResetAt: b.resetAt}, nil
	}
	b.remaining--
	return Result{Allowed: true, Remaining: b.remaining, ResetAt: b.resetAt}, nil
}

func (s *MemoryStore) sweep(now time.Time) {
	for key, b := range s.buckets {
		if !now.Before(b.resetAt) {
			delete(s.buckets, key)
		}
	}
}
