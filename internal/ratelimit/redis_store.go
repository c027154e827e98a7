package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "chainpulse:ratelimit:"

// consumeScript increments the counter only while it is below the limit, so a rejection never
// mutates the bucket. It returns {allowed, count, ttl_ms}.
var consumeScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= limit then
  local ttl = redis.call('PTTL', KEYS[1])
  if ttl < 0 then ttl = window end
  return {0, current, ttl}
end
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], window)
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], window)
  ttl = window
end
return {1, count, ttl}
`)

// RedisStore keeps buckets in Redis so every instance shares one budget.
type RedisStore struct {
	client redis.Scripter
	now    func() time.Time
}

// NewRedisStore wraps a go-redis client.
func NewRedisStore(client redis.Scripter) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// Consume implements Store.
func (s *RedisStore) Consume(ctx context.Context, key string, points int, window time.Duration) (Result, error) {
	started := s.now()
	raw, err := consumeScript.Run(ctx, s.client, []string{redisKeyPrefix + key}, points, window.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("run consume script: %w", err)
	}
	if len(raw) != 3 {
		return Result{}, fmt.Errorf("unexpected consume reply %v", raw)
	}

	return Result{
		Allowed:   raw[0] == 1,
		Remaining: max(points-int(raw[1]), 0),
		ResetAt:   started.Add(time.Duration(raw[2]) * time.Millisecond),
	}, nil
}
