package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store with a fixed window counter per key, shared
// across instances.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore creates a limiter store backed by the given Redis client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Allow increments the counter for the current window and compares it to the
// limit. The key expires one window after its last use so idle clients cost
// nothing.
func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	now := time.Now()
	windowIndex := now.UnixNano() / int64(window)
	bucket := fmt.Sprintf("ratelimit:%s:%d", key, windowIndex)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, bucket)
	pipe.Expire(ctx, bucket, window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit check for %q: %w", key, err)
	}

	count := int(incr.Val())
	resetAt := time.Unix(0, (windowIndex+1)*int64(window))

	if count > limit {
		return &Result{Allowed: false, Limit: limit, Remaining: 0, ResetAt: resetAt}, nil
	}
	return &Result{Allowed: true, Limit: limit, Remaining: limit - count, ResetAt: resetAt}, nil
}
