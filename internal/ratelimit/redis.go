package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces the counters stored in Redis.
const DefaultKeyPrefix = "passcheck:rl:"

// RedisLimiter is a fixed-window counter stored in Redis. The first request
// of a window creates the key with a TTL of one window; later requests only
// increment it.
type RedisLimiter struct {
	rdb      redis.Cmdable
	prefix   string
	requests int
	window   time.Duration
}

// NewRedisLimiter allows requests calls per window for each key.
func NewRedisLimiter(rdb redis.Cmdable, requests int, window time.Duration) (*RedisLimiter, error) {
	if err := validate(requests, window); err != nil {
		return nil, err
	}

	return &RedisLimiter{
		rdb:      rdb,
		prefix:   DefaultKeyPrefix,
		requests: requests,
		window:   window,
	}, nil
}

// NewRedisClient parses a redis:// URL and returns a connected client. The
// connection is checked with PING before returning.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return rdb, nil
}

func (l *RedisLimiter) Backend() string {
	return BackendRedis
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := l.prefix + key

	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return Decision{Allowed: true, Limit: l.requests}, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	if n == 1 {
		if err = l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return Decision{Allowed: true, Limit: l.requests}, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
		}
	}

	if n <= int64(l.requests) {
		return Decision{
			Allowed:   true,
			Limit:     l.requests,
			Remaining: l.requests - int(n),
		}, nil
	}

	return Decision{
		Allowed:    false,
		Limit:      l.requests,
		RetryAfter: l.retryAfter(ctx, k),
	}, nil
}

// retryAfter reads the remaining lifetime of the window. A key that lost its
// TTL is given one again so it cannot block the client forever.
func (l *RedisLimiter) retryAfter(ctx context.Context, key string) time.Duration {
	ttl, err := l.rdb.PTTL(ctx, key).Result()
	if err != nil {
		return l.window
	}

	if ttl < 0 {
		_ = l.rdb.Expire(ctx, key, l.window).Err()
		return l.window
	}

	return ttl
}
