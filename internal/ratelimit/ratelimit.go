package ratelimit

import (
	"context"
	"fmt"

	"github.com/akwaabahomes/passcheck/internal/config"
)

// New picks the limiter for cfg. A Redis URL selects the shared fixed-window
// limiter, otherwise buckets are kept in process. A zero request budget
// disables limiting and returns a nil Limiter.
//
// The returned close function releases the Redis connection and is never nil.
func New(ctx context.Context, cfg config.RateLimit, redisURL string) (Limiter, func() error, error) {
	noop := func() error { return nil }

	if cfg.Requests == 0 {
		return nil, noop, nil
	}

	if redisURL == "" {
		l, err := NewMemoryLimiter(cfg.Requests, cfg.Window)
		if err != nil {
			return nil, noop, err
		}
		return l, noop, nil
	}

	rdb, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		return nil, noop, fmt.Errorf("error connecting rate limit store: %w", err)
	}

	l, err := NewRedisLimiter(rdb, cfg.Requests, cfg.Window)
	if err != nil {
		_ = rdb.Close()
		return nil, noop, err
	}
	return l, rdb.Close, nil
}
