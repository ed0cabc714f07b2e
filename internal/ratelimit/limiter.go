package ratelimit

import (
	"context"
	"errors"
	"time"
)

// Backend names reported to metrics and logs.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var (
	// ErrInvalidLimit is returned when the request budget or the window is
	// not positive.
	ErrInvalidLimit = errors.New("rate limit requests and window must be positive")

	// ErrLimiterUnavailable wraps a backend failure. Callers usually let the
	// request through when they see it.
	ErrLimiterUnavailable = errors.New("rate limiter backend unavailable")
)

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed bool

	// Limit is the number of requests allowed per window.
	Limit int

	// Remaining is how many requests the key may still make in the current
	// window. It is zero once the key is limited.
	Remaining int

	// RetryAfter is how long the caller should wait before retrying. It is
	// only set when Allowed is false.
	RetryAfter time.Duration
}

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)

	// Backend names the storage behind the limiter.
	Backend() string
}

// Sweeper is implemented by limiters that keep per-key state in memory and
// need idle keys dropped from time to time.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

func validate(requests int, window time.Duration) error {
	if requests <= 0 || window <= 0 {
		return ErrInvalidLimit
	}
	return nil
}
