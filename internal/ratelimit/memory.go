package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per key. A bucket holds requests
// tokens and refills at requests per window.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	limit    rate.Limit
	requests int
	now      func() time.Time
}

func NewMemoryLimiter(requests int, window time.Duration) (*MemoryLimiter, error) {
	if err := validate(requests, window); err != nil {
		return nil, err
	}

	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		requests: requests,
		now:      time.Now,
	}, nil
}

func (l *MemoryLimiter) Backend() string {
	return BackendMemory
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()
	lim := l.getLimiter(key, now)

	if lim.AllowN(now, 1) {
		return Decision{
			Allowed:   true,
			Limit:     l.requests,
			Remaining: int(lim.TokensAt(now)),
		}, nil
	}

	missing := 1 - lim.TokensAt(now)
	retry := time.Duration(missing / float64(l.limit) * float64(time.Second))
	if retry < time.Second {
		retry = time.Second
	}

	return Decision{
		Allowed:    false,
		Limit:      l.requests,
		RetryAfter: retry,
	}, nil
}

// Sweep drops buckets that have not been used for idle and returns how many
// were removed.
func (l *MemoryLimiter) Sweep(idle time.Duration) int {
	cutoff := l.now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

func (l *MemoryLimiter) getLimiter(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.requests)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter
}
