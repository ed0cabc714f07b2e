package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryLimiter(t *testing.T, requests int, window time.Duration, now *time.Time) *MemoryLimiter {
	t.Helper()

	l, err := NewMemoryLimiter(requests, window)
	require.NoError(t, err)
	l.now = func() time.Time { return *now }

	return l
}

func TestNewMemoryLimiter_InvalidLimit(t *testing.T) {
	_, err := NewMemoryLimiter(-1, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestMemoryLimiter_Burst(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newTestMemoryLimiter(t, 3, time.Minute, &now)
	ctx := context.Background()

	assert.Equal(t, BackendMemory, l.Backend())

	for i := 2; i >= 0; i-- {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, i, d.Remaining)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 20*time.Second, d.RetryAfter)

	other, err := l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestMemoryLimiter_Refill(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newTestMemoryLimiter(t, 2, time.Minute, &now)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		require.True(t, d.Allowed)
	}

	d, _ := l.Allow(ctx, "k")
	require.False(t, d.Allowed)

	now = now.Add(30 * time.Second)

	d, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newTestMemoryLimiter(t, 5, time.Minute, &now)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "old")
	now = now.Add(10 * time.Minute)
	_, _ = l.Allow(ctx, "fresh")

	require.Equal(t, 2, l.Len())

	assert.Equal(t, 1, l.Sweep(5*time.Minute))
	assert.Equal(t, 1, l.Len())
	assert.Zero(t, l.Sweep(5*time.Minute))
}

func TestLimitersImplementInterfaces(t *testing.T) {
	var _ Limiter = (*RedisLimiter)(nil)
	var _ Limiter = (*MemoryLimiter)(nil)
	var _ Sweeper = (*MemoryLimiter)(nil)
}
