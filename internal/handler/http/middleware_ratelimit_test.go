package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/ratelimit"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingLimiter simulates an unreachable backend.
type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return ratelimit.Decision{Allowed: true}, ratelimit.ErrLimiterUnavailable
}

func (failingLimiter) Backend() string { return "broken" }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h *Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/password/strength", nil))
	req.RemoteAddr = remoteAddr

	rr := httptest.NewRecorder()
	h.withRateLimit(okHandler()).ServeHTTP(rr, req)
	return rr
}

func TestWithRateLimit_Memory(t *testing.T) {
	lim, err := ratelimit.NewMemoryLimiter(2, time.Minute)
	require.NoError(t, err)

	m := metrics.New("passcheck")
	h := &Handler{limiter: lim, metrics: m, logger: logger.Nop()}

	rr := hit(h, "198.51.100.4:5000")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Header().Get(headerRateLimitLimit))
	assert.Equal(t, "1", rr.Header().Get(headerRateLimitRemaining))

	rr = hit(h, "198.51.100.4:5001")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "0", rr.Header().Get(headerRateLimitRemaining))

	rr = hit(h, "198.51.100.4:5002")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "30", rr.Header().Get(headerRetryAfter))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitedRequests.WithLabelValues(ratelimit.BackendMemory)))

	// another client is unaffected
	rr = hit(h, "198.51.100.9:5000")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithRateLimit_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	lim, err := ratelimit.NewRedisLimiter(rdb, 1, 45*time.Second)
	require.NoError(t, err)
	h := &Handler{limiter: lim, logger: logger.Nop()}

	assert.Equal(t, http.StatusOK, hit(h, "192.0.2.10:1234").Code)

	rr := hit(h, "192.0.2.10:1234")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "45", rr.Header().Get(headerRetryAfter))
}

func TestWithRateLimit_FailsOpen(t *testing.T) {
	h := &Handler{limiter: failingLimiter{}, logger: logger.Nop()}

	for i := 0; i < 3; i++ {
		rr := hit(h, "192.0.2.10:1234")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get(headerRateLimitLimit))
	}
}

func TestWithRateLimit_Disabled(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	for i := 0; i < 100; i++ {
		rr := hit(h, "192.0.2.10:1234")
		require.Equal(t, http.StatusOK, rr.Code)
		require.Empty(t, rr.Header().Get(headerRateLimitLimit))
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"203.0.113.5:443", "203.0.113.5"},
		{"[2001:db8::1]:8080", "2001:db8::1"},
		{"203.0.113.5", "203.0.113.5"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remoteAddr
		req.Header.Set("X-Forwarded-For", "10.9.9.9")

		assert.Equal(t, tt.want, clientIP(req), tt.remoteAddr)
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(300*time.Millisecond))
	assert.Equal(t, 2, retryAfterSeconds(1500*time.Millisecond))
	assert.Equal(t, 60, retryAfterSeconds(time.Minute))
}
