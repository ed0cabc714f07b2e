package http

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/akwaabahomes/passcheck/internal/app"
	"github.com/akwaabahomes/passcheck/internal/logger"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
)

// withRateLimit answers 429 Too Many Requests once the client IP has used up
// its budget. When the limiter backend fails the request is let through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ip := clientIP(r)

		decision, err := h.limiter.Allow(r.Context(), ip)
		if err != nil {
			log.Warn().Err(err).Str("backend", h.limiter.Backend()).Msg("rate limiter unavailable, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set(headerRateLimitLimit, strconv.Itoa(decision.Limit))
		w.Header().Set(headerRateLimitRemaining, strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			h.metrics.Limited(h.limiter.Backend())
			log.Warn().Str("client_ip", ip).Dur("retry_after", decision.RetryAfter).Msg("rate limit exceeded")

			w.Header().Set(headerRetryAfter, strconv.Itoa(retryAfterSeconds(decision.RetryAfter)))
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr. Proxy headers are honoured
// only through chi's RealIP middleware, which rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// retryAfterSeconds rounds d up to whole seconds, never below one.
func retryAfterSeconds(d time.Duration) int {
	sec := int((d + time.Second - 1) / time.Second)
	if sec < 1 {
		return 1
	}
	return sec
}
