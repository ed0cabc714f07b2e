package http

import (
	"net/http"
	"time"

	"github.com/akwaabahomes/passcheck/internal/logger"
)

// withLogging writes one access log line per request. Request and response
// bodies are never logged since they carry passwords.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("path", path).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
