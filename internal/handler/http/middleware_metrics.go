package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match any route, so that
// arbitrary paths cannot blow up metric cardinality.
const unmatchedRoute = "unmatched"

// withMetrics records the request count and latency by route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.ObserveHTTP(r.Method, route, lw.Status(), time.Since(start))
	})
}
