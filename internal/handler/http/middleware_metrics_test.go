package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWithMetrics_UsesRoutePattern(t *testing.T) {
	m := metrics.New("passcheck")
	h := &Handler{metrics: m, logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/api/items/1", "/api/items/2", "/elsewhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/items/{id}", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
}

func TestWithMetrics_NilMetrics(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr := httptest.NewRecorder()
	h.withMetrics(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
