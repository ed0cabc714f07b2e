// Package metrics owns the Prometheus collectors exported on /metrics.
//
// Every recording method is safe to call on a nil *Metrics, so components
// can be built without instrumentation in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Evaluation sources used as the "source" label.
const (
	SourceAPI      = "api"
	SourceRegister = "register"
	SourceChange   = "change"
	SourceGenerate = "generate"
)

// Metrics holds all application metrics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	EvaluationScores    *prometheus.HistogramVec
	PasswordsRejected   *prometheus.CounterVec
	PasswordsGenerated  prometheus.Counter
	ExpiredFlagged      prometheus.Counter
	RateLimitedRequests *prometheus.CounterVec
}

// New creates the collectors on a private registry that also carries the Go
// runtime and process collectors.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "route"}),

		EvaluationScores: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "strength",
			Name:      "score",
			Help:      "Distribution of password strength scores",
			Buckets:   []float64{0, 1, 2, 3, 4},
		}, []string{"source"}),
		PasswordsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "strength",
			Name:      "rejected_total",
			Help:      "Passwords rejected by policy or reuse checks",
		}, []string{"source", "reason"}),
		PasswordsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "strength",
			Name:      "generated_total",
			Help:      "Total number of generated passwords",
		}),
		ExpiredFlagged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rotation",
			Name:      "expired_flagged_total",
			Help:      "Users flagged for a mandatory password change",
		}),
		RateLimitedRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}, []string{"backend"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveScore records an evaluation score.
func (m *Metrics) ObserveScore(source string, score int) {
	if m == nil {
		return
	}
	m.EvaluationScores.WithLabelValues(source).Observe(float64(score))
}

// Rejected counts a password refused for reason ("policy" or "reuse").
func (m *Metrics) Rejected(source, reason string) {
	if m == nil {
		return
	}
	m.PasswordsRejected.WithLabelValues(source, reason).Inc()
}

// Generated counts a generated password.
func (m *Metrics) Generated() {
	if m == nil {
		return
	}
	m.PasswordsGenerated.Inc()
}

// Flagged adds n users flagged by the expiry sweep.
func (m *Metrics) Flagged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ExpiredFlagged.Add(float64(n))
}

// Limited counts a request rejected by the named limiter backend.
func (m *Metrics) Limited(backend string) {
	if m == nil {
		return
	}
	m.RateLimitedRequests.WithLabelValues(backend).Inc()
}
