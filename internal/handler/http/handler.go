package http

import (
	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/ratelimit"
	"github.com/akwaabahomes/passcheck/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter
	metrics  *metrics.Metrics

	// trustProxy makes chi's RealIP rewrite RemoteAddr from proxy headers.
	trustProxy bool

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil limiter disables rate limiting
// and a nil m disables instrumentation.
func NewHandler(
	services *service.Services,
	limiter ratelimit.Limiter,
	m *metrics.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		limiter:    limiter,
		metrics:    m,
		trustProxy: cfg.TrustProxyHeaders,
		logger:     logger,
	}
}
