package handler

import (
	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/handler/http"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/ratelimit"
	"github.com/akwaabahomes/passcheck/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds every transport handler that has a listen address
// configured.
func NewHandlers(
	services *service.Services,
	limiter ratelimit.Limiter,
	m *metrics.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, m, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
