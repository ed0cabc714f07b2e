package workers

import (
	"context"
	"errors"
	"time"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/service"
	"github.com/akwaabahomes/passcheck/internal/store"
)

// ExpirySweeper periodically flags users whose password is older than the
// policy allows, so that their next login asks for a new one.
type ExpirySweeper struct {
	rotation service.RotationService
	interval time.Duration

	logger *logger.Logger
}

func NewExpirySweeper(rotation service.RotationService, interval time.Duration, logger *logger.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		rotation: rotation,
		interval: interval,
		logger:   logger,
	}
}

func (s *ExpirySweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("password expiry sweep started")
	runEvery(ctx, s.interval, s.sweep)
	s.logger.Info().Msg("password expiry sweep stopped")
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	flagged, err := s.rotation.MarkExpired(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if store.IsRetryable(err) {
			s.logger.Warn().Err(err).Msg("password expiry sweep failed, retrying on next tick")
			return
		}
		s.logger.Err(err).Msg("password expiry sweep failed")
		return
	}

	if flagged > 0 {
		s.logger.Info().Int64("flagged", flagged).Msg("users flagged for password rotation")
	}
}
