package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/store"
	"github.com/akwaabahomes/passcheck/internal/strength"
)

type rotationService struct {
	userRepository store.UserRepository
	maxAge         time.Duration

	now     func() time.Time
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewRotationService returns a RotationService enforcing policy.MaxAgeDays.
// A non-positive MaxAgeDays turns MarkExpired into a no-op.
func NewRotationService(userRepository store.UserRepository, policy strength.Policy, m *metrics.Metrics, logger *logger.Logger) RotationService {
	return &rotationService{
		userRepository: userRepository,
		maxAge:         time.Duration(max(policy.MaxAgeDays, 0)) * 24 * time.Hour,
		now:            time.Now,
		metrics:        m,
		logger:         logger,
	}
}

func (s *rotationService) MarkExpired(ctx context.Context) (int64, error) {
	if s.maxAge == 0 {
		return 0, nil
	}

	before := s.now().Add(-s.maxAge)
	flagged, err := s.userRepository.MarkExpiredPasswords(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("flagging expired passwords failed: %w", err)
	}

	s.metrics.Flagged(flagged)
	if flagged > 0 {
		s.logger.Info().Int64("flagged", flagged).Time("changed_before", before).Msg("passwords flagged for rotation")
	}

	return flagged, nil
}
