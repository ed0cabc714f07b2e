package workers

import (
	"context"
	"time"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/ratelimit"
)

// LimiterSweeper drops idle buckets from an in-memory rate limiter so that
// one-off clients do not accumulate.
type LimiterSweeper struct {
	sweeper ratelimit.Sweeper
	idle    time.Duration

	logger *logger.Logger
}

func NewLimiterSweeper(sweeper ratelimit.Sweeper, idle time.Duration, logger *logger.Logger) *LimiterSweeper {
	return &LimiterSweeper{
		sweeper: sweeper,
		idle:    idle,
		logger:  logger,
	}
}

// Run sweeps every idle period until ctx is cancelled.
func (s *LimiterSweeper) Run(ctx context.Context) {
	runEvery(ctx, s.idle, func(context.Context) {
		if removed := s.sweeper.Sweep(s.idle); removed > 0 {
			s.logger.Debug().Int("removed", removed).Msg("idle rate limit buckets dropped")
		}
	})
}
