package workers

import (
	"context"
	"sync"
	"time"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/ratelimit"
	"github.com/akwaabahomes/passcheck/internal/service"
)

// limiterIdle is how long an in-memory bucket may stay unused before the
// sweeper drops it. A bucket idle for this long is full again anyway.
const limiterIdle = 10 * time.Minute

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled workers. The expiry sweep is skipped when its
// interval is zero; the limiter sweep only exists for in-memory limiters.
func NewWorkers(services *service.Services, limiter ratelimit.Limiter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ExpirySweepInterval > 0 && services != nil && services.RotationService != nil {
		w.workers = append(w.workers, NewExpirySweeper(services.RotationService, cfg.ExpirySweepInterval, logger))
	}

	if sweeper, ok := limiter.(ratelimit.Sweeper); ok {
		w.workers = append(w.workers, NewLimiterSweeper(sweeper, limiterIdle, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")

	return w
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

// runEvery calls job immediately and then on every tick of interval until
// ctx is cancelled.
func runEvery(ctx context.Context, interval time.Duration, job func(ctx context.Context)) {
	job(ctx)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			job(ctx)
		}
	}
}
