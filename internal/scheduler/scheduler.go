package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Refresher defines the interface for the periodic job.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// NewScheduler runs refresher every interval; each run is bounded by timeout
// when it is positive.
func NewScheduler(refresher Refresher, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start runs the job once immediately and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if s.timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	defer cancel()

	if err := s.refresher.Refresh(runCtx); err != nil {
		s.logger.Error("refresh failed", "error", err)
	}
}
