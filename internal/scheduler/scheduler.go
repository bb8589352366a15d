package scheduler

import (
	"context"
	"log/slog"
	"time"

	"progress_tracker/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	FullSync(ctx context.Context, credential string) (*domain.SyncResult, error)
}

type Scheduler struct {
	syncer     Syncer
	credential string
	interval   time.Duration
	timeout    time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, credential string, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		credential: credential,
		interval:   interval,
		timeout:    timeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs one sync immediately and then one per interval until ctx is
// done. A failed sync is logged and the next tick proceeds as usual.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "timeout", s.timeout)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.syncer.FullSync(syncCtx, s.credential); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
