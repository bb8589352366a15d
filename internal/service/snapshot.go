package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"progress_tracker/internal/domain"
)

const maxErrorMessageLen = 2000

var activityLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// SnapshotWriter records one run and the snapshots observed by it.
type SnapshotWriter struct {
	runs      SyncRunStore
	snapshots SnapshotStore
	txManager TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

func NewSnapshotWriter(runs SyncRunStore, snapshots SnapshotStore, txManager TransactionManager, logger *slog.Logger) *SnapshotWriter {
	return &SnapshotWriter{
		runs:      runs,
		snapshots: snapshots,
		txManager: txManager,
		logger:    logger.With("component", "snapshot_writer"),
		now:       time.Now,
	}
}

// Write creates a pending run, stores one snapshot per entry and completes
// the run in the same transaction. If storing fails the run is marked failed.
// A run left pending by a crash is never picked up as a comparison base.
func (w *SnapshotWriter) Write(
	ctx context.Context,
	entries []domain.LeaderboardEntry,
	idMap map[int64]int64,
	previous *domain.SyncRun,
) (*domain.SyncRun, []domain.Snapshot, error) {
	now := w.now().UTC()

	snapshots, err := buildSnapshots(entries, idMap, now)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrSnapshotWriteFailed, err)
	}

	run := &domain.SyncRun{
		RunAt:     now,
		PeriodEnd: now,
		Status:    domain.RunStatusPending,
	}
	if previous != nil {
		start := previous.RunAt
		run.PeriodStart = &start
	}

	if err := w.runs.Create(ctx, run); err != nil {
		return nil, nil, fmt.Errorf("%w: create run: %w", domain.ErrSnapshotWriteFailed, err)
	}

	runID := run.ID
	for i := range snapshots {
		snapshots[i].RunID = &runID
	}

	err = w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		stored, err := w.snapshots.BulkCreate(txCtx, snapshots)
		if err != nil {
			return fmt.Errorf("insert snapshots: %w", err)
		}
		if stored != len(snapshots) {
			return fmt.Errorf("stored %d of %d snapshots", stored, len(snapshots))
		}

		completedAt := w.now().UTC()
		run.Status = domain.RunStatusCompleted
		run.RecordsProcessed = stored
		run.CompletedAt = &completedAt

		if err := w.runs.Update(txCtx, run); err != nil {
			return fmt.Errorf("complete run: %w", err)
		}
		return nil
	})
	if err != nil {
		w.markFailed(ctx, run, err)
		return nil, nil, fmt.Errorf("%w: run %d: %w", domain.ErrSnapshotWriteFailed, run.ID, err)
	}

	w.logger.Info("snapshots stored",
		"run_id", run.ID,
		"snapshots", run.RecordsProcessed,
	)

	return run, snapshots, nil
}

func (w *SnapshotWriter) markFailed(ctx context.Context, run *domain.SyncRun, cause error) {
	msg := cause.Error()
	if len(msg) > maxErrorMessageLen {
		msg = msg[:maxErrorMessageLen]
	}

	finishedAt := w.now().UTC()
	run.Status = domain.RunStatusFailed
	run.RecordsProcessed = 0
	run.ErrorMessage = &msg
	run.CompletedAt = &finishedAt

	// the caller's context may already be cancelled; the failure must still land
	if err := w.runs.Update(context.WithoutCancel(ctx), run); err != nil {
		w.logger.Error("failed to mark run as failed",
			"run_id", run.ID,
			"error", err,
		)
	}
}

func buildSnapshots(entries []domain.LeaderboardEntry, idMap map[int64]int64, recordedAt time.Time) ([]domain.Snapshot, error) {
	snapshots := make([]domain.Snapshot, 0, len(entries))

	for _, e := range entries {
		studentID, ok := idMap[e.ExternalID]
		if !ok {
			return nil, fmt.Errorf("%w: external id %d", domain.ErrUnresolvedStudent, e.ExternalID)
		}

		lastActivity, err := parseActivity(e.LastActivity)
		if err != nil {
			return nil, fmt.Errorf("external id %d: %w", e.ExternalID, err)
		}

		snapshots = append(snapshots, domain.Snapshot{
			StudentID:      studentID,
			XP:             e.XP,
			Courses:        e.Courses,
			Chapters:       e.Chapters,
			LastActivityAt: lastActivity,
			RecordedAt:     recordedAt,
		})
	}

	return snapshots, nil
}

// parseActivity returns nil for an empty value and an error for anything it
// cannot read.
func parseActivity(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range activityLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid last activity timestamp %q", raw)
}
