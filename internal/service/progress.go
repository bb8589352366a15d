package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"progress_tracker/internal/domain"
)

const firstTrackingNote = "First time tracking - no previous data"

// ProgressCalculator derives per-student deltas between two completed runs.
type ProgressCalculator struct {
	snapshots SnapshotStore
	progress  ProgressStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewProgressCalculator(snapshots SnapshotStore, progress ProgressStore, txManager TransactionManager, logger *slog.Logger) *ProgressCalculator {
	return &ProgressCalculator{
		snapshots: snapshots,
		progress:  progress,
		txManager: txManager,
		logger:    logger.With("component", "progress"),
	}
}

// CalculateAndStore compares the snapshots of current against those of
// previous and persists one progress record per current snapshot.
func (c *ProgressCalculator) CalculateAndStore(
	ctx context.Context,
	current *domain.SyncRun,
	currentSnapshots []domain.Snapshot,
	previous *domain.SyncRun,
) (int, error) {
	if err := requireComparable(current, previous); err != nil {
		return 0, err
	}

	reference, err := c.snapshots.ListByRun(ctx, previous.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: load snapshots of run %d: %w", domain.ErrProgressFailed, previous.ID, err)
	}

	records := Diff(current.ID, currentSnapshots, reference)

	var stored int
	err = c.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		n, err := c.progress.BulkCreate(txCtx, records)
		if err != nil {
			return fmt.Errorf("insert progress: %w", err)
		}
		if n != len(records) {
			return fmt.Errorf("stored %d of %d progress records", n, len(records))
		}
		stored = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: run %d: %w", domain.ErrProgressFailed, current.ID, err)
	}

	c.logger.Info("progress stored",
		"run_id", current.ID,
		"previous_run_id", previous.ID,
		"records", stored,
	)

	return stored, nil
}

// CalculateBetween computes deltas of end against start without persisting
// anything.
func (c *ProgressCalculator) CalculateBetween(ctx context.Context, start, end *domain.SyncRun) ([]domain.Progress, error) {
	if err := requireComparable(end, start); err != nil {
		return nil, err
	}

	reference, err := c.snapshots.ListByRun(ctx, start.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load snapshots of run %d: %w", domain.ErrProgressFailed, start.ID, err)
	}

	current, err := c.snapshots.ListByRun(ctx, end.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load snapshots of run %d: %w", domain.ErrProgressFailed, end.ID, err)
	}

	return Diff(end.ID, current, reference), nil
}

// Diff produces one progress record per current snapshot. A student absent
// from reference gets its raw values as deltas and the first-tracking note.
// Negative deltas are kept as is.
func Diff(runID int64, current, reference []domain.Snapshot) []domain.Progress {
	byStudent := make(map[int64]domain.Snapshot, len(reference))
	for _, snap := range reference {
		byStudent[snap.StudentID] = snap
	}

	records := make([]domain.Progress, 0, len(current))
	for _, cur := range current {
		p := domain.Progress{
			StudentID:     cur.StudentID,
			RunID:         runID,
			CoursesDelta:  cur.Courses,
			ChaptersDelta: cur.Chapters,
			XPDelta:       cur.XP,
			Notes:         firstTrackingNote,
		}

		if ref, ok := byStudent[cur.StudentID]; ok {
			p.CoursesDelta -= ref.Courses
			p.ChaptersDelta -= ref.Chapters
			p.XPDelta -= ref.XP
			p.Notes = fmt.Sprintf("Progress from %s to %s",
				ref.RecordedAt.Format(time.DateOnly),
				cur.RecordedAt.Format(time.DateOnly),
			)
		}

		records = append(records, p)
	}

	return records
}

func requireComparable(current, reference *domain.SyncRun) error {
	if !current.Comparable() {
		return fmt.Errorf("%w: current run is not completed", domain.ErrProgressFailed)
	}
	if !reference.Comparable() {
		return fmt.Errorf("%w: reference run is not completed", domain.ErrProgressFailed)
	}
	return nil
}
