package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"progress_tracker/internal/domain"
)

type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// BulkCreate inserts all snapshots and returns the number of rows written.
// Callers wanting all-or-nothing semantics run it inside a transaction.
func (s *SnapshotStore) BulkCreate(ctx context.Context, snapshots []domain.Snapshot) (int, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO snapshots (student_id, run_id, xp, courses, chapters, last_activity_at, recorded_at)
		VALUES (:student_id, :run_id, :xp, :courses, :chapters, :last_activity_at, :recorded_at)`

	exec := GetExecutor(ctx, s.db)
	total := 0
	for _, batch := range chunk(snapshots, batchSize) {
		res, err := sqlx.NamedExecContext(ctx, exec, query, batch)
		if err != nil {
			return total, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += int(n)
	}

	return total, nil
}

func (s *SnapshotStore) ListByRun(ctx context.Context, runID int64) ([]domain.Snapshot, error) {
	query := `
		SELECT id, student_id, run_id, xp, courses, chapters, last_activity_at, recorded_at
		FROM snapshots
		WHERE run_id = $1
		ORDER BY recorded_at, id`

	var snapshots []domain.Snapshot
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &snapshots, query, runID); err != nil {
		return nil, err
	}
	return snapshots, nil
}
