package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"progress_tracker/internal/domain"
)

const runColumns = `id, run_at, period_start, period_end, status, records_processed, error_message, completed_at`

type SyncRunStore struct {
	db *sqlx.DB
}

func NewSyncRunStore(db *sqlx.DB) *SyncRunStore {
	return &SyncRunStore{db: db}
}

// Create inserts the run and sets its ID.
func (s *SyncRunStore) Create(ctx context.Context, run *domain.SyncRun) error {
	query := `
		INSERT INTO sync_runs (run_at, period_start, period_end, status, records_processed, error_message, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		run.RunAt,
		run.PeriodStart,
		run.PeriodEnd,
		run.Status,
		run.RecordsProcessed,
		run.ErrorMessage,
		run.CompletedAt,
	).Scan(&run.ID)
}

func (s *SyncRunStore) Update(ctx context.Context, run *domain.SyncRun) error {
	query := `
		UPDATE sync_runs SET
			status = :status,
			records_processed = :records_processed,
			error_message = :error_message,
			completed_at = :completed_at
		WHERE id = :id`

	res, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, run)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SyncRunStore) GetByID(ctx context.Context, id int64) (*domain.SyncRun, error) {
	var run domain.SyncRun
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run,
		`SELECT `+runColumns+` FROM sync_runs WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetLatestCompleted returns the most recent completed run, or nil when no
// run has completed yet. Pending and failed runs are never returned.
func (s *SyncRunStore) GetLatestCompleted(ctx context.Context) (*domain.SyncRun, error) {
	query := `
		SELECT ` + runColumns + `
		FROM sync_runs
		WHERE status = $1
		ORDER BY run_at DESC, id DESC
		LIMIT 1`

	return s.getOptional(ctx, query, domain.RunStatusCompleted)
}

// GetLatestCompletedBetween returns the most recent completed run with
// from <= run_at < to, or nil.
func (s *SyncRunStore) GetLatestCompletedBetween(ctx context.Context, from, to time.Time) (*domain.SyncRun, error) {
	query := `
		SELECT ` + runColumns + `
		FROM sync_runs
		WHERE status = $1 AND run_at >= $2 AND run_at < $3
		ORDER BY run_at DESC, id DESC
		LIMIT 1`

	return s.getOptional(ctx, query, domain.RunStatusCompleted, from, to)
}

func (s *SyncRunStore) getOptional(ctx context.Context, query string, args ...any) (*domain.SyncRun, error) {
	var run domain.SyncRun
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
