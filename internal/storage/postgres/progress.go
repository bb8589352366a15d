package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"progress_tracker/internal/domain"
)

type ProgressStore struct {
	db *sqlx.DB
}

func NewProgressStore(db *sqlx.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

func (s *ProgressStore) BulkCreate(ctx context.Context, records []domain.Progress) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO progress (student_id, run_id, courses_delta, chapters_delta, xp_delta, notes)
		VALUES (:student_id, :run_id, :courses_delta, :chapters_delta, :xp_delta, :notes)`

	exec := GetExecutor(ctx, s.db)
	total := 0
	for _, batch := range chunk(records, batchSize) {
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

// ListReportEntries joins the run's progress rows with their students and the
// last activity recorded by the run's own snapshot.
func (s *ProgressStore) ListReportEntries(ctx context.Context, runID int64) ([]domain.ReportEntry, error) {
	query := `
		SELECT p.id AS progress_id, p.student_id, st.external_id, st.full_name, st.email, st.slug, st.is_active,
			p.courses_delta, p.chapters_delta, p.xp_delta, p.notes, sn.last_activity_at
		FROM progress p
		JOIN students st ON st.id = p.student_id
		LEFT JOIN LATERAL (
			SELECT last_activity_at
			FROM snapshots
			WHERE run_id = p.run_id AND student_id = p.student_id
			ORDER BY id DESC
			LIMIT 1
		) sn ON TRUE
		WHERE p.run_id = $1
		ORDER BY p.xp_delta DESC, st.full_name, p.id`

	var entries []domain.ReportEntry
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, runID); err != nil {
		return nil, err
	}
	return entries, nil
}
