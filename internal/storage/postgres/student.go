package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"progress_tracker/internal/domain"
)

const uniqueViolation = "23505"

const studentColumns = `id, external_id, full_name, email, slug, is_active, created_at, updated_at`

type StudentStore struct {
	db *sqlx.DB
}

func NewStudentStore(db *sqlx.DB) *StudentStore {
	return &StudentStore{db: db}
}

func (s *StudentStore) GetByExternalIDs(ctx context.Context, externalIDs []int64) ([]domain.Student, error) {
	if len(externalIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE external_id = ANY($1) ORDER BY id`

	var students []domain.Student
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &students, query, pq.Array(externalIDs)); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *StudentStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ANY($1) ORDER BY id`

	var students []domain.Student
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &students, query, pq.Array(ids)); err != nil {
		return nil, err
	}
	return students, nil
}

// CreateBatch inserts the students and fills in their generated IDs.
// A unique violation on email or external ID is reported as
// domain.ErrDuplicateIdentity.
func (s *StudentStore) CreateBatch(ctx context.Context, students []domain.Student) error {
	if len(students) == 0 {
		return nil
	}

	query := `
		INSERT INTO students (external_id, full_name, email, slug, is_active, created_at, updated_at)
		VALUES (:external_id, :full_name, :email, :slug, :is_active, :created_at, :updated_at)
		RETURNING id, external_id`

	byExternalID := make(map[int64]*domain.Student, len(students))
	for i := range students {
		byExternalID[students[i].ExternalID] = &students[i]
	}

	exec := GetExecutor(ctx, s.db)
	for _, batch := range chunk(students, batchSize) {
		rows, err := sqlx.NamedQueryContext(ctx, exec, query, batch)
		if err != nil {
			return mapIdentityError(err)
		}

		for rows.Next() {
			var id, externalID int64
			if err := rows.Scan(&id, &externalID); err != nil {
				rows.Close()
				return err
			}
			if st, ok := byExternalID[externalID]; ok {
				st.ID = id
			}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return mapIdentityError(err)
		}
		rows.Close()
	}

	return nil
}

// Touch refreshes updated_at without changing any identity fields.
func (s *StudentStore) Touch(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE students SET updated_at = $2 WHERE id = ANY($1)`,
		pq.Array(ids), at,
	)
	return err
}

// ListActivity returns every active student with the latest activity time
// recorded in any snapshot taken at or before asOf.
func (s *StudentStore) ListActivity(ctx context.Context, asOf time.Time) ([]domain.StudentActivity, error) {
	query := `
		SELECT s.id, s.external_id, s.full_name, s.email, s.slug, s.is_active, s.created_at, s.updated_at,
			MAX(sn.last_activity_at) AS last_activity_at
		FROM students s
		LEFT JOIN snapshots sn ON sn.student_id = s.id AND sn.recorded_at <= $1
		WHERE s.is_active
		GROUP BY s.id
		ORDER BY s.id`

	var result []domain.StudentActivity
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &result, query, asOf); err != nil {
		return nil, err
	}
	return result, nil
}

func mapIdentityError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case "students_email_key", "students_external_id_key":
			return fmt.Errorf("%w: %s", domain.ErrDuplicateIdentity, pqErr.Detail)
		}
	}
	return err
}
