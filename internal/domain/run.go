package domain

import "time"

type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// SyncRun is one execution of the fetch-reconcile-snapshot pipeline. Its
// period bounds the comparison window used for reporting.
type SyncRun struct {
	ID               int64      `db:"id"`
	RunAt            time.Time  `db:"run_at"`
	PeriodStart      *time.Time `db:"period_start"` // nil when there was no previous run
	PeriodEnd        time.Time  `db:"period_end"`
	Status           RunStatus  `db:"status"`
	RecordsProcessed int        `db:"records_processed"`
	ErrorMessage     *string    `db:"error_message"`
	CompletedAt      *time.Time `db:"completed_at"`
}

// Comparable reports whether the run may serve as either side of a progress
// comparison.
func (r *SyncRun) Comparable() bool {
	return r != nil && r.Status == RunStatusCompleted
}

type Snapshot struct {
	ID             int64      `db:"id"`
	StudentID      int64      `db:"student_id"`
	RunID          *int64     `db:"run_id"`
	XP             int        `db:"xp"`
	Courses        int        `db:"courses"`
	Chapters       int        `db:"chapters"`
	LastActivityAt *time.Time `db:"last_activity_at"`
	RecordedAt     time.Time  `db:"recorded_at"`
}

type Progress struct {
	ID            int64  `db:"id"`
	StudentID     int64  `db:"student_id"`
	RunID         int64  `db:"run_id"`
	CoursesDelta  int    `db:"courses_delta"`
	ChaptersDelta int    `db:"chapters_delta"`
	XPDelta       int    `db:"xp_delta"`
	Notes         string `db:"notes"`
}
