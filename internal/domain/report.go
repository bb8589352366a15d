package domain

import "time"

type ReportKind string

const (
	ReportKindRun       ReportKind = "run"
	ReportKindDateRange ReportKind = "date_range"
)

type Report struct {
	Kind                  ReportKind        `json:"kind"`
	RunID                 int64             `json:"run_id"`
	RunAt                 time.Time         `json:"run_at"`
	PeriodStart           *time.Time        `json:"period_start,omitempty"`
	PeriodEnd             time.Time         `json:"period_end"`
	RangeStart            *time.Time        `json:"range_start,omitempty"`
	RangeEnd              *time.Time        `json:"range_end,omitempty"`
	GeneratedAt           time.Time         `json:"generated_at"`
	InactiveThresholdDays int               `json:"inactive_threshold_days"`
	Entries               []ReportEntry     `json:"entries"`
	Inactive              []InactiveStudent `json:"inactive"`
}

// ReportEntry is a progress record joined with its student.
type ReportEntry struct {
	ProgressID     int64      `json:"progress_id" db:"progress_id"`
	StudentID      int64      `json:"student_id" db:"student_id"`
	ExternalID     int64      `json:"external_id" db:"external_id"`
	FullName       string     `json:"full_name" db:"full_name"`
	Email          string     `json:"email" db:"email"`
	Slug           *string    `json:"slug,omitempty" db:"slug"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	CoursesDelta   int        `json:"courses_delta" db:"courses_delta"`
	ChaptersDelta  int        `json:"chapters_delta" db:"chapters_delta"`
	XPDelta        int        `json:"xp_delta" db:"xp_delta"`
	Notes          string     `json:"notes" db:"notes"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty" db:"last_activity_at"`
}

type InactiveStudent struct {
	StudentID      int64      `json:"student_id"`
	ExternalID     int64      `json:"external_id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Slug           *string    `json:"slug,omitempty"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	// DaysSinceActivity is nil when no activity was ever recorded.
	DaysSinceActivity *int `json:"days_since_activity,omitempty"`
}
