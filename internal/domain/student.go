package domain

import "time"

// LeaderboardEntry is one row of the remote leaderboard as fetched. It is
// never persisted directly.
type LeaderboardEntry struct {
	ExternalID   int64
	FullName     string
	Email        string
	Slug         string
	AvatarURL    string
	Rank         int
	XP           int
	Courses      int
	Chapters     int
	LastActivity string // raw "lastXp" value, empty when unknown
}

type Student struct {
	ID         int64     `db:"id"`
	ExternalID int64     `db:"external_id"`
	FullName   string    `db:"full_name"`
	Email      string    `db:"email"`
	Slug       *string   `db:"slug"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// StudentActivity pairs an active student with the most recent activity time
// seen across all of their snapshots.
type StudentActivity struct {
	Student
	LastActivityAt *time.Time `db:"last_activity_at"`
}

// FetchParams selects and orders the leaderboard slice to fetch.
type FetchParams struct {
	Group     string
	Team      string
	Days      int
	SortField string
	SortOrder string
}
