package domain

import "time"

// SyncResult holds statistics about a full sync.
type SyncResult struct {
	RunID       int64
	Fetched     int
	NewStudents int
	Snapshots   int
	Progress    int
	Published   bool
	Duration    time.Duration
}

// ReconcileResult maps external leaderboard IDs to internal student IDs.
type ReconcileResult struct {
	IDs      map[int64]int64
	Created  int
	Existing int
}

// DateRangeResult is the outcome of a date-range report request. When a
// boundary date has no completed run, Generated is false and Unresolved names
// the missing boundaries ("start", "end").
type DateRangeResult struct {
	Generated  bool
	Unresolved []string
	StartRun   *SyncRun
	EndRun     *SyncRun
	Report     *Report
}
