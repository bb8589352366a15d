package domain

import "errors"

var (
	ErrFetchFailed          = errors.New("leaderboard fetch failed")
	ErrReconciliationFailed = errors.New("student reconciliation failed")
	ErrDuplicateIdentity    = errors.New("duplicate student identity")
	ErrSnapshotWriteFailed  = errors.New("snapshot write failed")
	ErrUnresolvedStudent    = errors.New("entry has no reconciled student")
	ErrProgressFailed       = errors.New("progress calculation failed")
	ErrReportFailed         = errors.New("report generation failed")
	ErrInvalidDateRange     = errors.New("start date is after end date")
)
