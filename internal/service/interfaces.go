package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"progress_tracker/internal/domain"
)

type LeaderboardSource interface {
	ID() string
	Name() string
	FetchAll(ctx context.Context, credential string, params domain.FetchParams) ([]domain.LeaderboardEntry, error)
}

type StudentStore interface {
	GetByExternalIDs(ctx context.Context, externalIDs []int64) ([]domain.Student, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Student, error)
	CreateBatch(ctx context.Context, students []domain.Student) error
	Touch(ctx context.Context, ids []int64, at time.Time) error
	ListActivity(ctx context.Context, asOf time.Time) ([]domain.StudentActivity, error)
}

type SyncRunStore interface {
	Create(ctx context.Context, run *domain.SyncRun) error
	Update(ctx context.Context, run *domain.SyncRun) error
	GetLatestCompleted(ctx context.Context) (*domain.SyncRun, error)
	GetLatestCompletedBetween(ctx context.Context, from, to time.Time) (*domain.SyncRun, error)
}

type SnapshotStore interface {
	BulkCreate(ctx context.Context, snapshots []domain.Snapshot) (int, error)
	ListByRun(ctx context.Context, runID int64) ([]domain.Snapshot, error)
}

type ProgressStore interface {
	BulkCreate(ctx context.Context, records []domain.Progress) (int, error)
	ListReportEntries(ctx context.Context, runID int64) ([]domain.ReportEntry, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, report *domain.Report) error
	Close() error
}

// Pipeline stages used by the Coordinator.

type Reconciler interface {
	Reconcile(ctx context.Context, entries []domain.LeaderboardEntry) (*domain.ReconcileResult, error)
}

type SnapshotRecorder interface {
	Write(ctx context.Context, entries []domain.LeaderboardEntry, idMap map[int64]int64, previous *domain.SyncRun) (*domain.SyncRun, []domain.Snapshot, error)
}

type ProgressDiffer interface {
	CalculateAndStore(ctx context.Context, current *domain.SyncRun, currentSnapshots []domain.Snapshot, previous *domain.SyncRun) (int, error)
	CalculateBetween(ctx context.Context, start, end *domain.SyncRun) ([]domain.Progress, error)
}

type ReportBuilder interface {
	RunReport(ctx context.Context, run *domain.SyncRun) (*domain.Report, error)
	RangeReport(ctx context.Context, start, end *domain.SyncRun, progress []domain.Progress) (*domain.Report, error)
}
