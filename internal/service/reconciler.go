package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"progress_tracker/internal/domain"
)

// StudentReconciler makes sure every fetched entry has a roster row.
// Students are created on first sighting and never overwritten afterwards;
// a later sync only refreshes updated_at.
type StudentReconciler struct {
	students  StudentStore
	txManager TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

func NewStudentReconciler(students StudentStore, txManager TransactionManager, logger *slog.Logger) *StudentReconciler {
	return &StudentReconciler{
		students:  students,
		txManager: txManager,
		logger:    logger.With("component", "reconciler"),
		now:       time.Now,
	}
}

func (r *StudentReconciler) Reconcile(ctx context.Context, entries []domain.LeaderboardEntry) (*domain.ReconcileResult, error) {
	externalIDs := distinctExternalIDs(entries)
	result := &domain.ReconcileResult{IDs: make(map[int64]int64, len(externalIDs))}
	if len(externalIDs) == 0 {
		return result, nil
	}

	err := r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := r.students.GetByExternalIDs(txCtx, externalIDs)
		if err != nil {
			return fmt.Errorf("load students: %w", err)
		}

		existingIDs := make([]int64, 0, len(existing))
		for _, st := range existing {
			result.IDs[st.ExternalID] = st.ID
			existingIDs = append(existingIDs, st.ID)
		}

		now := r.now().UTC()
		var fresh []domain.Student
		queued := make(map[int64]struct{})
		for _, e := range entries {
			if _, ok := result.IDs[e.ExternalID]; ok {
				continue
			}
			if _, ok := queued[e.ExternalID]; ok {
				continue
			}
			queued[e.ExternalID] = struct{}{}
			fresh = append(fresh, newStudent(e, now))
		}

		if len(fresh) > 0 {
			if err := r.students.CreateBatch(txCtx, fresh); err != nil {
				return fmt.Errorf("create students: %w", err)
			}
		}

		for _, st := range fresh {
			if st.ID == 0 {
				return fmt.Errorf("student with external id %d was not assigned an id", st.ExternalID)
			}
			result.IDs[st.ExternalID] = st.ID
		}

		if len(existingIDs) > 0 {
			if err := r.students.Touch(txCtx, existingIDs, now); err != nil {
				return fmt.Errorf("touch students: %w", err)
			}
		}

		result.Created = len(fresh)
		result.Existing = len(existing)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReconciliationFailed, err)
	}

	r.logger.Info("students reconciled",
		"created", result.Created,
		"existing", result.Existing,
	)

	return result, nil
}

func newStudent(e domain.LeaderboardEntry, now time.Time) domain.Student {
	st := domain.Student{
		ExternalID: e.ExternalID,
		FullName:   e.FullName,
		Email:      e.Email,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if e.Slug != "" {
		slug := e.Slug
		st.Slug = &slug
	}
	return st
}

func distinctExternalIDs(entries []domain.LeaderboardEntry) []int64 {
	seen := make(map[int64]struct{}, len(entries))
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ExternalID]; ok {
			continue
		}
		seen[e.ExternalID] = struct{}{}
		ids = append(ids, e.ExternalID)
	}
	return ids
}
