package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"progress_tracker/internal/domain"
)

const DefaultInactiveThresholdDays = 4

type ReportAssembler struct {
	students      StudentStore
	progress      ProgressStore
	thresholdDays int
	logger        *slog.Logger
	now           func() time.Time
}

func NewReportAssembler(students StudentStore, progress ProgressStore, thresholdDays int, logger *slog.Logger) *ReportAssembler {
	if thresholdDays <= 0 {
		thresholdDays = DefaultInactiveThresholdDays
	}

	return &ReportAssembler{
		students:      students,
		progress:      progress,
		thresholdDays: thresholdDays,
		logger:        logger.With("component", "report"),
		now:           time.Now,
	}
}

// RunReport builds the report for the progress stored against run.
func (a *ReportAssembler) RunReport(ctx context.Context, run *domain.SyncRun) (*domain.Report, error) {
	entries, err := a.progress.ListReportEntries(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load progress of run %d: %w", domain.ErrReportFailed, run.ID, err)
	}

	activity, err := a.students.ListActivity(ctx, run.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: load activity: %w", domain.ErrReportFailed, err)
	}

	sortEntries(entries)
	report := a.newReport(domain.ReportKindRun, run, entries, activity)

	a.logger.Debug("run report assembled",
		"run_id", run.ID,
		"entries", len(report.Entries),
		"inactive", len(report.Inactive),
	)

	return report, nil
}

// RangeReport builds a report from progress computed between two runs.
// Period bounds come from end; RangeStart and RangeEnd are left to the caller.
func (a *ReportAssembler) RangeReport(ctx context.Context, start, end *domain.SyncRun, progress []domain.Progress) (*domain.Report, error) {
	ids := make([]int64, 0, len(progress))
	for _, p := range progress {
		ids = append(ids, p.StudentID)
	}

	students, err := a.students.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: load students: %w", domain.ErrReportFailed, err)
	}

	activity, err := a.students.ListActivity(ctx, end.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: load activity: %w", domain.ErrReportFailed, err)
	}

	byID := make(map[int64]domain.Student, len(students))
	for _, st := range students {
		byID[st.ID] = st
	}
	lastSeen := make(map[int64]*time.Time, len(activity))
	for _, act := range activity {
		lastSeen[act.ID] = act.LastActivityAt
	}

	entries := make([]domain.ReportEntry, 0, len(progress))
	for _, p := range progress {
		st, ok := byID[p.StudentID]
		if !ok {
			return nil, fmt.Errorf("%w: student %d not found", domain.ErrReportFailed, p.StudentID)
		}

		entries = append(entries, domain.ReportEntry{
			StudentID:      st.ID,
			ExternalID:     st.ExternalID,
			FullName:       st.FullName,
			Email:          st.Email,
			Slug:           st.Slug,
			IsActive:       st.IsActive,
			CoursesDelta:   p.CoursesDelta,
			ChaptersDelta:  p.ChaptersDelta,
			XPDelta:        p.XPDelta,
			Notes:          p.Notes,
			LastActivityAt: lastSeen[st.ID],
		})
	}

	sortEntries(entries)
	report := a.newReport(domain.ReportKindDateRange, end, entries, activity)

	a.logger.Debug("range report assembled",
		"start_run_id", start.ID,
		"end_run_id", end.ID,
		"entries", len(report.Entries),
		"inactive", len(report.Inactive),
	)

	return report, nil
}

func (a *ReportAssembler) newReport(
	kind domain.ReportKind,
	run *domain.SyncRun,
	entries []domain.ReportEntry,
	activity []domain.StudentActivity,
) *domain.Report {
	return &domain.Report{
		Kind:                  kind,
		RunID:                 run.ID,
		RunAt:                 run.RunAt,
		PeriodStart:           run.PeriodStart,
		PeriodEnd:             run.PeriodEnd,
		GeneratedAt:           a.now().UTC(),
		InactiveThresholdDays: a.thresholdDays,
		Entries:               entries,
		Inactive:              InactiveStudents(activity, run.PeriodEnd, a.thresholdDays),
	}
}

// InactiveStudents returns the students whose latest activity is older than
// thresholdDays before periodEnd. Students without any recorded activity are
// included and listed first, the rest follow from least to most recently
// active.
func InactiveStudents(activity []domain.StudentActivity, periodEnd time.Time, thresholdDays int) []domain.InactiveStudent {
	cutoff := periodEnd.AddDate(0, 0, -thresholdDays)

	inactive := make([]domain.InactiveStudent, 0)
	for _, act := range activity {
		if act.LastActivityAt != nil && !act.LastActivityAt.Before(cutoff) {
			continue
		}

		st := domain.InactiveStudent{
			StudentID:      act.ID,
			ExternalID:     act.ExternalID,
			FullName:       act.FullName,
			Email:          act.Email,
			Slug:           act.Slug,
			LastActivityAt: act.LastActivityAt,
		}
		if act.LastActivityAt != nil {
			days := int(periodEnd.Sub(*act.LastActivityAt).Hours() / 24)
			st.DaysSinceActivity = &days
		}
		inactive = append(inactive, st)
	}

	sort.SliceStable(inactive, func(i, j int) bool {
		li, lj := inactive[i].LastActivityAt, inactive[j].LastActivityAt
		switch {
		case li == nil && lj != nil:
			return true
		case li != nil && lj == nil:
			return false
		case li != nil && !li.Equal(*lj):
			return li.Before(*lj)
		}
		return inactive[i].FullName < inactive[j].FullName
	})

	return inactive
}

func sortEntries(entries []domain.ReportEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].XPDelta != entries[j].XPDelta {
			return entries[i].XPDelta > entries[j].XPDelta
		}
		if entries[i].FullName != entries[j].FullName {
			return entries[i].FullName < entries[j].FullName
		}
		return entries[i].StudentID < entries[j].StudentID
	})
}
