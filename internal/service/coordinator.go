package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"progress_tracker/internal/domain"
)

const (
	boundaryStart = "start"
	boundaryEnd   = "end"
)

// Coordinator runs the sync pipeline and date-range reporting. Publisher may
// be nil, in which case reports are assembled but not sent anywhere.
type Coordinator struct {
	source     LeaderboardSource
	reconciler Reconciler
	recorder   SnapshotRecorder
	differ     ProgressDiffer
	reports    ReportBuilder
	runs       SyncRunStore
	publisher  Publisher
	params     domain.FetchParams
	logger     *slog.Logger
}

func NewCoordinator(
	source LeaderboardSource,
	reconciler Reconciler,
	recorder SnapshotRecorder,
	differ ProgressDiffer,
	reports ReportBuilder,
	runs SyncRunStore,
	publisher Publisher,
	params domain.FetchParams,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		source:     source,
		reconciler: reconciler,
		recorder:   recorder,
		differ:     differ,
		reports:    reports,
		runs:       runs,
		publisher:  publisher,
		params:     params,
		logger:     logger.With("source", source.ID()),
	}
}

func (c *Coordinator) FullSync(ctx context.Context, credential string) (*domain.SyncResult, error) {
	startTime := time.Now()
	c.logger.Info("starting sync",
		"source_name", c.source.Name(),
		"group", c.params.Group,
		"team", c.params.Team,
	)

	entries, err := c.source.FetchAll(ctx, credential, c.params)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}

	c.logger.Info("fetched leaderboard", "count", len(entries))

	reconciled, err := c.reconciler.Reconcile(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("reconcile students: %w", err)
	}

	previous, err := c.runs.GetLatestCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("find previous run: %w", err)
	}

	run, snapshots, err := c.recorder.Write(ctx, entries, reconciled.IDs, previous)
	if err != nil {
		return nil, fmt.Errorf("write snapshots: %w", err)
	}

	result := &domain.SyncResult{
		RunID:       run.ID,
		Fetched:     len(entries),
		NewStudents: reconciled.Created,
		Snapshots:   len(snapshots),
	}

	if previous == nil {
		c.logger.Info("no previous completed run, skipping progress", "run_id", run.ID)
	} else {
		stored, err := c.differ.CalculateAndStore(ctx, run, snapshots, previous)
		if err != nil {
			return nil, fmt.Errorf("calculate progress: %w", err)
		}
		result.Progress = stored
	}

	report, err := c.reports.RunReport(ctx, run)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	published, err := c.publish(ctx, report)
	if err != nil {
		return nil, err
	}
	result.Published = published

	result.Duration = time.Since(startTime)

	c.logger.Info("sync completed",
		"run_id", result.RunID,
		"fetched", result.Fetched,
		"new_students", result.NewStudents,
		"snapshots", result.Snapshots,
		"progress", result.Progress,
		"inactive", len(report.Inactive),
		"published", result.Published,
		"duration", result.Duration,
	)

	return result, nil
}

// DateRangeReport compares the latest completed run of startDate with the
// latest completed run of endDate. Dates are taken as calendar days in their
// own location.
func (c *Coordinator) DateRangeReport(ctx context.Context, startDate, endDate time.Time) (*domain.DateRangeResult, error) {
	startDay := dayStart(startDate)
	endDay := dayStart(endDate)
	if startDay.After(endDay) {
		return nil, fmt.Errorf("%w: %s > %s", domain.ErrInvalidDateRange,
			startDay.Format(time.DateOnly), endDay.Format(time.DateOnly))
	}

	startRun, err := c.runs.GetLatestCompletedBetween(ctx, startDay, startDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("find start run: %w", err)
	}

	endRun, err := c.runs.GetLatestCompletedBetween(ctx, endDay, endDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("find end run: %w", err)
	}

	result := &domain.DateRangeResult{StartRun: startRun, EndRun: endRun}
	if startRun == nil {
		result.Unresolved = append(result.Unresolved, boundaryStart)
	}
	if endRun == nil {
		result.Unresolved = append(result.Unresolved, boundaryEnd)
	}
	if len(result.Unresolved) > 0 {
		c.logger.Warn("no completed run for date range boundary",
			"start_date", startDay.Format(time.DateOnly),
			"end_date", endDay.Format(time.DateOnly),
			"unresolved", result.Unresolved,
		)
		return result, nil
	}

	progress, err := c.differ.CalculateBetween(ctx, startRun, endRun)
	if err != nil {
		return nil, fmt.Errorf("calculate progress: %w", err)
	}

	report, err := c.reports.RangeReport(ctx, startRun, endRun, progress)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	report.RangeStart = &startDay
	report.RangeEnd = &endDay

	if _, err := c.publish(ctx, report); err != nil {
		return nil, err
	}

	result.Generated = true
	result.Report = report

	c.logger.Info("date range report generated",
		"start_run_id", startRun.ID,
		"end_run_id", endRun.ID,
		"entries", len(report.Entries),
		"inactive", len(report.Inactive),
	)

	return result, nil
}

func (c *Coordinator) publish(ctx context.Context, report *domain.Report) (bool, error) {
	if c.publisher == nil {
		return false, nil
	}

	if err := c.publisher.Publish(ctx, report); err != nil {
		return false, fmt.Errorf("publish report: %w: %w", domain.ErrReportFailed, err)
	}

	return true, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
