package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"progress_tracker/internal/config"
	"progress_tracker/internal/domain"
	"progress_tracker/internal/publisher"
	"progress_tracker/internal/scheduler"
	"progress_tracker/internal/service"
	"progress_tracker/internal/source/datacamp"
	"progress_tracker/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	daemon := flag.Bool("daemon", false, "run a full sync on the configured interval")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage:\n  %s [-config path] [-daemon]\n  %s [-config path] <start-date> <end-date>\n\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := setupLogger("info")

	var startDate, endDate time.Time
	rangeMode := false
	switch flag.NArg() {
	case 0:
	case 2:
		var err error
		if startDate, err = parseDate(flag.Arg(0)); err != nil {
			logger.Error("invalid start date", "error", err)
			os.Exit(1)
		}
		if endDate, err = parseDate(flag.Arg(1)); err != nil {
			logger.Error("invalid end date", "error", err)
			os.Exit(1)
		}
		rangeMode = true
	default:
		flag.Usage()
		os.Exit(1)
	}

	if rangeMode && *daemon {
		logger.Error("-daemon cannot be combined with a date range")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if !rangeMode && cfg.API.Cookie == "" {
		logger.Error("api.cookie is required for a sync")
		os.Exit(1)
	}

	if cfg.Database.Migrate {
		if err := postgres.Migrate(cfg.Database.DSN()); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	var reportPublisher service.Publisher
	if cfg.Report.Publish {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		reportPublisher = rabbitMQ
	}

	students := postgres.NewStudentStore(db)
	runs := postgres.NewSyncRunStore(db)
	snapshots := postgres.NewSnapshotStore(db)
	progress := postgres.NewProgressStore(db)
	txManager := postgres.NewTransactionManager(db)

	source := datacamp.New(datacamp.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxPages:       cfg.API.MaxPages,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	coordinator := service.NewCoordinator(
		source,
		service.NewStudentReconciler(students, txManager, logger),
		service.NewSnapshotWriter(runs, snapshots, txManager, logger),
		service.NewProgressCalculator(snapshots, progress, txManager, logger),
		service.NewReportAssembler(students, progress, cfg.Report.InactiveDaysThreshold, logger),
		runs,
		reportPublisher,
		domain.FetchParams{
			Group:     cfg.Leaderboard.Group,
			Team:      cfg.Leaderboard.Team,
			Days:      cfg.Leaderboard.Days,
			SortField: cfg.Leaderboard.SortField,
			SortOrder: cfg.Leaderboard.SortOrder,
		},
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	switch {
	case rangeMode:
		err = runDateRange(ctx, coordinator, startDate, endDate, cfg.Sync.Timeout, logger)
	case *daemon:
		logger.Info("starting progress tracker",
			"source", source.Name(),
			"interval", cfg.Sync.Interval,
			"publish", cfg.Report.Publish,
		)
		sched := scheduler.NewScheduler(coordinator, cfg.API.Cookie, cfg.Sync.Interval, cfg.Sync.Timeout, logger)
		if err = sched.Start(ctx); errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		err = runOnce(ctx, coordinator, cfg.API.Cookie, cfg.Sync.Timeout)
	}

	if err != nil {
		logger.Error("progress tracker failed", "error", err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, coordinator *service.Coordinator, credential string, timeout time.Duration) error {
	syncCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := coordinator.FullSync(syncCtx, credential)
	return err
}

func runDateRange(ctx context.Context, coordinator *service.Coordinator, start, end time.Time, timeout time.Duration, logger *slog.Logger) error {
	reportCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := coordinator.DateRangeReport(reportCtx, start, end)
	if err != nil {
		return err
	}

	if !result.Generated {
		return fmt.Errorf("no completed sync run for %v date", result.Unresolved)
	}

	logger.Info("date range report ready",
		"start_date", start.Format(time.DateOnly),
		"end_date", end.Format(time.DateOnly),
		"entries", len(result.Report.Entries),
		"inactive", len(result.Report.Inactive),
	)

	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.Local)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
