//go:build integration

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"progress_tracker/internal/domain"
	"progress_tracker/internal/source/datacamp"
	"progress_tracker/internal/storage/postgres"
)

// PipelineIntegrationSuite drives the whole sync pipeline against a fake
// leaderboard and a real database.
type PipelineIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *pgcontainer.PostgresContainer
	db        *sqlx.DB
	logger    *slog.Logger

	mu          sync.Mutex
	leaderboard []datacamp.Entry
	server      *httptest.Server

	writer      *SnapshotWriter
	coordinator *Coordinator
}

func (s *PipelineIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := pgcontainer.Run(s.ctx,
		"postgres:16-alpine",
		pgcontainer.WithDatabase("test_db"),
		pgcontainer.WithUsername("test"),
		pgcontainer.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(postgres.Migrate(connStr))

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "session=abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.mu.Lock()
		resp := datacamp.APIResponse{
			Entries:    s.leaderboard,
			Pagination: datacamp.Pagination{CurrentPage: 1, TotalPages: 1},
		}
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func (s *PipelineIntegrationSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PipelineIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM progress")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM snapshots")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_runs")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM students")

	students := postgres.NewStudentStore(s.db)
	runs := postgres.NewSyncRunStore(s.db)
	snapshots := postgres.NewSnapshotStore(s.db)
	progress := postgres.NewProgressStore(s.db)
	txManager := postgres.NewTransactionManager(s.db)

	source := datacamp.New(datacamp.Config{
		BaseURL:  s.server.URL,
		Timeout:  5 * time.Second,
		MaxPages: 10,
	}, s.logger)

	s.writer = NewSnapshotWriter(runs, snapshots, txManager, s.logger)

	s.coordinator = NewCoordinator(
		source,
		NewStudentReconciler(students, txManager, s.logger),
		s.writer,
		NewProgressCalculator(snapshots, progress, txManager, s.logger),
		NewReportAssembler(students, progress, 4, s.logger),
		runs,
		nil,
		domain.FetchParams{Group: "g", Team: "t", Days: 36500, SortField: "xp", SortOrder: "desc"},
		s.logger,
	)
}

func TestPipelineIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PipelineIntegrationSuite))
}

func (s *PipelineIntegrationSuite) setLeaderboard(entries ...datacamp.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboard = entries
}

func entry(id int64, name string, xp int, lastXP string) datacamp.Entry {
	return datacamp.Entry{
		XP:     xp,
		LastXP: lastXP,
		User: datacamp.User{
			ID:       id,
			FullName: name,
			Email:    name + "@example.com",
		},
	}
}

func (s *PipelineIntegrationSuite) at(t time.Time) {
	s.writer.now = func() time.Time { return t }
}

func (s *PipelineIntegrationSuite) TestFullSync_TwoRunsAndDateRange() {
	first := time.Date(2024, 3, 3, 10, 0, 0, 0, time.Local)
	second := time.Date(2024, 3, 10, 10, 0, 0, 0, time.Local)

	s.setLeaderboard(
		entry(1, "ann", 100, "2024-03-02T12:00:00Z"),
		entry(2, "bob", 200, "2024-03-01T12:00:00Z"),
		entry(3, "cara", 300, "2024-03-02T12:00:00Z"),
	)
	s.at(first)

	result, err := s.coordinator.FullSync(s.ctx, "session=abc")
	s.Require().NoError(err)
	s.Equal(3, result.Fetched)
	s.Equal(3, result.NewStudents)
	s.Equal(3, result.Snapshots)
	s.Zero(result.Progress, "first run has nothing to compare against")

	s.setLeaderboard(
		entry(1, "ann", 150, "2024-03-09T12:00:00Z"),
		entry(2, "bob", 200, "2024-03-01T12:00:00Z"),
		entry(3, "cara", 350, "2024-03-02T12:00:00Z"),
		entry(4, "dan", 40, ""),
	)
	s.at(second)

	result, err = s.coordinator.FullSync(s.ctx, "session=abc")
	s.Require().NoError(err)
	s.Equal(1, result.NewStudents)
	s.Equal(4, result.Progress)

	var deltas []struct {
		Name  string `db:"full_name"`
		XP    int    `db:"xp_delta"`
		Notes string `db:"notes"`
	}
	err = s.db.SelectContext(s.ctx, &deltas, `
		SELECT st.full_name, p.xp_delta, p.notes
		FROM progress p JOIN students st ON st.id = p.student_id
		WHERE p.run_id = $1
		ORDER BY st.external_id`, result.RunID)
	s.Require().NoError(err)
	s.Require().Len(deltas, 4)
	s.Equal(50, deltas[0].XP)
	s.Equal(0, deltas[1].XP)
	s.Equal(50, deltas[2].XP)
	s.Equal(40, deltas[3].XP)
	s.Equal(firstTrackingNote, deltas[3].Notes)

	rangeResult, err := s.coordinator.DateRangeReport(s.ctx,
		time.Date(2024, 3, 3, 0, 0, 0, 0, time.Local),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
	)
	s.Require().NoError(err)
	s.Require().True(rangeResult.Generated)

	report := rangeResult.Report
	s.Equal(domain.ReportKindDateRange, report.Kind)
	s.Require().Len(report.Entries, 4)
	s.Equal("ann", report.Entries[0].FullName)
	s.Equal("cara", report.Entries[1].FullName)

	inactive := make([]string, len(report.Inactive))
	for i, st := range report.Inactive {
		inactive[i] = st.FullName
	}
	s.Equal([]string{"dan", "bob", "cara"}, inactive)

	missing, err := s.coordinator.DateRangeReport(s.ctx,
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
	)
	s.Require().NoError(err)
	s.False(missing.Generated)
	s.Equal([]string{"start"}, missing.Unresolved)
}

func (s *PipelineIntegrationSuite) TestFullSync_IdentityNotOverwritten() {
	s.setLeaderboard(entry(1, "ann", 100, ""))
	s.at(time.Date(2024, 3, 3, 10, 0, 0, 0, time.Local))

	_, err := s.coordinator.FullSync(s.ctx, "session=abc")
	s.Require().NoError(err)

	renamed := entry(1, "ann", 120, "")
	renamed.User.FullName = "Ann Renamed"
	s.setLeaderboard(renamed)
	s.at(time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local))

	result, err := s.coordinator.FullSync(s.ctx, "session=abc")
	s.Require().NoError(err)
	s.Zero(result.NewStudents)

	var name string
	s.Require().NoError(s.db.GetContext(s.ctx, &name, "SELECT full_name FROM students WHERE external_id = 1"))
	s.Equal("ann", name)
}

func (s *PipelineIntegrationSuite) TestFullSync_FetchFailureWritesNothing() {
	s.setLeaderboard(entry(1, "ann", 100, ""))

	_, err := s.coordinator.FullSync(s.ctx, "wrong")
	s.ErrorIs(err, domain.ErrFetchFailed)

	var runs int
	s.Require().NoError(s.db.GetContext(s.ctx, &runs, "SELECT COUNT(*) FROM sync_runs"))
	s.Zero(runs)
}
