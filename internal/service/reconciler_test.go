package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"progress_tracker/internal/domain"
	"progress_tracker/internal/service/mocks"
)

type ReconcilerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	students  *mocks.MockStudentStore
	txManager *mocks.MockTransactionManager

	reconciler *StudentReconciler
	now        time.Time
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.students = mocks.NewMockStudentStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s.reconciler = NewStudentReconciler(s.students, s.txManager, logger)
	s.reconciler.now = func() time.Time { return s.now }
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) expectTransaction() {
	s.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *ReconcilerTestSuite) TestReconcile_CreatesUnseenAndTouchesExisting() {
	ctx := context.Background()

	entries := []domain.LeaderboardEntry{
		{ExternalID: 1, FullName: "Ann Lee", Email: "ann@example.com", Slug: "annlee"},
		{ExternalID: 2, FullName: "Bob Stone", Email: "bob@example.com"},
		{ExternalID: 1, FullName: "Ann L. (dup)", Email: "ann2@example.com"},
	}

	s.expectTransaction()

	s.students.EXPECT().
		GetByExternalIDs(gomock.Any(), []int64{1, 2}).
		Return([]domain.Student{{ID: 10, ExternalID: 2, FullName: "Robert Stone", Email: "bob@example.com"}}, nil)

	s.students.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, students []domain.Student) error {
			s.Require().Len(students, 1)
			s.Equal(int64(1), students[0].ExternalID)
			s.Equal("Ann Lee", students[0].FullName)
			s.Equal("ann@example.com", students[0].Email)
			s.Require().NotNil(students[0].Slug)
			s.Equal("annlee", *students[0].Slug)
			s.True(students[0].IsActive)
			s.Equal(s.now, students[0].CreatedAt)
			students[0].ID = 11
			return nil
		})

	s.students.EXPECT().
		Touch(gomock.Any(), []int64{10}, s.now).
		Return(nil)

	result, err := s.reconciler.Reconcile(ctx, entries)

	s.Require().NoError(err)
	s.Equal(map[int64]int64{1: 11, 2: 10}, result.IDs)
	s.Equal(1, result.Created)
	s.Equal(1, result.Existing)
}

func (s *ReconcilerTestSuite) TestReconcile_AllKnownCreatesNothing() {
	ctx := context.Background()

	entries := []domain.LeaderboardEntry{
		{ExternalID: 1, FullName: "Ann Lee", Email: "ann@example.com"},
		{ExternalID: 2, FullName: "Bob Stone", Email: "bob@example.com"},
	}

	s.expectTransaction()

	s.students.EXPECT().
		GetByExternalIDs(gomock.Any(), []int64{1, 2}).
		Return([]domain.Student{
			{ID: 10, ExternalID: 1},
			{ID: 20, ExternalID: 2},
		}, nil)

	s.students.EXPECT().
		Touch(gomock.Any(), []int64{10, 20}, s.now).
		Return(nil)

	result, err := s.reconciler.Reconcile(ctx, entries)

	s.Require().NoError(err)
	s.Equal(map[int64]int64{1: 10, 2: 20}, result.IDs)
	s.Zero(result.Created)
	s.Equal(2, result.Existing)
}

func (s *ReconcilerTestSuite) TestReconcile_Empty() {
	result, err := s.reconciler.Reconcile(context.Background(), nil)

	s.Require().NoError(err)
	s.Empty(result.IDs)
	s.Zero(result.Created)
}

func (s *ReconcilerTestSuite) TestReconcile_DuplicateIdentity() {
	ctx := context.Background()

	entries := []domain.LeaderboardEntry{
		{ExternalID: 3, FullName: "Cara Moss", Email: "taken@example.com"},
	}

	s.expectTransaction()

	s.students.EXPECT().
		GetByExternalIDs(gomock.Any(), []int64{3}).
		Return(nil, nil)

	s.students.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: students_email_key", domain.ErrDuplicateIdentity))

	result, err := s.reconciler.Reconcile(ctx, entries)

	s.Nil(result)
	s.ErrorIs(err, domain.ErrReconciliationFailed)
	s.ErrorIs(err, domain.ErrDuplicateIdentity)
}

func (s *ReconcilerTestSuite) TestReconcile_LookupError() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	s.expectTransaction()

	s.students.EXPECT().
		GetByExternalIDs(gomock.Any(), []int64{7}).
		Return(nil, dbErr)

	_, err := s.reconciler.Reconcile(ctx, []domain.LeaderboardEntry{{ExternalID: 7}})

	s.ErrorIs(err, domain.ErrReconciliationFailed)
	s.ErrorIs(err, dbErr)
}

func (s *ReconcilerTestSuite) TestReconcile_MissingAssignedID() {
	ctx := context.Background()

	s.expectTransaction()

	s.students.EXPECT().
		GetByExternalIDs(gomock.Any(), []int64{4}).
		Return(nil, nil)

	s.students.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := s.reconciler.Reconcile(ctx, []domain.LeaderboardEntry{{ExternalID: 4}})

	s.ErrorIs(err, domain.ErrReconciliationFailed)
}
