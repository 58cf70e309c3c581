package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/23302610sole/clear-path-png/internal/entity"
	"github.com/23302610sole/clear-path-png/internal/repository"
)

type ClearanceRepositoryTestSuite struct {
	suite.Suite
	repo *repository.ClearanceRepository
}

func (ts *ClearanceRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewClearanceRepository(repository.SetupTestDatabase(ts.T()))
}

func TestClearanceRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(ClearanceRepositoryTestSuite))
}

func newTestRecord(studentID uuid.UUID, department string) entity.ClearanceRecord {
	return entity.ClearanceRecord{
		ID:         uuid.Must(uuid.NewV4()),
		StudentID:  studentID,
		Department: department,
		Status:     entity.StatusPending,
		UpdatedBy:  uuid.Must(uuid.NewV4()),
	}
}

func (ts *ClearanceRepositoryTestSuite) TestUpsertRecord() {
	ctx := context.Background()
	studentID := uuid.Must(uuid.NewV4())
	rec := newTestRecord(studentID, "Library")

	err := ts.repo.UpsertRecord(ctx, rec)
	ts.Require().NoError(err)

	ts.Run("insert_creates_pending_record", func() {
		got, err := ts.repo.RecordByStudentAndDepartment(ctx, studentID, "Library")
		ts.Require().NoError(err)
		ts.Require().Equal(entity.StatusPending, got.Status)
		ts.Require().Nil(got.ClearedBy)
		ts.Require().Nil(got.ClearedAt)
	})

	ts.Run("conflict_overwrites_previous_decision", func() {
		clearedBy := "Bob Officer"
		clearedAt := time.Now()

		update := newTestRecord(studentID, "Library")
		update.Status = entity.StatusCleared
		update.ClearedBy = &clearedBy
		update.ClearedAt = &clearedAt

		err := ts.repo.UpsertRecord(ctx, update)
		ts.Require().NoError(err)

		got, err := ts.repo.RecordByStudentAndDepartment(ctx, studentID, "Library")
		ts.Require().NoError(err)
		ts.Require().Equal(entity.StatusCleared, got.Status)
		ts.Require().NotNil(got.ClearedBy)
		ts.Require().Equal(clearedBy, *got.ClearedBy)
		ts.Require().NotNil(got.ClearedAt)

		// Still one record per (student, department).
		records, err := ts.repo.RecordsByStudent(ctx, studentID)
		ts.Require().NoError(err)
		ts.Require().Len(records, 1)
	})

	ts.Run("reverting_to_pending_wipes_stamp", func() {
		update := newTestRecord(studentID, "Library")

		err := ts.repo.UpsertRecord(ctx, update)
		ts.Require().NoError(err)

		got, err := ts.repo.RecordByStudentAndDepartment(ctx, studentID, "Library")
		ts.Require().NoError(err)
		ts.Require().Equal(entity.StatusPending, got.Status)
		ts.Require().Nil(got.ClearedBy)
		ts.Require().Nil(got.ClearedAt)
	})
}

func (ts *ClearanceRepositoryTestSuite) TestRecordsByStudent() {
	ctx := context.Background()
	studentID := uuid.Must(uuid.NewV4())

	for _, dept := range []string{"Library", "Mess", "Sports"} {
		err := ts.repo.UpsertRecord(ctx, newTestRecord(studentID, dept))
		ts.Require().NoError(err)
	}

	err := ts.repo.UpsertRecord(ctx, newTestRecord(uuid.Must(uuid.NewV4()), "Library"))
	ts.Require().NoError(err)

	records, err := ts.repo.RecordsByStudent(ctx, studentID)
	ts.Require().NoError(err)
	ts.Require().Len(records, 3)

	for _, rec := range records {
		ts.Require().Equal(studentID, rec.StudentID)
	}
}

func (ts *ClearanceRepositoryTestSuite) TestRecordsByDepartment() {
	ctx := context.Background()

	first := uuid.Must(uuid.NewV4())
	second := uuid.Must(uuid.NewV4())

	err := ts.repo.UpsertRecord(ctx, newTestRecord(first, "Library"))
	ts.Require().NoError(err)

	err = ts.repo.UpsertRecord(ctx, newTestRecord(second, "Library"))
	ts.Require().NoError(err)

	err = ts.repo.UpsertRecord(ctx, newTestRecord(first, "Mess"))
	ts.Require().NoError(err)

	records, err := ts.repo.RecordsByDepartment(ctx, "Library")
	ts.Require().NoError(err)
	ts.Require().Len(records, 2)

	records, err = ts.repo.RecordsByDepartment(ctx, "Sports")
	ts.Require().NoError(err)
	ts.Require().Empty(records)
}

func (ts *ClearanceRepositoryTestSuite) TestCountByStatus() {
	ctx := context.Background()
	studentID := uuid.Must(uuid.NewV4())

	cleared := newTestRecord(studentID, "Library")
	cleared.Status = entity.StatusCleared

	err := ts.repo.UpsertRecord(ctx, cleared)
	ts.Require().NoError(err)

	err = ts.repo.UpsertRecord(ctx, newTestRecord(studentID, "Mess"))
	ts.Require().NoError(err)

	err = ts.repo.UpsertRecord(ctx, newTestRecord(studentID, "Sports"))
	ts.Require().NoError(err)

	count, err := ts.repo.CountByStatus(ctx, entity.StatusPending)
	ts.Require().NoError(err)
	ts.Require().Equal(2, count)

	count, err = ts.repo.CountByStatus(ctx, entity.StatusCleared)
	ts.Require().NoError(err)
	ts.Require().Equal(1, count)

	count, err = ts.repo.CountByStatus(ctx, entity.StatusBlocked)
	ts.Require().NoError(err)
	ts.Require().Zero(count)
}
