package repository_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/23302610sole/clear-path-png/internal/entity"
	"github.com/23302610sole/clear-path-png/internal/repository"
)

type StudentRepositoryTestSuite struct {
	suite.Suite
	repo *repository.StudentRepository
}

func (ts *StudentRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewStudentRepository(repository.SetupTestDatabase(ts.T()))
}

func TestStudentRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(StudentRepositoryTestSuite))
}

func newTestStudent(fullName string) entity.Student {
	id := uuid.Must(uuid.NewV4())

	return entity.Student{
		ID:         id,
		StudentID:  "2023" + id.String()[:4],
		FullName:   fullName,
		Email:      id.String() + "@student.unitech.ac.pg",
		Department: "Library",
		CourseCode: "BEIT",
		YearLevel:  "4",
	}
}

func (ts *StudentRepositoryTestSuite) TestCreateStudent() {
	ctx := context.Background()
	student := newTestStudent("Alice Kaupa")

	err := ts.repo.CreateStudent(ctx, student)
	ts.Require().NoError(err)
}

func (ts *StudentRepositoryTestSuite) TestStudentByEmail() {
	ctx := context.Background()
	student := newTestStudent("Alice Kaupa")

	err := ts.repo.CreateStudent(ctx, student)
	ts.Require().NoError(err)

	ts.Run("existing_student", func() {
		got, err := ts.repo.StudentByEmail(ctx, student.Email)
		ts.Require().NoError(err)
		ts.Require().Equal(student.ID, got.ID)
		ts.Require().Equal(student.FullName, got.FullName)
		ts.Require().Equal(student.Department, got.Department)
		ts.Require().Equal(student.CourseCode, got.CourseCode)
	})

	ts.Run("non_existing_student", func() {
		_, err := ts.repo.StudentByEmail(ctx, "nobody@uni.edu")
		ts.Require().Error(err)
		ts.Require().Equal(entity.ErrNotFound, err)
	})
}

func (ts *StudentRepositoryTestSuite) TestStudentByID() {
	ctx := context.Background()
	student := newTestStudent("Alice Kaupa")

	err := ts.repo.CreateStudent(ctx, student)
	ts.Require().NoError(err)

	got, err := ts.repo.StudentByID(ctx, student.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(student.Email, got.Email)

	_, err = ts.repo.StudentByID(ctx, uuid.Must(uuid.NewV4()))
	ts.Require().Equal(entity.ErrNotFound, err)
}

func (ts *StudentRepositoryTestSuite) TestListStudents() {
	ctx := context.Background()

	for _, name := range []string{"Charlie Temu", "Alice Kaupa", "Bob Wari"} {
		err := ts.repo.CreateStudent(ctx, newTestStudent(name))
		ts.Require().NoError(err)
	}

	students, err := ts.repo.ListStudents(ctx)
	ts.Require().NoError(err)
	ts.Require().Len(students, 3)
	ts.Require().Equal("Alice Kaupa", students[0].FullName)
	ts.Require().Equal("Bob Wari", students[1].FullName)
	ts.Require().Equal("Charlie Temu", students[2].FullName)
}

func (ts *StudentRepositoryTestSuite) TestAdoptAccountID() {
	ctx := context.Background()
	student := newTestStudent("Alice Kaupa")
	accountID := uuid.Must(uuid.NewV4())

	err := ts.repo.CreateStudent(ctx, student)
	ts.Require().NoError(err)

	err = ts.repo.AdoptAccountID(ctx, student.Email, accountID)
	ts.Require().NoError(err)

	got, err := ts.repo.StudentByEmail(ctx, student.Email)
	ts.Require().NoError(err)
	ts.Require().Equal(accountID, got.ID)

	// Repeating with the same id is a no-op.
	err = ts.repo.AdoptAccountID(ctx, student.Email, accountID)
	ts.Require().NoError(err)
}

func (ts *StudentRepositoryTestSuite) TestCountStudents() {
	ctx := context.Background()

	count, err := ts.repo.CountStudents(ctx)
	ts.Require().NoError(err)
	ts.Require().Zero(count)

	err = ts.repo.CreateStudent(ctx, newTestStudent("Alice Kaupa"))
	ts.Require().NoError(err)

	count, err = ts.repo.CountStudents(ctx)
	ts.Require().NoError(err)
	ts.Require().Equal(1, count)
}
