package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

func resolveAsAdmin(f *fixture, session entity.Session) {
	f.admins.EXPECT().AdminByEmail(gomock.Any(), session.Email).
		Return(entity.AdminUser{FullName: "Carol Admin", Email: session.Email}, nil)
	f.admins.EXPECT().AdoptAccountID(gomock.Any(), session.Email, session.AccountID).Return(nil)
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	t.Run("all_counters", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsAdmin(f, session)
		f.students.EXPECT().CountStudents(gomock.Any()).Return(120, nil)
		f.officers.EXPECT().CountOfficers(gomock.Any()).Return(15, nil)
		f.departments.EXPECT().CountDepartments(gomock.Any()).Return(10, nil)
		f.records.EXPECT().CountByStatus(gomock.Any(), entity.StatusPending).Return(37, nil)

		stats, err := f.s.Stats(context.Background(), session)
		require.NoError(t, err)
		require.Equal(t, entity.Stats{
			TotalStudents:     120,
			TotalStaff:        15,
			TotalDepartments:  10,
			PendingClearances: 37,
		}, stats)
	})

	t.Run("count_failure_fails_the_call", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsAdmin(f, session)
		f.students.EXPECT().CountStudents(gomock.Any()).Return(0, errors.New("connection refused"))
		f.officers.EXPECT().CountOfficers(gomock.Any()).Return(15, nil)
		f.departments.EXPECT().CountDepartments(gomock.Any()).Return(10, nil)
		f.records.EXPECT().CountByStatus(gomock.Any(), entity.StatusPending).Return(37, nil)

		_, err := f.s.Stats(context.Background(), session)
		require.Error(t, err)
	})

	t.Run("students_get_no_stats", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsStudent(f, session, entity.Student{FullName: "Alice", Email: testEmail})

		_, err := f.s.Stats(context.Background(), session)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})
}
