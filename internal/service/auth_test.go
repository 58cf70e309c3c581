package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

func TestService_SignInStudent(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		session := signInStudent(t, f)

		require.Equal(t, testEmail, session.Email)
		require.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("wrong_password", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)

		_, err := f.s.SignInStudent(context.Background(), testEmail, "wrong")
		require.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("unknown_account", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(entity.Account{}, entity.ErrNotFound)

		_, err := f.s.SignInStudent(context.Background(), testEmail, testPassword)
		require.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("email_normalized", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.hints.EXPECT().SetLastLoginType(gomock.Any(), testEmail, entity.RoleStudent).Return(nil)

		_, err := f.s.SignInStudent(context.Background(), "  Alice@Uni.Edu ", testPassword)
		require.NoError(t, err)
	})

	t.Run("invalid_email", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		_, err := f.s.SignInStudent(context.Background(), "not-an-email", testPassword)
		require.ErrorIs(t, err, entity.ErrEmailInvalidFormat)
	})

	t.Run("empty_password", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		_, err := f.s.SignInStudent(context.Background(), testEmail, "")
		require.ErrorIs(t, err, entity.ErrPasswordEmpty)
	})

	t.Run("hint_failure_does_not_block", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.hints.EXPECT().SetLastLoginType(gomock.Any(), testEmail, entity.RoleStudent).
			Return(errors.New("redis down"))

		_, err := f.s.SignInStudent(context.Background(), testEmail, testPassword)
		require.NoError(t, err)
	})
}

func TestService_SignInOfficer(t *testing.T) {
	t.Parallel()

	officer := entity.DepartmentUser{FullName: "Bob Officer", Email: testEmail, Department: "Library"}

	t.Run("with_department_code", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.departments.EXPECT().DepartmentByCode(gomock.Any(), "LIB").
			Return(entity.Department{Name: "Library", Code: "LIB"}, nil)
		f.officers.EXPECT().OfficerByEmailAndDepartment(gomock.Any(), testEmail, "Library").Return(officer, nil)
		f.hints.EXPECT().SetLastLoginType(gomock.Any(), testEmail, entity.RoleDepartment).Return(nil)

		_, err := f.s.SignInOfficer(context.Background(), testEmail, testPassword, "LIB")
		require.NoError(t, err)
	})

	t.Run("without_department_code", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.officers.EXPECT().OfficerByEmail(gomock.Any(), testEmail).Return(officer, nil)
		f.hints.EXPECT().SetLastLoginType(gomock.Any(), testEmail, entity.RoleDepartment).Return(nil)

		_, err := f.s.SignInOfficer(context.Background(), testEmail, testPassword, "")
		require.NoError(t, err)
	})

	t.Run("wrong_department_revokes_session", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.departments.EXPECT().DepartmentByCode(gomock.Any(), "MESS").
			Return(entity.Department{Name: "Mess", Code: "MESS"}, nil)
		f.officers.EXPECT().OfficerByEmailAndDepartment(gomock.Any(), testEmail, "Mess").
			Return(entity.DepartmentUser{}, entity.ErrNotFound)
		f.sessions.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)
		f.hints.EXPECT().ClearLastLoginType(gomock.Any(), testEmail).Return(nil)

		_, err := f.s.SignInOfficer(context.Background(), testEmail, testPassword, "MESS")
		require.ErrorIs(t, err, entity.ErrNoDepartmentAccess)
	})

	t.Run("unknown_department_code", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.departments.EXPECT().DepartmentByCode(gomock.Any(), "NOPE").
			Return(entity.Department{}, entity.ErrNotFound)
		f.sessions.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)
		f.hints.EXPECT().ClearLastLoginType(gomock.Any(), testEmail).Return(nil)

		_, err := f.s.SignInOfficer(context.Background(), testEmail, testPassword, "NOPE")
		require.ErrorIs(t, err, entity.ErrUnknownDepartment)
	})
}

func TestService_SignInAdmin(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.admins.EXPECT().AdminByEmail(gomock.Any(), testEmail).
			Return(entity.AdminUser{FullName: "Carol Admin", Email: testEmail}, nil)
		f.hints.EXPECT().SetLastLoginType(gomock.Any(), testEmail, entity.RoleAdmin).Return(nil)

		_, err := f.s.SignInAdmin(context.Background(), testEmail, testPassword)
		require.NoError(t, err)
	})

	t.Run("no_admin_profile_revokes_session", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.accounts.EXPECT().AccountByEmail(gomock.Any(), testEmail).Return(testAccount(t, testEmail), nil)
		f.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		f.admins.EXPECT().AdminByEmail(gomock.Any(), testEmail).Return(entity.AdminUser{}, entity.ErrNotFound)
		f.sessions.EXPECT().DeleteSession(gomock.Any(), gomock.Any()).Return(nil)
		f.hints.EXPECT().ClearLastLoginType(gomock.Any(), testEmail).Return(nil)

		_, err := f.s.SignInAdmin(context.Background(), testEmail, testPassword)
		require.ErrorIs(t, err, entity.ErrNoProfile)
	})
}

func TestService_ValidateSession(t *testing.T) {
	t.Parallel()

	t.Run("valid_token", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		session := signInStudent(t, f)

		f.sessions.EXPECT().SessionByToken(gomock.Any(), session.Token).Return(session, nil)

		got, err := f.s.ValidateSession(context.Background(), session.Token)
		require.NoError(t, err)
		require.Equal(t, session.AccountID, got.AccountID)
	})

	t.Run("garbage_token", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		_, err := f.s.ValidateSession(context.Background(), "not-a-jwt")
		require.ErrorIs(t, err, entity.ErrInvalidToken)
	})

	t.Run("revoked_session_row", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		session := signInStudent(t, f)

		f.sessions.EXPECT().SessionByToken(gomock.Any(), session.Token).
			Return(entity.Session{}, entity.ErrNotFound)

		_, err := f.s.ValidateSession(context.Background(), session.Token)
		require.ErrorIs(t, err, entity.ErrSessionExpired)
	})
}

func TestService_SignOut(t *testing.T) {
	t.Parallel()

	t.Run("deletes_session_and_hint", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		session := signInStudent(t, f)

		f.sessions.EXPECT().SessionByToken(gomock.Any(), session.Token).Return(session, nil)
		f.sessions.EXPECT().DeleteSession(gomock.Any(), session.Token).Return(nil)
		f.hints.EXPECT().ClearLastLoginType(gomock.Any(), testEmail).Return(nil)

		err := f.s.SignOut(context.Background(), session.Token)
		require.NoError(t, err)
	})

	t.Run("unknown_token_is_fine", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		f.sessions.EXPECT().SessionByToken(gomock.Any(), "gone").Return(entity.Session{}, entity.ErrNotFound)

		err := f.s.SignOut(context.Background(), "gone")
		require.NoError(t, err)
	})
}
