package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

func resolveAsStudent(f *fixture, session entity.Session, student entity.Student) {
	f.admins.EXPECT().AdminByEmail(gomock.Any(), session.Email).Return(entity.AdminUser{}, entity.ErrNotFound)
	f.students.EXPECT().StudentByEmail(gomock.Any(), session.Email).Return(student, nil)
	f.students.EXPECT().AdoptAccountID(gomock.Any(), session.Email, session.AccountID).Return(nil)
}

func resolveAsOfficer(f *fixture, session entity.Session, officer entity.DepartmentUser) {
	f.admins.EXPECT().AdminByEmail(gomock.Any(), session.Email).Return(entity.AdminUser{}, entity.ErrNotFound)
	f.students.EXPECT().StudentByEmail(gomock.Any(), session.Email).Return(entity.Student{}, entity.ErrNotFound)
	f.officers.EXPECT().OfficerByEmail(gomock.Any(), session.Email).Return(officer, nil)
	f.officers.EXPECT().AdoptAccountID(gomock.Any(), session.Email, session.AccountID).Return(nil)
}

func TestService_Clearance_Student(t *testing.T) {
	t.Parallel()

	t.Run("gaps_filled_with_pending", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()
		student := entity.Student{FullName: "Alice", Email: testEmail, Department: "Library"}

		resolveAsStudent(f, session, student)

		notes := "returned all books"
		f.records.EXPECT().RecordsByStudent(gomock.Any(), session.AccountID).Return([]entity.ClearanceRecord{
			{Department: "Library", Status: entity.StatusCleared, Notes: &notes},
			{Department: "Mess", Status: entity.StatusBlocked},
		}, nil)

		view, err := f.s.Clearance(context.Background(), session)
		require.NoError(t, err)
		require.Equal(t, entity.RoleStudent, view.Role)
		// home department is already in the catalog, no extra entry
		require.Len(t, view.Entries, len(entity.Catalog))

		byDept := make(map[string]entity.ClearanceEntry, len(view.Entries))
		for _, entry := range view.Entries {
			byDept[entry.Department] = entry
		}

		require.Equal(t, entity.StatusCleared, byDept["Library"].Status)
		require.Equal(t, &notes, byDept["Library"].Notes)
		require.Equal(t, entity.StatusBlocked, byDept["Mess"].Status)
		require.Equal(t, entity.StatusPending, byDept["Bookshop"].Status)
	})

	t.Run("home_department_appended", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()
		student := entity.Student{FullName: "Alice", Email: testEmail, Department: "Architecture"}

		resolveAsStudent(f, session, student)
		f.records.EXPECT().RecordsByStudent(gomock.Any(), session.AccountID).Return(nil, nil)

		view, err := f.s.Clearance(context.Background(), session)
		require.NoError(t, err)
		require.Len(t, view.Entries, len(entity.Catalog)+1)
		require.Equal(t, "Architecture", view.Entries[len(view.Entries)-1].Department)
	})

	t.Run("record_error_degrades_to_pending", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()
		student := entity.Student{FullName: "Alice", Email: testEmail, Department: "Library"}

		resolveAsStudent(f, session, student)
		f.records.EXPECT().RecordsByStudent(gomock.Any(), session.AccountID).
			Return(nil, errors.New("connection refused"))

		view, err := f.s.Clearance(context.Background(), session)
		require.NoError(t, err)
		require.Len(t, view.Entries, len(entity.Catalog))

		for _, entry := range view.Entries {
			require.Equal(t, entity.StatusPending, entry.Status)
		}
	})
}

func TestService_Clearance_Officer(t *testing.T) {
	t.Parallel()

	officer := entity.DepartmentUser{FullName: "Bob", Email: testEmail, Department: "Library"}

	t.Run("one_entry_per_student", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		students := []entity.Student{
			{ID: uuid.Must(uuid.NewV4()), FullName: "Alice"},
			{ID: uuid.Must(uuid.NewV4()), FullName: "Dave"},
		}

		resolveAsOfficer(f, session, officer)
		f.students.EXPECT().ListStudents(gomock.Any()).Return(students, nil)
		f.records.EXPECT().RecordsByDepartment(gomock.Any(), "Library").Return([]entity.ClearanceRecord{
			{StudentID: students[0].ID, Department: "Library", Status: entity.StatusCleared},
		}, nil)

		view, err := f.s.Clearance(context.Background(), session)
		require.NoError(t, err)
		require.Equal(t, entity.RoleDepartment, view.Role)
		require.Len(t, view.Entries, 2)

		require.Equal(t, entity.StatusCleared, view.Entries[0].Status)
		require.Equal(t, "Alice", view.Entries[0].Student.FullName)
		require.Equal(t, entity.StatusPending, view.Entries[1].Status)
	})

	t.Run("student_list_error_empties_view", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsOfficer(f, session, officer)
		f.students.EXPECT().ListStudents(gomock.Any()).Return(nil, errors.New("connection refused"))

		view, err := f.s.Clearance(context.Background(), session)
		require.NoError(t, err)
		require.Empty(t, view.Entries)
	})

	t.Run("record_error_shows_all_pending", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		students := []entity.Student{{ID: uuid.Must(uuid.NewV4()), FullName: "Alice"}}

		resolveAsOfficer(f, session, officer)
		f.students.EXPECT().ListStudents(gomock.Any()).Return(students, nil)
		f.records.EXPECT().RecordsByDepartment(gomock.Any(), "Library").
			Return(nil, errors.New("connection refused"))

		view, err := f.s.Clearance(context.Background(), session)
		require.NoError(t, err)
		require.Len(t, view.Entries, 1)
		require.Equal(t, entity.StatusPending, view.Entries[0].Status)
	})
}

func TestService_Clearance_OtherRoles(t *testing.T) {
	t.Parallel()

	t.Run("admin_has_no_clearance_view", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		f.admins.EXPECT().AdminByEmail(gomock.Any(), session.Email).
			Return(entity.AdminUser{FullName: "Carol"}, nil)
		f.admins.EXPECT().AdoptAccountID(gomock.Any(), session.Email, session.AccountID).Return(nil)

		_, err := f.s.Clearance(context.Background(), session)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("no_profile", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		expectNoProfile(f, 1)

		_, err := f.s.Clearance(context.Background(), session)
		require.ErrorIs(t, err, entity.ErrNoProfile)
	})
}

func TestService_RecordClearance(t *testing.T) {
	t.Parallel()

	officer := entity.DepartmentUser{FullName: "Bob Officer", Email: testEmail, Department: "Library"}

	t.Run("cleared_is_stamped", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()
		studentID := uuid.Must(uuid.NewV4())

		resolveAsOfficer(f, session, officer)
		f.records.EXPECT().UpsertRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entity.ClearanceRecord) error {
				require.Equal(t, studentID, rec.StudentID)
				require.Equal(t, "Library", rec.Department)
				require.Equal(t, entity.StatusCleared, rec.Status)
				require.NotNil(t, rec.ClearedBy)
				require.Equal(t, "Bob Officer", *rec.ClearedBy)
				require.NotNil(t, rec.ClearedAt)
				require.Equal(t, session.AccountID, rec.UpdatedBy)
				return nil
			})

		err := f.s.RecordClearance(context.Background(), session, studentID, "Library", entity.StatusCleared, nil)
		require.NoError(t, err)
	})

	t.Run("pending_wipes_stamp", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsOfficer(f, session, officer)
		f.records.EXPECT().UpsertRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entity.ClearanceRecord) error {
				require.Nil(t, rec.ClearedBy)
				require.Nil(t, rec.ClearedAt)
				return nil
			})

		err := f.s.RecordClearance(
			context.Background(), session, uuid.Must(uuid.NewV4()), "", entity.StatusPending, nil,
		)
		require.NoError(t, err)
	})

	t.Run("other_department_refused", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsOfficer(f, session, officer)

		err := f.s.RecordClearance(
			context.Background(), session, uuid.Must(uuid.NewV4()), "Mess", entity.StatusCleared, nil,
		)
		require.ErrorIs(t, err, entity.ErrNoDepartmentAccess)
	})

	t.Run("student_cannot_write", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsStudent(f, session, entity.Student{FullName: "Alice", Email: testEmail})

		err := f.s.RecordClearance(
			context.Background(), session, uuid.Must(uuid.NewV4()), "Library", entity.StatusCleared, nil,
		)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("unknown_status", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		err := f.s.RecordClearance(
			context.Background(), session, uuid.Must(uuid.NewV4()), "Library", "approved", nil,
		)
		require.ErrorIs(t, err, entity.ErrUnknownStatus)
	})
}

func TestService_SendReminder(t *testing.T) {
	t.Parallel()

	officer := entity.DepartmentUser{FullName: "Bob", Email: testEmail, Department: "Library"}

	t.Run("pending_departments_listed", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()
		student := entity.Student{
			ID:         uuid.Must(uuid.NewV4()),
			FullName:   "Alice",
			Email:      "alice@student.edu",
			Department: "Library",
		}

		resolveAsOfficer(f, session, officer)
		f.students.EXPECT().StudentByID(gomock.Any(), student.ID).Return(student, nil)
		f.records.EXPECT().RecordsByStudent(gomock.Any(), student.ID).Return([]entity.ClearanceRecord{
			{Department: "Library", Status: entity.StatusCleared},
		}, nil)
		f.notifier.EXPECT().SendClearanceReminder(gomock.Any(), student, gomock.Any()).
			Do(func(_ context.Context, _ entity.Student, pending []string) {
				require.Len(t, pending, len(entity.Catalog)-1)
				require.NotContains(t, pending, "Library")
			})

		err := f.s.SendReminder(context.Background(), session, student.ID)
		require.NoError(t, err)
	})

	t.Run("unknown_student", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsOfficer(f, session, officer)
		f.students.EXPECT().StudentByID(gomock.Any(), gomock.Any()).Return(entity.Student{}, entity.ErrNotFound)

		err := f.s.SendReminder(context.Background(), session, uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("students_cannot_send", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		session := testSession()

		resolveAsStudent(f, session, entity.Student{FullName: "Alice", Email: testEmail})

		err := f.s.SendReminder(context.Background(), session, uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrForbidden)
	})
}
