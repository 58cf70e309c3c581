package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// Clearance aggregates the clearance state visible to the session's role. A
// student sees one entry per target department, gap-filled with pending; a
// department officer sees one entry per student for their own department.
func (s *Service) Clearance(ctx context.Context, session entity.Session) (entity.ClearanceView, error) {
	if err := s.checkConfigured(); err != nil {
		return entity.ClearanceView{}, err
	}

	profile := s.ResolveProfile(ctx, session)

	switch profile.Role {
	case entity.RoleStudent:
		return entity.ClearanceView{
			Role:    entity.RoleStudent,
			Entries: s.studentClearance(ctx, *profile.Student),
		}, nil
	case entity.RoleDepartment:
		return entity.ClearanceView{
			Role:    entity.RoleDepartment,
			Entries: s.officerClearance(ctx, *profile.Department),
		}, nil
	case entity.RoleAdmin:
		return entity.ClearanceView{}, entity.ErrForbidden
	default:
		return entity.ClearanceView{}, entity.ErrNoProfile
	}
}

// studentClearance never fails: a backend error degrades the whole view to
// pending rather than hiding it.
func (s *Service) studentClearance(ctx context.Context, student entity.Student) []entity.ClearanceEntry {
	records, err := s.records.RecordsByStudent(ctx, student.ID)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("load student clearance records: %s", err))

		records = nil
	}

	return buildStudentEntries(student, records)
}

func buildStudentEntries(student entity.Student, records []entity.ClearanceRecord) []entity.ClearanceEntry {
	byDepartment := make(map[string]entity.ClearanceRecord, len(records))
	for _, rec := range records {
		if _, ok := byDepartment[rec.Department]; !ok {
			byDepartment[rec.Department] = rec
		}
	}

	targets := entity.TargetDepartments(entity.Catalog, student.Department)

	entries := make([]entity.ClearanceEntry, 0, len(targets))

	for _, target := range targets {
		entry := entity.ClearanceEntry{
			Department: target.Name,
			Status:     entity.StatusPending,
		}

		if rec, ok := byDepartment[target.Name]; ok {
			entry.Status = rec.Status
			entry.Notes = rec.Notes
			entry.ClearedBy = rec.ClearedBy
			entry.ClearedAt = rec.ClearedAt
		}

		entries = append(entries, entry)
	}

	return entries
}

// officerClearance lists every student against the officer's department. When
// the student list itself cannot be loaded the view is empty; a failed record
// load still shows the students, all pending.
func (s *Service) officerClearance(ctx context.Context, officer entity.DepartmentUser) []entity.ClearanceEntry {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("list students: %s", err))

		return []entity.ClearanceEntry{}
	}

	records, err := s.records.RecordsByDepartment(ctx, officer.Department)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("load department clearance records: %s", err))

		records = nil
	}

	byStudent := make(map[uuid.UUID]entity.ClearanceRecord, len(records))
	for _, rec := range records {
		if _, ok := byStudent[rec.StudentID]; !ok {
			byStudent[rec.StudentID] = rec
		}
	}

	entries := make([]entity.ClearanceEntry, 0, len(students))

	for i := range students {
		entry := entity.ClearanceEntry{
			Department: officer.Department,
			Status:     entity.StatusPending,
			Student:    &students[i],
		}

		if rec, ok := byStudent[students[i].ID]; ok {
			entry.Status = rec.Status
			entry.Notes = rec.Notes
			entry.ClearedBy = rec.ClearedBy
			entry.ClearedAt = rec.ClearedAt
		}

		entries = append(entries, entry)
	}

	return entries
}

// RecordClearance upserts a department's decision for one student. Only a
// department officer may write, and only for their own department. A cleared
// status is stamped with who cleared it and when; any other status wipes the
// stamp.
func (s *Service) RecordClearance(
	ctx context.Context,
	session entity.Session,
	studentID uuid.UUID,
	department string,
	status entity.ClearanceStatus,
	notes *string,
) error {
	if err := s.checkConfigured(); err != nil {
		return err
	}

	if !status.Valid() {
		return entity.ErrUnknownStatus
	}

	profile := s.ResolveProfile(ctx, session)
	if profile.Role != entity.RoleDepartment {
		return entity.ErrForbidden
	}

	officer := *profile.Department

	if department == "" {
		department = officer.Department
	}

	if department != officer.Department {
		return entity.ErrNoDepartmentAccess
	}

	rec := entity.ClearanceRecord{
		ID:         uuid.Must(uuid.NewV4()),
		StudentID:  studentID,
		Department: department,
		Status:     status,
		Notes:      notes,
		UpdatedBy:  officer.ID,
	}

	if status == entity.StatusCleared {
		now := time.Now()
		rec.ClearedBy = &officer.FullName
		rec.ClearedAt = &now
	}

	err := s.records.UpsertRecord(ctx, rec)
	if err != nil {
		return fmt.Errorf("upsert clearance record: %w", err)
	}

	return nil
}

// SendReminder hands a pending-clearance reminder to the notifier. Delivery
// is fire and forget, so the operation succeeds once the student and their
// pending departments are known.
func (s *Service) SendReminder(ctx context.Context, session entity.Session, studentID uuid.UUID) error {
	if err := s.checkConfigured(); err != nil {
		return err
	}

	profile := s.ResolveProfile(ctx, session)
	if profile.Role != entity.RoleDepartment {
		return entity.ErrForbidden
	}

	student, err := s.students.StudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrNotFound
		}

		return fmt.Errorf("find student: %w", err)
	}

	var pending []string

	for _, entry := range s.studentClearance(ctx, student) {
		if !entry.Cleared() {
			pending = append(pending, entry.Department)
		}
	}

	s.notifier.SendClearanceReminder(ctx, student, pending)

	return nil
}
