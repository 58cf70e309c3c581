package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// ResolveProfile maps a session to its role profile by probing the role
// tables in a fixed order: admin, then student, then department officer. The
// first match wins. Lookup failures are logged and treated as no match, so a
// flaky backend degrades to the signed-out flow instead of an error page.
func (s *Service) ResolveProfile(ctx context.Context, session entity.Session) entity.Profile {
	admin, err := s.admins.AdminByEmail(ctx, session.Email)
	if err == nil {
		s.adoptAccountID(ctx, s.admins.AdoptAccountID, session)
		admin.ID = session.AccountID

		return entity.Profile{Role: entity.RoleAdmin, Admin: &admin}
	}

	s.logResolveFailure(ctx, "admin", err)

	student, err := s.students.StudentByEmail(ctx, session.Email)
	if err == nil {
		s.adoptAccountID(ctx, s.students.AdoptAccountID, session)
		student.ID = session.AccountID

		return entity.Profile{Role: entity.RoleStudent, Student: &student}
	}

	s.logResolveFailure(ctx, "student", err)

	officer, err := s.officers.OfficerByEmail(ctx, session.Email)
	if err == nil {
		s.adoptAccountID(ctx, s.officers.AdoptAccountID, session)
		officer.ID = session.AccountID

		return entity.Profile{Role: entity.RoleDepartment, Department: &officer}
	}

	s.logResolveFailure(ctx, "officer", err)

	return entity.Profile{}
}

type adoptFunc func(ctx context.Context, email string, accountID uuid.UUID) error

// adoptAccountID realigns a legacy profile row with the account id. Fire and
// forget: resolution does not wait on it and its failure is only logged.
func (s *Service) adoptAccountID(ctx context.Context, adopt adoptFunc, session entity.Session) {
	if err := adopt(ctx, session.Email, session.AccountID); err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("adopt account id: %s", err))
	}
}

func (s *Service) logResolveFailure(ctx context.Context, table string, err error) {
	if errors.Is(err, entity.ErrNotFound) {
		return
	}

	slog.ErrorContext(ctx, fmt.Sprintf("resolve %s profile: %s", table, err))
}
