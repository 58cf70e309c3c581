package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// SignInStudent authenticates a student account. The profile itself is
// resolved lazily on the next navigation; here only the credentials and the
// login-type hint are handled.
func (s *Service) SignInStudent(ctx context.Context, email, password string) (entity.Session, error) {
	session, err := s.signIn(ctx, email, password)
	if err != nil {
		return entity.Session{}, err
	}

	s.setLoginHint(ctx, session.Email, entity.RoleStudent)

	return session, nil
}

// SignInOfficer authenticates a department officer. When departmentCode is
// given, the officer row must belong to that department; an authenticated
// account without a matching row is signed out again immediately.
func (s *Service) SignInOfficer(ctx context.Context, email, password, departmentCode string) (entity.Session, error) {
	session, err := s.signIn(ctx, email, password)
	if err != nil {
		return entity.Session{}, err
	}

	if err := s.verifyOfficer(ctx, session.Email, departmentCode); err != nil {
		s.revokeSession(ctx, session)

		return entity.Session{}, err
	}

	s.setLoginHint(ctx, session.Email, entity.RoleDepartment)

	return session, nil
}

// SignInAdmin authenticates an administrator account and verifies the admin
// row exists before the session is handed out.
func (s *Service) SignInAdmin(ctx context.Context, email, password string) (entity.Session, error) {
	session, err := s.signIn(ctx, email, password)
	if err != nil {
		return entity.Session{}, err
	}

	_, err = s.admins.AdminByEmail(ctx, session.Email)
	if err != nil {
		s.revokeSession(ctx, session)

		if errors.Is(err, entity.ErrNotFound) {
			return entity.Session{}, entity.ErrNoProfile
		}

		return entity.Session{}, fmt.Errorf("verify admin profile: %w", err)
	}

	s.setLoginHint(ctx, session.Email, entity.RoleAdmin)

	return session, nil
}

func (s *Service) signIn(ctx context.Context, email, password string) (entity.Session, error) {
	if err := s.checkConfigured(); err != nil {
		return entity.Session{}, err
	}

	email, err := NormalizeEmail(email)
	if err != nil {
		return entity.Session{}, err
	}

	if err := ValidatePassword(password); err != nil {
		return entity.Session{}, err
	}

	account, err := s.accounts.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Session{}, entity.ErrInvalidCredentials
		}

		return entity.Session{}, fmt.Errorf("find account: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return entity.Session{}, entity.ErrInvalidCredentials
	}

	return s.issueSession(ctx, account)
}

func (s *Service) issueSession(ctx context.Context, account entity.Account) (entity.Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.Session.TTL)

	claims := entity.SessionClaims{
		AccountID: account.ID,
		Email:     account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.Must(uuid.NewV4()).String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return entity.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	session := entity.Session{
		Token:     token,
		AccountID: account.ID,
		Email:     account.Email,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}

	err = s.sessions.SaveSession(ctx, session)
	if err != nil {
		return entity.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

func (s *Service) verifyOfficer(ctx context.Context, email, departmentCode string) error {
	if departmentCode == "" {
		_, err := s.officers.OfficerByEmail(ctx, email)
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrNoProfile
		}

		if err != nil {
			return fmt.Errorf("verify officer profile: %w", err)
		}

		return nil
	}

	dept, err := s.departments.DepartmentByCode(ctx, departmentCode)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrUnknownDepartment
		}

		return fmt.Errorf("find department: %w", err)
	}

	_, err = s.officers.OfficerByEmailAndDepartment(ctx, email, dept.Name)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.ErrNoDepartmentAccess
	}

	if err != nil {
		return fmt.Errorf("verify officer profile: %w", err)
	}

	return nil
}

// ValidateSession checks both the token signature and the persisted session
// row, so a deleted row revokes the token before it expires.
func (s *Service) ValidateSession(ctx context.Context, token string) (entity.Session, error) {
	if err := s.checkConfigured(); err != nil {
		return entity.Session{}, err
	}

	parsed, err := jwt.ParseWithClaims(token, &entity.SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.cfg.Session.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.Session{}, entity.ErrSessionExpired
		}

		return entity.Session{}, entity.ErrInvalidToken
	}

	if !parsed.Valid {
		return entity.Session{}, entity.ErrInvalidToken
	}

	session, err := s.sessions.SessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Session{}, entity.ErrSessionExpired
		}

		return entity.Session{}, fmt.Errorf("find session: %w", err)
	}

	return session, nil
}

func (s *Service) SignOut(ctx context.Context, token string) error {
	if err := s.checkConfigured(); err != nil {
		return err
	}

	session, err := s.sessions.SessionByToken(ctx, token)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("find session: %w", err)
	}

	if err == nil {
		s.revokeSession(ctx, session)
	}

	return nil
}

// revokeSession tears down a session and its per-session state. Failures are
// logged and swallowed, sign-out never fails on cleanup.
func (s *Service) revokeSession(ctx context.Context, session entity.Session) {
	if err := s.sessions.DeleteSession(ctx, session.Token); err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("delete session: %s", err))
	}

	if err := s.hints.ClearLastLoginType(ctx, session.Email); err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("clear login hint: %s", err))
	}

	s.retries.reset(session.Token)
}

// setLoginHint is best effort: the hint only helps the redirect controller
// pick a provisional destination, losing it costs nothing.
func (s *Service) setLoginHint(ctx context.Context, email string, role entity.Role) {
	if err := s.hints.SetLastLoginType(ctx, email, role); err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("store login hint: %s", err))
	}
}
