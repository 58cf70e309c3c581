package service

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/23302610sole/clear-path-png/internal/entity"
	"github.com/23302610sole/clear-path-png/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type AccountRepository interface {
	AccountByEmail(ctx context.Context, email string) (entity.Account, error)
}

type SessionRepository interface {
	SaveSession(ctx context.Context, session entity.Session) error
	SessionByToken(ctx context.Context, token string) (entity.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
	CleanExpired(ctx context.Context) error
}

type StudentRepository interface {
	StudentByEmail(ctx context.Context, email string) (entity.Student, error)
	StudentByID(ctx context.Context, id uuid.UUID) (entity.Student, error)
	ListStudents(ctx context.Context) ([]entity.Student, error)
	AdoptAccountID(ctx context.Context, email string, accountID uuid.UUID) error
	CountStudents(ctx context.Context) (int, error)
}

type OfficerRepository interface {
	OfficerByEmail(ctx context.Context, email string) (entity.DepartmentUser, error)
	OfficerByEmailAndDepartment(ctx context.Context, email, department string) (entity.DepartmentUser, error)
	AdoptAccountID(ctx context.Context, email string, accountID uuid.UUID) error
	CountOfficers(ctx context.Context) (int, error)
}

type AdminRepository interface {
	AdminByEmail(ctx context.Context, email string) (entity.AdminUser, error)
	AdoptAccountID(ctx context.Context, email string, accountID uuid.UUID) error
}

type ClearanceRepository interface {
	RecordsByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.ClearanceRecord, error)
	RecordsByDepartment(ctx context.Context, department string) ([]entity.ClearanceRecord, error)
	UpsertRecord(ctx context.Context, rec entity.ClearanceRecord) error
	CountByStatus(ctx context.Context, status entity.ClearanceStatus) (int, error)
}

type DepartmentRepository interface {
	DepartmentByCode(ctx context.Context, code string) (entity.Department, error)
	ActiveDepartments(ctx context.Context) ([]entity.Department, error)
	CountDepartments(ctx context.Context) (int, error)
}

type HintRepository interface {
	SetLastLoginType(ctx context.Context, email string, role entity.Role) error
	LastLoginType(ctx context.Context, email string) (entity.Role, error)
	ClearLastLoginType(ctx context.Context, email string) error
}

type Notifier interface {
	SendClearanceReminder(ctx context.Context, student entity.Student, pending []string)
}

type Service struct {
	cfg config.Config

	accounts    AccountRepository
	sessions    SessionRepository
	students    StudentRepository
	officers    OfficerRepository
	admins      AdminRepository
	records     ClearanceRepository
	departments DepartmentRepository
	hints       HintRepository
	notifier    Notifier

	retries *retryTracker
}

func NewService(
	cfg config.Config,
	accounts AccountRepository,
	sessions SessionRepository,
	students StudentRepository,
	officers OfficerRepository,
	admins AdminRepository,
	records ClearanceRepository,
	departments DepartmentRepository,
	hints HintRepository,
	notifier Notifier,
) *Service {
	return &Service{
		cfg:         cfg,
		accounts:    accounts,
		sessions:    sessions,
		students:    students,
		officers:    officers,
		admins:      admins,
		records:     records,
		departments: departments,
		hints:       hints,
		notifier:    notifier,
		retries:     newRetryTracker(),
	}
}

// checkConfigured guards every operation: without backend credentials the
// service stays up but refuses to act.
func (s *Service) checkConfigured() error {
	if !s.cfg.Configured() {
		return entity.ErrNotConfigured
	}

	return nil
}

func (s *Service) CleanExpiredSessions(ctx context.Context) error {
	if err := s.checkConfigured(); err != nil {
		return err
	}

	return s.sessions.CleanExpired(ctx)
}

// retryTracker remembers which sessions already used their single automatic
// profile re-resolution.
type retryTracker struct {
	mu        sync.Mutex
	attempted map[string]struct{}
}

func newRetryTracker() *retryTracker {
	return &retryTracker{attempted: make(map[string]struct{})}
}

// attempt marks the session's retry as used and reports whether this call was
// the one that used it.
func (t *retryTracker) attempt(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.attempted[token]; ok {
		return false
	}

	t.attempted[token] = struct{}{}

	return true
}

func (t *retryTracker) reset(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.attempted, token)
}
