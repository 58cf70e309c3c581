package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

const officerColumns = `id, username, full_name, email, department, role, created_at, updated_at`

type OfficerRepository struct {
	db *pgxpool.Pool
}

func NewOfficerRepository(db *pgxpool.Pool) *OfficerRepository {
	return &OfficerRepository{db: db}
}

func scanOfficer(row pgx.Row) (entity.DepartmentUser, error) {
	var u entity.DepartmentUser

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FullName,
		&u.Email,
		&u.Department,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DepartmentUser{}, entity.ErrNotFound
		}

		return entity.DepartmentUser{}, err
	}

	return u, nil
}

func (r *OfficerRepository) OfficerByEmail(ctx context.Context, email string) (entity.DepartmentUser, error) {
	q := `SELECT ` + officerColumns + ` FROM department_users WHERE email = $1`

	return scanOfficer(r.db.QueryRow(ctx, q, email))
}

func (r *OfficerRepository) OfficerByEmailAndDepartment(ctx context.Context, email, department string) (entity.DepartmentUser, error) {
	q := `SELECT ` + officerColumns + ` FROM department_users WHERE email = $1 AND department = $2`

	return scanOfficer(r.db.QueryRow(ctx, q, email, department))
}

// AdoptAccountID rewrites the row id to the backing account id, as for students.
func (r *OfficerRepository) AdoptAccountID(ctx context.Context, email string, accountID uuid.UUID) error {
	q := `UPDATE department_users SET id = $1, updated_at = now() WHERE email = $2 AND id <> $1`

	_, err := r.db.Exec(ctx, q, accountID, email)
	if err != nil {
		return err
	}

	return nil
}

func (r *OfficerRepository) CountOfficers(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT count(*) FROM department_users`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *OfficerRepository) CreateOfficer(ctx context.Context, u entity.DepartmentUser) error {
	q := `
	INSERT INTO department_users (id, username, full_name, email, department, role)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, u.ID, u.Username, u.FullName, u.Email, u.Department, u.Role)
	if err != nil {
		return err
	}

	return nil
}
