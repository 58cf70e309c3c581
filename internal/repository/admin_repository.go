package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) AdminByEmail(ctx context.Context, email string) (entity.AdminUser, error) {
	q := `SELECT id, full_name, email, created_at, updated_at FROM admin_users WHERE email = $1`

	var admin entity.AdminUser

	err := r.db.QueryRow(ctx, q, email).Scan(
		&admin.ID,
		&admin.FullName,
		&admin.Email,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.AdminUser{}, entity.ErrNotFound
		}

		return entity.AdminUser{}, err
	}

	return admin, nil
}

func (r *AdminRepository) AdoptAccountID(ctx context.Context, email string, accountID uuid.UUID) error {
	q := `UPDATE admin_users SET id = $1, updated_at = now() WHERE email = $2 AND id <> $1`

	_, err := r.db.Exec(ctx, q, accountID, email)
	if err != nil {
		return err
	}

	return nil
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, admin entity.AdminUser) error {
	q := `INSERT INTO admin_users (id, full_name, email) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, admin.ID, admin.FullName, admin.Email)
	if err != nil {
		return err
	}

	return nil
}
