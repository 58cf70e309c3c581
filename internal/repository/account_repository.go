package repository

import (
	"context"
	"errors"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) AccountByEmail(ctx context.Context, email string) (entity.Account, error) {
	q := `SELECT id, email, password_hash, created_at FROM accounts WHERE email = $1`

	var account entity.Account

	err := r.db.QueryRow(ctx, q, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Account{}, entity.ErrNotFound
		}

		return entity.Account{}, err
	}

	return account, nil
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account entity.Account) error {
	q := `INSERT INTO accounts (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, account.ID, account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}
