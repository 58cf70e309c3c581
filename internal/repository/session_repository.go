package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) SaveSession(ctx context.Context, session entity.Session) error {
	q := `INSERT INTO sessions (token, account_id, email, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, session.Token, session.AccountID, session.Email, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *SessionRepository) SessionByToken(ctx context.Context, token string) (entity.Session, error) {
	q := `
	SELECT token, account_id, email, expires_at, created_at
	FROM sessions
	WHERE token = $1
	AND expires_at > now()`

	var session entity.Session

	err := r.db.QueryRow(ctx, q, token).Scan(
		&session.Token,
		&session.AccountID,
		&session.Email,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, entity.ErrNotFound
		}

		return entity.Session{}, err
	}

	return session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	q := `DELETE FROM sessions WHERE token = $1`

	_, err := r.db.Exec(ctx, q, token)
	if err != nil {
		return err
	}

	return nil
}

func (r *SessionRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	q := `DELETE FROM sessions WHERE account_id = $1`

	_, err := r.db.Exec(ctx, q, accountID)
	if err != nil {
		return err
	}

	return nil
}

func (r *SessionRepository) CleanExpired(ctx context.Context) error {
	q := `DELETE FROM sessions WHERE expires_at < now()`

	_, err := r.db.Exec(ctx, q)
	if err != nil {
		return err
	}

	return nil
}
