package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// HintRepository keeps the last successful login type per account. It is a
// best-effort fallback for the redirect controller, never authoritative.
type HintRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewHintRepository(rdb *redis.Client, ttl time.Duration) *HintRepository {
	return &HintRepository{rdb: rdb, ttl: ttl}
}

func hintKey(email string) string {
	return "lastLoginType:" + email
}

func (r *HintRepository) SetLastLoginType(ctx context.Context, email string, role entity.Role) error {
	return r.rdb.Set(ctx, hintKey(email), string(role), r.ttl).Err()
}

func (r *HintRepository) LastLoginType(ctx context.Context, email string) (entity.Role, error) {
	value, err := r.rdb.Get(ctx, hintKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.RoleNone, entity.ErrNotFound
	}

	if err != nil {
		return entity.RoleNone, err
	}

	role := entity.Role(value)
	if !role.Valid() {
		return entity.RoleNone, entity.ErrNotFound
	}

	return role, nil
}

func (r *HintRepository) ClearLastLoginType(ctx context.Context, email string) error {
	return r.rdb.Del(ctx, hintKey(email)).Err()
}

// NoopHintRepository stands in when redis is not configured: hints are simply
// never remembered.
type NoopHintRepository struct{}

func (NoopHintRepository) SetLastLoginType(_ context.Context, _ string, _ entity.Role) error {
	return nil
}

func (NoopHintRepository) LastLoginType(_ context.Context, _ string) (entity.Role, error) {
	return entity.RoleNone, entity.ErrNotFound
}

func (NoopHintRepository) ClearLastLoginType(_ context.Context, _ string) error {
	return nil
}
