// Package auth_repo provides the PostgreSQL implementation of the user
// repository.
package auth_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"salespoint/internal/core/apperror"
	"salespoint/internal/domain/auth"
)

var userCols = []string{
	"id", "email", "name", "password_hash",
	"reset_token_hash", "reset_token_expiry", "created_at",
}

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewUserRepo creates a new user repository.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByEmail returns the user with the given email, or nil when no such
// user exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByResetToken returns the user holding the given reset token hash,
// or nil when no such user exists.
func (r *UserRepo) GetByResetToken(ctx context.Context, tokenHash string) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"reset_token_hash": tokenHash})
}

func (r *UserRepo) getOne(ctx context.Context, pred squirrel.Eq) (*auth.User, error) {
	q := r.builder.
		Select(userCols...).
		From("users").
		Where(pred).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.pool, &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, apperror.NewStore(err)
	}
	return &user, nil
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.builder.
		Insert("users").
		Columns("id", "email", "name", "password_hash", "created_at").
		Values(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return apperror.NewStore(err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

// SetResetToken stores a pending reset token hash and its expiry.
func (r *UserRepo) SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiry time.Time) error {
	q := r.builder.
		Update("users").
		Set("reset_token_hash", tokenHash).
		Set("reset_token_expiry", expiry).
		Where(squirrel.Eq{"id": userID})

	sql, args, err := q.ToSql()
	if err != nil {
		return apperror.NewStore(err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

// UpdatePassword replaces the password hash and clears the reset token
// state.
func (r *UserRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	q := r.builder.
		Update("users").
		Set("password_hash", passwordHash).
		Set("reset_token_hash", nil).
		Set("reset_token_expiry", nil).
		Where(squirrel.Eq{"id": userID})

	sql, args, err := q.ToSql()
	if err != nil {
		return apperror.NewStore(err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

// Ensure interface compliance
var _ auth.UserRepository = (*UserRepo)(nil)
