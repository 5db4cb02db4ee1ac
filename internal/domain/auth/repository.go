package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository persists users and their reset token state.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByResetToken looks a user up by the stored reset token hash.
	GetByResetToken(ctx context.Context, tokenHash string) (*User, error)

	Create(ctx context.Context, user *User) error

	// SetResetToken stores a pending reset token hash and its expiry.
	SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiry time.Time) error

	// UpdatePassword replaces the password hash and clears the reset
	// token and expiry to null.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
