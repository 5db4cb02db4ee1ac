// Package auth provides authentication domain logic: login and the
// password reset flow.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a system user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`

	// Password reset state. Both fields are cleared to null once a
	// reset completes.
	ResetTokenHash   *string    `db:"reset_token_hash" json:"-"`
	ResetTokenExpiry *time.Time `db:"reset_token_expiry" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewUser creates a new user.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

// HasValidResetToken reports whether the pending reset token is still
// usable at the given instant.
func (u *User) HasValidResetToken(now time.Time) bool {
	return u.ResetTokenHash != nil && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now)
}
