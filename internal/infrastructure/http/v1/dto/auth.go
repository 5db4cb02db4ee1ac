package dto

import (
	"time"

	"salespoint/internal/domain/auth"
)

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      *auth.User `json:"user"`
}

// ForgotPasswordRequest is the POST /forgot-password body.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the POST /reset-password body.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
