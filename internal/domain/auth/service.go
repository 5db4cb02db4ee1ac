package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"salespoint/internal/core/apperror"
	"salespoint/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	PasswordMinLength int
	ResetTokenTTL     time.Duration
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		PasswordMinLength: 8,
		ResetTokenTTL:     time.Hour,
	}
}

// TokenPair carries an issued access token.
type TokenPair struct {
	AccessToken string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
}

// AuditLogger records completed password resets. A nil logger disables
// auditing.
type AuditLogger interface {
	LogPasswordReset(ctx context.Context, userID string)
}

// Service provides authentication logic.
type Service struct {
	userRepo   UserRepository
	jwtService *JWTService
	audit      AuditLogger
	config     ServiceConfig

	// now is swapped in tests.
	now func() time.Time
}

// NewService creates a new auth service.
func NewService(userRepo UserRepository, jwtService *JWTService, audit AuditLogger, config ServiceConfig) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
		audit:      audit,
		config:     config,
		now:        time.Now,
	}
}

// Login authenticates a user and returns an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, *User, error) {
	if email == "" || password == "" {
		return nil, nil, apperror.NewValidation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.NewUnauthorized("invalid credentials")
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("generate access token: %w", err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID, "email", user.Email)

	return &TokenPair{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
	}, user, nil
}

// ForgotPassword issues a reset token for the given email. The outcome is
// identical whether or not the account exists, so callers cannot probe for
// registered addresses. The raw token is returned for delivery.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", apperror.NewValidation("email is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		logger.Debug(ctx, "password reset requested for unknown email", "email", email)
		return "", nil
	}

	rawToken, err := generateRandomToken(32)
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	expiry := s.now().Add(s.config.ResetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, hashToken(rawToken), expiry); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	logger.Info(ctx, "password reset token issued", "user_id", user.ID)
	return rawToken, nil
}

// ResetPassword consumes a reset token and replaces the user's password.
// The stored token and its expiry are cleared once the reset succeeds.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return apperror.NewNotFound("Invalid or expired token")
	}
	if len(password) < s.config.PasswordMinLength {
		return apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		)
	}

	user, err := s.userRepo.GetByResetToken(ctx, hashToken(token))
	if err != nil || user == nil || !user.HasValidResetToken(s.now()) {
		return apperror.NewNotFound("Invalid or expired token")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if s.audit != nil {
		s.audit.LogPasswordReset(ctx, user.ID.String())
	}
	logger.Info(ctx, "password reset completed", "user_id", user.ID)
	return nil
}

// hashToken creates SHA256 hash of a token.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// generateRandomToken generates a random token string.
func generateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
