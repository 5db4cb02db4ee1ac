package handlers

import (
	"github.com/gin-gonic/gin"

	"salespoint/internal/core/apperror"
	"salespoint/internal/domain/auth"
	"salespoint/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves login and the password reset flow.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{
		Token:     pair.AccessToken,
		TokenType: pair.TokenType,
		ExpiresAt: pair.ExpiresAt,
		User:      user,
	})
}

// ForgotPassword handles POST /forgot-password. The response is the same
// whether or not the email is registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if req.Email == "" {
		h.Error(c, apperror.NewValidation("email is required"))
		return
	}

	if _, err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "If that email is registered, a reset link has been sent")
}

// ResetPassword handles POST /reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Password has been reset successfully")
}
