// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salespoint/internal/core/apperror"
	"salespoint/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body"))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters"))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single
// source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OK sends 200 response with a {"data": ...} envelope.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.DataResponse{Data: data})
}

// Raw sends 200 response with the payload unwrapped.
func (h *BaseHandler) Raw(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created sends 201 response with a message.
func (h *BaseHandler) Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: message})
}

// Message sends 200 response with a message.
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
