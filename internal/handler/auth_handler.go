package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jfletch/haul-analytics-go/internal/auth"
	"github.com/jfletch/haul-analytics-go/pkg/response"
)

// AuthHandler exchanges the operator admin key for a bearer token
type AuthHandler struct {
	service *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type tokenRequest struct {
	AdminKey string `json:"admin_key" binding:"required"`
}

// IssueToken handles POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, expiresAt, err := h.service.IssueToken(req.AdminKey)
	if err != nil {
		if errors.Is(err, auth.ErrBadAdminKey) {
			response.Error(c, http.StatusUnauthorized, "Invalid admin key", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}
