package handler

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for the access gate
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.service.Attempt(c.Request.Context(), req.Password)
	if err != nil {
		statusCode, message, code := auth.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, auth.LoginResponse{Token: token})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c, "missing authorization header")
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		statusCode, message, code := auth.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// ChangePassword handles PUT /auth/password (owner only)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req auth.ChangeSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangeSecret(c.Request.Context(), req.NewPassword); err != nil {
		statusCode, message, code := auth.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
