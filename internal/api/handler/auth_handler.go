package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/service"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login authenticates a worker.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "wrong NIP or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout revokes the current access token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// RefreshToken exchanges a refresh token for a new token pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			response.Error(c, http.StatusUnauthorized, 11002, "invalid refresh token")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Me returns the authenticated worker's profile.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	nip, ok := MustGetNIP(c)
	if !ok {
		return
	}

	profile, err := h.authSvc.GetProfile(c.Request.Context(), nip)
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			response.NotFound(c, 11003, "worker not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, profile)
}
