package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/jwt"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

// MustGetNIP extracts the authenticated worker's NIP from the Gin context.
// It returns false, after writing a 401, when the auth middleware did not run.
// Callers should return immediately on ok=false.
func MustGetNIP(c *gin.Context) (string, bool) {
	v, exists := c.Get("nip")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the authenticated worker's role.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetClaims extracts the full token claims, needed by logout to revoke
// the exact token in use.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	return claims, true
}
