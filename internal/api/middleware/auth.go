package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/jwt"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/redis"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

// JWTAuth validates the Authorization: Bearer <token> header and injects the
// worker's identity into the request context. Logged-out tokens are rejected
// through the Redis blacklist; a nil rdb skips that check.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "wrong token type")
			c.Abort()
			return
		}

		if rdb != nil {
			if blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && blacklisted {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set("nip", claims.NIP)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth allows the request only when the authenticated worker holds one of
// the given roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		workerRole := role.(string)
		for _, r := range allowedRoles {
			if workerRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "insufficient privileges")
		c.Abort()
	}
}
