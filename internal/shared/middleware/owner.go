package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionVerifier checks an owner session token. Implemented by the auth
// gate service; defined here so the middleware does not import the domain.
type SessionVerifier interface {
	VerifySession(token string) error
}

// OwnerAuth - Middleware gating edit/add/delete affordances
// Chỉ owner đã login (đúng secret) mới đi qua được
func OwnerAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		// 3. Verify session (JWT signature + session còn active)
		if err := verifier.VerifySession(parts[1]); err != nil {
			c.JSON(401, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Next()
	}
}
