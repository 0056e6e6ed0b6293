package middleware

import (
	"net/http"
	"strings"

	jwtsvc "bookease/internal/pkg/jwt"
	"bookease/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenValidator decodes a session token into claims.
type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwtsvc.Claims, error)
}

// RequireAuth reads the session token from the cookie (the value carries a
// "Bearer " prefix, kept for parity with the Authorization header form) and
// falls back to the Authorization header. On success user_id and role are
// set on the context.
func RequireAuth(cookieName string, jwt TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ""
		if cookie, err := c.Cookie(cookieName); err == nil {
			raw = cookie
		}
		if raw == "" {
			raw = c.GetHeader("Authorization")
		}
		if raw == "" {
			response.AbortError(c, http.StatusUnauthorized, "You have no access to this route")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "You have no access to this route")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "You have no access to this route")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
