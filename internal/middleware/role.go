package middleware

import (
	"net/http"

	"bookease/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole gates an endpoint to the listed roles. Runs after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.AbortError(c, http.StatusUnauthorized, "Role not found in token")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.AbortError(c, http.StatusForbidden, "You are not authorized to access this route")
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
