package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rectificadora/internal/pkg/response"
)

// IsAllowed reports whether role may access a resource gated on required
// roles. An empty required list means any authenticated role passes.
func IsAllowed(role string, required ...string) bool {
	if len(required) == 0 {
		return role != ""
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

// RequireRole ensures the authenticated user holds one of the given roles.
func RequireRole(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !IsAllowed(role.(string), required...) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
