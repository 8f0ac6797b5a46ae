// require_role.go
package middleware

import (
	"net/http"

	"aventura-gamer-service/internal/service"

	"github.com/gin-gonic/gin"
)

// RequireRole deja pasar solo a usuarios cuyo rol (validado server-side por
// el AuthMiddleware) alcanza el requerido en la jerarquía.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if !service.RoleAtLeast(role, required) {
			c.JSON(http.StatusForbidden, gin.H{"error": required + " privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
