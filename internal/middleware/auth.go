package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfletch/haul-analytics-go/internal/auth"
	"github.com/jfletch/haul-analytics-go/pkg/response"
)

// RequireAuth guards mutating endpoints with a bearer token issued by the
// auth service.
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		if err := authService.ValidateToken(header); err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", err)
			c.Abort()
			return
		}

		c.Next()
	}
}
