package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfletch/haul-analytics-go/internal/auth"
)

func newGuardedRouter(svc *auth.Service, called *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/ingest", RequireAuth(svc), func(c *gin.Context) {
		*called = true
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := auth.NewService("test-secret", "admin-key", time.Hour)

	t.Run("valid token", func(t *testing.T) {
		token, _, err := svc.IssueToken("admin-key")
		require.NoError(t, err)

		var called bool
		r := newGuardedRouter(svc, &called)

		req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		var called bool
		r := newGuardedRouter(svc, &called)

		req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		var called bool
		r := newGuardedRouter(svc, &called)

		req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
