package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osworks/backend/internal/infrastructure/auth"
	"github.com/osworks/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestRouter(manager *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(manager))
	r.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": GetJWTUsername(c)})
	})
	return r
}

func newTestManager(expiration time.Duration) *auth.JWTManager {
	return auth.NewJWTManager(config.AuthConfig{
		JWTSecret:       "test-secret-test-secret-test-secret",
		TokenExpiration: expiration,
		Issuer:          "osworks-test",
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Run("valid token passes and exposes the username", func(t *testing.T) {
		manager := newTestManager(time.Hour)
		token, _, err := manager.Issue("admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		newJWTTestRouter(manager).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		newJWTTestRouter(newTestManager(time.Hour)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("non-bearer header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set(AuthHeaderKey, "Basic abc123")
		newJWTTestRouter(newTestManager(time.Hour)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected with its own code", func(t *testing.T) {
		manager := newTestManager(-time.Minute)
		token, _, err := manager.Issue("admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		newJWTTestRouter(manager).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewJWTManager(config.AuthConfig{
			JWTSecret:       "another-secret-another-secret-12345",
			TokenExpiration: time.Hour,
			Issuer:          "osworks-test",
		})
		token, _, err := other.Issue("admin")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		newJWTTestRouter(newTestManager(time.Hour)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
