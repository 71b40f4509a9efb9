package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/osworks/backend/internal/application/identity"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	username string
	password string
}

func (v stubVerifier) Verify(_ context.Context, username, password string) error {
	if username == v.username && password == v.password {
		return nil
	}
	return shared.ErrUnauthorized
}

type stubIssuer struct{}

func (stubIssuer) Issue(username string) (string, time.Time, error) {
	return "token-for-" + username, time.Now().Add(time.Hour), nil
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	service := identityapp.NewAuthService(stubVerifier{username: "admin", password: "s3cret"}, stubIssuer{})
	api := r.Group("/api/v1")
	NewAuthHandler(service).RegisterRoutes(api)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	r := newAuthTestRouter()

	t.Run("valid credentials return a token", func(t *testing.T) {
		w := postLogin(r, `{"username":"admin","password":"s3cret"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token-for-admin")
	})

	t.Run("whitespace around the username is trimmed", func(t *testing.T) {
		w := postLogin(r, `{"username":"  admin  ","password":"s3cret"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password yields 401", func(t *testing.T) {
		w := postLogin(r, `{"username":"admin","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("missing fields yield 401", func(t *testing.T) {
		w := postLogin(r, `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		w := postLogin(r, `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_JSON")
	})
}
