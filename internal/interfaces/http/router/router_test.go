package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingRegistrar struct {
	path string
}

func (p pingRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(p.path, func(c *gin.Context) { c.Status(http.StatusOK) })
}

func denyAll(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func() (*gin.Engine, *Router) {
		engine := gin.New()
		return engine, NewRouter(engine, denyAll)
	}

	get := func(engine *gin.Engine, path string) int {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	t.Run("health endpoint is always mounted", func(t *testing.T) {
		engine, r := newEngine()
		r.Setup()
		assert.Equal(t, http.StatusOK, get(engine, "/health"))
	})

	t.Run("public routes skip the auth middleware", func(t *testing.T) {
		engine, r := newEngine()
		r.RegisterPublic(pingRegistrar{path: "/open"}).Setup()
		assert.Equal(t, http.StatusOK, get(engine, "/api/v1/open"))
	})

	t.Run("protected routes pass through the auth middleware", func(t *testing.T) {
		engine, r := newEngine()
		r.Register(pingRegistrar{path: "/closed"}).Setup()
		assert.Equal(t, http.StatusUnauthorized, get(engine, "/api/v1/closed"))
	})
}
