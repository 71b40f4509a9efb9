// Package router assembles the HTTP route tree from handler registrars.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers a handler's routes on a group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. Public registrars mount under
// /api/v1; protected ones additionally pass the auth middleware.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	auth       gin.HandlerFunc
	public     []RouteRegistrar
	protected  []RouteRegistrar
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, auth gin.HandlerFunc) *Router {
	return &Router{
		engine:     engine,
		apiVersion: "v1",
		auth:       auth,
	}
}

// RegisterPublic adds registrars whose routes skip authentication
func (r *Router) RegisterPublic(registrars ...RouteRegistrar) *Router {
	r.public = append(r.public, registrars...)
	return r
}

// Register adds registrars whose routes require authentication
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.protected = append(r.protected, registrars...)
	return r
}

// Setup mounts the health endpoint and all registered routes.
func (r *Router) Setup() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	secured := api.Group("")
	secured.Use(r.auth)
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(secured)
	}
}
