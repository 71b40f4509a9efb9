package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/osworks/backend/internal/application/catalog"
)

// CatalogServiceHandler handles the service price list endpoints.
type CatalogServiceHandler struct {
	BaseHandler
	services *catalogapp.CatalogServiceService
}

// NewCatalogServiceHandler creates a new CatalogServiceHandler
func NewCatalogServiceHandler(services *catalogapp.CatalogServiceService) *CatalogServiceHandler {
	return &CatalogServiceHandler{services: services}
}

// RegisterRoutes registers the catalog service routes
func (h *CatalogServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/catalog-services")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns the service price list
func (h *CatalogServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, services)
}

// Create adds a service to the price list
func (h *CatalogServiceHandler) Create(c *gin.Context) {
	var req catalogapp.UpsertCatalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	service, err := h.services.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, service)
}

// Update rewrites a price list entry
func (h *CatalogServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid service ID")
		return
	}
	var req catalogapp.UpsertCatalogServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	service, err := h.services.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, service)
}

// Delete removes a price list entry
func (h *CatalogServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid service ID")
		return
	}
	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
