package handler

import (
	"github.com/gin-gonic/gin"
	serviceorderapp "github.com/osworks/backend/internal/application/serviceorder"
)

// ServiceOrderHandler handles realized service order endpoints. Service
// orders are created only by quote conversion, so there is no POST route.
type ServiceOrderHandler struct {
	BaseHandler
	serviceOrders *serviceorderapp.ServiceOrderService
}

// NewServiceOrderHandler creates a new ServiceOrderHandler
func NewServiceOrderHandler(serviceOrders *serviceorderapp.ServiceOrderService) *ServiceOrderHandler {
	return &ServiceOrderHandler{serviceOrders: serviceOrders}
}

// RegisterRoutes registers the service order routes
func (h *ServiceOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/service-orders")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.DELETE("/:id", h.Delete)
}

// List returns all service orders, newest first
func (h *ServiceOrderHandler) List(c *gin.Context) {
	orders, err := h.serviceOrders.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get returns one service order with its items
func (h *ServiceOrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid service order ID")
		return
	}
	order, err := h.serviceOrders.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateStatus moves a service order through its lifecycle.
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid service order ID")
		return
	}
	var req struct {
		Status any `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	if err := h.serviceOrders.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes a service order. Ledger rows that referenced it survive.
func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid service order ID")
		return
	}
	if err := h.serviceOrders.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
