package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/osworks/backend/internal/application/finance"
)

// FinanceHandler handles finance movement endpoints. Listing goes through
// the reconciled read model.
type FinanceHandler struct {
	BaseHandler
	finance *financeapp.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(finance *financeapp.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// RegisterRoutes registers the finance routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/finance/movements")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns reconciled movements. Filters come from the query string;
// unknown tag values are ignored.
func (h *FinanceHandler) List(c *gin.Context) {
	req := financeapp.ListMovementsRequest{
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Channel:  c.Query("channel"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}
	if raw := c.Query("service_order_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			req.ServiceOrderID = &id
		}
	}

	movements, err := h.finance.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// Get returns one movement
func (h *FinanceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid movement ID")
		return
	}
	movement, err := h.finance.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movement)
}

// Create registers a finance movement
func (h *FinanceHandler) Create(c *gin.Context) {
	var req financeapp.UpsertMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	movement, err := h.finance.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, movement)
}

// Update rewrites a movement
func (h *FinanceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid movement ID")
		return
	}
	var req financeapp.UpsertMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	movement, err := h.finance.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movement)
}

// Delete removes a movement
func (h *FinanceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid movement ID")
		return
	}
	if err := h.finance.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
