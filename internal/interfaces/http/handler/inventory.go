package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/osworks/backend/internal/application/inventory"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/osworks/backend/internal/domain/shared/normalize"
	"github.com/osworks/backend/internal/interfaces/http/middleware"
)

// movementLineRequest is one loose line of a movement batch.
type movementLineRequest struct {
	ProductID   *uuid.UUID `json:"product_id"`
	ProductName any        `json:"product_name"`
	Quantity    any        `json:"quantity"`
	Description any        `json:"description"`
}

// movementBatchRequest is the loose body of a batch movement. Direction and
// origin are validated downstream; quantities degrade to zero.
type movementBatchRequest struct {
	Direction   any                   `json:"direction"`
	Origin      any                   `json:"origin"`
	ReferenceID *uuid.UUID            `json:"reference_id"`
	Items       []movementLineRequest `json:"items"`
}

// InventoryHandler handles stock ledger endpoints.
type InventoryHandler struct {
	BaseHandler
	ledger *inventoryapp.LedgerService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(ledger *inventoryapp.LedgerService) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// RegisterRoutes registers the inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/inventory")
	g.GET("/movements", h.List)
	g.POST("/movements", h.RecordBatch)
}

// List returns all ledger rows, newest first
func (h *InventoryHandler) List(c *gin.Context) {
	movements, err := h.ledger.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// RecordBatch records one movement per line, atomically. The actor is taken
// from the authenticated user.
func (h *InventoryHandler) RecordBatch(c *gin.Context) {
	var req movementBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}

	origin := inventory.OriginManual
	if tag := normalize.Text(req.Origin); tag != nil {
		origin = inventory.Origin(*tag)
	}

	batch := inventoryapp.MovementBatchRequest{
		Direction:   inventory.Direction(derefText(req.Direction)),
		Origin:      origin,
		ReferenceID: req.ReferenceID,
		Actor:       middleware.GetJWTUsername(c),
		Items:       make([]inventoryapp.MovementLine, 0, len(req.Items)),
	}
	for _, line := range req.Items {
		batch.Items = append(batch.Items, inventoryapp.MovementLine{
			ProductID:   line.ProductID,
			ProductName: derefText(line.ProductName),
			Quantity:    normalize.NumberOrZero(line.Quantity),
			Description: derefText(line.Description),
		})
	}

	summaries, err := h.ledger.RecordBatch(c.Request.Context(), batch)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, summaries)
}

// derefText normalizes loose text to a plain string, blank when absent.
func derefText(v any) string {
	if s := normalize.Text(v); s != nil {
		return *s
	}
	return ""
}
