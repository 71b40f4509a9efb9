package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/osworks/backend/internal/application/catalog"
	inventoryapp "github.com/osworks/backend/internal/application/inventory"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/osworks/backend/internal/domain/shared/normalize"
	"github.com/osworks/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles product catalog endpoints. Stock never changes
// through product updates; it only moves through the ledger endpoints.
type ProductHandler struct {
	BaseHandler
	products *catalogapp.ProductService
	ledger   *inventoryapp.LedgerService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *catalogapp.ProductService, ledger *inventoryapp.LedgerService) *ProductHandler {
	return &ProductHandler{products: products, ledger: ledger}
}

// RegisterRoutes registers the product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/movements", h.ListMovements)
	g.POST("/:id/stock", h.MoveStock)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns all products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Get returns one product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListMovements returns the stock ledger rows of one product
func (h *ProductHandler) ListMovements(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	movements, err := h.ledger.ListByProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}

// moveStockRequest is the loose body of a single-product movement.
type moveStockRequest struct {
	Direction   any        `json:"direction"`
	Quantity    any        `json:"quantity"`
	Description any        `json:"description"`
	Origin      any        `json:"origin"`
	ReferenceID *uuid.UUID `json:"reference_id"`
}

// MoveStock records a single entrada or saida movement for one product. The
// actor is taken from the authenticated user.
func (h *ProductHandler) MoveStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var req moveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}

	origin := inventory.OriginManual
	if tag := normalize.Text(req.Origin); tag != nil {
		origin = inventory.Origin(*tag)
	}

	summary, err := h.ledger.MoveProduct(c.Request.Context(), inventoryapp.MoveProductRequest{
		ProductID:   id,
		Direction:   inventory.Direction(derefText(req.Direction)),
		Quantity:    normalize.NumberOrZero(req.Quantity),
		Description: derefText(req.Description),
		Origin:      origin,
		ReferenceID: req.ReferenceID,
		Actor:       middleware.GetJWTUsername(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, summary)
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update rewrites a product's fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var req catalogapp.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	product, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
