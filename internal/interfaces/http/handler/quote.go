package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	orderapp "github.com/osworks/backend/internal/application/order"
	"github.com/osworks/backend/internal/infrastructure/delivery"
	"github.com/osworks/backend/internal/infrastructure/rendering"
	"github.com/osworks/backend/internal/interfaces/http/middleware"
)

// QuoteHandler handles quote endpoints, including the conversion workflow,
// the printable PDF export and webhook delivery.
type QuoteHandler struct {
	BaseHandler
	orders   *orderapp.OrderService
	renderer rendering.QuoteRenderer
	sender   delivery.Sender
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(orders *orderapp.OrderService, renderer rendering.QuoteRenderer, sender delivery.Sender) *QuoteHandler {
	return &QuoteHandler{orders: orders, renderer: renderer, sender: sender}
}

// RegisterRoutes registers the quote routes
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/quotes")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/pdf", h.ExportPDF)
	g.POST("", h.Create)
	g.POST("/:id/convert", h.Convert)
	g.POST("/:id/send", h.Send)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns all quotes
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quotes)
}

// Get returns one quote with its items
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID")
		return
	}
	quote, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// Create registers a new quote
func (h *QuoteHandler) Create(c *gin.Context) {
	var req orderapp.UpsertOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	quote, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, quote)
}

// Update rewrites a quote, replacing its item set
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID")
		return
	}
	var req orderapp.UpsertOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidJSON(c)
		return
	}
	quote, err := h.orders.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

// Convert turns the quote into a realized service order, moving the linked
// items out of stock.
func (h *QuoteHandler) Convert(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID")
		return
	}
	result, err := h.orders.Convert(c.Request.Context(), id, middleware.GetJWTUsername(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ExportPDF streams the printable quote document.
func (h *QuoteHandler) ExportPDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID")
		return
	}
	quote, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	pdf, err := h.renderer.RenderQuote(c.Request.Context(), *quote)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orcamento-%s.pdf", quote.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Send pushes the quote to the configured delivery channel.
func (h *QuoteHandler) Send(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID")
		return
	}
	quote, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if err := h.sender.SendQuote(c.Request.Context(), *quote); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"sent": true})
}

// Delete removes a quote and its items
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID")
		return
	}
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
