package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one loose line of a create/update request. Quantity and
// UnitPrice accept strings in the decimal-comma convention as well as JSON
// numbers; unresolvable values degrade to zero before validation.
type OrderItemInput struct {
	ProductID   *uuid.UUID `json:"product_id"`
	ProductName any        `json:"product_name"`
	Quantity    any        `json:"quantity"`
	UnitPrice   any        `json:"unit_price"`
}

// UpsertOrderRequest carries the loose fields of a quote create or update.
// Update uses the same shape with replace semantics for the item set.
type UpsertOrderRequest struct {
	ClientID         *uuid.UUID `json:"client_id"`
	ClientName       any        `json:"client_name"`
	ClientContact    any        `json:"client_contact"`
	Equipment        any        `json:"equipment"`
	Problem          any        `json:"problem"`
	CatalogServiceID *uuid.UUID `json:"catalog_service_id"`
	ServiceValue     any        `json:"service_value"`
	TotalValue       any        `json:"total_value"`
	ValidUntil       any        `json:"valid_until"`
	Notes            any        `json:"notes"`
	Items            []OrderItemInput `json:"items"`
}

// OrderItemResponse is the read shape of a quote line.
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// OrderResponse is the read shape of a quote aggregate.
type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	ClientID           *uuid.UUID          `json:"client_id,omitempty"`
	ClientName         string              `json:"client_name"`
	ClientContact      string              `json:"client_contact,omitempty"`
	Equipment          string              `json:"equipment,omitempty"`
	Problem            string              `json:"problem,omitempty"`
	CatalogServiceID   *uuid.UUID          `json:"catalog_service_id,omitempty"`
	ServiceDescription string              `json:"service_description,omitempty"`
	ServiceValue       decimal.Decimal     `json:"service_value"`
	ItemsValue         decimal.Decimal     `json:"items_value"`
	TotalValue         decimal.Decimal     `json:"total_value"`
	ValidUntil         *time.Time          `json:"valid_until,omitempty"`
	Status             string              `json:"status"`
	Notes              string              `json:"notes,omitempty"`
	Items              []OrderItemResponse `json:"items"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// ConversionResult reports what the conversion workflow produced.
type ConversionResult struct {
	OrderID        uuid.UUID  `json:"order_id"`
	ServiceOrderID uuid.UUID  `json:"service_order_id"`
	MovedItems     int        `json:"moved_items"`
}

// ToOrderResponse maps a quote aggregate to its read shape
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}
	return OrderResponse{
		ID:                 o.ID,
		ClientID:           o.ClientID,
		ClientName:         o.ClientName,
		ClientContact:      o.ClientContact,
		Equipment:          o.Equipment,
		Problem:            o.Problem,
		CatalogServiceID:   o.CatalogServiceID,
		ServiceDescription: o.ServiceDescription,
		ServiceValue:       o.ServiceValue,
		ItemsValue:         o.ItemsValue,
		TotalValue:         o.TotalValue,
		ValidUntil:         o.ValidUntil,
		Status:             o.Status,
		Notes:              o.Notes,
		Items:              items,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// ToOrderResponses maps a slice of quote aggregates
func ToOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
