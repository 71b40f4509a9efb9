package inventory

import (
	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// MovementLine is one product line of a batch movement request. ProductID may
// be nil for free-text lines; those are skipped, since an audit entry without
// a resolvable product has no stock to move.
type MovementLine struct {
	ProductID   *uuid.UUID
	ProductName string
	Quantity    decimal.Decimal
	Description string
}

// MovementBatchRequest asks the ledger to record one movement per line, all
// in the same direction, atomically.
type MovementBatchRequest struct {
	Direction   inventory.Direction
	Origin      inventory.Origin
	ReferenceID *uuid.UUID
	Actor       string
	Items       []MovementLine
}

// MoveProductRequest is the single-product convenience form.
type MoveProductRequest struct {
	ProductID   uuid.UUID
	Direction   inventory.Direction
	Quantity    decimal.Decimal
	Description string
	Origin      inventory.Origin
	ReferenceID *uuid.UUID
	Actor       string
}

// MovementSummary reports the stock transition applied for one line, in
// input order.
type MovementSummary struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	Quantity      decimal.Decimal `json:"quantity"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
}

// MovementResponse is the read shape of a ledger row.
type MovementResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     *uuid.UUID      `json:"product_id,omitempty"`
	ProductName   string          `json:"product_name"`
	Direction     string          `json:"direction"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Description   string          `json:"description,omitempty"`
	Origin        string          `json:"origin"`
	ReferenceID   *uuid.UUID      `json:"reference_id,omitempty"`
	Actor         string          `json:"actor,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// ToMovementResponse maps a ledger row to its read shape
func ToMovementResponse(m *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Direction:     m.Direction.String(),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		CurrentStock:  m.CurrentStock,
		Description:   m.Description,
		Origin:        string(m.Origin),
		ReferenceID:   m.ReferenceID,
		Actor:         m.Actor,
		CreatedAt:     m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToMovementResponses maps a slice of ledger rows
func ToMovementResponses(ms []inventory.StockMovement) []MovementResponse {
	out := make([]MovementResponse, len(ms))
	for i := range ms {
		out[i] = ToMovementResponse(&ms[i])
	}
	return out
}
