package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// UpsertMovementRequest carries the loose fields of a movement create or
// update. Type, status and channel are validated against the known tag sets.
type UpsertMovementRequest struct {
	Title          any        `json:"title"`
	Category       any        `json:"category"`
	OccurredAt     any        `json:"occurred_at"`
	Value          any        `json:"value"`
	Status         any        `json:"status"`
	Type           any        `json:"type"`
	Channel        any        `json:"channel"`
	Notes          any        `json:"notes"`
	ServiceOrderID *uuid.UUID `json:"service_order_id"`
}

// ListMovementsRequest carries the loose filter fields of the reconciled
// listing. Unknown tag values are ignored rather than rejected.
type ListMovementsRequest struct {
	Type           any        `json:"type"`
	Status         any        `json:"status"`
	Category       any        `json:"category"`
	Channel        any        `json:"channel"`
	From           any        `json:"from"`
	To             any        `json:"to"`
	ServiceOrderID *uuid.UUID `json:"service_order_id"`
}

// MovementResponse is the read shape of a reconciled movement. Value already
// carries the scale repair applied against the linked service order total.
type MovementResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Category       string          `json:"category,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
	Value          decimal.Decimal `json:"value"`
	Status         string          `json:"status"`
	Type           string          `json:"type"`
	Channel        string          `json:"channel,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	ServiceOrderID *uuid.UUID      `json:"service_order_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToMovementResponse maps a movement to its read shape
func ToMovementResponse(m *finance.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		Title:          m.Title,
		Category:       m.Category,
		OccurredAt:     m.OccurredAt,
		Value:          m.Value,
		Status:         m.Status,
		Type:           m.Type,
		Channel:        m.Channel,
		Notes:          m.Notes,
		ServiceOrderID: m.ServiceOrderID,
		CreatedAt:      m.CreatedAt,
	}
}
