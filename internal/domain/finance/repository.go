package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementFilter narrows the reconciled listing. All fields are optional and
// combined with AND; the date range is inclusive on both ends.
type MovementFilter struct {
	Type           string
	Status         string
	Category       string
	Channel        string
	From           *time.Time
	To             *time.Time
	ServiceOrderID *uuid.UUID
}

// MovementRow is the read model of the reconciliation view: a movement plus
// the total of its linked service order, when the outer join resolved one.
type MovementRow struct {
	Movement
	ServiceTotal *decimal.Decimal
}

// MovementRepository defines persistence operations for finance movements
type MovementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Movement, error)
	// ListWithServiceTotals returns movements matching the filter, outer
	// joined to the linked service order's total, ordered by date descending.
	ListWithServiceTotals(ctx context.Context, filter MovementFilter) ([]MovementRow, error)
	Save(ctx context.Context, movement *Movement) error
	Delete(ctx context.Context, id uuid.UUID) error
}
