package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockMovementRepository is the append-only store for ledger rows.
// There is deliberately no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *StockMovement) error
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]StockMovement, error)
	FindAll(ctx context.Context) ([]StockMovement, error)
}
