package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for the quote aggregate.
// Create and Save are transactional over header plus items: a failed item
// write must not leave an orphan header behind.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindAll returns all quotes, each enriched with its items.
	FindAll(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, order *Order) error
	// Save replaces the stored aggregate: header update plus
	// delete-all-then-reinsert of the item set.
	Save(ctx context.Context, order *Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
