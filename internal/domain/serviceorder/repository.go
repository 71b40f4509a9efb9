package serviceorder

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for service orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceOrder, error)
	FindAll(ctx context.Context) ([]ServiceOrder, error)
	Create(ctx context.Context, so *ServiceOrder) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
