package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByIDForUpdate reads a product under a row-level lock so that a
	// read-then-write of the stock value cannot lose a concurrent update.
	// Only meaningful inside a transaction scope.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	// UpdateStock writes the product's current stock value. Callers must hold
	// the row lock taken by FindByIDForUpdate.
	UpdateStock(ctx context.Context, id uuid.UUID, stock decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogServiceRepository defines persistence operations for the service
// price list
type CatalogServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CatalogService, error)
	FindAll(ctx context.Context) ([]CatalogService, error)
	Save(ctx context.Context, service *CatalogService) error
	Delete(ctx context.Context, id uuid.UUID) error
}
