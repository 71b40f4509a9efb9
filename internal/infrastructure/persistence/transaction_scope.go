package persistence

import (
	"context"

	inventoryapp "github.com/osworks/backend/internal/application/inventory"
	orderapp "github.com/osworks/backend/internal/application/order"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/osworks/backend/internal/domain/serviceorder"
	"gorm.io/gorm"
)

// gormRepositories provides access to all repositories bound to one
// transaction handle.
type gormRepositories struct {
	tx *gorm.DB
}

// Products returns the product repository scoped to the current transaction
func (r *gormRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Movements returns the stock movement repository scoped to the current transaction
func (r *gormRepositories) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// Orders returns the quote repository scoped to the current transaction
func (r *gormRepositories) Orders() order.Repository {
	return NewGormOrderRepository(r.tx)
}

// ServiceOrders returns the service order repository scoped to the current transaction
func (r *gormRepositories) ServiceOrders() serviceorder.Repository {
	return NewGormServiceOrderRepository(r.tx)
}

// GormLedgerScope implements the stock ledger's unit of work using GORM
// transactions.
type GormLedgerScope struct {
	db *gorm.DB
}

// NewGormLedgerScope creates a new GormLedgerScope
func NewGormLedgerScope(db *gorm.DB) *GormLedgerScope {
	return &GormLedgerScope{db: db}
}

// Execute runs the given function within a database transaction. An error
// from the function rolls the transaction back.
func (s *GormLedgerScope) Execute(ctx context.Context, fn func(repos inventoryapp.LedgerRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{tx: tx})
	})
}

// GormConversionScope implements the quote conversion unit of work using GORM
// transactions. It spans the quote, service order, product and stock movement
// tables.
type GormConversionScope struct {
	db *gorm.DB
}

// NewGormConversionScope creates a new GormConversionScope
func NewGormConversionScope(db *gorm.DB) *GormConversionScope {
	return &GormConversionScope{db: db}
}

// Execute runs the given function within a database transaction. An error
// from the function rolls every write back.
func (s *GormConversionScope) Execute(ctx context.Context, fn func(repos orderapp.ConversionRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{tx: tx})
	})
}

var _ inventoryapp.LedgerScope = (*GormLedgerScope)(nil)
var _ orderapp.ConversionScope = (*GormConversionScope)(nil)
var _ inventoryapp.LedgerRepositories = (*gormRepositories)(nil)
var _ orderapp.ConversionRepositories = (*gormRepositories)(nil)
