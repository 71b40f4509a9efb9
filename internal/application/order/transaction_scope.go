package order

import (
	"context"

	inventoryapp "github.com/osworks/backend/internal/application/inventory"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/osworks/backend/internal/domain/serviceorder"
)

// ConversionRepositories provides access to every repository the quote
// conversion workflow writes through. It embeds the ledger repositories so
// the stock movements run inside the same transaction as the order status
// flip and the service order insert.
type ConversionRepositories interface {
	inventoryapp.LedgerRepositories
	// Orders returns the quote repository scoped to the current transaction
	Orders() order.Repository
	// ServiceOrders returns the service order repository scoped to the current transaction
	ServiceOrders() serviceorder.Repository
}

// ConversionScope runs a function within one database transaction spanning
// the quote, service order, product and stock movement tables. An error from
// the function rolls every write back.
type ConversionScope interface {
	Execute(ctx context.Context, fn func(repos ConversionRepositories) error) error
}

// NoOpConversionScope is a conversion scope without real transactions, for tests.
type NoOpConversionScope struct {
	inventoryapp.NoOpLedgerScope
	OrderRepo        order.Repository
	ServiceOrderRepo serviceorder.Repository
}

// Execute runs the function directly against the configured repositories.
func (s *NoOpConversionScope) Execute(_ context.Context, fn func(repos ConversionRepositories) error) error {
	return fn(s)
}

// Orders returns the quote repository.
func (s *NoOpConversionScope) Orders() order.Repository {
	return s.OrderRepo
}

// ServiceOrders returns the service order repository.
func (s *NoOpConversionScope) ServiceOrders() serviceorder.Repository {
	return s.ServiceOrderRepo
}

var _ ConversionScope = (*NoOpConversionScope)(nil)
var _ ConversionRepositories = (*NoOpConversionScope)(nil)
