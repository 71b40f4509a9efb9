package inventory

import (
	"context"

	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/inventory"
)

// LedgerRepositories provides access to the repositories the stock ledger
// writes through. All repositories returned share the same underlying
// database transaction, so a product stock update and its movement row commit
// or roll back together.
type LedgerRepositories interface {
	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
	// Movements returns the stock movement repository scoped to the current transaction
	Movements() inventory.StockMovementRepository
}

// LedgerScope runs a function within a database transaction over the ledger
// repositories. If the function returns an error the transaction is rolled
// back; otherwise it is committed. Callers that need the ledger to
// participate in a wider unit of work (the quote conversion workflow) pass
// their own transactional repositories to LedgerService.Record instead.
type LedgerScope interface {
	Execute(ctx context.Context, fn func(repos LedgerRepositories) error) error
}

// NoOpLedgerScope is a ledger scope without real transactions, for tests.
type NoOpLedgerScope struct {
	ProductRepo  catalog.ProductRepository
	MovementRepo inventory.StockMovementRepository
}

// Execute runs the function directly against the configured repositories.
func (s *NoOpLedgerScope) Execute(_ context.Context, fn func(repos LedgerRepositories) error) error {
	return fn(s)
}

// Products returns the product repository.
func (s *NoOpLedgerScope) Products() catalog.ProductRepository {
	return s.ProductRepo
}

// Movements returns the stock movement repository.
func (s *NoOpLedgerScope) Movements() inventory.StockMovementRepository {
	return s.MovementRepo
}

var _ LedgerScope = (*NoOpLedgerScope)(nil)
var _ LedgerRepositories = (*NoOpLedgerScope)(nil)
