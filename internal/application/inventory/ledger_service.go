package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/osworks/backend/internal/domain/shared"
)

// LedgerService records stock movements. Every movement reads the product's
// current stock under a row lock, writes the new stock value and appends the
// ledger row in the same transaction, so concurrent movements against the
// same product serialize instead of overwriting each other's delta.
type LedgerService struct {
	scope     LedgerScope
	movements inventory.StockMovementRepository
}

// NewLedgerService creates a new LedgerService. The movement repository is
// used for the read paths only; all writes go through the scope.
func NewLedgerService(scope LedgerScope, movements inventory.StockMovementRepository) *LedgerService {
	return &LedgerService{scope: scope, movements: movements}
}

// RecordBatch records the batch in its own unit of work. One line's failure
// aborts the whole batch; no partial stock updates survive.
func (s *LedgerService) RecordBatch(ctx context.Context, req MovementBatchRequest) ([]MovementSummary, error) {
	var summaries []MovementSummary
	err := s.scope.Execute(ctx, func(repos LedgerRepositories) error {
		var err error
		summaries, err = s.Record(ctx, repos, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// MoveProduct is the single-product convenience form of RecordBatch.
func (s *LedgerService) MoveProduct(ctx context.Context, req MoveProductRequest) (*MovementSummary, error) {
	productID := req.ProductID
	summaries, err := s.RecordBatch(ctx, MovementBatchRequest{
		Direction:   req.Direction,
		Origin:      req.Origin,
		ReferenceID: req.ReferenceID,
		Actor:       req.Actor,
		Items: []MovementLine{{
			ProductID:   &productID,
			Quantity:    req.Quantity,
			Description: req.Description,
		}},
	})
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, shared.ErrNotFound
	}
	return &summaries[0], nil
}

// Record records the batch against externally supplied transactional
// repositories, letting a caller fold the ledger into a wider atomic unit
// (the quote conversion workflow). Errors propagate so the owner of the
// transaction can roll everything back.
func (s *LedgerService) Record(ctx context.Context, repos LedgerRepositories, req MovementBatchRequest) ([]MovementSummary, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_BATCH", "Movement batch cannot be empty")
	}
	if !req.Direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Movement direction must be entrada or saida")
	}
	if !req.Origin.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORIGIN", "Unknown movement origin")
	}

	summaries := make([]MovementSummary, 0, len(req.Items))
	for _, line := range req.Items {
		if line.ProductID == nil {
			// Free-text line with no catalog link: nothing to move.
			continue
		}

		product, err := repos.Products().FindByIDForUpdate(ctx, *line.ProductID)
		if err != nil {
			return nil, err
		}

		movement, err := inventory.NewStockMovement(
			line.ProductID,
			product.Name,
			req.Direction,
			line.Quantity,
			product.Stock,
			line.Description,
			req.Origin,
			req.ReferenceID,
			req.Actor,
		)
		if err != nil {
			return nil, err
		}

		if err := repos.Products().UpdateStock(ctx, product.ID, movement.CurrentStock); err != nil {
			return nil, err
		}
		if err := repos.Movements().Create(ctx, movement); err != nil {
			return nil, err
		}

		summaries = append(summaries, MovementSummary{
			ProductID:     product.ID,
			ProductName:   product.Name,
			PreviousStock: movement.PreviousStock,
			Quantity:      movement.Quantity,
			CurrentStock:  movement.CurrentStock,
		})
	}
	return summaries, nil
}

// ListByProduct returns the ledger rows for one product.
func (s *LedgerService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]MovementResponse, error) {
	movements, err := s.movements.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}

// List returns all ledger rows, newest first.
func (s *LedgerService) List(ctx context.Context) ([]MovementResponse, error) {
	movements, err := s.movements.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}
