package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateStock(ctx context.Context, id uuid.UUID, stock decimal.Decimal) error {
	args := m.Called(ctx, id, stock)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStockMovementRepository is a mock implementation of inventory.StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindAll(ctx context.Context) ([]inventory.StockMovement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func newTestLedger(products *MockProductRepository, movements *MockStockMovementRepository) *LedgerService {
	scope := &NoOpLedgerScope{ProductRepo: products, MovementRepo: movements}
	return NewLedgerService(scope, movements)
}

func testProduct(name string, stock int64) *catalog.Product {
	p, _ := catalog.NewProduct(name, decimal.NewFromInt(10))
	p.Stock = decimal.NewFromInt(stock)
	return p
}

func TestLedgerService_RecordBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("saida decrements stock and appends movement", func(t *testing.T) {
		products := new(MockProductRepository)
		movements := new(MockStockMovementRepository)
		service := newTestLedger(products, movements)

		p := testProduct("Fan 120mm", 10)
		products.On("FindByIDForUpdate", ctx, p.ID).Return(p, nil)
		products.On("UpdateStock", ctx, p.ID, decimal.NewFromInt(7)).Return(nil)
		movements.On("Create", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		summaries, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.DirectionOut,
			Origin:    inventory.OriginManual,
			Actor:     "admin",
			Items: []MovementLine{
				{ProductID: &p.ID, Quantity: decimal.NewFromInt(3)},
			},
		})

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.True(t, summaries[0].PreviousStock.Equal(decimal.NewFromInt(10)))
		assert.True(t, summaries[0].Quantity.Equal(decimal.NewFromInt(3)))
		assert.True(t, summaries[0].CurrentStock.Equal(decimal.NewFromInt(7)))

		movement := movements.Calls[0].Arguments.Get(1).(*inventory.StockMovement)
		assert.Equal(t, inventory.DirectionOut, movement.Direction)
		assert.True(t, movement.CurrentStock.Equal(movement.PreviousStock.Sub(movement.Quantity)))
		products.AssertExpectations(t)
		movements.AssertExpectations(t)
	})

	t.Run("entrada increments stock", func(t *testing.T) {
		products := new(MockProductRepository)
		movements := new(MockStockMovementRepository)
		service := newTestLedger(products, movements)

		p := testProduct("Fan 120mm", 4)
		products.On("FindByIDForUpdate", ctx, p.ID).Return(p, nil)
		products.On("UpdateStock", ctx, p.ID, decimal.NewFromInt(9)).Return(nil)
		movements.On("Create", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		summaries, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.DirectionIn,
			Origin:    inventory.OriginManual,
			Items:     []MovementLine{{ProductID: &p.ID, Quantity: decimal.NewFromInt(5)}},
		})

		require.NoError(t, err)
		assert.True(t, summaries[0].CurrentStock.Equal(decimal.NewFromInt(9)))
	})

	t.Run("summaries preserve input order", func(t *testing.T) {
		products := new(MockProductRepository)
		movements := new(MockStockMovementRepository)
		service := newTestLedger(products, movements)

		p1 := testProduct("Fan 120mm", 10)
		p2 := testProduct("SSD 480GB", 5)
		products.On("FindByIDForUpdate", ctx, p1.ID).Return(p1, nil)
		products.On("FindByIDForUpdate", ctx, p2.ID).Return(p2, nil)
		products.On("UpdateStock", ctx, mock.Anything, mock.Anything).Return(nil)
		movements.On("Create", ctx, mock.Anything).Return(nil)

		summaries, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.DirectionOut,
			Origin:    inventory.OriginQuote,
			Items: []MovementLine{
				{ProductID: &p1.ID, Quantity: decimal.NewFromInt(1)},
				{ProductID: &p2.ID, Quantity: decimal.NewFromInt(2)},
			},
		})

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, p1.ID, summaries[0].ProductID)
		assert.Equal(t, p2.ID, summaries[1].ProductID)
	})

	t.Run("lines without product id are skipped", func(t *testing.T) {
		products := new(MockProductRepository)
		movements := new(MockStockMovementRepository)
		service := newTestLedger(products, movements)

		p := testProduct("Fan 120mm", 10)
		products.On("FindByIDForUpdate", ctx, p.ID).Return(p, nil)
		products.On("UpdateStock", ctx, p.ID, mock.Anything).Return(nil)
		movements.On("Create", ctx, mock.Anything).Return(nil)

		summaries, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.DirectionOut,
			Origin:    inventory.OriginQuote,
			Items: []MovementLine{
				{ProductID: nil, ProductName: "Free-text part", Quantity: decimal.NewFromInt(1)},
				{ProductID: &p.ID, Quantity: decimal.NewFromInt(2)},
			},
		})

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, p.ID, summaries[0].ProductID)
	})

	t.Run("unresolvable product fails the whole batch", func(t *testing.T) {
		products := new(MockProductRepository)
		movements := new(MockStockMovementRepository)
		service := newTestLedger(products, movements)

		missing := uuid.New()
		products.On("FindByIDForUpdate", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.DirectionOut,
			Origin:    inventory.OriginQuote,
			Items:     []MovementLine{{ProductID: &missing, Quantity: decimal.NewFromInt(1)}},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		service := newTestLedger(new(MockProductRepository), new(MockStockMovementRepository))
		_, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.DirectionIn,
			Origin:    inventory.OriginManual,
		})
		assert.Error(t, err)
	})

	t.Run("invalid direction is rejected", func(t *testing.T) {
		service := newTestLedger(new(MockProductRepository), new(MockStockMovementRepository))
		_, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.Direction("sideways"),
			Origin:    inventory.OriginManual,
			Items:     []MovementLine{{Quantity: decimal.NewFromInt(1)}},
		})
		assert.Error(t, err)
	})

	t.Run("movement write failure propagates", func(t *testing.T) {
		products := new(MockProductRepository)
		movements := new(MockStockMovementRepository)
		service := newTestLedger(products, movements)

		p := testProduct("Fan 120mm", 10)
		boom := errors.New("connection reset")
		products.On("FindByIDForUpdate", ctx, p.ID).Return(p, nil)
		products.On("UpdateStock", ctx, p.ID, mock.Anything).Return(nil)
		movements.On("Create", ctx, mock.Anything).Return(boom)

		_, err := service.RecordBatch(ctx, MovementBatchRequest{
			Direction: inventory.DirectionOut,
			Origin:    inventory.OriginManual,
			Items:     []MovementLine{{ProductID: &p.ID, Quantity: decimal.NewFromInt(1)}},
		})

		assert.ErrorIs(t, err, boom)
	})
}

func TestLedgerService_MoveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps the batch form for one product", func(t *testing.T) {
		products := new(MockProductRepository)
		movements := new(MockStockMovementRepository)
		service := newTestLedger(products, movements)

		p := testProduct("Fan 120mm", 10)
		products.On("FindByIDForUpdate", ctx, p.ID).Return(p, nil)
		products.On("UpdateStock", ctx, p.ID, decimal.NewFromInt(13)).Return(nil)
		movements.On("Create", ctx, mock.Anything).Return(nil)

		summary, err := service.MoveProduct(ctx, MoveProductRequest{
			ProductID: p.ID,
			Direction: inventory.DirectionIn,
			Quantity:  decimal.NewFromInt(3),
			Origin:    inventory.OriginManual,
			Actor:     "admin",
		})

		require.NoError(t, err)
		assert.True(t, summary.CurrentStock.Equal(decimal.NewFromInt(13)))
	})
}
