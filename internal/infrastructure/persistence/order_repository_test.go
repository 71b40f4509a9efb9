package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestOrder(t *testing.T, itemNames ...string) *order.Order {
	t.Helper()
	o, err := order.NewOrder("Maria Silva")
	require.NoError(t, err)
	items := make([]order.OrderItem, 0, len(itemNames))
	for _, name := range itemNames {
		item, err := order.NewOrderItem(nil, name, decimal.NewFromInt(1), decimal.NewFromInt(10))
		require.NoError(t, err)
		items = append(items, *item)
	}
	o.SetItems(items)
	o.SetValues(decimal.NewFromInt(50), nil)
	return o
}

func TestGormOrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find with items", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))

		o := makeTestOrder(t, "Fonte 19V", "Cabo flat")
		require.NoError(t, repo.Create(ctx, o))

		got, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", got.ClientName)
		assert.Len(t, got.Items, 2)
		assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(70)))
	})

	t.Run("save replaces the item set", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)

		o := makeTestOrder(t, "Fonte 19V", "Cabo flat")
		require.NoError(t, repo.Create(ctx, o))

		replacement, err := order.NewOrderItem(nil, "Teclado", decimal.NewFromInt(1), decimal.NewFromInt(80))
		require.NoError(t, err)
		o.SetItems([]order.OrderItem{*replacement})
		require.NoError(t, repo.Save(ctx, o))

		got, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Teclado", got.Items[0].ProductName)

		// No orphan rows from the replaced set
		var count int64
		require.NoError(t, db.Model(&order.OrderItem{}).Where("order_id = ?", o.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("save with empty items clears the set", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))

		o := makeTestOrder(t, "Fonte 19V")
		require.NoError(t, repo.Create(ctx, o))

		o.SetItems(nil)
		require.NoError(t, repo.Save(ctx, o))

		got, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})

	t.Run("update status", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))

		o := makeTestOrder(t)
		require.NoError(t, repo.Create(ctx, o))
		require.NoError(t, repo.UpdateStatus(ctx, o.ID, order.StatusConverted))

		got, err := repo.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConverted, got.Status)
	})

	t.Run("delete removes items too", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)

		o := makeTestOrder(t, "Fonte 19V")
		require.NoError(t, repo.Create(ctx, o))
		require.NoError(t, repo.Delete(ctx, o.ID))

		_, err := repo.FindByID(ctx, o.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var count int64
		require.NoError(t, db.Model(&order.OrderItem{}).Where("order_id = ?", o.ID).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("missing quote returns not found", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), order.StatusConverted), shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}
