package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/finance"
	"github.com/osworks/backend/internal/domain/serviceorder"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedServiceOrder(t *testing.T, db *gorm.DB, total decimal.Decimal) *serviceorder.ServiceOrder {
	t.Helper()
	so := &serviceorder.ServiceOrder{
		BaseEntity: shared.NewBaseEntity(),
		ClientName: "Maria Silva",
		RealizedAt: time.Now(),
		Status:     serviceorder.StatusInExecution,
		TotalValue: total,
	}
	require.NoError(t, db.Create(so).Error)
	return so
}

func seedMovement(t *testing.T, db *gorm.DB, value decimal.Decimal, serviceOrderID *uuid.UUID, occurredAt time.Time) *finance.Movement {
	t.Helper()
	m, err := finance.NewMovement("Pagamento", finance.TypeIn, finance.StatusPaid, value, occurredAt)
	require.NoError(t, err)
	m.ServiceOrderID = serviceOrderID
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestGormMovementRepository_ListWithServiceTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("joins the linked service order total", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormMovementRepository(db)

		so := seedServiceOrder(t, db, decimal.RequireFromString("45.00"))
		seedMovement(t, db, decimal.NewFromInt(4500), &so.ID, time.Now())

		rows, err := repo.ListWithServiceTotals(ctx, finance.MovementFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].ServiceTotal)
		assert.True(t, rows[0].ServiceTotal.Equal(decimal.RequireFromString("45.00")))
	})

	t.Run("unlinked and dangling movements come back with nil total", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormMovementRepository(db)

		dangling := uuid.New()
		seedMovement(t, db, decimal.NewFromInt(100), nil, time.Now())
		seedMovement(t, db, decimal.NewFromInt(200), &dangling, time.Now())

		rows, err := repo.ListWithServiceTotals(ctx, finance.MovementFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Nil(t, rows[0].ServiceTotal)
		assert.Nil(t, rows[1].ServiceTotal)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormMovementRepository(db)

		in := seedMovement(t, db, decimal.NewFromInt(100), nil, time.Now())
		out, err := finance.NewMovement("Compra de pecas", finance.TypeOut, finance.StatusPending, decimal.NewFromInt(50), time.Now())
		require.NoError(t, err)
		require.NoError(t, db.Create(out).Error)

		rows, err := repo.ListWithServiceTotals(ctx, finance.MovementFilter{
			Type:   finance.TypeIn,
			Status: finance.StatusPaid,
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, in.ID, rows[0].ID)
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormMovementRepository(db)

		day := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
		seedMovement(t, db, decimal.NewFromInt(100), nil, day)

		from := day
		to := day
		rows, err := repo.ListWithServiceTotals(ctx, finance.MovementFilter{From: &from, To: &to})
		require.NoError(t, err)
		assert.Len(t, rows, 1)

		before := day.Add(-time.Hour)
		rows, err = repo.ListWithServiceTotals(ctx, finance.MovementFilter{To: &before})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("orders by occurred_at descending", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormMovementRepository(db)

		older := seedMovement(t, db, decimal.NewFromInt(1), nil, time.Now().Add(-time.Hour))
		newer := seedMovement(t, db, decimal.NewFromInt(2), nil, time.Now())

		rows, err := repo.ListWithServiceTotals(ctx, finance.MovementFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, newer.ID, rows[0].ID)
		assert.Equal(t, older.ID, rows[1].ID)
	})
}

func TestGormMovementRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormMovementRepository(db)

	m := seedMovement(t, db, decimal.NewFromInt(100), nil, time.Now())

	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pagamento", got.Title)

	got.Title = "Pagamento ajustado"
	require.NoError(t, repo.Save(ctx, got))

	got, err = repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pagamento ajustado", got.Title)

	require.NoError(t, repo.Delete(ctx, m.ID))
	_, err = repo.FindByID(ctx, m.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
