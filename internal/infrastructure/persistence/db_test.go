package persistence

import (
	"testing"

	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/finance"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/osworks/backend/internal/domain/partner"
	"github.com/osworks/backend/internal/domain/serviceorder"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&partner.Client{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.CatalogService{},
		&order.Order{},
		&order.OrderItem{},
		&serviceorder.ServiceOrder{},
		&serviceorder.ServiceOrderItem{},
		&inventory.StockMovement{},
		&finance.Movement{},
	)
	require.NoError(t, err)

	return db
}
