package catalog

import (
	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable product with a single mutable current-stock
// value. The stock field is owned by the stock ledger: every change goes
// through a recorded movement and no other writer may touch it.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Cost        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Stock       decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Cost:       decimal.Zero,
		Stock:      decimal.Zero,
	}, nil
}
