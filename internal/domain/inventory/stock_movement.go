package inventory

import (
	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Direction of a stock movement. Entrada increases the product's stock,
// saida decreases it.
type Direction string

const (
	DirectionIn  Direction = "entrada"
	DirectionOut Direction = "saida"
)

// IsValid checks if the direction is one of the two known values
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// String returns the string representation of the direction
func (d Direction) String() string {
	return string(d)
}

// Origin tags where a movement came from.
type Origin string

const (
	OriginManual           Origin = "manual"
	OriginService          Origin = "servico"
	OriginQuote            Origin = "orcamento"
	OriginSystemAdjustment Origin = "ajuste_sistema"
)

// IsValid checks if the origin is one of the known tags
func (o Origin) IsValid() bool {
	switch o {
	case OriginManual, OriginService, OriginQuote, OriginSystemAdjustment:
		return true
	}
	return false
}

// StockMovement is one append-only row of the product stock ledger. It
// snapshots the stock immediately before and after the movement; together the
// rows form the audit trail for a product's current stock. Movements are
// never updated or deleted.
type StockMovement struct {
	shared.BaseEntity
	ProductID     *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName   string          `gorm:"type:varchar(200);not null"`
	Direction     Direction       `gorm:"type:varchar(10);not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	PreviousStock decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	CurrentStock  decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	Description   string          `gorm:"type:text"`
	Origin        Origin          `gorm:"type:varchar(20);not null"`
	ReferenceID   *uuid.UUID      `gorm:"type:uuid;index"`
	Actor         string          `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement builds a ledger row from the stock value read before the
// movement. CurrentStock is always previous ± quantity; no floor-at-zero is
// applied, so a saida larger than the available stock yields a negative
// current stock.
func NewStockMovement(productID *uuid.UUID, productName string, direction Direction, quantity, previousStock decimal.Decimal, description string, origin Origin, referenceID *uuid.UUID, actor string) (*StockMovement, error) {
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Movement direction must be entrada or saida")
	}
	if !origin.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORIGIN", "Unknown movement origin")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement quantity must be positive")
	}
	current := previousStock.Add(quantity)
	if direction == DirectionOut {
		current = previousStock.Sub(quantity)
	}
	return &StockMovement{
		BaseEntity:    shared.NewBaseEntity(),
		ProductID:     productID,
		ProductName:   productName,
		Direction:     direction,
		Quantity:      quantity,
		PreviousStock: previousStock,
		CurrentStock:  current,
		Description:   description,
		Origin:        origin,
		ReferenceID:   referenceID,
		Actor:         actor,
	}, nil
}
