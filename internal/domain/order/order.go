package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Order statuses. The status column is a free-form tag; these are the two
// values the core writes. StatusConverted is set by the conversion workflow.
const (
	StatusUnderReview = "em_analise"
	StatusConverted   = "convertido"
)

// OrderItem is a line item of a quote. ProductID is nullable: a line may be a
// free-text product name with no catalog link. ProductName is a point-in-time
// snapshot, never re-read from the catalog.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a line item with its total computed as quantity*price.
func NewOrderItem(productID *uuid.UUID, productName string, quantity, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Item product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item unit price cannot be negative")
	}
	return &OrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       quantity.Mul(unitPrice),
	}, nil
}

// Order is the quote aggregate root: a header plus its line items. Client
// name/contact and the linked catalog service description/price are
// denormalized snapshots taken at write time.
type Order struct {
	shared.BaseEntity
	ClientID           *uuid.UUID      `gorm:"type:uuid;index"`
	ClientName         string          `gorm:"type:varchar(200);not null"`
	ClientContact      string          `gorm:"type:varchar(100)"`
	Equipment          string          `gorm:"type:varchar(200)"`
	Problem            string          `gorm:"type:text"`
	CatalogServiceID   *uuid.UUID      `gorm:"type:uuid;index"`
	ServiceDescription string          `gorm:"type:text"`
	ServiceValue       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ItemsValue         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalValue         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ValidUntil         *time.Time
	Status             string `gorm:"type:varchar(30);not null;default:'em_analise'"`
	Notes              string `gorm:"type:text"`
	Items              []OrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a quote in the default status. Totals are derived by
// SetItems / SetValues afterwards.
func NewOrder(clientName string) (*Order, error) {
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	return &Order{
		BaseEntity:   shared.NewBaseEntity(),
		ClientName:   clientName,
		ServiceValue: decimal.Zero,
		ItemsValue:   decimal.Zero,
		TotalValue:   decimal.Zero,
		Status:       StatusUnderReview,
		Items:        make([]OrderItem, 0),
	}, nil
}

// SetItems replaces the full item set and recomputes ItemsValue as the sum of
// the items' totals. Update keeps replace semantics: no item-level diffing.
func (o *Order) SetItems(items []OrderItem) {
	sum := decimal.Zero
	for i := range items {
		items[i].OrderID = o.ID
		sum = sum.Add(items[i].Total)
	}
	o.Items = items
	o.ItemsValue = sum
	o.Touch()
}

// SetValues fixes the monetary header fields. When totalOverride is nil the
// total is derived as serviceValue + ItemsValue; once stored it is never
// re-derived on read.
func (o *Order) SetValues(serviceValue decimal.Decimal, totalOverride *decimal.Decimal) {
	o.ServiceValue = serviceValue
	if totalOverride != nil {
		o.TotalValue = *totalOverride
	} else {
		o.TotalValue = serviceValue.Add(o.ItemsValue)
	}
	o.Touch()
}

// MarkConverted transitions the quote to the converted status. The status is
// not enforced as terminal; the conversion workflow owns the business rule.
func (o *Order) MarkConverted() {
	o.Status = StatusConverted
	o.Touch()
}
