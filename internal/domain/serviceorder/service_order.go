package serviceorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Service order statuses. The conversion workflow always starts an order in
// execution; settlement is a later status update outside the core workflow.
const (
	StatusInExecution = "em_execucao"
	StatusDone        = "concluido"
	StatusSettled     = "faturado"
)

// ServiceOrderItem is a line item copied 1:1 from a quote item at conversion
// time, with cost fields initialized to zero. Cost accounting fills them in
// later, outside the conversion workflow.
type ServiceOrderItem struct {
	shared.BaseEntity
	ServiceOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName    string          `gorm:"type:varchar(200);not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	UnitCost       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (ServiceOrderItem) TableName() string {
	return "service_order_items"
}

// ServiceOrder is the realized-service aggregate. It is created only by the
// quote conversion workflow; its TotalValue is the authoritative figure for
// any finance movement that references it.
type ServiceOrder struct {
	shared.BaseEntity
	OrderID       *uuid.UUID      `gorm:"type:uuid;index"`
	ClientID      *uuid.UUID      `gorm:"type:uuid;index"`
	ClientName    string          `gorm:"type:varchar(200);not null"`
	ClientContact string          `gorm:"type:varchar(100)"`
	Equipment     string          `gorm:"type:varchar(200)"`
	Description   string          `gorm:"type:text"`
	RealizedAt    time.Time       `gorm:"not null"`
	Status        string          `gorm:"type:varchar(30);not null;default:'em_execucao'"`
	ServiceValue  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProductsValue decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalValue    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ServiceCost   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProductsCost  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Items         []ServiceOrderItem `gorm:"foreignKey:ServiceOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (ServiceOrder) TableName() string {
	return "service_orders"
}

// NewFromOrder builds a service order from an accepted quote: client and
// equipment fields copied, realization date set to today, monetary values
// carried over, cost fields zeroed, items copied 1:1.
func NewFromOrder(o *order.Order) *ServiceOrder {
	so := &ServiceOrder{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       &o.ID,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		ClientContact: o.ClientContact,
		Equipment:     o.Equipment,
		Description:   o.Problem,
		RealizedAt:    time.Now(),
		Status:        StatusInExecution,
		ServiceValue:  o.ServiceValue,
		ProductsValue: o.ItemsValue,
		TotalValue:    o.TotalValue,
		ServiceCost:   decimal.Zero,
		ProductsCost:  decimal.Zero,
		Items:         make([]ServiceOrderItem, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		so.Items = append(so.Items, ServiceOrderItem{
			BaseEntity:     shared.NewBaseEntity(),
			ServiceOrderID: so.ID,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			Total:          it.Total,
			UnitCost:       decimal.Zero,
		})
	}
	return so
}

// SetStatus updates the service order status tag.
func (s *ServiceOrder) SetStatus(status string) error {
	if status == "" {
		return shared.NewDomainError("INVALID_STATUS", "Status cannot be empty")
	}
	s.Status = status
	s.Touch()
	return nil
}
