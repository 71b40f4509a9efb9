package serviceorder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/serviceorder"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
	"github.com/shopspring/decimal"
)

// ServiceOrderItemResponse is the read shape of a service order line.
type ServiceOrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// ServiceOrderResponse is the read shape of a service order aggregate.
type ServiceOrderResponse struct {
	ID            uuid.UUID                  `json:"id"`
	OrderID       *uuid.UUID                 `json:"order_id,omitempty"`
	ClientID      *uuid.UUID                 `json:"client_id,omitempty"`
	ClientName    string                     `json:"client_name"`
	ClientContact string                     `json:"client_contact,omitempty"`
	Equipment     string                     `json:"equipment,omitempty"`
	Description   string                     `json:"description,omitempty"`
	RealizedAt    time.Time                  `json:"realized_at"`
	Status        string                     `json:"status"`
	ServiceValue  decimal.Decimal            `json:"service_value"`
	ProductsValue decimal.Decimal            `json:"products_value"`
	TotalValue    decimal.Decimal            `json:"total_value"`
	ServiceCost   decimal.Decimal            `json:"service_cost"`
	ProductsCost  decimal.Decimal            `json:"products_cost"`
	Items         []ServiceOrderItemResponse `json:"items"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// ToServiceOrderResponse maps a service order to its read shape
func ToServiceOrderResponse(so *serviceorder.ServiceOrder) ServiceOrderResponse {
	items := make([]ServiceOrderItemResponse, len(so.Items))
	for i, it := range so.Items {
		items[i] = ServiceOrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
			UnitCost:    it.UnitCost,
		}
	}
	return ServiceOrderResponse{
		ID:            so.ID,
		OrderID:       so.OrderID,
		ClientID:      so.ClientID,
		ClientName:    so.ClientName,
		ClientContact: so.ClientContact,
		Equipment:     so.Equipment,
		Description:   so.Description,
		RealizedAt:    so.RealizedAt,
		Status:        so.Status,
		ServiceValue:  so.ServiceValue,
		ProductsValue: so.ProductsValue,
		TotalValue:    so.TotalValue,
		ServiceCost:   so.ServiceCost,
		ProductsCost:  so.ProductsCost,
		Items:         items,
		CreatedAt:     so.CreatedAt,
	}
}

// ServiceOrderService handles service order reads and the status lifecycle.
// Service orders are only ever created by the quote conversion workflow.
type ServiceOrderService struct {
	orders serviceorder.Repository
}

// NewServiceOrderService creates a new ServiceOrderService
func NewServiceOrderService(orders serviceorder.Repository) *ServiceOrderService {
	return &ServiceOrderService{orders: orders}
}

// Get returns one service order with its items.
func (s *ServiceOrderService) Get(ctx context.Context, id uuid.UUID) (*ServiceOrderResponse, error) {
	so, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToServiceOrderResponse(so)
	return &resp, nil
}

// List returns all service orders with their items.
func (s *ServiceOrderService) List(ctx context.Context) ([]ServiceOrderResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceOrderResponse, len(orders))
	for i := range orders {
		out[i] = ToServiceOrderResponse(&orders[i])
	}
	return out, nil
}

// UpdateStatus moves a service order along its lifecycle. Only the known
// status tags are accepted.
func (s *ServiceOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status any) error {
	tag := normalize.Enum(status,
		serviceorder.StatusInExecution,
		serviceorder.StatusDone,
		serviceorder.StatusSettled,
	)
	if tag == nil {
		return shared.NewDomainError("INVALID_STATUS", "Unknown service order status")
	}
	return s.orders.UpdateStatus(ctx, id, *tag)
}

// Delete removes a service order. Ledger rows that referenced it survive;
// the stock history is never unwound.
func (s *ServiceOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orders.Delete(ctx, id)
}
