package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	inventoryapp "github.com/osworks/backend/internal/application/inventory"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/inventory"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/osworks/backend/internal/domain/partner"
	"github.com/osworks/backend/internal/domain/serviceorder"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
	"github.com/shopspring/decimal"
)

// OrderService handles quote lifecycle use cases, including the conversion
// of an accepted quote into a realized service order.
type OrderService struct {
	orders   order.Repository
	clients  partner.ClientRepository
	products catalog.ProductRepository
	services catalog.CatalogServiceRepository
	ledger   *inventoryapp.LedgerService
	scope    ConversionScope
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orders order.Repository,
	clients partner.ClientRepository,
	products catalog.ProductRepository,
	services catalog.CatalogServiceRepository,
	ledger *inventoryapp.LedgerService,
	scope ConversionScope,
) *OrderService {
	return &OrderService{
		orders:   orders,
		clients:  clients,
		products: products,
		services: services,
		ledger:   ledger,
		scope:    scope,
	}
}

// Create builds a quote from loose input. Client name and contact are
// snapshotted from the linked client when the request leaves them blank, and
// the linked catalog service contributes its description and price the same
// way. Snapshots are taken once here and never refreshed on read.
func (s *OrderService) Create(ctx context.Context, req UpsertOrderRequest) (*OrderResponse, error) {
	o := &order.Order{
		BaseEntity: shared.NewBaseEntity(),
		Status:     order.StatusUnderReview,
	}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if o.ClientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// Update rewrites the quote from loose input with replace semantics for the
// item set: the stored items are dropped and the request's items become the
// new set, with ItemsValue recomputed from them.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpsertOrderRequest) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if o.ClientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// apply folds the normalized request fields into the aggregate.
func (s *OrderService) apply(ctx context.Context, o *order.Order, req UpsertOrderRequest) error {
	clientName := normalize.Text(req.ClientName)
	clientContact := normalize.Text(req.ClientContact)
	o.ClientID = req.ClientID
	if req.ClientID != nil && (clientName == nil || clientContact == nil) {
		if client, err := s.clients.FindByID(ctx, *req.ClientID); err == nil {
			if clientName == nil {
				clientName = &client.Name
			}
			if clientContact == nil {
				clientContact = &client.Contact
			}
		}
	}
	o.ClientName = derefOr(clientName, "")
	o.ClientContact = derefOr(clientContact, "")
	o.Equipment = derefOr(normalize.Text(req.Equipment), "")
	o.Problem = derefOr(normalize.Text(req.Problem), "")
	o.Notes = derefOr(normalize.Text(req.Notes), "")
	o.ValidUntil = parseDate(req.ValidUntil)

	serviceValue := normalize.Number(req.ServiceValue)
	o.CatalogServiceID = req.CatalogServiceID
	o.ServiceDescription = ""
	if req.CatalogServiceID != nil {
		// Lookup failure keeps the link but degrades the snapshot to blank
		// and the price contribution to zero.
		if svc, err := s.services.FindByID(ctx, *req.CatalogServiceID); err == nil {
			o.ServiceDescription = svc.Name
			if serviceValue == nil {
				serviceValue = &svc.Price
			}
		}
	}

	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return err
	}
	o.SetItems(items)
	o.SetValues(derefDecimal(serviceValue), normalize.Number(req.TotalValue))
	return nil
}

// buildItems normalizes the loose item lines. A line with a product link but
// no unit price takes the catalog price; a broken link degrades to zero.
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		name := normalize.Text(in.ProductName)
		price := normalize.Number(in.UnitPrice)
		if in.ProductID != nil && (name == nil || price == nil) {
			if product, err := s.products.FindByID(ctx, *in.ProductID); err == nil {
				if name == nil {
					name = &product.Name
				}
				if price == nil {
					price = &product.Price
				}
			}
		}
		item, err := order.NewOrderItem(
			in.ProductID,
			derefOr(name, ""),
			normalize.NumberOrZero(in.Quantity),
			derefDecimal(price),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// Get returns one quote with its items.
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// List returns all quotes with their items.
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Delete removes a quote and its items.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orders.Delete(ctx, id)
}

// Convert turns a quote into a realized service order. In one transaction it
// inserts the service order with items copied from the quote, records a saida
// stock movement for every product-linked quote line and flips the quote
// status to convertido. Any failure rolls the whole set back.
//
// Conversion does not check the current quote status: converting an already
// converted quote runs the workflow again. Guarding against double conversion
// is the caller's concern.
func (s *OrderService) Convert(ctx context.Context, orderID uuid.UUID, actor string) (*ConversionResult, error) {
	var result ConversionResult
	err := s.scope.Execute(ctx, func(repos ConversionRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		so := serviceorder.NewFromOrder(o)
		if err := repos.ServiceOrders().Create(ctx, so); err != nil {
			return err
		}

		lines := make([]inventoryapp.MovementLine, 0, len(o.Items))
		for _, it := range o.Items {
			lines = append(lines, inventoryapp.MovementLine{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				Description: fmt.Sprintf("Conversao do orcamento %s", o.ID),
			})
		}
		moved := 0
		if len(lines) > 0 {
			quoteID := o.ID
			summaries, err := s.ledger.Record(ctx, repos, inventoryapp.MovementBatchRequest{
				Direction:   inventory.DirectionOut,
				Origin:      inventory.OriginQuote,
				ReferenceID: &quoteID,
				Actor:       actor,
				Items:       lines,
			})
			if err != nil {
				return err
			}
			moved = len(summaries)
		}

		if err := repos.Orders().UpdateStatus(ctx, o.ID, order.StatusConverted); err != nil {
			return err
		}

		result = ConversionResult{
			OrderID:        o.ID,
			ServiceOrderID: so.ID,
			MovedItems:     moved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// parseDate accepts a date as time.Time or as a string in RFC 3339 or plain
// YYYY-MM-DD form. Anything else degrades to nil.
func parseDate(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		return &t
	case *time.Time:
		return t
	}
	s := normalize.Text(v)
	if s == nil {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, *s); err == nil {
			return &parsed
		}
	}
	return nil
}
