package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
)

// CatalogServiceService handles the service price list.
type CatalogServiceService struct {
	services catalog.CatalogServiceRepository
}

// NewCatalogServiceService creates a new CatalogServiceService
func NewCatalogServiceService(services catalog.CatalogServiceRepository) *CatalogServiceService {
	return &CatalogServiceService{services: services}
}

// Create builds a price list entry from loose input.
func (s *CatalogServiceService) Create(ctx context.Context, req UpsertCatalogServiceRequest) (*CatalogServiceResponse, error) {
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	entry, err := catalog.NewCatalogService(*name, textOr(req.Description, ""), normalize.NumberOrZero(req.Price))
	if err != nil {
		return nil, err
	}
	if err := s.services.Save(ctx, entry); err != nil {
		return nil, err
	}
	resp := ToCatalogServiceResponse(entry)
	return &resp, nil
}

// Update rewrites a price list entry. Quotes that snapshotted the old price
// keep it; the change only affects future quotes.
func (s *CatalogServiceService) Update(ctx context.Context, id uuid.UUID, req UpsertCatalogServiceRequest) (*CatalogServiceResponse, error) {
	entry, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	price := normalize.NumberOrZero(req.Price)
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Service price cannot be negative")
	}
	entry.Name = *name
	entry.Description = textOr(req.Description, "")
	entry.Price = price
	entry.Touch()
	if err := s.services.Save(ctx, entry); err != nil {
		return nil, err
	}
	resp := ToCatalogServiceResponse(entry)
	return &resp, nil
}

// List returns the full price list.
func (s *CatalogServiceService) List(ctx context.Context) ([]CatalogServiceResponse, error) {
	entries, err := s.services.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CatalogServiceResponse, len(entries))
	for i := range entries {
		out[i] = ToCatalogServiceResponse(&entries[i])
	}
	return out, nil
}

// Delete removes a price list entry.
func (s *CatalogServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.services.Delete(ctx, id)
}
