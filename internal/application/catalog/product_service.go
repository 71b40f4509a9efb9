package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
)

// ProductService handles product catalog use cases. It never touches the
// stock field; stock changes only arrive through the ledger.
type ProductService struct {
	products catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create builds a product from loose input.
func (s *ProductService) Create(ctx context.Context, req UpsertProductRequest) (*ProductResponse, error) {
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p, err := catalog.NewProduct(*name, normalize.NumberOrZero(req.Price))
	if err != nil {
		return nil, err
	}
	p.Description = textOr(req.Description, "")
	p.CategoryID = req.CategoryID
	p.Cost = normalize.NumberOrZero(req.Cost)
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// Update rewrites the product's catalog fields, leaving stock untouched.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpsertProductRequest) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	price := normalize.NumberOrZero(req.Price)
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.Name = *name
	p.Description = textOr(req.Description, "")
	p.CategoryID = req.CategoryID
	p.Price = price
	p.Cost = normalize.NumberOrZero(req.Cost)
	p.Touch()
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// Get returns one product.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

func textOr(v any, def string) string {
	if s := normalize.Text(v); s != nil {
		return *s
	}
	return def
}
