package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// UpsertProductRequest carries the loose fields of a product create or
// update. Stock is absent on purpose: stock only changes through the ledger.
type UpsertProductRequest struct {
	Name        any        `json:"name"`
	Description any        `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Price       any        `json:"price"`
	Cost        any        `json:"cost"`
}

// ProductResponse is the read shape of a product.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       decimal.Decimal `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse maps a product to its read shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// UpsertCategoryRequest carries the loose fields of a category.
type UpsertCategoryRequest struct {
	Name        any `json:"name"`
	Description any `json:"description"`
}

// CategoryResponse is the read shape of a category.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCategoryResponse maps a category to its read shape
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// UpsertCatalogServiceRequest carries the loose fields of a price list entry.
type UpsertCatalogServiceRequest struct {
	Name        any `json:"name"`
	Description any `json:"description"`
	Price       any `json:"price"`
}

// CatalogServiceResponse is the read shape of a price list entry.
type CatalogServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToCatalogServiceResponse maps a price list entry to its read shape
func ToCatalogServiceResponse(s *catalog.CatalogService) CatalogServiceResponse {
	return CatalogServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
	}
}
