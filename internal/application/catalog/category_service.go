package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
)

// CategoryService handles product category use cases.
type CategoryService struct {
	categories catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create builds a category from loose input.
func (s *CategoryService) Create(ctx context.Context, req UpsertCategoryRequest) (*CategoryResponse, error) {
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c, err := catalog.NewCategory(*name, textOr(req.Description, ""))
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// Update rewrites a category.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpsertCategoryRequest) (*CategoryResponse, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c.Name = *name
	c.Description = textOr(req.Description, "")
	c.Touch()
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(c)
	return &resp, nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}
