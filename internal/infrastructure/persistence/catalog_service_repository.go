package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/catalog"
	"github.com/osworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCatalogServiceRepository implements catalog.CatalogServiceRepository using GORM
type GormCatalogServiceRepository struct {
	db *gorm.DB
}

// NewGormCatalogServiceRepository creates a new GormCatalogServiceRepository
func NewGormCatalogServiceRepository(db *gorm.DB) *GormCatalogServiceRepository {
	return &GormCatalogServiceRepository{db: db}
}

// FindByID finds a price list entry by its ID
func (r *GormCatalogServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CatalogService, error) {
	var service catalog.CatalogService
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindAll finds all price list entries ordered by name
func (r *GormCatalogServiceRepository) FindAll(ctx context.Context) ([]catalog.CatalogService, error) {
	var services []catalog.CatalogService
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Save creates or updates a price list entry
func (r *GormCatalogServiceRepository) Save(ctx context.Context, service *catalog.CatalogService) error {
	return translateError(r.db.WithContext(ctx).Save(service).Error)
}

// Delete removes a price list entry
func (r *GormCatalogServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.CatalogService{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.CatalogServiceRepository = (*GormCatalogServiceRepository)(nil)
