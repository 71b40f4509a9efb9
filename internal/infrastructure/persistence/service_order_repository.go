package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/serviceorder"
	"github.com/osworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormServiceOrderRepository implements serviceorder.Repository using GORM
type GormServiceOrderRepository struct {
	db *gorm.DB
}

// NewGormServiceOrderRepository creates a new GormServiceOrderRepository
func NewGormServiceOrderRepository(db *gorm.DB) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{db: db}
}

// FindByID finds a service order with its items
func (r *GormServiceOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*serviceorder.ServiceOrder, error) {
	var so serviceorder.ServiceOrder
	if err := r.db.WithContext(ctx).Preload("Items").First(&so, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &so, nil
}

// FindAll finds all service orders with their items, newest first
func (r *GormServiceOrderRepository) FindAll(ctx context.Context) ([]serviceorder.ServiceOrder, error) {
	var orders []serviceorder.ServiceOrder
	if err := r.db.WithContext(ctx).Preload("Items").Order("realized_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Create inserts the service order header and its items in one transaction
func (r *GormServiceOrderRepository) Create(ctx context.Context, so *serviceorder.ServiceOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return translateError(tx.Create(so).Error)
	})
}

// UpdateStatus writes the service order status tag
func (r *GormServiceOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&serviceorder.ServiceOrder{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a service order and its items
func (r *GormServiceOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&serviceorder.ServiceOrderItem{}, "service_order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&serviceorder.ServiceOrder{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

var _ serviceorder.Repository = (*GormServiceOrderRepository)(nil)
