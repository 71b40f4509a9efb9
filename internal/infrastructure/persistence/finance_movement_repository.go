package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/finance"
	"github.com/osworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMovementRepository implements finance.MovementRepository using GORM
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// FindByID finds a movement by its ID
func (r *GormMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Movement, error) {
	var movement finance.Movement
	if err := r.db.WithContext(ctx).First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// ListWithServiceTotals returns movements matching the filter, outer joined to
// the linked service order's total value. A movement without a link, or with a
// link to a deleted service order, comes back with a nil ServiceTotal.
func (r *GormMovementRepository) ListWithServiceTotals(ctx context.Context, filter finance.MovementFilter) ([]finance.MovementRow, error) {
	query := r.db.WithContext(ctx).
		Model(&finance.Movement{}).
		Select("finance_movements.*, service_orders.total_value AS service_total").
		Joins("LEFT JOIN service_orders ON service_orders.id = finance_movements.service_order_id")

	if filter.Type != "" {
		query = query.Where("finance_movements.type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("finance_movements.status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("finance_movements.category = ?", filter.Category)
	}
	if filter.Channel != "" {
		query = query.Where("finance_movements.channel = ?", filter.Channel)
	}
	if filter.From != nil {
		query = query.Where("finance_movements.occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("finance_movements.occurred_at <= ?", *filter.To)
	}
	if filter.ServiceOrderID != nil {
		query = query.Where("finance_movements.service_order_id = ?", *filter.ServiceOrderID)
	}

	var rows []finance.MovementRow
	if err := query.Order("finance_movements.occurred_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Save creates or updates a movement
func (r *GormMovementRepository) Save(ctx context.Context, movement *finance.Movement) error {
	return translateError(r.db.WithContext(ctx).Save(movement).Error)
}

// Delete removes a movement
func (r *GormMovementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Movement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ finance.MovementRepository = (*GormMovementRepository)(nil)
