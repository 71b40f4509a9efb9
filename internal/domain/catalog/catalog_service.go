package catalog

import (
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CatalogService is an entry in the service price list. Quotes that link a
// catalog service snapshot its description and price at quote time.
type CatalogService struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (CatalogService) TableName() string {
	return "catalog_services"
}

// NewCatalogService creates a new catalog service entry
func NewCatalogService(name, description string, price decimal.Decimal) (*CatalogService, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Service price cannot be negative")
	}
	return &CatalogService{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
	}, nil
}
