package partner

import (
	"github.com/osworks/backend/internal/domain/shared"
)

// Client is a customer of the shop. Quotes and service orders copy the name
// and contact onto themselves as point-in-time snapshots, so edits here never
// rewrite history.
type Client struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null"`
	Contact string `gorm:"type:varchar(100)"`
	Email   string `gorm:"type:varchar(200)"`
	Address string `gorm:"type:text"`
	Notes   string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client
func NewClient(name, contact string) (*Client, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Contact:    contact,
	}, nil
}
