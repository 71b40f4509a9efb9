package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Movement type tags.
const (
	TypeIn  = "in"
	TypeOut = "out"
)

// Movement status tags.
const (
	StatusPaid      = "Pago"
	StatusPending   = "Pendente"
	StatusScheduled = "Agendado"
)

// Payment channel tags.
const (
	ChannelPix      = "PIX"
	ChannelCard     = "Cartao"
	ChannelCash     = "Dinheiro"
	ChannelBoleto   = "Boleto"
	ChannelTransfer = "Transferencia"
)

// Types, Statuses and Channels enumerate the allowed tag values for the
// normalizer.
var (
	Types    = []string{TypeIn, TypeOut}
	Statuses = []string{StatusPaid, StatusPending, StatusScheduled}
	Channels = []string{ChannelPix, ChannelCard, ChannelCash, ChannelBoleto, ChannelTransfer}
)

// Movement is a financial in/out record, optionally linked to a service
// order. When linked, the service order's total value is the authoritative
// figure; see ReconcileValue.
type Movement struct {
	shared.BaseEntity
	Title          string          `gorm:"type:varchar(200);not null"`
	Category       string          `gorm:"type:varchar(100)"`
	OccurredAt     time.Time       `gorm:"not null;index"`
	Value          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null"`
	Type           string          `gorm:"type:varchar(10);not null"`
	Channel        string          `gorm:"type:varchar(20)"`
	Notes          string          `gorm:"type:text"`
	ServiceOrderID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "finance_movements"
}

// NewMovement creates a finance movement
func NewMovement(title, movementType, status string, value decimal.Decimal, occurredAt time.Time) (*Movement, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Movement title cannot be empty")
	}
	if movementType != TypeIn && movementType != TypeOut {
		return nil, shared.NewDomainError("INVALID_TYPE", "Movement type must be in or out")
	}
	if status == "" {
		return nil, shared.NewDomainError("INVALID_STATUS", "Movement status cannot be empty")
	}
	return &Movement{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Type:       movementType,
		Status:     status,
		Value:      value,
		OccurredAt: occurredAt,
	}, nil
}

// scaleRepairEpsilon bounds the |stored - total*100| comparison.
var scaleRepairEpsilon = decimal.RequireFromString("0.01")

// ReconcileValue repairs a known historical defect where movement values were
// persisted in a hundredth of the monetary unit: when the stored value is
// approximately 100x the linked service order's total, the total is returned
// instead. This is a read-time correction, never a storage mutation.
func ReconcileValue(stored decimal.Decimal, serviceTotal *decimal.Decimal) decimal.Decimal {
	if serviceTotal == nil {
		return stored
	}
	if stored.Sub(serviceTotal.Mul(decimal.NewFromInt(100))).Abs().LessThan(scaleRepairEpsilon) {
		return *serviceTotal
	}
	return stored
}
