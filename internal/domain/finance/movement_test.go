package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovement(t *testing.T) {
	t.Run("valid movement", func(t *testing.T) {
		m, err := NewMovement("Service payment", TypeIn, StatusPaid, decimal.NewFromInt(100), time.Now())
		require.NoError(t, err)
		assert.Equal(t, TypeIn, m.Type)
		assert.Equal(t, StatusPaid, m.Status)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewMovement("", TypeIn, StatusPaid, decimal.Zero, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewMovement("x", "income", StatusPaid, decimal.Zero, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects empty status", func(t *testing.T) {
		_, err := NewMovement("x", TypeOut, "", decimal.Zero, time.Now())
		assert.Error(t, err)
	})
}

func TestReconcileValue(t *testing.T) {
	t.Run("substitutes service total for 100x stored value", func(t *testing.T) {
		total := decimal.RequireFromString("45.00")
		got := ReconcileValue(decimal.NewFromInt(4500), &total)
		assert.True(t, got.Equal(total), "got %s", got)
	})

	t.Run("keeps stored value when scales match", func(t *testing.T) {
		total := decimal.RequireFromString("45.00")
		got := ReconcileValue(decimal.RequireFromString("45.00"), &total)
		assert.True(t, got.Equal(decimal.RequireFromString("45.00")))
	})

	t.Run("keeps stored value when difference exceeds epsilon", func(t *testing.T) {
		total := decimal.RequireFromString("45.00")
		got := ReconcileValue(decimal.RequireFromString("4501.00"), &total)
		assert.True(t, got.Equal(decimal.RequireFromString("4501.00")))
	})

	t.Run("no linked total leaves value untouched", func(t *testing.T) {
		got := ReconcileValue(decimal.NewFromInt(4500), nil)
		assert.True(t, got.Equal(decimal.NewFromInt(4500)))
	})
}
