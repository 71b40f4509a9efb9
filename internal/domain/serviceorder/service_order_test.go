package serviceorder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteWithItems(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("Carlos Lima")
	require.NoError(t, err)
	clientID := uuid.New()
	o.ClientID = &clientID
	o.ClientContact = "(11) 99999-0000"
	o.Equipment = "Notebook Dell"
	o.Problem = "Does not power on"

	pid := uuid.New()
	i1, err := order.NewOrderItem(&pid, "Power jack", decimal.NewFromInt(1), decimal.NewFromInt(40))
	require.NoError(t, err)
	i2, err := order.NewOrderItem(nil, "Misc cabling", decimal.NewFromInt(2), decimal.NewFromInt(15))
	require.NoError(t, err)
	o.SetItems([]order.OrderItem{*i1, *i2})
	o.SetValues(decimal.NewFromInt(120), nil)
	return o
}

func TestNewFromOrder(t *testing.T) {
	t.Run("copies header fields and values", func(t *testing.T) {
		o := quoteWithItems(t)
		so := NewFromOrder(o)

		assert.Equal(t, &o.ID, so.OrderID)
		assert.Equal(t, o.ClientID, so.ClientID)
		assert.Equal(t, o.ClientName, so.ClientName)
		assert.Equal(t, o.ClientContact, so.ClientContact)
		assert.Equal(t, o.Equipment, so.Equipment)
		assert.Equal(t, o.Problem, so.Description)
		assert.Equal(t, StatusInExecution, so.Status)
		assert.True(t, so.ServiceValue.Equal(o.ServiceValue))
		assert.True(t, so.ProductsValue.Equal(o.ItemsValue))
		assert.True(t, so.TotalValue.Equal(o.TotalValue))
		assert.WithinDuration(t, time.Now(), so.RealizedAt, time.Minute)
	})

	t.Run("zeroes cost fields", func(t *testing.T) {
		so := NewFromOrder(quoteWithItems(t))
		assert.True(t, so.ServiceCost.IsZero())
		assert.True(t, so.ProductsCost.IsZero())
		for _, it := range so.Items {
			assert.True(t, it.UnitCost.IsZero())
		}
	})

	t.Run("copies items one to one", func(t *testing.T) {
		o := quoteWithItems(t)
		so := NewFromOrder(o)
		require.Len(t, so.Items, len(o.Items))
		for i, it := range so.Items {
			assert.Equal(t, so.ID, it.ServiceOrderID)
			assert.Equal(t, o.Items[i].ProductID, it.ProductID)
			assert.Equal(t, o.Items[i].ProductName, it.ProductName)
			assert.True(t, it.Quantity.Equal(o.Items[i].Quantity))
			assert.True(t, it.UnitPrice.Equal(o.Items[i].UnitPrice))
			assert.True(t, it.Total.Equal(o.Items[i].Total))
		}
	})
}

func TestServiceOrder_SetStatus(t *testing.T) {
	so := NewFromOrder(quoteWithItems(t))
	require.NoError(t, so.SetStatus(StatusSettled))
	assert.Equal(t, StatusSettled, so.Status)

	assert.Error(t, so.SetStatus(""))
}
