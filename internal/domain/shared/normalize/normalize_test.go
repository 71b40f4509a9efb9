package normalize

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got := Text("  hello  ")
		require.NotNil(t, got)
		assert.Equal(t, "hello", *got)
	})

	t.Run("nil input returns nil", func(t *testing.T) {
		assert.Nil(t, Text(nil))
	})

	t.Run("blank string returns nil", func(t *testing.T) {
		assert.Nil(t, Text("   "))
		assert.Nil(t, Text(""))
	})

	t.Run("nil string pointer returns nil", func(t *testing.T) {
		var s *string
		assert.Nil(t, Text(s))
	})

	t.Run("non-string input returns nil", func(t *testing.T) {
		assert.Nil(t, Text(42))
	})
}

func TestNumber(t *testing.T) {
	t.Run("decimal-comma string", func(t *testing.T) {
		got := Number("1.234,56")
		require.NotNil(t, got)
		assert.True(t, got.Equal(decimal.RequireFromString("1234.56")), "got %s", got)
	})

	t.Run("plain decimal string", func(t *testing.T) {
		got := Number("45.90")
		require.NotNil(t, got)
		assert.True(t, got.Equal(decimal.RequireFromString("45.90")))
	})

	t.Run("comma-only decimal string", func(t *testing.T) {
		got := Number("12,5")
		require.NotNil(t, got)
		assert.True(t, got.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("float passthrough", func(t *testing.T) {
		got := Number(99.5)
		require.NotNil(t, got)
		assert.True(t, got.Equal(decimal.NewFromFloat(99.5)))
	})

	t.Run("non-finite float returns nil", func(t *testing.T) {
		assert.Nil(t, Number(math.NaN()))
		assert.Nil(t, Number(math.Inf(1)))
	})

	t.Run("empty string returns nil", func(t *testing.T) {
		assert.Nil(t, Number(""))
		assert.Nil(t, Number("   "))
	})

	t.Run("garbage string returns nil", func(t *testing.T) {
		assert.Nil(t, Number("abc"))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		assert.Nil(t, Number(nil))
	})
}

func TestNumberOrZero(t *testing.T) {
	assert.True(t, NumberOrZero(nil).IsZero())
	assert.True(t, NumberOrZero("").IsZero())
	assert.True(t, NumberOrZero("abc").IsZero())
	assert.True(t, NumberOrZero("1.234,56").Equal(decimal.RequireFromString("1234.56")))
}

func TestEnum(t *testing.T) {
	t.Run("member of allowed set", func(t *testing.T) {
		got := Enum(" entrada ", "entrada", "saida")
		require.NotNil(t, got)
		assert.Equal(t, "entrada", *got)
	})

	t.Run("not a member", func(t *testing.T) {
		assert.Nil(t, Enum("transfer", "entrada", "saida"))
	})

	t.Run("nil and blank", func(t *testing.T) {
		assert.Nil(t, Enum(nil, "a"))
		assert.Nil(t, Enum("  ", "a"))
	})
}
