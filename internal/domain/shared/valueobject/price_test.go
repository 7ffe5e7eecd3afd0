package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/catalog/internal/domain/shared"
)

func TestNewPrice(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		price, err := NewPrice(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, price.IsZero())
	})

	t.Run("accepts positive amount", func(t *testing.T) {
		price, err := NewPrice(decimal.NewFromFloat(19.99))
		require.NoError(t, err)
		assert.Equal(t, "19.99", price.String())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewPrice(decimal.NewFromFloat(-0.01))
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestNewPriceFromString(t *testing.T) {
	t.Run("parses decimal string", func(t *testing.T) {
		price, err := NewPriceFromString("12.50")
		require.NoError(t, err)
		assert.Equal(t, "12.50", price.String())
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := NewPriceFromString("not-a-price")
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("rejects negative string", func(t *testing.T) {
		_, err := NewPriceFromString("-5.00")
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestPriceComparisons(t *testing.T) {
	low, err := NewPriceFromString("9.99")
	require.NoError(t, err)
	high, err := NewPriceFromString("12.50")
	require.NoError(t, err)

	assert.True(t, low.LessThan(high))
	assert.False(t, high.LessThan(low))
	assert.True(t, high.GreaterThan(low))
	assert.True(t, low.Equals(low))
	assert.False(t, low.Equals(high))
}

func TestPriceEqualsIgnoresScale(t *testing.T) {
	a, err := NewPriceFromString("10")
	require.NoError(t, err)
	b, err := NewPriceFromString("10.00")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
}

func TestPriceJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		price, err := NewPriceFromString("19.99")
		require.NoError(t, err)

		data, err := json.Marshal(price)
		require.NoError(t, err)
		assert.JSONEq(t, `"19.99"`, string(data))

		var decoded Price
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, price.Equals(decoded))
	})

	t.Run("rejects negative payload", func(t *testing.T) {
		var decoded Price
		err := json.Unmarshal([]byte(`"-3.00"`), &decoded)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestPriceScan(t *testing.T) {
	t.Run("scans string", func(t *testing.T) {
		var price Price
		require.NoError(t, price.Scan("42.10"))
		assert.Equal(t, "42.10", price.String())
	})

	t.Run("scans bytes", func(t *testing.T) {
		var price Price
		require.NoError(t, price.Scan([]byte("0.99")))
		assert.Equal(t, "0.99", price.String())
	})

	t.Run("nil becomes zero", func(t *testing.T) {
		var price Price
		require.NoError(t, price.Scan(nil))
		assert.True(t, price.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var price Price
		assert.Error(t, price.Scan(42))
	})
}
