package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductIndexFrom(t *testing.T) {
	item := newTestItem(t)
	color, err := NewAttribute("Color", "Red", "string")
	require.NoError(t, err)
	item.AddAttribute(color)

	index := NewProductIndexFrom(item)

	assert.Equal(t, item.ID, index.ID)
	assert.Equal(t, item.CategoryID, index.CategoryID)
	assert.Equal(t, "Widget", index.Name)
	assert.Equal(t, "Acme", index.Brand)
	assert.Equal(t, "WID-001", index.SKU)
	assert.True(t, index.Price.Equal(item.Price))
	assert.False(t, index.IndexedAt.IsZero())
	assert.Equal(t, "widget a useful widget acme wid-001 color red", index.SearchableText)
}

func TestProductIndexUpdateFrom(t *testing.T) {
	item := newTestItem(t)
	index := NewProductIndexFrom(item)

	name, err := NewProductName("Gadget")
	require.NoError(t, err)
	item.UpdateDetails(&name, nil)
	index.UpdateFrom(item)

	assert.Equal(t, "Gadget", index.Name)
	assert.Equal(t, "gadget a useful widget acme wid-001", index.SearchableText)
}

func TestProductIndexAttributesAreCopied(t *testing.T) {
	item := newTestItem(t)
	color, err := NewAttribute("color", "red", "string")
	require.NoError(t, err)
	item.AddAttribute(color)

	index := NewProductIndexFrom(item)
	item.Attributes[0].Value = "blue"

	assert.Equal(t, "red", index.Attributes[0].Value)
}

func TestBuildSearchableText(t *testing.T) {
	t.Run("deterministic for identical inputs", func(t *testing.T) {
		item := newTestItem(t)
		first := buildSearchableText(item)
		second := buildSearchableText(item)
		assert.Equal(t, first, second)
	})

	t.Run("sensitive to every source field", func(t *testing.T) {
		item := newTestItem(t)
		base := buildSearchableText(item)

		name, err := NewProductName("Other")
		require.NoError(t, err)
		item.UpdateDetails(&name, nil)

		assert.NotEqual(t, base, buildSearchableText(item))
	})

	t.Run("collapses internal whitespace", func(t *testing.T) {
		item := newTestItem(t)
		name, err := NewProductName("Big   Widget")
		require.NoError(t, err)
		item.UpdateDetails(&name, nil)

		text := buildSearchableText(item)
		assert.NotContains(t, text, "  ")
		assert.Contains(t, text, "big widget")
	})

	t.Run("attribute order matters", func(t *testing.T) {
		first := newTestItem(t)
		second := newTestItem(t)
		a, err := NewAttribute("color", "red", "string")
		require.NoError(t, err)
		b, err := NewAttribute("size", "large", "string")
		require.NoError(t, err)

		first.AddAttribute(a)
		first.AddAttribute(b)
		second.AddAttribute(b)
		second.AddAttribute(a)

		assert.NotEqual(t, buildSearchableText(first), buildSearchableText(second))
	})
}
