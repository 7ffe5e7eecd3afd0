package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/catalog/internal/domain/shared"
)

func TestNewCategory(t *testing.T) {
	t.Run("root category", func(t *testing.T) {
		category, err := NewRootCategory("Electronics")
		require.NoError(t, err)

		assert.True(t, category.IsRoot())
		assert.True(t, category.IsActive())
		assert.Equal(t, 0, category.GetHierarchyLevel())

		events := category.DomainEvents()
		require.Len(t, events, 1)
		created, ok := events[0].(*CategoryCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, "Electronics", created.Name)
		assert.Equal(t, 0, created.Level)
	})

	t.Run("nested category", func(t *testing.T) {
		parent, err := NewRootCategory("Electronics")
		require.NoError(t, err)

		child, err := NewCategory("Audio", parent.Hierarchy().Child(parent.ID))
		require.NoError(t, err)

		assert.False(t, child.IsRoot())
		assert.Equal(t, 1, child.GetHierarchyLevel())
		assert.True(t, child.IsDescendantOf(parent))
		assert.False(t, parent.IsDescendantOf(child))
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewRootCategory("  ")
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("rejects name over max length", func(t *testing.T) {
		_, err := NewRootCategory(strings.Repeat("x", MaxCategoryNameLength+1))
		assert.Error(t, err)
	})
}

func TestCategoryAddSubcategory(t *testing.T) {
	t.Run("adds and buffers SubcategoryAdded", func(t *testing.T) {
		category, err := NewRootCategory("Electronics")
		require.NoError(t, err)
		sub, err := NewSubcategory("Audio", "Speakers and headphones")
		require.NoError(t, err)

		require.NoError(t, category.AddSubcategory(sub))

		require.Len(t, category.Subcategories, 1)
		found, ok := category.FindSubcategory(sub.ID)
		require.True(t, ok)
		assert.Equal(t, "Audio", found.Name)

		added, ok := category.DomainEvents()[1].(*SubcategoryAddedEvent)
		require.True(t, ok)
		assert.Equal(t, sub.ID, added.SubcategoryID)
		assert.Equal(t, "Audio", added.SubcategoryName)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		category, err := NewRootCategory("Electronics")
		require.NoError(t, err)
		sub, err := NewSubcategory("Audio", "")
		require.NoError(t, err)

		require.NoError(t, category.AddSubcategory(sub))
		err = category.AddSubcategory(sub)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		assert.Len(t, category.Subcategories, 1)
	})

	t.Run("rejects inactive subcategory", func(t *testing.T) {
		category, err := NewRootCategory("Electronics")
		require.NoError(t, err)
		sub, err := NewSubcategory("Audio", "")
		require.NoError(t, err)
		sub.Active = false

		err = category.AddSubcategory(sub)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("deactivated category still accepts subcategories", func(t *testing.T) {
		category, err := NewRootCategory("Electronics")
		require.NoError(t, err)
		require.NoError(t, category.Deactivate())

		sub, err := NewSubcategory("Audio", "")
		require.NoError(t, err)
		assert.NoError(t, category.AddSubcategory(sub))
	})
}

func TestCategoryDeactivate(t *testing.T) {
	t.Run("deactivates once", func(t *testing.T) {
		category, err := NewRootCategory("Electronics")
		require.NoError(t, err)

		require.NoError(t, category.Deactivate())
		assert.False(t, category.IsActive())

		deactivated, ok := category.DomainEvents()[1].(*CategoryDeactivatedEvent)
		require.True(t, ok)
		assert.Equal(t, category.ID, deactivated.CategoryID)
	})

	t.Run("second deactivate fails", func(t *testing.T) {
		category, err := NewRootCategory("Electronics")
		require.NoError(t, err)
		require.NoError(t, category.Deactivate())

		err = category.Deactivate()
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestCategoryDescendants(t *testing.T) {
	category, err := NewRootCategory("Electronics")
	require.NoError(t, err)

	audio, err := NewSubcategory("Audio", "")
	require.NoError(t, err)
	video, err := NewSubcategory("Video", "")
	require.NoError(t, err)
	require.NoError(t, category.AddSubcategory(audio))
	require.NoError(t, category.AddSubcategory(video))

	ids := category.GetDescendantIDs()
	assert.Equal(t, []CategoryID{audio.ID, video.ID}, ids)
}

func TestCategoryIsDescendantOfNil(t *testing.T) {
	category, err := NewRootCategory("Electronics")
	require.NoError(t, err)
	assert.False(t, category.IsDescendantOf(nil))
}
