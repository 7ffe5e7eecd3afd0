package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared"
	"github.com/shopcore/catalog/internal/domain/shared/valueobject"
)

type itemServiceMocks struct {
	itemRepo     *MockCatalogItemRepository
	categoryRepo *MockCategoryRepository
	indexRepo    *MockProductIndexRepository
}

func newItemService(t *testing.T) (*ItemService, itemServiceMocks) {
	t.Helper()
	mocks := itemServiceMocks{
		itemRepo:     new(MockCatalogItemRepository),
		categoryRepo: new(MockCategoryRepository),
		indexRepo:    new(MockProductIndexRepository),
	}
	service := NewItemService(mocks.itemRepo, mocks.categoryRepo, mocks.indexRepo, zap.NewNop())
	return service, mocks
}

func activeCategory(t *testing.T) *catalog.Category {
	t.Helper()
	category, err := catalog.NewRootCategory("Electronics")
	require.NoError(t, err)
	category.ClearDomainEvents()
	return category
}

func storedItem(t *testing.T) *catalog.CatalogItem {
	t.Helper()
	name, err := catalog.NewProductName("Widget")
	require.NoError(t, err)
	description, err := catalog.NewProductDescription("A useful widget")
	require.NoError(t, err)
	price, err := valueobject.NewPriceFromString("9.99")
	require.NoError(t, err)
	brand, err := catalog.NewBrand("Acme")
	require.NoError(t, err)
	sku, err := catalog.NewSKU("WID-001")
	require.NoError(t, err)

	item, err := catalog.NewCatalogItem(catalog.NewCategoryID(), name, description, price, brand, sku)
	require.NoError(t, err)
	item.ClearDomainEvents()
	return item
}

func expectReindex(mocks itemServiceMocks) {
	mocks.indexRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	mocks.indexRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.ProductIndex")).Return(nil)
}

func TestItemServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates item, clears events and builds the index", func(t *testing.T) {
		service, mocks := newItemService(t)
		category := activeCategory(t)

		mocks.itemRepo.On("ExistsBySKU", ctx, "WID-001").Return(false, nil)
		mocks.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		mocks.itemRepo.On("Save", ctx, mock.AnythingOfType("*catalog.CatalogItem")).
			Run(func(args mock.Arguments) {
				item := args.Get(1).(*catalog.CatalogItem)
				assert.True(t, item.HasDomainEvents())
			}).Return(nil)
		expectReindex(mocks)

		response, err := service.Create(ctx, CreateItemRequest{
			CategoryID:  category.ID.UUID(),
			Name:        "Widget",
			Description: "A useful widget",
			Price:       decimal.NewFromFloat(9.99),
			Brand:       "Acme",
			SKU:         "WID-001",
		})

		require.NoError(t, err)
		assert.Equal(t, "Widget", response.Name)
		assert.Equal(t, "WID-001", response.SKU)
		assert.True(t, response.Visible)
		mocks.itemRepo.AssertExpectations(t)
		mocks.indexRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		service, mocks := newItemService(t)

		mocks.itemRepo.On("ExistsBySKU", ctx, "WID-001").Return(true, nil)

		_, err := service.Create(ctx, CreateItemRequest{
			CategoryID:  catalog.NewCategoryID().UUID(),
			Name:        "Widget",
			Description: "A useful widget",
			Price:       decimal.NewFromFloat(9.99),
			Brand:       "Acme",
			SKU:         "WID-001",
		})

		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, shared.CodeConflict, de.Code)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		service, mocks := newItemService(t)

		mocks.itemRepo.On("ExistsBySKU", ctx, "WID-001").Return(false, nil)
		mocks.categoryRepo.On("FindByID", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateItemRequest{
			CategoryID:  catalog.NewCategoryID().UUID(),
			Name:        "Widget",
			Description: "A useful widget",
			Price:       decimal.NewFromFloat(9.99),
			Brand:       "Acme",
			SKU:         "WID-001",
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("rejects inactive category", func(t *testing.T) {
		service, mocks := newItemService(t)
		category := activeCategory(t)
		require.NoError(t, category.Deactivate())

		mocks.itemRepo.On("ExistsBySKU", ctx, "WID-001").Return(false, nil)
		mocks.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)

		_, err := service.Create(ctx, CreateItemRequest{
			CategoryID:  category.ID.UUID(),
			Name:        "Widget",
			Description: "A useful widget",
			Price:       decimal.NewFromFloat(9.99),
			Brand:       "Acme",
			SKU:         "WID-001",
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("rejects invalid value objects before touching the repo", func(t *testing.T) {
		service, mocks := newItemService(t)

		_, err := service.Create(ctx, CreateItemRequest{
			CategoryID:  catalog.NewCategoryID().UUID(),
			Name:        " ",
			Description: "A useful widget",
			Price:       decimal.NewFromFloat(9.99),
			Brand:       "Acme",
			SKU:         "WID-001",
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		mocks.itemRepo.AssertNotCalled(t, "ExistsBySKU", mock.Anything, mock.Anything)
	})
}

func TestItemServiceGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the item", func(t *testing.T) {
		service, mocks := newItemService(t)
		item := storedItem(t)

		mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)

		response, err := service.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item.ID.UUID(), response.ID)
	})

	t.Run("maps missing item to not found", func(t *testing.T) {
		service, mocks := newItemService(t)
		id := catalog.NewProductID()

		mocks.itemRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(ctx, id)
		require.Error(t, err)
		assert.True(t, shared.IsNotFoundError(err))
	})
}

func TestItemServiceUpdatePrice(t *testing.T) {
	ctx := context.Background()

	t.Run("updates price and refreshes the index", func(t *testing.T) {
		service, mocks := newItemService(t)
		item := storedItem(t)
		index := catalog.NewProductIndexFrom(item)

		mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		mocks.itemRepo.On("Save", ctx, item).Return(nil)
		mocks.indexRepo.On("FindByID", ctx, item.ID).Return(index, nil)
		mocks.indexRepo.On("Save", ctx, index).Return(nil)

		response, err := service.UpdatePrice(ctx, item.ID, UpdateItemPriceRequest{
			Price: decimal.NewFromFloat(12.50),
		})

		require.NoError(t, err)
		assert.Equal(t, "12.5", response.Price.String())
		assert.False(t, item.HasDomainEvents())
		assert.True(t, index.Price.Equal(item.Price))
		mocks.indexRepo.AssertExpectations(t)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		service, _ := newItemService(t)

		_, err := service.UpdatePrice(ctx, catalog.NewProductID(), UpdateItemPriceRequest{
			Price: decimal.NewFromFloat(-1),
		})

		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("keeps the event buffer when save fails", func(t *testing.T) {
		service, mocks := newItemService(t)
		item := storedItem(t)

		mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		mocks.itemRepo.On("Save", ctx, item).Return(assert.AnError)

		_, err := service.UpdatePrice(ctx, item.ID, UpdateItemPriceRequest{
			Price: decimal.NewFromFloat(12.50),
		})

		require.Error(t, err)
		assert.True(t, item.HasDomainEvents())
	})
}

func TestItemServiceChangeCategory(t *testing.T) {
	ctx := context.Background()
	service, mocks := newItemService(t)
	item := storedItem(t)
	category := activeCategory(t)

	mocks.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	mocks.itemRepo.On("Save", ctx, item).Return(nil)
	expectReindex(mocks)

	response, err := service.ChangeCategory(ctx, item.ID, ChangeItemCategoryRequest{
		CategoryID: category.ID.UUID(),
	})

	require.NoError(t, err)
	assert.Equal(t, category.ID.UUID(), response.CategoryID)
}

func TestItemServiceVisibility(t *testing.T) {
	ctx := context.Background()
	service, mocks := newItemService(t)
	item := storedItem(t)

	mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	mocks.itemRepo.On("Save", ctx, item).Return(nil)
	expectReindex(mocks)

	response, err := service.Hide(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, response.Visible)

	response, err = service.Show(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, response.Visible)
}

func TestItemServiceAttributes(t *testing.T) {
	ctx := context.Background()

	t.Run("adds an attribute", func(t *testing.T) {
		service, mocks := newItemService(t)
		item := storedItem(t)

		mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		mocks.itemRepo.On("Save", ctx, item).Return(nil)
		expectReindex(mocks)

		response, err := service.AddAttribute(ctx, item.ID, AttributeInput{
			Name: "color", Value: "red", Type: "string",
		})

		require.NoError(t, err)
		require.Len(t, response.Attributes, 1)
		assert.Equal(t, "color", response.Attributes[0].Name)
	})

	t.Run("removing a missing attribute fails without save", func(t *testing.T) {
		service, mocks := newItemService(t)
		item := storedItem(t)

		mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)

		_, err := service.RemoveAttribute(ctx, item.ID, "color")
		require.Error(t, err)
		mocks.itemRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestItemServiceUpdateStock(t *testing.T) {
	ctx := context.Background()
	service, mocks := newItemService(t)
	item := storedItem(t)

	mocks.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	mocks.itemRepo.On("Save", ctx, item).Return(nil)
	expectReindex(mocks)

	response, err := service.UpdateStock(ctx, item.ID, UpdateItemStockRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, response.StockQuantity)
}

func TestItemServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes item and index", func(t *testing.T) {
		service, mocks := newItemService(t)
		id := catalog.NewProductID()

		mocks.itemRepo.On("DeleteByID", ctx, id).Return(true, nil)
		mocks.indexRepo.On("DeleteByID", ctx, id).Return(true, nil)

		require.NoError(t, service.Delete(ctx, id))
		mocks.indexRepo.AssertExpectations(t)
	})

	t.Run("missing item is not found", func(t *testing.T) {
		service, mocks := newItemService(t)
		id := catalog.NewProductID()

		mocks.itemRepo.On("DeleteByID", ctx, id).Return(false, nil)

		err := service.Delete(ctx, id)
		require.Error(t, err)
		assert.True(t, shared.IsNotFoundError(err))
	})
}
