package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopcore/catalog/internal/domain/catalog"
)

// MockCatalogItemRepository is a mock implementation of CatalogItemRepository
type MockCatalogItemRepository struct {
	mock.Mock
}

func (m *MockCatalogItemRepository) Save(ctx context.Context, item *catalog.CatalogItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogItemRepository) FindByID(ctx context.Context, id catalog.ProductID) (*catalog.CatalogItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) FindBySKU(ctx context.Context, sku string) (*catalog.CatalogItem, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) FindAll(ctx context.Context) ([]catalog.CatalogItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.CatalogItem), args.Error(1)
}

func (m *MockCatalogItemRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogItemRepository) DeleteByID(ctx context.Context, id catalog.ProductID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id catalog.CategoryID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindActive(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) DeleteByID(ctx context.Context, id catalog.CategoryID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockProductIndexRepository is a mock implementation of ProductIndexRepository
type MockProductIndexRepository struct {
	mock.Mock
}

func (m *MockProductIndexRepository) Save(ctx context.Context, index *catalog.ProductIndex) error {
	args := m.Called(ctx, index)
	return args.Error(0)
}

func (m *MockProductIndexRepository) FindByID(ctx context.Context, id catalog.ProductID) (*catalog.ProductIndex, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductIndex), args.Error(1)
}

func (m *MockProductIndexRepository) FindAll(ctx context.Context) ([]catalog.ProductIndex, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.ProductIndex), args.Error(1)
}

func (m *MockProductIndexRepository) Search(ctx context.Context, criteria catalog.SearchCriteria) ([]catalog.ProductIndex, int64, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]catalog.ProductIndex), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductIndexRepository) DeleteByID(ctx context.Context, id catalog.ProductID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockSearchResultCache is a mock implementation of SearchResultCache
type MockSearchResultCache struct {
	mock.Mock
}

func (m *MockSearchResultCache) Get(ctx context.Context, key string) (*SearchResult, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SearchResult), args.Error(1)
}

func (m *MockSearchResultCache) Set(ctx context.Context, key string, result *SearchResult) error {
	args := m.Called(ctx, key, result)
	return args.Error(0)
}
