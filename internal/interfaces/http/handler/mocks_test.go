package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared"
)

// MockCatalogItemRepository implements catalog.CatalogItemRepository
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

// MockCategoryRepository implements catalog.CategoryRepository
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

// MockProductIndexRepository implements catalog.ProductIndexRepository
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

// MockOutboxRepository implements shared.OutboxRepository
type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) Save(ctx context.Context, events ...*shared.OutboxEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockOutboxRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.OutboxEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.OutboxEvent), args.Error(1)
}

func (m *MockOutboxRepository) FindPending(ctx context.Context, limit int) ([]*shared.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*shared.OutboxEvent), args.Error(1)
}

func (m *MockOutboxRepository) FindByStatus(ctx context.Context, status shared.OutboxStatus, page, pageSize int) ([]*shared.OutboxEvent, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]*shared.OutboxEvent), args.Get(1).(int64), args.Error(2)
}

func (m *MockOutboxRepository) FindByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]*shared.OutboxEvent, error) {
	args := m.Called(ctx, aggregateID)
	return args.Get(0).([]*shared.OutboxEvent), args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, event *shared.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOutboxRepository) CountByStatus(ctx context.Context) (map[shared.OutboxStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[shared.OutboxStatus]int64), args.Error(1)
}
