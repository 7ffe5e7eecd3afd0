package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared"
)

// GormCatalogItemRepository implements CatalogItemRepository using GORM.
// Save writes the aggregate state and its buffered events as outbox rows in
// one transaction.
type GormCatalogItemRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver
}

// NewGormCatalogItemRepository creates a new GormCatalogItemRepository
func NewGormCatalogItemRepository(db *gorm.DB, outboxSaver shared.OutboxEventSaver) *GormCatalogItemRepository {
	return &GormCatalogItemRepository{db: db, outboxSaver: outboxSaver}
}

// Save upserts the item together with its outbox rows
func (r *GormCatalogItemRepository) Save(ctx context.Context, item *catalog.CatalogItem) error {
	events := item.DomainEvents()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}

		if r.outboxSaver != nil && len(events) > 0 {
			if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
				return fmt.Errorf("failed to save events to outbox: %w", err)
			}
		}

		return nil
	})
}

// FindByID finds a catalog item by its ID
func (r *GormCatalogItemRepository) FindByID(ctx context.Context, id catalog.ProductID) (*catalog.CatalogItem, error) {
	var item catalog.CatalogItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindBySKU finds a catalog item by its SKU
func (r *GormCatalogItemRepository) FindBySKU(ctx context.Context, sku string) (*catalog.CatalogItem, error) {
	var item catalog.CatalogItem
	if err := r.db.WithContext(ctx).First(&item, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns all catalog items in creation order
func (r *GormCatalogItemRepository) FindAll(ctx context.Context) ([]catalog.CatalogItem, error) {
	var items []catalog.CatalogItem
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsBySKU checks whether a catalog item with the SKU exists
func (r *GormCatalogItemRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalog.CatalogItem{}).
		Where("sku = ?", sku).
		Count(&count).Error
	return count > 0, err
}

// DeleteByID removes a catalog item; returns true iff a row existed
func (r *GormCatalogItemRepository) DeleteByID(ctx context.Context, id catalog.ProductID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&catalog.CatalogItem{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

var _ catalog.CatalogItemRepository = (*GormCatalogItemRepository)(nil)
