package catalog

import (
	"context"
)

// CatalogItemRepository defines the persistence contract for catalog items.
// Save must convert the aggregate's buffered events into PENDING outbox
// rows within the same unit of work as the state write; callers clear the
// buffer only after Save succeeds.
type CatalogItemRepository interface {
	// Save upserts a catalog item by identity together with its outbox rows
	Save(ctx context.Context, item *CatalogItem) error

	// FindByID finds a catalog item by its identifier
	FindByID(ctx context.Context, id ProductID) (*CatalogItem, error)

	// FindBySKU finds a catalog item by its SKU
	FindBySKU(ctx context.Context, sku string) (*CatalogItem, error)

	// FindAll returns a snapshot of all catalog items
	FindAll(ctx context.Context) ([]CatalogItem, error)

	// ExistsBySKU checks whether a catalog item with the SKU exists
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// DeleteByID removes a catalog item; returns true iff a row existed
	DeleteByID(ctx context.Context, id ProductID) (bool, error)
}
