package catalog

import (
	"context"
)

// CategoryRepository defines the persistence contract for categories.
// Save follows the same atomic state+outbox protocol as catalog items.
type CategoryRepository interface {
	// Save upserts a category by identity together with its outbox rows
	Save(ctx context.Context, category *Category) error

	// FindByID finds a category by its identifier
	FindByID(ctx context.Context, id CategoryID) (*Category, error)

	// FindAll returns a snapshot of all categories
	FindAll(ctx context.Context) ([]Category, error)

	// FindActive returns all active categories
	FindActive(ctx context.Context) ([]Category, error)

	// DeleteByID removes a category; returns true iff a row existed
	DeleteByID(ctx context.Context, id CategoryID) (bool, error)
}
