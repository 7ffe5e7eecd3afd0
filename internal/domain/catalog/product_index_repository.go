package catalog

import (
	"context"
)

// ProductIndexRepository defines the persistence contract for the search
// projection. The projection carries no domain events, so Save is a plain
// upsert.
type ProductIndexRepository interface {
	// Save upserts a product index by identity
	Save(ctx context.Context, index *ProductIndex) error

	// FindByID finds a product index by product identifier
	FindByID(ctx context.Context, id ProductID) (*ProductIndex, error)

	// FindAll returns a snapshot of all product indexes
	FindAll(ctx context.Context) ([]ProductIndex, error)

	// Search returns the indexes matching the criteria plus the total
	// match count before paging. RELEVANCE ordering is storage order;
	// ranking is out of scope.
	Search(ctx context.Context, criteria SearchCriteria) ([]ProductIndex, int64, error)

	// DeleteByID removes a product index; returns true iff a row existed
	DeleteByID(ctx context.Context, id ProductID) (bool, error)
}
