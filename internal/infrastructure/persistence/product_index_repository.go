package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared"
)

// GormProductIndexRepository implements ProductIndexRepository using GORM
type GormProductIndexRepository struct {
	db *gorm.DB
}

// NewGormProductIndexRepository creates a new GormProductIndexRepository
func NewGormProductIndexRepository(db *gorm.DB) *GormProductIndexRepository {
	return &GormProductIndexRepository{db: db}
}

// Save upserts a product index row
func (r *GormProductIndexRepository) Save(ctx context.Context, index *catalog.ProductIndex) error {
	return r.db.WithContext(ctx).Save(index).Error
}

// FindByID finds a product index by product ID
func (r *GormProductIndexRepository) FindByID(ctx context.Context, id catalog.ProductID) (*catalog.ProductIndex, error) {
	var index catalog.ProductIndex
	if err := r.db.WithContext(ctx).First(&index, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &index, nil
}

// FindAll returns all product indexes
func (r *GormProductIndexRepository) FindAll(ctx context.Context) ([]catalog.ProductIndex, error) {
	var indexes []catalog.ProductIndex
	if err := r.db.WithContext(ctx).Find(&indexes).Error; err != nil {
		return nil, err
	}
	return indexes, nil
}

// Search applies the criteria's filters, sorts and paginates. The total is
// counted before paging so callers can compute page counts.
func (r *GormProductIndexRepository) Search(ctx context.Context, criteria catalog.SearchCriteria) ([]catalog.ProductIndex, int64, error) {
	query := r.applyFilters(r.db.WithContext(ctx).Model(&catalog.ProductIndex{}), criteria)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, criteria.Sort())

	var indexes []catalog.ProductIndex
	if err := query.
		Offset(criteria.Offset()).
		Limit(criteria.Size()).
		Find(&indexes).Error; err != nil {
		return nil, 0, err
	}

	return indexes, total, nil
}

// DeleteByID removes a product index; returns true iff a row existed
func (r *GormProductIndexRepository) DeleteByID(ctx context.Context, id catalog.ProductID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductIndex{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// applyFilters translates the criteria into WHERE clauses. Text matches the
// precomputed lowercased searchable_text, so the term is lowercased here too.
func (r *GormProductIndexRepository) applyFilters(query *gorm.DB, criteria catalog.SearchCriteria) *gorm.DB {
	if text := strings.TrimSpace(criteria.Text()); text != "" {
		query = query.Where("searchable_text LIKE ?", "%"+strings.ToLower(text)+"%")
	}
	if ids := criteria.CategoryIDs(); len(ids) > 0 {
		query = query.Where("category_id IN ?", ids)
	}
	if brands := criteria.Brands(); len(brands) > 0 {
		query = query.Where("brand IN ?", brands)
	}
	if minPrice := criteria.MinPrice(); minPrice != nil {
		query = query.Where("price >= ?", minPrice.Amount())
	}
	if maxPrice := criteria.MaxPrice(); maxPrice != nil {
		query = query.Where("price <= ?", maxPrice.Amount())
	}
	return query
}

// applySort maps the sort option to an ORDER BY clause. RELEVANCE keeps
// storage order.
func applySort(query *gorm.DB, sort catalog.SortOption) *gorm.DB {
	switch sort {
	case catalog.SortNameAsc:
		return query.Order("name ASC")
	case catalog.SortNameDesc:
		return query.Order("name DESC")
	case catalog.SortPriceAsc:
		return query.Order("price ASC")
	case catalog.SortPriceDesc:
		return query.Order("price DESC")
	default:
		return query
	}
}

var _ catalog.ProductIndexRepository = (*GormProductIndexRepository)(nil)
