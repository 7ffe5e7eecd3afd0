package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared/valueobject"
)

// SearchResultCache caches whole search result pages keyed by the query.
// Get returns nil on a miss. Implementations own expiry; stale entries are
// acceptable within the configured TTL.
type SearchResultCache interface {
	Get(ctx context.Context, key string) (*SearchResult, error)
	Set(ctx context.Context, key string, result *SearchResult) error
}

// SearchService answers catalog search queries from the index projection,
// with an optional read-through cache in front.
type SearchService struct {
	indexRepo catalog.ProductIndexRepository
	cache     SearchResultCache
	logger    *zap.Logger
}

// NewSearchService creates a new SearchService. The cache may be nil.
func NewSearchService(indexRepo catalog.ProductIndexRepository, cache SearchResultCache, logger *zap.Logger) *SearchService {
	return &SearchService{
		indexRepo: indexRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Search validates the request, builds the criteria and runs the query
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	criteria, err := s.buildCriteria(req)
	if err != nil {
		return nil, err
	}

	key := cacheKey(criteria)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			// Cache trouble must not fail the search
			s.logger.Warn("Search cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	indexes, total, err := s.indexRepo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	hits := make([]SearchHit, len(indexes))
	for i := range indexes {
		hits[i] = ToSearchHit(&indexes[i])
	}

	totalPages := int(total) / criteria.Size()
	if int(total)%criteria.Size() > 0 {
		totalPages++
	}

	result := &SearchResult{
		Hits:       hits,
		Total:      total,
		Page:       criteria.Page(),
		Size:       criteria.Size(),
		TotalPages: totalPages,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.Warn("Search cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

// GetByProduct returns the index entry for a single product
func (s *SearchService) GetByProduct(ctx context.Context, id catalog.ProductID) (*SearchHit, error) {
	index, err := s.indexRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hit := ToSearchHit(index)
	return &hit, nil
}

// buildCriteria converts the transport-level request into validated domain
// criteria. All validation happens in NewSearchCriteria.
func (s *SearchService) buildCriteria(req SearchRequest) (catalog.SearchCriteria, error) {
	params := catalog.SearchCriteriaParams{
		Text:   req.Text,
		Brands: req.Brands,
		Sort:   catalog.SortOption(req.Sort),
		Page:   req.Page,
		Size:   req.Size,
	}

	for _, raw := range req.CategoryIDs {
		id, err := catalog.ParseCategoryID(raw)
		if err != nil {
			return catalog.SearchCriteria{}, err
		}
		params.CategoryIDs = append(params.CategoryIDs, id)
	}

	if req.MinPrice != nil {
		price, err := valueobject.NewPriceFromString(*req.MinPrice)
		if err != nil {
			return catalog.SearchCriteria{}, err
		}
		params.MinPrice = &price
	}
	if req.MaxPrice != nil {
		price, err := valueobject.NewPriceFromString(*req.MaxPrice)
		if err != nil {
			return catalog.SearchCriteria{}, err
		}
		params.MaxPrice = &price
	}

	return catalog.NewSearchCriteria(params)
}

// cacheKey derives a stable cache key from the validated criteria
func cacheKey(criteria catalog.SearchCriteria) string {
	ids := criteria.CategoryIDs()
	idParts := make([]string, len(ids))
	for i, id := range ids {
		idParts[i] = id.String()
	}

	minPrice := ""
	if criteria.MinPrice() != nil {
		minPrice = criteria.MinPrice().String()
	}
	maxPrice := ""
	if criteria.MaxPrice() != nil {
		maxPrice = criteria.MaxPrice().String()
	}

	return fmt.Sprintf("search:%s|%s|%s|%s|%s|%s|%d|%d",
		criteria.Text(),
		strings.Join(idParts, ","),
		strings.Join(criteria.Brands(), ","),
		minPrice,
		maxPrice,
		criteria.Sort(),
		criteria.Page(),
		criteria.Size(),
	)
}
