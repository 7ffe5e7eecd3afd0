package catalog

import (
	"github.com/shopcore/catalog/internal/domain/shared"
	"github.com/shopcore/catalog/internal/domain/shared/valueobject"
)

// SortOption enumerates the supported orderings for catalog search
type SortOption string

const (
	SortNameAsc   SortOption = "NAME_ASC"
	SortNameDesc  SortOption = "NAME_DESC"
	SortPriceAsc  SortOption = "PRICE_ASC"
	SortPriceDesc SortOption = "PRICE_DESC"
	SortRelevance SortOption = "RELEVANCE"
)

// IsValid reports whether the sort option is one of the supported values
func (s SortOption) IsValid() bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortRelevance:
		return true
	}
	return false
}

// Search paging bounds and defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SearchCriteriaParams holds the optional inputs for a search. The zero
// value of every field means "not set"; defaults are applied by
// NewSearchCriteria. Size is a pointer so an explicit 0 is distinguishable
// from unset and can be rejected.
type SearchCriteriaParams struct {
	Text        string
	CategoryIDs []CategoryID
	MinPrice    *valueobject.Price
	MaxPrice    *valueobject.Price
	Brands      []string
	Sort        SortOption
	Page        int
	Size        *int
}

// SearchCriteria is a validated, immutable search request. Construct via
// NewSearchCriteria; a zero SearchCriteria is not valid.
type SearchCriteria struct {
	text        string
	categoryIDs []CategoryID
	minPrice    *valueobject.Price
	maxPrice    *valueobject.Price
	brands      []string
	sort        SortOption
	page        int
	size        int
}

// NewSearchCriteria validates params and applies defaults: sort RELEVANCE,
// page 0, size 20. All checks happen here, never earlier.
func NewSearchCriteria(params SearchCriteriaParams) (SearchCriteria, error) {
	sort := params.Sort
	if sort == "" {
		sort = SortRelevance
	}
	if !sort.IsValid() {
		return SearchCriteria{}, shared.NewValidationError("Unknown sort option")
	}

	size := DefaultPageSize
	if params.Size != nil {
		size = *params.Size
	}

	if params.Page < 0 {
		return SearchCriteria{}, shared.NewValidationError("Page cannot be negative")
	}
	if size < 1 || size > MaxPageSize {
		return SearchCriteria{}, shared.NewValidationError("Size must be between 1 and 100")
	}
	if params.MinPrice != nil && params.MaxPrice != nil && params.MinPrice.GreaterThan(*params.MaxPrice) {
		return SearchCriteria{}, shared.NewValidationError("Minimum price cannot exceed maximum price")
	}

	categoryIDs := make([]CategoryID, len(params.CategoryIDs))
	copy(categoryIDs, params.CategoryIDs)
	brands := make([]string, len(params.Brands))
	copy(brands, params.Brands)

	return SearchCriteria{
		text:        params.Text,
		categoryIDs: categoryIDs,
		minPrice:    params.MinPrice,
		maxPrice:    params.MaxPrice,
		brands:      brands,
		sort:        sort,
		page:        params.Page,
		size:        size,
	}, nil
}

// Text returns the optional free-text term ("" when unset)
func (c SearchCriteria) Text() string {
	return c.text
}

// CategoryIDs returns the category filter set
func (c SearchCriteria) CategoryIDs() []CategoryID {
	ids := make([]CategoryID, len(c.categoryIDs))
	copy(ids, c.categoryIDs)
	return ids
}

// MinPrice returns the optional lower price bound
func (c SearchCriteria) MinPrice() *valueobject.Price {
	return c.minPrice
}

// MaxPrice returns the optional upper price bound
func (c SearchCriteria) MaxPrice() *valueobject.Price {
	return c.maxPrice
}

// Brands returns the brand filter set
func (c SearchCriteria) Brands() []string {
	brands := make([]string, len(c.brands))
	copy(brands, c.brands)
	return brands
}

// Sort returns the sort option
func (c SearchCriteria) Sort() SortOption {
	return c.sort
}

// Page returns the zero-based page index
func (c SearchCriteria) Page() int {
	return c.page
}

// Size returns the page size
func (c SearchCriteria) Size() int {
	return c.size
}

// Offset returns the row offset implied by page and size
func (c SearchCriteria) Offset() int {
	return c.page * c.size
}
