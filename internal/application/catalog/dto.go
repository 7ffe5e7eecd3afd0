package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopcore/catalog/internal/domain/catalog"
)

// CreateItemRequest represents a request to create a new catalog item
type CreateItemRequest struct {
	CategoryID  uuid.UUID        `json:"category_id" binding:"required"`
	Name        string           `json:"name" binding:"required,min=1,max=255"`
	Description string           `json:"description" binding:"required,min=1,max=1000"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	Brand       string           `json:"brand" binding:"required,min=1,max=100"`
	SKU         string           `json:"sku" binding:"required,min=1,max=50"`
	Attributes  []AttributeInput `json:"attributes" binding:"omitempty,dive"`
}

// AttributeInput represents an attribute in item requests
type AttributeInput struct {
	Name  string `json:"name" binding:"required,min=1"`
	Value string `json:"value" binding:"required,min=1"`
	Type  string `json:"type"`
}

// UpdateItemDetailsRequest updates name and/or description; nil fields are
// left unchanged
type UpdateItemDetailsRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1,max=1000"`
}

// UpdateItemPriceRequest represents a price change
type UpdateItemPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// UpdateItemStockRequest represents a stock level change
type UpdateItemStockRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// ChangeItemCategoryRequest moves an item to another category
type ChangeItemCategoryRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID            uuid.UUID           `json:"id"`
	CategoryID    uuid.UUID           `json:"category_id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	Brand         string              `json:"brand"`
	SKU           string              `json:"sku"`
	Attributes    []catalog.Attribute `json:"attributes"`
	Visible       bool                `json:"visible"`
	StockQuantity int                 `json:"stock_quantity"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Version       int                 `json:"version"`
}

// ToItemResponse converts a domain CatalogItem to ItemResponse
func ToItemResponse(item *catalog.CatalogItem) ItemResponse {
	return ItemResponse{
		ID:            item.ID.UUID(),
		CategoryID:    item.CategoryID.UUID(),
		Name:          item.Name,
		Description:   item.Description,
		Price:         item.Price,
		Brand:         item.Brand,
		SKU:           item.SKU,
		Attributes:    item.Attributes,
		Visible:       item.Visible,
		StockQuantity: item.StockQuantity,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
		Version:       item.GetVersion(),
	}
}

// ToItemResponses converts a slice of domain CatalogItems to responses
func ToItemResponses(items []catalog.CatalogItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}

// CreateCategoryRequest represents a request to create a category. A nil
// ParentID creates a root category.
type CreateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=100"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// AddSubcategoryRequest registers a subcategory on a category
type AddSubcategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

// SubcategoryResponse represents a subcategory in API responses
type SubcategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Path          string                `json:"path"`
	Level         int                   `json:"level"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	Active        bool                  `json:"active"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Version       int                   `json:"version"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(category *catalog.Category) CategoryResponse {
	subs := make([]SubcategoryResponse, len(category.Subcategories))
	for i, sub := range category.Subcategories {
		subs[i] = SubcategoryResponse{
			ID:          sub.ID.UUID(),
			Name:        sub.Name,
			Description: sub.Description,
			Active:      sub.Active,
		}
	}
	return CategoryResponse{
		ID:            category.ID.UUID(),
		Name:          category.Name,
		Path:          category.Path,
		Level:         category.GetHierarchyLevel(),
		Subcategories: subs,
		Active:        category.Active,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
		Version:       category.GetVersion(),
	}
}

// ToCategoryResponses converts a slice of domain Categories to responses
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// SearchRequest represents a catalog search query
type SearchRequest struct {
	Text        string   `form:"q"`
	CategoryIDs []string `form:"category_id"`
	Brands      []string `form:"brand"`
	MinPrice    *string  `form:"min_price"`
	MaxPrice    *string  `form:"max_price"`
	Sort        string   `form:"sort"`
	Page        int      `form:"page" binding:"min=0"`
	Size        *int     `form:"size"`
}

// SearchHit represents a single search result
type SearchHit struct {
	ID         uuid.UUID           `json:"id"`
	CategoryID uuid.UUID           `json:"category_id"`
	Name       string              `json:"name"`
	Brand      string              `json:"brand"`
	SKU        string              `json:"sku"`
	Price      decimal.Decimal     `json:"price"`
	Attributes []catalog.Attribute `json:"attributes,omitempty"`
}

// SearchResult represents a paginated search response
type SearchResult struct {
	Hits       []SearchHit `json:"hits"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalPages int         `json:"total_pages"`
}

// ToSearchHit converts a ProductIndex row to a SearchHit
func ToSearchHit(index *catalog.ProductIndex) SearchHit {
	return SearchHit{
		ID:         index.ID.UUID(),
		CategoryID: index.CategoryID.UUID(),
		Name:       index.Name,
		Brand:      index.Brand,
		SKU:        index.SKU,
		Price:      index.Price,
		Attributes: index.Attributes,
	}
}
