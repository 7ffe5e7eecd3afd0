package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/shopcore/catalog/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeCatalogItem = "CatalogItem"
)

// Event type constants for catalog items
const (
	EventTypeProductIndexed    = "ProductIndexed"
	EventTypePriceUpdated      = "PriceUpdated"
	EventTypeItemRecategorized = "ItemRecategorized"
	EventTypeItemUpdated       = "ItemUpdated"
)

// ProductIndexedEvent is published when a catalog item is created and
// becomes eligible for indexing
type ProductIndexedEvent struct {
	shared.BaseDomainEvent
	ProductID   ProductID       `json:"product_id"`
	CategoryID  CategoryID      `json:"category_id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
}

// NewProductIndexedEvent creates a new ProductIndexedEvent
func NewProductIndexedEvent(item *CatalogItem) *ProductIndexedEvent {
	return &ProductIndexedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductIndexed, AggregateTypeCatalogItem, item.ID.UUID()),
		ProductID:       item.ID,
		CategoryID:      item.CategoryID,
		Name:            item.Name,
		Brand:           item.Brand,
		SKU:             item.SKU,
		Price:           item.Price,
	}
}

// PriceUpdatedEvent is published when a catalog item's price changes
type PriceUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID ProductID       `json:"product_id"`
	SKU       string          `json:"sku"`
	OldPrice  decimal.Decimal `json:"old_price"`
	NewPrice  decimal.Decimal `json:"new_price"`
}

// NewPriceUpdatedEvent creates a new PriceUpdatedEvent
func NewPriceUpdatedEvent(item *CatalogItem, oldPrice decimal.Decimal) *PriceUpdatedEvent {
	return &PriceUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePriceUpdated, AggregateTypeCatalogItem, item.ID.UUID()),
		ProductID:       item.ID,
		SKU:             item.SKU,
		OldPrice:        oldPrice,
		NewPrice:        item.Price,
	}
}

// ItemRecategorizedEvent is published when a catalog item moves category
type ItemRecategorizedEvent struct {
	shared.BaseDomainEvent
	ProductID     ProductID  `json:"product_id"`
	OldCategoryID CategoryID `json:"old_category_id"`
	NewCategoryID CategoryID `json:"new_category_id"`
}

// NewItemRecategorizedEvent creates a new ItemRecategorizedEvent
func NewItemRecategorizedEvent(item *CatalogItem, oldCategoryID CategoryID) *ItemRecategorizedEvent {
	return &ItemRecategorizedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemRecategorized, AggregateTypeCatalogItem, item.ID.UUID()),
		ProductID:       item.ID,
		OldCategoryID:   oldCategoryID,
		NewCategoryID:   item.CategoryID,
	}
}

// ItemUpdatedEvent is published for the remaining item mutations:
// visibility toggles, attribute changes, detail edits, stock updates
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID ProductID `json:"product_id"`
	Name      string    `json:"name"`
	Visible   bool      `json:"visible"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *CatalogItem) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemUpdated, AggregateTypeCatalogItem, item.ID.UUID()),
		ProductID:       item.ID,
		Name:            item.Name,
		Visible:         item.Visible,
	}
}
