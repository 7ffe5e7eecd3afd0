package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopcore/catalog/internal/domain/shared"
	"github.com/shopcore/catalog/internal/domain/shared/valueobject"
)

// CatalogItem is the sellable product entry and the aggregate root for
// product write operations. It owns its value objects and attributes;
// other aggregates are referenced by identifier only.
type CatalogItem struct {
	shared.EventRecorder
	ID            ProductID       `gorm:"type:uuid;primaryKey"`
	CategoryID    CategoryID      `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:varchar(1000);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Brand         string          `gorm:"type:varchar(100);not null"`
	SKU           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Attributes    []Attribute     `gorm:"type:jsonb;serializer:json"`
	Visible       bool            `gorm:"not null;default:true"`
	StockQuantity int             `gorm:"not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// NewCatalogItem creates a catalog item from validated value objects and
// emits a ProductIndexed event so the index projection gets built.
func NewCatalogItem(
	categoryID CategoryID,
	name ProductName,
	description ProductDescription,
	price valueobject.Price,
	brand Brand,
	sku SKU,
) (*CatalogItem, error) {
	if categoryID.IsZero() {
		return nil, shared.NewValidationError("Category ID is required")
	}

	now := time.Now()
	item := &CatalogItem{
		EventRecorder: shared.NewEventRecorder(),
		ID:            NewProductID(),
		CategoryID:    categoryID,
		Name:          name.String(),
		Description:   description.String(),
		Price:         price.Amount(),
		Brand:         brand.String(),
		SKU:           sku.String(),
		Visible:       true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	item.AddDomainEvent(NewProductIndexedEvent(item))

	return item, nil
}

// UpdatePrice changes the price. The amount is re-checked at the operation
// boundary even though Price already enforces non-negativity.
func (i *CatalogItem) UpdatePrice(newPrice valueobject.Price) error {
	if newPrice.Amount().IsNegative() {
		return shared.NewValidationError("Price cannot be negative")
	}

	oldPrice := i.Price
	i.Price = newPrice.Amount()
	i.touch()

	i.AddDomainEvent(NewPriceUpdatedEvent(i, oldPrice))

	return nil
}

// ChangeCategory moves the item to another category
func (i *CatalogItem) ChangeCategory(newCategoryID CategoryID) error {
	if newCategoryID.IsZero() {
		return shared.NewValidationError("Category ID is required")
	}

	oldCategoryID := i.CategoryID
	i.CategoryID = newCategoryID
	i.touch()

	i.AddDomainEvent(NewItemRecategorizedEvent(i, oldCategoryID))

	return nil
}

// UpdateDetails applies the present fields only; nil means "leave as is"
func (i *CatalogItem) UpdateDetails(name *ProductName, description *ProductDescription) {
	if name == nil && description == nil {
		return
	}
	if name != nil {
		i.Name = name.String()
	}
	if description != nil {
		i.Description = description.String()
	}
	i.touch()

	i.AddDomainEvent(NewItemUpdatedEvent(i))
}

// Hide makes the item invisible to the storefront
func (i *CatalogItem) Hide() {
	i.Visible = false
	i.touch()

	i.AddDomainEvent(NewItemUpdatedEvent(i))
}

// Show makes the item visible to the storefront
func (i *CatalogItem) Show() {
	i.Visible = true
	i.touch()

	i.AddDomainEvent(NewItemUpdatedEvent(i))
}

// AddAttribute appends an attribute. Storage order is preserved; the index
// projection depends on it.
func (i *CatalogItem) AddAttribute(attr Attribute) {
	i.Attributes = append(i.Attributes, attr)
	i.touch()

	i.AddDomainEvent(NewItemUpdatedEvent(i))
}

// RemoveAttribute removes the first attribute with the given name
func (i *CatalogItem) RemoveAttribute(name string) error {
	for idx, attr := range i.Attributes {
		if attr.Name == name {
			i.Attributes = append(i.Attributes[:idx], i.Attributes[idx+1:]...)
			i.touch()

			i.AddDomainEvent(NewItemUpdatedEvent(i))
			return nil
		}
	}
	return shared.NewDomainError("ATTRIBUTE_NOT_FOUND", "Attribute not found on this item")
}

// UpdateStock sets the stock quantity
func (i *CatalogItem) UpdateStock(quantity int) error {
	if quantity < 0 {
		return shared.NewValidationError("Stock quantity cannot be negative")
	}

	i.StockQuantity = quantity
	i.touch()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// GetPrice returns the price as a value object
func (i *CatalogItem) GetPrice() valueobject.Price {
	price, _ := valueobject.NewPrice(i.Price)
	return price
}

// IsVisible returns true if the item is visible
func (i *CatalogItem) IsVisible() bool {
	return i.Visible
}

func (i *CatalogItem) touch() {
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
