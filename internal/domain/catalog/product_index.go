package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductIndex is the read-optimized projection of a CatalogItem. It is a
// pure function of the source item: built by NewProductIndexFrom, refreshed
// by UpdateFrom, never mutated independently.
type ProductIndex struct {
	ID             ProductID       `gorm:"type:uuid;primaryKey"`
	CategoryID     CategoryID      `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:varchar(1000);not null"`
	Price          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Brand          string          `gorm:"type:varchar(100);not null;index"`
	SKU            string          `gorm:"type:varchar(50);not null"`
	Attributes     []Attribute     `gorm:"type:jsonb;serializer:json"`
	SearchableText string          `gorm:"type:text;not null"`
	IndexedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductIndex) TableName() string {
	return "product_indexes"
}

// NewProductIndexFrom builds the projection for a catalog item
func NewProductIndexFrom(item *CatalogItem) *ProductIndex {
	index := &ProductIndex{ID: item.ID}
	index.UpdateFrom(item)
	return index
}

// UpdateFrom refreshes every projected field from the source item and
// recomputes the searchable text deterministically
func (p *ProductIndex) UpdateFrom(item *CatalogItem) {
	p.CategoryID = item.CategoryID
	p.Name = item.Name
	p.Description = item.Description
	p.Price = item.Price
	p.Brand = item.Brand
	p.SKU = item.SKU
	p.Attributes = make([]Attribute, len(item.Attributes))
	copy(p.Attributes, item.Attributes)
	p.SearchableText = buildSearchableText(item)
	p.IndexedAt = time.Now()
}

// buildSearchableText lower-cases name, description, brand, sku and each
// attribute's name and value, joins them in that fixed order with single
// spaces, and trims the result. Byte-identical inputs give byte-identical
// output, which downstream matching relies on.
func buildSearchableText(item *CatalogItem) string {
	tokens := make([]string, 0, 4+2*len(item.Attributes))
	tokens = append(tokens,
		strings.ToLower(item.Name),
		strings.ToLower(item.Description),
		strings.ToLower(item.Brand),
		strings.ToLower(item.SKU),
	)
	for _, attr := range item.Attributes {
		tokens = append(tokens, strings.ToLower(attr.Name), strings.ToLower(attr.Value))
	}
	// Fields collapses runs of whitespace so the result is single-spaced
	// regardless of spacing inside the source values
	return strings.Join(strings.Fields(strings.Join(tokens, " ")), " ")
}
