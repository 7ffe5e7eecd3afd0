package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopcore/catalog/internal/domain/shared"
)

// Maximum lengths for the string value objects
const (
	MaxProductNameLength        = 255
	MaxProductDescriptionLength = 1000
	MaxBrandLength              = 100
	MaxSKULength                = 50
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9-_]+$`)

// ProductName is a non-blank product name of at most 255 characters
type ProductName struct {
	value string
}

// NewProductName validates and creates a product name
func NewProductName(value string) (ProductName, error) {
	if strings.TrimSpace(value) == "" {
		return ProductName{}, shared.NewValidationError("Product name cannot be blank")
	}
	if len(value) > MaxProductNameLength {
		return ProductName{}, shared.NewValidationError(fmt.Sprintf("Product name cannot exceed %d characters", MaxProductNameLength))
	}
	return ProductName{value: value}, nil
}

// String returns the raw name
func (n ProductName) String() string {
	return n.value
}

// ProductDescription is a non-blank description of at most 1000 characters
type ProductDescription struct {
	value string
}

// NewProductDescription validates and creates a product description
func NewProductDescription(value string) (ProductDescription, error) {
	if strings.TrimSpace(value) == "" {
		return ProductDescription{}, shared.NewValidationError("Product description cannot be blank")
	}
	if len(value) > MaxProductDescriptionLength {
		return ProductDescription{}, shared.NewValidationError(fmt.Sprintf("Product description cannot exceed %d characters", MaxProductDescriptionLength))
	}
	return ProductDescription{value: value}, nil
}

// String returns the raw description
func (d ProductDescription) String() string {
	return d.value
}

// Brand is a non-blank brand name of at most 100 characters
type Brand struct {
	value string
}

// NewBrand validates and creates a brand
func NewBrand(value string) (Brand, error) {
	if strings.TrimSpace(value) == "" {
		return Brand{}, shared.NewValidationError("Brand cannot be blank")
	}
	if len(value) > MaxBrandLength {
		return Brand{}, shared.NewValidationError(fmt.Sprintf("Brand cannot exceed %d characters", MaxBrandLength))
	}
	return Brand{value: value}, nil
}

// String returns the raw brand
func (b Brand) String() string {
	return b.value
}

// SKU is a stock keeping unit code: non-blank, at most 50 characters,
// uppercase letters, digits, hyphens and underscores only.
type SKU struct {
	value string
}

// NewSKU validates and creates a SKU
func NewSKU(value string) (SKU, error) {
	if strings.TrimSpace(value) == "" {
		return SKU{}, shared.NewValidationError("SKU cannot be blank")
	}
	if len(value) > MaxSKULength {
		return SKU{}, shared.NewValidationError(fmt.Sprintf("SKU cannot exceed %d characters", MaxSKULength))
	}
	if !skuPattern.MatchString(value) {
		return SKU{}, shared.NewValidationError("SKU can only contain uppercase letters, digits, hyphens, and underscores")
	}
	return SKU{value: value}, nil
}

// String returns the raw SKU
func (s SKU) String() string {
	return s.value
}

// Attribute is a name/value/type triple attached to a catalog item.
// Order among attributes is not significant for equality, but storage
// order is preserved because the index projection depends on it.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// NewAttribute validates and creates an attribute
func NewAttribute(name, value, attrType string) (Attribute, error) {
	if strings.TrimSpace(name) == "" {
		return Attribute{}, shared.NewValidationError("Attribute name cannot be blank")
	}
	if strings.TrimSpace(value) == "" {
		return Attribute{}, shared.NewValidationError("Attribute value cannot be blank")
	}
	return Attribute{Name: name, Value: value, Type: attrType}, nil
}
