package catalog

import (
	"database/sql/driver"

	"github.com/google/uuid"

	"github.com/shopcore/catalog/internal/domain/shared"
)

// ProductID identifies a catalog item and its index projection. Generated
// once at creation, immutable, compared by value.
type ProductID struct {
	value uuid.UUID
}

// NewProductID generates a new random product identifier
func NewProductID() ProductID {
	return ProductID{value: uuid.New()}
}

// ProductIDFromUUID wraps an already-parsed uuid
func ProductIDFromUUID(id uuid.UUID) ProductID {
	return ProductID{value: id}
}

// ParseProductID parses a product identifier from its string form
func ParseProductID(s string) (ProductID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, shared.NewValidationError("Invalid product ID format")
	}
	return ProductID{value: id}, nil
}

// UUID returns the underlying uuid value
func (id ProductID) UUID() uuid.UUID {
	return id.value
}

// String returns the canonical string form
func (id ProductID) String() string {
	return id.value.String()
}

// IsZero reports whether the identifier is unset
func (id ProductID) IsZero() bool {
	return id.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler; json quotes the result
func (id ProductID) MarshalText() ([]byte, error) {
	return id.value.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ProductID) UnmarshalText(data []byte) error {
	return id.value.UnmarshalText(data)
}

// Value implements driver.Valuer for database storage
func (id ProductID) Value() (driver.Value, error) {
	return id.value.Value()
}

// Scan implements sql.Scanner for database retrieval
func (id *ProductID) Scan(src any) error {
	return id.value.Scan(src)
}

// CategoryID identifies a category. Same semantics as ProductID.
type CategoryID struct {
	value uuid.UUID
}

// NewCategoryID generates a new random category identifier
func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.New()}
}

// CategoryIDFromUUID wraps an already-parsed uuid
func CategoryIDFromUUID(id uuid.UUID) CategoryID {
	return CategoryID{value: id}
}

// ParseCategoryID parses a category identifier from its string form
func ParseCategoryID(s string) (CategoryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CategoryID{}, shared.NewValidationError("Invalid category ID format")
	}
	return CategoryID{value: id}, nil
}

// UUID returns the underlying uuid value
func (id CategoryID) UUID() uuid.UUID {
	return id.value
}

// String returns the canonical string form
func (id CategoryID) String() string {
	return id.value.String()
}

// IsZero reports whether the identifier is unset
func (id CategoryID) IsZero() bool {
	return id.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler; json quotes the result
func (id CategoryID) MarshalText() ([]byte, error) {
	return id.value.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *CategoryID) UnmarshalText(data []byte) error {
	return id.value.UnmarshalText(data)
}

// Value implements driver.Valuer for database storage
func (id CategoryID) Value() (driver.Value, error) {
	return id.value.Value()
}

// Scan implements sql.Scanner for database retrieval
func (id *CategoryID) Scan(src any) error {
	return id.value.Scan(src)
}
