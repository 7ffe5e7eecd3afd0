package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopcore/catalog/internal/domain/shared"
)

// Price is a value object for a non-negative monetary amount with exact
// decimal semantics. It is immutable - all operations return new instances.
type Price struct {
	amount decimal.Decimal
}

// NewPrice creates a Price from a decimal amount
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, shared.NewValidationError("Price cannot be negative")
	}
	return Price{amount: amount}, nil
}

// NewPriceFromString creates a Price from a string representation
func NewPriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, shared.NewValidationError(fmt.Sprintf("Invalid price %q", amount))
	}
	return NewPrice(d)
}

// NewPriceFromFloat creates a Price from a float64 value
func NewPriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// ZeroPrice returns a zero-value Price
func ZeroPrice() Price {
	return Price{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// IsZero returns true if the amount is zero
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// Equals returns true if both prices have the same amount
func (p Price) Equals(other Price) bool {
	return p.amount.Equal(other.amount)
}

// LessThan returns true if this price is less than the other
func (p Price) LessThan(other Price) bool {
	return p.amount.LessThan(other.amount)
}

// GreaterThan returns true if this price is greater than the other
func (p Price) GreaterThan(other Price) bool {
	return p.amount.GreaterThan(other.amount)
}

// String returns the amount with two fixed decimal places
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// MarshalJSON implements json.Marshaler
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.amount.String())
}

// UnmarshalJSON implements json.Unmarshaler. Negative amounts are rejected
// so deserialized prices hold the same invariant as constructed ones.
func (p *Price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	price, err := NewPriceFromString(s)
	if err != nil {
		return err
	}
	p.amount = price.amount
	return nil
}

// Value implements driver.Valuer for database storage
func (p Price) Value() (driver.Value, error) {
	return p.amount.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (p *Price) Scan(value any) error {
	if value == nil {
		p.amount = decimal.Zero
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Price", value)
	}

	amount, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}
	p.amount = amount
	return nil
}
