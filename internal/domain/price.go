package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Price precision: at most 10 digits in total, 2 of them after the point.
const (
	PriceMaxDigits     = 10
	PriceDecimalPlaces = 2
)

// maxPrice is the first amount that no longer fits the integer digits.
var maxPrice = decimal.New(1, PriceMaxDigits-PriceDecimalPlaces)

// Price is a monetary amount. It is stored in MongoDB as Decimal128 and
// rendered with exactly two decimal places.
type Price struct {
	decimal.Decimal
}

// NewPrice parses a decimal amount such as "49.90".
func NewPrice(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, fmt.Errorf("%w: price %q is not a decimal number", ErrValidation, amount)
	}
	return Price{Decimal: d}, nil
}

// Validate enforces the precision and sign constraints of a price.
func (p Price) Validate() error {
	if p.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if !p.Equal(p.Truncate(PriceDecimalPlaces)) {
		return fmt.Errorf("%w: price must have at most %d decimal places", ErrValidation, PriceDecimalPlaces)
	}
	if p.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: price must have at most %d digits", ErrValidation, PriceMaxDigits)
	}
	return nil
}

func (p Price) String() string {
	return p.StringFixed(PriceDecimalPlaces)
}

// MarshalJSON renders the price as a quoted fixed-point string.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// MarshalBSONValue stores the price as Decimal128.
func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(p.String())
	if err != nil {
		return 0, nil, fmt.Errorf("encode price %s: %w", p.String(), err)
	}
	return bson.MarshalValue(d128)
}

// UnmarshalBSONValue reads a Decimal128 price.
func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	d128, ok := bson.RawValue{Type: t, Value: data}.Decimal128OK()
	if !ok {
		return fmt.Errorf("decode price: unexpected BSON type %s", t)
	}
	d, err := decimal.NewFromString(d128.String())
	if err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	p.Decimal = d
	return nil
}
