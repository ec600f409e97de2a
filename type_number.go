package snapimport

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Number is an exact decimal that remembers how many decimal places it is
// displayed with. "10.50" parses to a Number that prints back as "10.50".
type Number struct {
	value  decimal.Decimal
	places int32
}

// N returns a Number with the natural number of places of value.
func N[T float64 | int | int64 | decimal.Decimal](value T) Number {
	d := newDecimal(value)
	return Number{value: d, places: placesOf(d)}
}

// maxExponent bounds the scale of parsed numbers: "1e-1000000" would
// otherwise print with a million decimal places.
const maxExponent = 20

// ParseNumber parses a decimal number. Thousands separators and spaces are
// ignored, the number of digits after the point is kept as the display
// precision. Numbers with more than maxExponent decimal places, or an
// exponent above it, are rejected.
func ParseNumber(s string) (Number, error) {
	clean := stripSeparators(strings.TrimSpace(s))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Number{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		return Number{}, fmt.Errorf("invalid number %q: out of range", s)
	}
	var places int32
	if i := strings.IndexByte(clean, '.'); i >= 0 && !strings.ContainsAny(clean, "eE") {
		places = int32(len(clean) - i - 1)
	} else {
		places = placesOf(d)
	}
	return Number{value: d, places: places}, nil
}

// MustParseNumber is like ParseNumber but panics on error.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err.Error())
	}
	return n
}

// placesOf returns the number of decimal places needed to print d exactly.
func placesOf(d decimal.Decimal) int32 {
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return int32(len(s) - i - 1)
	}
	return 0
}

func (n Number) Places() int32             { return n.places }
func (n Number) Decimal() decimal.Decimal  { return n.value }
func (n Number) Float64() float64          { return n.value.InexactFloat64() }
func (n Number) IsZero() bool              { return n.value.IsZero() }
func (n Number) Neg() Number               { return Number{value: n.value.Neg(), places: n.places} }
func (n Number) Equal(m Number) bool       { return n.value.Equal(m.value) }
func (n Number) Add(m Number) Number       { return N(n.value.Add(m.value)) }
func (n Number) Sub(m Number) Number       { return N(n.value.Sub(m.value)) }
func (n Number) Mul(m Number) Number       { return N(n.value.Mul(m.value)) }
func (n Number) Round(places int32) Number { return Number{value: n.value.Round(places), places: places} }
func (n Number) EqualAt(m Number, places int32) bool {
	return n.value.Round(places).Equal(m.value.Round(places))
}

// Div returns n / m. ok is false when m is zero.
func (n Number) Div(m Number) (q Number, ok bool) {
	if m.value.IsZero() {
		return Number{}, false
	}
	return N(n.value.DivRound(m.value, 16)), true
}

// String returns n with its display precision.
func (n Number) String() string { return n.value.StringFixed(n.places) }

// MarshalJSON writes n as a JSON string, to keep its precision.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

// UnmarshalJSON reads n from a JSON string or number.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := ParseNumber(s)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

var hundred = N(100)

// valueOf returns units × price / 100, the value of a holding with price
// expressed in hundredths of the currency unit.
func valueOf(units, price Number) Number { return N(units.value.Mul(price.value).Shift(-2)) }

// unitsOf returns value × 100 / price. ok is false when price is zero.
func unitsOf(value, price Number) (Number, bool) { return value.Mul(hundred).Div(price) }

// priceOf returns value × 100 / units. ok is false when units is zero.
func priceOf(value, units Number) (Number, bool) { return value.Mul(hundred).Div(units) }
