package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = NewFromInt(100)

// Number is a decimal amount that may be "not a number".
// The zero value is NaN, which is what a failed parse produces.
type Number struct {
	d     decimal.Decimal
	valid bool
}

// NaN returns a non-finite Number
func NaN() Number {
	return Number{}
}

// New wraps a decimal.Decimal as a finite Number
func New(d decimal.Decimal) Number {
	return Number{d: d, valid: true}
}

// NewFromInt creates a finite Number from an int64
func NewFromInt(value int64) Number {
	return New(decimal.NewFromInt(value))
}

// FromFloat creates a Number from a float64. NaN and ±Inf map to NaN.
func FromFloat(value float64) Number {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NaN()
	}
	return New(decimal.NewFromFloat(value))
}

// NewFromString parses a decimal literal such as "1234.56"
func NewFromString(value string) (Number, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return NaN(), err
	}
	return New(d), nil
}

// IsFinite reports whether n holds a number
func (n Number) IsFinite() bool { return n.valid }

// IsPositive reports whether n is finite and strictly greater than zero
func (n Number) IsPositive() bool { return n.valid && n.d.IsPositive() }

// IsZero reports whether n is finite and zero
func (n Number) IsZero() bool { return n.valid && n.d.IsZero() }

// Div divides n by other. Division by zero or by NaN yields NaN.
func (n Number) Div(other Number) Number {
	if !n.valid || !other.valid || other.IsZero() {
		return NaN()
	}
	return New(n.d.Div(other.d))
}

// Mul multiplies n by other
func (n Number) Mul(other Number) Number {
	if !n.valid || !other.valid {
		return NaN()
	}
	return New(n.d.Mul(other.d))
}

// Percent returns n × 100
func (n Number) Percent() Number {
	return n.Mul(hundred)
}

// Equal reports whether two finite numbers are equal. NaN never equals anything.
func (n Number) Equal(other Number) bool {
	return n.valid && other.valid && n.d.Equal(other.d)
}

// StringFixed returns n rounded to places decimals, or "NaN".
func (n Number) StringFixed(places int32) string {
	if !n.valid {
		return "NaN"
	}
	return n.d.StringFixed(places)
}

// Float64 returns the nearest float64; math.NaN() for NaN.
func (n Number) Float64() float64 {
	if !n.valid {
		return math.NaN()
	}
	f, _ := n.d.Float64()
	return f
}

func (n Number) String() string {
	if !n.valid {
		return "NaN"
	}
	return n.d.String()
}

// MarshalJSON encodes a finite number as a bare JSON number and NaN as null
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(n.d.String()), nil
}
