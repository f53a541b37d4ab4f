package domain

import (
	"github.com/rpgo/acos-calculator/pkg/decimal"
)

// Field identifies one of the two monetary inputs on the form
type Field int

const (
	FieldSpend Field = iota
	FieldDivisor
)

// String returns the form field name used in HTML and config ("spend", "divisor")
func (f Field) String() string {
	switch f {
	case FieldSpend:
		return "spend"
	case FieldDivisor:
		return "divisor"
	default:
		return "unknown"
	}
}

// ParseField maps a field name back to a Field
func ParseField(name string) (Field, bool) {
	switch name {
	case "spend":
		return FieldSpend, true
	case "divisor", "sales", "revenue":
		return FieldDivisor, true
	default:
		return 0, false
	}
}

// Calculation is the derived value of one pair of inputs.
// ACoS is NaN whenever Eligible is false.
type Calculation struct {
	Spend    decimal.Number `json:"spend"`
	Divisor  decimal.Number `json:"divisor"`
	Eligible bool           `json:"eligible"`
	ACoS     decimal.Number `json:"acos"`
}

// FormView is a snapshot of the calculator form for rendering
type FormView struct {
	Spend         string
	Divisor       string
	Focused       Field
	HasFocus      bool
	ResultVisible bool
	Calculation   Calculation
}

// Value returns the raw text of a field
func (v FormView) Value(f Field) string {
	if f == FieldSpend {
		return v.Spend
	}
	return v.Divisor
}

// Report pairs a calculation with the variant used to present it
type Report struct {
	Variant     Variant
	Spend       string
	Divisor     string
	Calculation Calculation
}
