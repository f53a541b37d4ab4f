package domain

import (
	"fmt"
	"sort"
)

// DivisorLabel is the wording used for the denominator
type DivisorLabel string

const (
	DivisorSales   DivisorLabel = "Sales"
	DivisorRevenue DivisorLabel = "Revenue"
)

// DefaultHelperText is the tip shown under the form (Markdown)
const DefaultHelperText = "Tip: A “good” ACoS depends on your margins and goals (ranking vs profit)."

// Variant describes one presentation of the calculator page
type Variant struct {
	Name            string       `json:"name" yaml:"name"`
	DivisorLabel    DivisorLabel `json:"divisor_label" yaml:"divisor_label"`
	FieldOrder      [2]Field     `json:"-" yaml:"-"`
	ShowHelperText  bool         `json:"show_helper_text" yaml:"show_helper_text"`
	ShowBreadcrumbs bool         `json:"show_breadcrumbs" yaml:"show_breadcrumbs"`
	HelperText      string       `json:"helper_text,omitempty" yaml:"helper_text,omitempty"`
}

var (
	orderSpendFirst   = [2]Field{FieldSpend, FieldDivisor}
	orderDivisorFirst = [2]Field{FieldDivisor, FieldSpend}
)

// Presets mirrors the three published revisions of the page
var Presets = map[string]Variant{
	"classic": {
		Name:           "classic",
		DivisorLabel:   DivisorSales,
		FieldOrder:     orderDivisorFirst,
		ShowHelperText: true,
		HelperText:     DefaultHelperText,
	},
	"sales": {
		Name:            "sales",
		DivisorLabel:    DivisorSales,
		FieldOrder:      orderSpendFirst,
		ShowBreadcrumbs: true,
	},
	"revenue": {
		Name:            "revenue",
		DivisorLabel:    DivisorRevenue,
		FieldOrder:      orderSpendFirst,
		ShowHelperText:  true,
		ShowBreadcrumbs: true,
		HelperText:      DefaultHelperText,
	},
}

// DefaultVariant is used when nothing else is configured
const DefaultVariant = "classic"

// PresetNames returns the preset names sorted
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Label returns the visible label of a field, e.g. "Ad Spend ($)"
func (v Variant) Label(f Field) string {
	if f == FieldSpend {
		return "Ad Spend ($)"
	}
	return fmt.Sprintf("Ad %s ($)", v.DivisorLabel)
}

// Placeholder returns the example value shown in an empty field
func (v Variant) Placeholder(f Field) string {
	if f == FieldSpend {
		return "e.g. 300"
	}
	return "e.g. 1500"
}

// Formula restates the calculation in the variant's wording
func (v Variant) Formula() string {
	return fmt.Sprintf("(Ad Spend ÷ Ad %s) × 100", v.DivisorLabel)
}

// OrderNames returns the field order as names, for JSON and YAML output
func (v Variant) OrderNames() []string {
	return []string{v.FieldOrder[0].String(), v.FieldOrder[1].String()}
}

// Validate checks the label and that the order names both fields exactly once
func (v Variant) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("variant name is required")
	}
	if v.DivisorLabel != DivisorSales && v.DivisorLabel != DivisorRevenue {
		return fmt.Errorf("divisor label must be %q or %q, got %q", DivisorSales, DivisorRevenue, v.DivisorLabel)
	}
	if v.FieldOrder != orderSpendFirst && v.FieldOrder != orderDivisorFirst {
		return fmt.Errorf("field order must contain spend and divisor once each")
	}
	return nil
}
