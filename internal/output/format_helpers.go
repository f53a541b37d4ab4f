package output

import "github.com/rpgo/acos-calculator/pkg/decimal"

// Placeholder is rendered instead of a non-finite number
const Placeholder = "—"

// FormatCurrency formats an amount as USD with 2 decimals, or the placeholder.
func FormatCurrency(amount decimal.Number) string {
	if !amount.IsFinite() {
		return Placeholder
	}
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a percentage with exactly 2 decimals and a trailing "%".
// NaN renders as the placeholder, never as "NaN%".
func FormatPercentage(pct decimal.Number) string {
	if !pct.IsFinite() {
		return Placeholder
	}
	return pct.StringFixed(2) + "%"
}
