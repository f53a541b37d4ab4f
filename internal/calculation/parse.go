package calculation

import (
	"strings"

	"github.com/rpgo/acos-calculator/pkg/decimal"
)

// ParseAmount converts raw field text into a number.
// Non-numeric characters are dropped first, so "$1,500" parses as 1500.
// The result is NaN for empty input, a lone ".", or more than one ".".
func ParseAmount(raw string) decimal.Number {
	cleaned := stripNonNumeric(raw)
	if strings.Count(cleaned, ".") > 1 {
		return decimal.NaN()
	}
	cleaned = strings.TrimSuffix(cleaned, ".")
	if cleaned == "" {
		return decimal.NaN()
	}
	if cleaned[0] == '.' {
		cleaned = "0" + cleaned
	}
	n, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NaN()
	}
	return n
}
