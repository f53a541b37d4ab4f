package calculation

import (
	"errors"

	"github.com/rpgo/acos-calculator/internal/domain"
	"github.com/rpgo/acos-calculator/pkg/decimal"
)

// ErrNotEligible is returned by callers that need an error for ineligible input.
// The calculation functions themselves never return it; they return NaN.
var ErrNotEligible = errors.New("spend and a positive sales/revenue amount are required")

// Eligible reports whether an ACoS may be computed: both amounts finite and divisor > 0
func Eligible(spend, divisor decimal.Number) bool {
	return spend.IsFinite() && divisor.IsPositive()
}

// Calculate returns (spend / divisor) × 100 without rounding.
// It returns NaN, without dividing, when the inputs are not eligible.
func Calculate(spend, divisor decimal.Number) decimal.Number {
	if !Eligible(spend, divisor) {
		return decimal.NaN()
	}
	return spend.Div(divisor).Percent()
}

// Evaluate parses both raw inputs and computes the ACoS when eligible
func Evaluate(spendRaw, divisorRaw string) domain.Calculation {
	spend := ParseAmount(spendRaw)
	divisor := ParseAmount(divisorRaw)
	return domain.Calculation{
		Spend:    spend,
		Divisor:  divisor,
		Eligible: Eligible(spend, divisor),
		ACoS:     Calculate(spend, divisor),
	}
}
