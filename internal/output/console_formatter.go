package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/acos-calculator/internal/domain"
)

// ConsoleFormatter prints a short plain-text summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	v := report.Variant
	calc := report.Calculation
	fmt.Fprintln(&buf, "ACoS CALCULATION")
	fmt.Fprintln(&buf, "================")
	for _, f := range v.FieldOrder {
		amount := calc.Spend
		if f == domain.FieldDivisor {
			amount = calc.Divisor
		}
		fmt.Fprintf(&buf, "%-16s %s\n", v.Label(f)+":", FormatCurrency(amount))
	}
	fmt.Fprintf(&buf, "%-16s %s\n", "ACoS:", FormatPercentage(calc.ACoS))
	fmt.Fprintf(&buf, "Formula: %s\n", v.Formula())
	if !calc.Eligible {
		fmt.Fprintf(&buf, "Enter a spend amount and an ad %s amount greater than zero.\n", divisorWord(v))
	}
	return buf.Bytes(), nil
}
