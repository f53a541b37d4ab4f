package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/acos-calculator/internal/domain"
	"github.com/rpgo/acos-calculator/pkg/decimal"
)

// CSVFormatter writes a header and a single row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	calc := report.Calculation
	header := []string{"Variant", "Spend", report.Variant.Label(domain.FieldDivisor), "Eligible", "ACoS", "ACoSFormatted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		report.Variant.Name,
		csvNumber(calc.Spend),
		csvNumber(calc.Divisor),
		strconv.FormatBool(calc.Eligible),
		csvNumber(calc.ACoS),
		FormatPercentage(calc.ACoS),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// csvNumber leaves NaN cells empty
func csvNumber(n decimal.Number) string {
	if !n.IsFinite() {
		return ""
	}
	return n.String()
}
