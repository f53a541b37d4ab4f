package output

import (
	"encoding/json"

	"github.com/rpgo/acos-calculator/internal/domain"
)

// JSONFormatter serializes the calculation as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(NewResponse(report), "", "  ")
}

// Response is the JSON shape shared by the CLI and the HTTP API
type Response struct {
	domain.Calculation
	ACoSFormatted string `json:"acos_formatted"`
	Formula       string `json:"formula"`
	Variant       string `json:"variant"`
}

// NewResponse builds the JSON view of a report
func NewResponse(report *domain.Report) Response {
	return Response{
		Calculation:   report.Calculation,
		ACoSFormatted: FormatPercentage(report.Calculation.ACoS),
		Formula:       report.Variant.Formula(),
		Variant:       report.Variant.Name,
	}
}
