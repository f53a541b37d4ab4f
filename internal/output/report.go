package output

import (
	"io"

	"github.com/rpgo/acos-calculator/internal/domain"
)

// GenerateReport writes report to w in the named format
func GenerateReport(w io.Writer, report *domain.Report, format string) error {
	f, err := GetFormatterByName(format)
	if err != nil {
		return err
	}
	return WriteFormatted(w, f, report)
}
