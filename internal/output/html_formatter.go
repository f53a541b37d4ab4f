package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/rpgo/acos-calculator/internal/domain"
	"github.com/rpgo/acos-calculator/internal/form"
)

// HTMLFormatter renders the calculator page with the result panel open.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/page.html.tmpl
var pageTemplateSource string

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	// field values are stored the way the form stores typed input
	view := form.Replay(
		form.Input(domain.FieldSpend, report.Spend),
		form.Input(domain.FieldDivisor, report.Divisor),
	).View()
	view.Calculation = report.Calculation
	view.ResultVisible = report.Calculation.Eligible

	page, err := NewPage(report.Variant, view)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := RenderPage(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPage executes the page template
func RenderPage(w io.Writer, p Page) error {
	return pageTemplate.Execute(w, p)
}
