package output

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/rpgo/acos-calculator/internal/domain"
)

const pageTitle = "Amazon ACoS Calculator"

var breadcrumbs = []string{"Home", "Tools", "ACoS Calculator"}

// PageField is one rendered money input
type PageField struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	Focused     bool
}

// Page is the template data for the calculator page
type Page struct {
	Title         string
	Description   string
	DivisorWord   string
	Variant       domain.Variant
	Breadcrumbs   []string
	Fields        []PageField
	CanCalculate  bool
	ResultVisible bool
	Result        string
	Formula       string
	HelperHTML    template.HTML
}

// NewPage lays out a form snapshot according to the variant.
// The result string is empty unless the result panel is visible.
func NewPage(v domain.Variant, view domain.FormView) (Page, error) {
	p := Page{
		Title:         pageTitle,
		Description:   fmt.Sprintf("Calculate your Amazon Advertising Cost of Sales (ACoS) using Ad %s and Ad Spend.", v.DivisorLabel),
		DivisorWord:   divisorWord(v),
		Variant:       v,
		CanCalculate:  view.Calculation.Eligible,
		ResultVisible: view.ResultVisible,
		Formula:       v.Formula(),
	}
	if v.ShowBreadcrumbs {
		p.Breadcrumbs = breadcrumbs
	}
	for _, f := range v.FieldOrder {
		p.Fields = append(p.Fields, PageField{
			Name:        f.String(),
			Label:       v.Label(f),
			Placeholder: v.Placeholder(f),
			Value:       view.Value(f),
			Focused:     view.HasFocus && view.Focused == f,
		})
	}
	if view.ResultVisible {
		p.Result = FormatPercentage(view.Calculation.ACoS)
	}
	if v.ShowHelperText {
		html, err := renderMarkdown(v.HelperText)
		if err != nil {
			return Page{}, fmt.Errorf("render helper text: %w", err)
		}
		p.HelperHTML = html
	}
	return p, nil
}

func divisorWord(v domain.Variant) string {
	return strings.ToLower(string(v.DivisorLabel))
}

// renderMarkdown converts helper text to HTML. Raw HTML in the source is dropped.
func renderMarkdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
