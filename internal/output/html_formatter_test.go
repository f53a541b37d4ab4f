package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/acos-calculator/internal/calculation"
	"github.com/rpgo/acos-calculator/internal/domain"
)

func renderDoc(t *testing.T, v domain.Variant, view domain.FormView) *goquery.Document {
	t.Helper()
	page, err := NewPage(v, view)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func fieldNames(doc *goquery.Document) []string {
	var names []string
	doc.Find("input[data-money]").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.AttrOr("name", ""))
	})
	return names
}

func TestHTMLFormatterShowsResult(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport("classic", "300", "1500"))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "Amazon ACoS Calculator", doc.Find("title").Text())
	assert.Equal(t, "20.00%", doc.Find("#acos").Text())
	assert.Contains(t, doc.Find(".formula").Text(), "(Ad Spend ÷ Ad Sales) × 100")
	assert.Equal(t, "300", doc.Find("input[name=spend]").AttrOr("value", ""))
}

func TestHTMLFormatterIneligibleHidesResult(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport("classic", "150", "0"))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Find("#result").Length())
	_, disabled := doc.Find("#calculate").Attr("disabled")
	assert.True(t, disabled)
}

func TestPageFollowsVariant(t *testing.T) {
	idle := domain.FormView{Calculation: calculation.Evaluate("", "")}

	classic := renderDoc(t, domain.Presets["classic"], idle)
	assert.Equal(t, []string{"divisor", "spend"}, fieldNames(classic))
	assert.Equal(t, 0, classic.Find("nav.breadcrumbs").Length())
	assert.Contains(t, classic.Find("footer.helper").Text(), "depends on your margins")

	sales := renderDoc(t, domain.Presets["sales"], idle)
	assert.Equal(t, []string{"spend", "divisor"}, fieldNames(sales))
	assert.Equal(t, "Home › Tools › ACoS Calculator", strings.TrimSpace(sales.Find("nav.breadcrumbs").Text()))
	assert.Equal(t, 0, sales.Find("footer.helper").Length())

	revenue := renderDoc(t, domain.Presets["revenue"], idle)
	assert.Equal(t, "Ad Revenue ($)", revenue.Find("label.field span").Eq(1).Text())
	assert.Contains(t, revenue.Find("header").Text(), "Enter your ad revenue and ad spend")
}

func TestPageNeverShowsStaleResult(t *testing.T) {
	view := domain.FormView{
		Spend:         "300",
		Divisor:       "1500",
		Calculation:   calculation.Evaluate("300", "1500"),
		ResultVisible: false,
	}
	page, err := NewPage(domain.Presets["sales"], view)
	require.NoError(t, err)
	assert.Empty(t, page.Result)
	assert.True(t, page.CanCalculate)

	doc := renderDoc(t, domain.Presets["sales"], view)
	assert.Equal(t, 0, doc.Find("#result").Length())
	_, disabled := doc.Find("#calculate").Attr("disabled")
	assert.False(t, disabled)
}

func TestHelperTextMarkdown(t *testing.T) {
	v := domain.Presets["revenue"]
	v.HelperText = "Aim **below** your margin. <script>alert(1)</script>"
	doc := renderDoc(t, v, domain.FormView{})
	assert.Equal(t, "below", doc.Find("footer.helper strong").Text())
	assert.Equal(t, 0, doc.Find("footer.helper script").Length())
}

func TestFocusedField(t *testing.T) {
	view := domain.FormView{Focused: domain.FieldDivisor, HasFocus: true}
	doc := renderDoc(t, domain.Presets["sales"], view)
	_, ok := doc.Find("input[name=divisor]").Attr("autofocus")
	assert.True(t, ok)
	_, ok = doc.Find("input[name=spend]").Attr("autofocus")
	assert.False(t, ok)
}

func TestHTMLFormatterStoresSanitizedValues(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport("revenue", "$1,200abc", "9,600"))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "1200", doc.Find("input[name=spend]").AttrOr("value", ""))
	assert.Equal(t, "9600", doc.Find("input[name=divisor]").AttrOr("value", ""))
	assert.Equal(t, "12.50%", doc.Find("#acos").Text())
}

func TestPageScriptHidesResultOnlyOnStoredChange(t *testing.T) {
	doc := renderDoc(t, domain.Presets["sales"], domain.FormView{})
	script := doc.Find("script").Text()

	assert.Contains(t, script, "if (clean !== input.dataset.last) {")
	hide := strings.Index(script, "result.hidden = true")
	guard := strings.Index(script, "clean !== input.dataset.last")
	require.NotEqual(t, -1, hide)
	assert.Less(t, guard, hide)
}
