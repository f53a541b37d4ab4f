package calculation

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantFinite bool
		want       string
	}{
		{"integer", "300", true, "300.00"},
		{"decimal", "1234.56", true, "1234.56"},
		{"raw with symbols", "$1,500", true, "1500.00"},
		{"trailing dot", "12.", true, "12.00"},
		{"leading dot", ".5", true, "0.50"},
		{"zero", "0", true, "0.00"},
		{"empty", "", false, ""},
		{"letters", "abc", false, ""},
		{"lone dot", ".", false, ""},
		{"two dots", "1.2.3", false, ""},
		{"dots only", "..", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.in)
			assert.Equal(t, tt.wantFinite, got.IsFinite())
			if tt.wantFinite {
				assert.Equal(t, tt.want, got.StringFixed(2))
			}
		})
	}
}

func TestParseSanitizedIsNonNegative(t *testing.T) {
	f := func(s string) bool {
		n := ParseAmount(Sanitize(s))
		if !n.IsFinite() {
			return true
		}
		return n.IsPositive() || n.IsZero()
	}
	assert.NoError(t, quick.Check(f, nil))
}

func TestParseSanitizedFiniteIffDigit(t *testing.T) {
	f := func(s string) bool {
		clean := Sanitize(s)
		hasDigit := strings.ContainsAny(clean, "0123456789")
		return ParseAmount(clean).IsFinite() == hasDigit
	}
	assert.NoError(t, quick.Check(f, nil))
}
