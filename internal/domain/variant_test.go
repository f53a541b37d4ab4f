package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsAreValid(t *testing.T) {
	for name, v := range Presets {
		assert.NoError(t, v.Validate(), name)
		assert.Equal(t, name, v.Name)
	}
	assert.Equal(t, []string{"classic", "revenue", "sales"}, PresetNames())
	_, ok := Presets[DefaultVariant]
	assert.True(t, ok)
}

func TestVariantWording(t *testing.T) {
	rev := Presets["revenue"]
	assert.Equal(t, "Ad Revenue ($)", rev.Label(FieldDivisor))
	assert.Equal(t, "Ad Spend ($)", rev.Label(FieldSpend))
	assert.Equal(t, "(Ad Spend ÷ Ad Revenue) × 100", rev.Formula())
	assert.Equal(t, []string{"spend", "divisor"}, rev.OrderNames())
	assert.Equal(t, []string{"divisor", "spend"}, Presets["classic"].OrderNames())
}

func TestVariantValidate(t *testing.T) {
	v := Presets["sales"]
	v.DivisorLabel = "Profit"
	assert.Error(t, v.Validate())

	v = Presets["sales"]
	v.FieldOrder = [2]Field{FieldSpend, FieldSpend}
	assert.Error(t, v.Validate())

	v = Presets["sales"]
	v.Name = ""
	assert.Error(t, v.Validate())
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("revenue")
	assert.True(t, ok)
	assert.Equal(t, FieldDivisor, f)
	f, ok = ParseField("spend")
	assert.True(t, ok)
	assert.Equal(t, FieldSpend, f)
	_, ok = ParseField("other")
	assert.False(t, ok)
}
