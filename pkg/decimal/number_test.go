package decimal

import (
	"encoding/json"
	"math"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	n, err := NewFromString("123.45")
	require.NoError(t, err)
	assert.True(t, n.IsFinite())
	assert.Equal(t, "123.45", n.StringFixed(2))

	_, err = NewFromString("not-a-number")
	assert.Error(t, err)

	d := stddec.NewFromFloat(10.125)
	assert.Equal(t, "10.125", New(d).String())
	assert.Equal(t, "42", NewFromInt(42).String())
}

func TestZeroValueIsNaN(t *testing.T) {
	var n Number
	assert.False(t, n.IsFinite())
	assert.Equal(t, "NaN", n.String())
	assert.True(t, math.IsNaN(n.Float64()))
}

func TestFromFloat(t *testing.T) {
	assert.False(t, FromFloat(math.NaN()).IsFinite())
	assert.False(t, FromFloat(math.Inf(1)).IsFinite())
	assert.False(t, FromFloat(math.Inf(-1)).IsFinite())
	assert.Equal(t, "12.50", FromFloat(12.5).StringFixed(2))
}

func TestArithmetic(t *testing.T) {
	spend := NewFromInt(300)
	sales := NewFromInt(1500)

	got := spend.Div(sales).Percent()
	require.True(t, got.IsFinite())
	assert.Equal(t, "20.00", got.StringFixed(2))

	assert.False(t, spend.Div(NewFromInt(0)).IsFinite(), "division by zero must be NaN")
	assert.False(t, spend.Div(NaN()).IsFinite())
	assert.False(t, NaN().Mul(spend).IsFinite())
	assert.True(t, NewFromInt(3).Mul(NewFromInt(4)).Equal(NewFromInt(12)))
}

func TestPredicates(t *testing.T) {
	assert.True(t, NewFromInt(1).IsPositive())
	assert.False(t, NewFromInt(0).IsPositive())
	assert.False(t, NewFromInt(-1).IsPositive())
	assert.False(t, NaN().IsPositive())
	assert.True(t, NewFromInt(0).IsZero())
	assert.False(t, NaN().IsZero())
	assert.False(t, NaN().Equal(NaN()))
}

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}{A: FromFloat(20.5), B: NaN()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 20.5, "b": null}`, string(out))
}
