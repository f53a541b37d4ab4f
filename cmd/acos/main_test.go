package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/acos-calculator/internal/calculation"
	"github.com/rpgo/acos-calculator/internal/config"
)

func run(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	loader := &config.Loader{Getenv: func(k string) string { return env[k] }}
	cmd := newRootCmd(loader)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcConsole(t *testing.T) {
	out, err := run(t, nil, "calc", "--spend", "300", "--sales", "1500")
	require.NoError(t, err)
	assert.Contains(t, out, "20.00%")
	assert.Contains(t, out, "Ad Sales ($)")
}

func TestCalcRevenueSelectsVariant(t *testing.T) {
	out, err := run(t, nil, "calc", "--spend", "$1,200", "--revenue", "9600", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"acos_formatted": "12.50%"`)
	assert.Contains(t, out, `"variant": "revenue"`)
}

func TestCalcIneligible(t *testing.T) {
	out, err := run(t, nil, "calc", "--spend", "150", "--divisor", "0")
	assert.True(t, errors.Is(err, calculation.ErrNotEligible))
	assert.Contains(t, out, "ACoS:            —")
}

func TestCalcFlagValidation(t *testing.T) {
	_, err := run(t, nil, "calc", "--spend", "1", "--sales", "2", "--revenue", "3")
	assert.Error(t, err)

	_, err = run(t, nil, "calc", "--spend", "1")
	assert.Error(t, err)

	_, err = run(t, nil, "calc", "--spend", "1", "--divisor", "2", "--format", "pdf")
	assert.Error(t, err)

	_, err = run(t, nil, "calc", "--spend", "1", "--divisor", "2", "--variant", "nope")
	assert.Error(t, err)
}

func TestVariantsList(t *testing.T) {
	out, err := run(t, map[string]string{"ACOS_VARIANT": "sales"}, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "sales *")
	assert.Contains(t, out, "divisor,spend")
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "--version")
	require.NoError(t, err)
	assert.Equal(t, "acos v"+version+"\n", out)
}
