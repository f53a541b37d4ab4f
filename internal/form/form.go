// Package form holds the calculator's interaction state: two raw inputs and
// whether a result is showing. Every method is synchronous and pure apart
// from mutating the Form itself.
package form

import (
	"github.com/rpgo/acos-calculator/internal/calculation"
	"github.com/rpgo/acos-calculator/internal/domain"
)

// State of the form
type State int

const (
	// Idle shows no result
	Idle State = iota
	// Calculated shows the result for the current inputs
	Calculated
)

func (s State) String() string {
	if s == Calculated {
		return "calculated"
	}
	return "idle"
}

// Form is the state of one calculator view. The zero value is an empty, idle form.
type Form struct {
	spend    string
	divisor  string
	state    State
	focused  domain.Field
	hasFocus bool
}

// New returns an empty, idle form
func New() *Form {
	return &Form{}
}

// State returns the current state
func (f *Form) State() State { return f.state }

// Value returns the stored text of a field
func (f *Form) Value(field domain.Field) string {
	if field == domain.FieldSpend {
		return f.spend
	}
	return f.divisor
}

// Set replaces a field's text, as an input change event does.
// The text is sanitized before it is stored. Any change to the stored value
// hides the result.
func (f *Form) Set(field domain.Field, text string) {
	clean := calculation.Sanitize(text)
	ptr := &f.divisor
	if field == domain.FieldSpend {
		ptr = &f.spend
	}
	if *ptr == clean {
		return
	}
	*ptr = clean
	f.state = Idle
}

// Paste appends clipboard text to a field
func (f *Form) Paste(field domain.Field, clip string) {
	f.Set(field, f.Value(field)+clip)
}

// Focus marks a field as focused
func (f *Form) Focus(field domain.Field) {
	f.focused = field
	f.hasFocus = true
}

// Blur clears the focus indicator
func (f *Form) Blur() {
	f.hasFocus = false
}

// Evaluate parses the current inputs
func (f *Form) Evaluate() domain.Calculation {
	return calculation.Evaluate(f.spend, f.divisor)
}

// CanCalculate reports whether the calculate control is enabled
func (f *Form) CanCalculate() bool {
	return f.Evaluate().Eligible
}

// Calculate shows the result. It is a no-op returning false when the inputs
// are not eligible.
func (f *Form) Calculate() bool {
	if !f.CanCalculate() {
		return false
	}
	f.state = Calculated
	return true
}

// Clear empties both fields and hides the result
func (f *Form) Clear() {
	f.spend = ""
	f.divisor = ""
	f.state = Idle
}

// View returns a snapshot for rendering
func (f *Form) View() domain.FormView {
	return domain.FormView{
		Spend:         f.spend,
		Divisor:       f.divisor,
		Focused:       f.focused,
		HasFocus:      f.hasFocus,
		ResultVisible: f.state == Calculated,
		Calculation:   f.Evaluate(),
	}
}
