package form

import (
	"fmt"

	"github.com/rpgo/acos-calculator/internal/domain"
)

// EventKind enumerates user interactions
type EventKind int

const (
	EventInput EventKind = iota
	EventPaste
	EventFocus
	EventBlur
	EventCalculate
	EventClear
)

var eventNames = map[EventKind]string{
	EventInput:     "input",
	EventPaste:     "paste",
	EventFocus:     "focus",
	EventBlur:      "blur",
	EventCalculate: "calculate",
	EventClear:     "clear",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is one user interaction. Field and Text are used by input, paste and focus.
type Event struct {
	Kind  EventKind
	Field domain.Field
	Text  string
}

// Input is shorthand for an input change event
func Input(field domain.Field, text string) Event {
	return Event{Kind: EventInput, Field: field, Text: text}
}

// Dispatch applies one event and reports whether the state changed
func (f *Form) Dispatch(ev Event) bool {
	before := f.state
	switch ev.Kind {
	case EventInput:
		f.Set(ev.Field, ev.Text)
	case EventPaste:
		f.Paste(ev.Field, ev.Text)
	case EventFocus:
		f.Focus(ev.Field)
	case EventBlur:
		f.Blur()
	case EventCalculate:
		f.Calculate()
	case EventClear:
		f.Clear()
	}
	return f.state != before
}

// Replay applies events in order to a new form
func Replay(events ...Event) *Form {
	f := New()
	for _, ev := range events {
		f.Dispatch(ev)
	}
	return f
}
