package calculator

import (
	"fmt"
	"strings"
	"unicode"
)

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	KindDigit EventKind = iota
	KindOperator
	KindEquals
	KindClear
	KindDelete
)

func (k EventKind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindEquals:
		return "equals"
	case KindClear:
		return "clear"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single keypad interaction. Digit is only meaningful for
// KindDigit and Operator only for KindOperator.
type Event struct {
	Kind     EventKind
	Digit    int
	Operator Operator
}

// DigitEvent returns the event for pressing digit n (0-9).
func DigitEvent(n int) Event {
	return Event{Kind: KindDigit, Digit: n}
}

// OperatorEvent returns the event for pressing op.
func OperatorEvent(op Operator) Event {
	return Event{Kind: KindOperator, Operator: op}
}

// EqualsEvent returns the event for pressing "=".
func EqualsEvent() Event { return Event{Kind: KindEquals} }

// ClearEvent returns the event for pressing "C".
func ClearEvent() Event { return Event{Kind: KindClear} }

// DeleteEvent returns the event for pressing "Del".
func DeleteEvent() Event { return Event{Kind: KindDelete} }

// Label returns the keypad text for the event.
func (e Event) Label() string {
	switch e.Kind {
	case KindDigit:
		return fmt.Sprintf("%d", e.Digit)
	case KindOperator:
		return e.Operator.Symbol()
	case KindEquals:
		return "="
	case KindClear:
		return "C"
	case KindDelete:
		return "Del"
	default:
		return "?"
	}
}

func (e Event) String() string {
	return e.Kind.String() + "(" + e.Label() + ")"
}

// ParseKey maps a key name or typed character to an event. Both keypad
// labels and common keyboard spellings are accepted.
func ParseKey(key string) (Event, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return DigitEvent(int(key[0] - '0')), true
	}

	switch strings.ToLower(key) {
	case "+":
		return OperatorEvent(Add), true
	case "-":
		return OperatorEvent(Subtract), true
	case "*", "x", "×":
		return OperatorEvent(Multiply), true
	case "/", "÷":
		return OperatorEvent(Divide), true
	case "=", "enter", "return", "kp_enter":
		return EqualsEvent(), true
	case "c", "escape", "clear":
		return ClearEvent(), true
	case "del", "delete", "backspace":
		return DeleteEvent(), true
	}

	return Event{}, false
}

// ParseError reports a token in a key script that ParseKey does not know.
type ParseError struct {
	Token    string
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown key %q at position %d", e.Token, e.Position)
}

// ParseScript splits a key script into events. Words separated by white
// space are tried as whole key names first ("Del", "Enter"); otherwise each
// character is its own key, so "5+3*2=" and "5 + 3 * 2 =" are equivalent.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	pos := 0

	for _, field := range strings.FieldsFunc(script, unicode.IsSpace) {
		offset := strings.Index(script[pos:], field) + pos
		pos = offset + len(field)

		if ev, ok := ParseKey(field); ok {
			events = append(events, ev)
			continue
		}

		for i, r := range field {
			ev, ok := ParseKey(string(r))
			if !ok {
				return nil, &ParseError{Token: string(r), Position: offset + i}
			}
			events = append(events, ev)
		}
	}

	return events, nil
}
