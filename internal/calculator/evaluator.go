// Package calculator implements the four-function calculator's arithmetic
// state machine. It knows nothing about widgets: events come in through
// Apply and the result is read back from the display.
package calculator

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a pending ÷ is resolved against a
// right operand of exactly zero. State is left as it was before the
// failing event.
var ErrDivisionByZero = errors.New("division by zero")

// State is a snapshot of the evaluator's fields.
type State struct {
	Display                       string
	PendingAdditiveOperator       Operator
	PendingMultiplicativeOperator Operator
	SumSoFar                      float64
	FactorSoFar                   float64
	WaitingForOperand             bool
}

// Evaluator holds a running calculation. It keeps one additive and one
// multiplicative operator pending at most, which is enough to give × and ÷
// precedence over + and -.
//
// An Evaluator is not safe for concurrent use; drive it from a single
// goroutine such as the UI event loop.
type Evaluator struct {
	display *Display

	pendingAdditiveOperator       Operator
	pendingMultiplicativeOperator Operator

	sumSoFar    float64
	factorSoFar float64

	waitingForOperand bool
}

// NewEvaluator creates an evaluator in the cleared state whose display
// holds at most maxLength characters.
func NewEvaluator(maxLength int) *Evaluator {
	e := &Evaluator{display: NewDisplay(maxLength)}
	e.clear()
	return e
}

// Text returns the displayed string.
func (e *Evaluator) Text() string {
	return e.display.Text()
}

// MaxLength returns the display width in characters.
func (e *Evaluator) MaxLength() int {
	return e.display.MaxLength()
}

// State returns a copy of the current fields.
func (e *Evaluator) State() State {
	return State{
		Display:                       e.display.Text(),
		PendingAdditiveOperator:       e.pendingAdditiveOperator,
		PendingMultiplicativeOperator: e.pendingMultiplicativeOperator,
		SumSoFar:                      e.sumSoFar,
		FactorSoFar:                   e.factorSoFar,
		WaitingForOperand:             e.waitingForOperand,
	}
}

// Apply processes one event. The only error is ErrDivisionByZero, after
// which the event has had no effect.
func (e *Evaluator) Apply(ev Event) error {
	switch ev.Kind {
	case KindDigit:
		return e.digit(ev.Digit)
	case KindOperator:
		switch {
		case ev.Operator.IsAdditive():
			return e.additiveOperator(ev.Operator)
		case ev.Operator.IsMultiplicative():
			return e.multiplicativeOperator(ev.Operator)
		}
		return fmt.Errorf("unknown operator %d", int(ev.Operator))
	case KindEquals:
		return e.equals()
	case KindClear:
		e.clear()
		return nil
	case KindDelete:
		e.delete()
		return nil
	default:
		return fmt.Errorf("unknown event kind %v", ev.Kind)
	}
}

// ApplyAll feeds events in order and stops at the first error.
func (e *Evaluator) ApplyAll(events []Event) error {
	for _, ev := range events {
		if err := e.Apply(ev); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) digit(n int) error {
	if n < 0 || n > 9 {
		return fmt.Errorf("digit %d out of range", n)
	}

	if e.display.Text() == "0" && n == 0 {
		return nil
	}

	if e.waitingForOperand {
		e.display.Clear()
		e.waitingForOperand = false
	}

	e.display.Append(fmt.Sprintf("%d", n))
	return nil
}

func (e *Evaluator) delete() {
	if e.waitingForOperand {
		return
	}

	e.display.Backspace()
	if e.display.Text() == "" {
		e.display.SetText("0")
		e.waitingForOperand = true
	}
}

func (e *Evaluator) multiplicativeOperator(op Operator) error {
	operand := e.display.Value()

	if e.pendingMultiplicativeOperator != NoOperator {
		if err := e.calculate(operand, e.pendingMultiplicativeOperator); err != nil {
			return err
		}
		e.display.SetValue(e.factorSoFar)
	} else {
		e.factorSoFar = operand
	}

	e.pendingMultiplicativeOperator = op
	e.waitingForOperand = true
	return nil
}

func (e *Evaluator) additiveOperator(op Operator) error {
	operand := e.display.Value()

	if e.pendingMultiplicativeOperator != NoOperator {
		if err := e.calculate(operand, e.pendingMultiplicativeOperator); err != nil {
			return err
		}
		e.display.SetValue(e.factorSoFar)
		operand = e.factorSoFar
		e.factorSoFar = 0
		e.pendingMultiplicativeOperator = NoOperator
	}

	if e.pendingAdditiveOperator != NoOperator {
		if err := e.calculate(operand, e.pendingAdditiveOperator); err != nil {
			return err
		}
		e.display.SetValue(e.sumSoFar)
	} else {
		e.sumSoFar = operand
	}

	e.pendingAdditiveOperator = op
	e.waitingForOperand = true
	return nil
}

func (e *Evaluator) equals() error {
	operand := e.display.Value()

	if e.pendingMultiplicativeOperator != NoOperator {
		if err := e.calculate(operand, e.pendingMultiplicativeOperator); err != nil {
			return err
		}
		operand = e.factorSoFar
		e.factorSoFar = 0
		e.pendingMultiplicativeOperator = NoOperator
	}

	if e.pendingAdditiveOperator != NoOperator {
		if err := e.calculate(operand, e.pendingAdditiveOperator); err != nil {
			return err
		}
		e.pendingAdditiveOperator = NoOperator
	} else {
		e.sumSoFar = operand
	}

	// Repeated "=" does not replay the last operation.
	e.display.SetValue(e.sumSoFar)
	e.sumSoFar = 0
	e.waitingForOperand = true
	return nil
}

func (e *Evaluator) clear() {
	e.sumSoFar = 0
	e.factorSoFar = 0
	e.pendingAdditiveOperator = NoOperator
	e.pendingMultiplicativeOperator = NoOperator
	e.display.SetText("0")
	e.waitingForOperand = true
}

func (e *Evaluator) calculate(rightOperand float64, pending Operator) error {
	switch pending {
	case Add:
		e.sumSoFar += rightOperand
	case Subtract:
		e.sumSoFar -= rightOperand
	case Multiply:
		e.factorSoFar *= rightOperand
	case Divide:
		if rightOperand == 0 {
			return ErrDivisionByZero
		}
		e.factorSoFar /= rightOperand
	}
	return nil
}
