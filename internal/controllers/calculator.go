package controllers

import (
	"errors"

	"desk-calc/internal/calculator"
	"desk-calc/internal/logger"
	"desk-calc/internal/models"
)

const (
	statusReady          = "Ready"
	statusDivisionByZero = "Cannot divide by zero"
)

// CalculatorDisplay is the part of the view the controller writes to.
type CalculatorDisplay interface {
	SetDisplay(text string)
	SetStatus(status string)
}

// CalculatorController turns view input into evaluator events and pushes
// the result back to the view.
type CalculatorController struct {
	evaluator *calculator.Evaluator
	session   *models.Session
	view      CalculatorDisplay
	log       logger.Logger
}

// NewCalculatorController creates a controller with a cleared evaluator
// whose display holds displayLength characters.
func NewCalculatorController(displayLength int, session *models.Session, log logger.Logger) *CalculatorController {
	return &CalculatorController{
		evaluator: calculator.NewEvaluator(displayLength),
		session:   session,
		log:       log,
	}
}

// SetView associates the view and renders the current display into it.
func (cc *CalculatorController) SetView(view CalculatorDisplay) {
	cc.view = view
	if view != nil {
		view.SetDisplay(cc.evaluator.Text())
		view.SetStatus(statusReady)
	}
}

// HandleEvent applies one event. Division by zero leaves the display as it
// was and reports the problem in the status bar.
func (cc *CalculatorController) HandleEvent(ev calculator.Event) {
	err := cc.evaluator.Apply(ev)
	if err != nil {
		cc.session.RecordError(err)

		fields := map[string]interface{}{
			"event":   ev.String(),
			"display": cc.evaluator.Text(),
		}
		if errors.Is(err, calculator.ErrDivisionByZero) {
			cc.log.Warning("CalculatorController", "division by zero", fields)
			cc.setStatus(statusDivisionByZero)
			return
		}

		cc.log.Error("CalculatorController", err, fields)
		cc.setStatus(err.Error())
		return
	}

	text := cc.evaluator.Text()
	cc.session.RecordEvent(text)

	state := cc.evaluator.State()
	cc.log.Debug("CalculatorController", "event applied", map[string]interface{}{
		"event":       ev.String(),
		"display":     text,
		"pending_add": state.PendingAdditiveOperator.String(),
		"pending_mul": state.PendingMultiplicativeOperator.String(),
		"waiting":     state.WaitingForOperand,
	})

	if cc.view != nil {
		cc.view.SetDisplay(text)
	}
	cc.setStatus(statusReady)
}

// HandleKey maps keyboard input to an event. Unknown keys are ignored.
func (cc *CalculatorController) HandleKey(key string) {
	ev, ok := calculator.ParseKey(key)
	if !ok {
		cc.log.Debug("CalculatorController", "ignored key", map[string]interface{}{
			"key": key,
		})
		return
	}
	cc.HandleEvent(ev)
}

// Display returns the evaluator's current display text.
func (cc *CalculatorController) Display() string {
	return cc.evaluator.Text()
}

// MaxLength returns the effective display width.
func (cc *CalculatorController) MaxLength() int {
	return cc.evaluator.MaxLength()
}

// State returns the evaluator snapshot.
func (cc *CalculatorController) State() calculator.State {
	return cc.evaluator.State()
}

// Shutdown logs the session summary.
func (cc *CalculatorController) Shutdown() {
	stats := cc.session.Stats()
	cc.log.Info("CalculatorController", "session finished", map[string]interface{}{
		"events":  stats.EventCount,
		"errors":  stats.ErrorCount,
		"display": stats.Display,
		"uptime":  stats.Uptime.String(),
	})
}

func (cc *CalculatorController) setStatus(status string) {
	if cc.view != nil {
		cc.view.SetStatus(status)
	}
}
