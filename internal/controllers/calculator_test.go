package controllers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"desk-calc/internal/calculator"
	"desk-calc/internal/logger"
	"desk-calc/internal/models"
	"desk-calc/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDisplay struct {
	display string
	status  string
	writes  int
}

func (f *fakeDisplay) SetDisplay(text string) {
	f.display = text
	f.writes++
}

func (f *fakeDisplay) SetStatus(status string) {
	f.status = status
}

func newController(t *testing.T) (*CalculatorController, *fakeDisplay, *models.Session) {
	t.Helper()

	session := models.NewSession()
	cc := NewCalculatorController(calculator.DefaultMaxLength, session, logger.NewNop())
	view := &fakeDisplay{}
	cc.SetView(view)
	return cc, view, session
}

func pressKeys(cc *CalculatorController, keys ...string) {
	for _, k := range keys {
		cc.HandleKey(k)
	}
}

func TestControllerComputes(t *testing.T) {
	cc, view, session := newController(t)
	assert.Equal(t, "0", view.display)
	assert.Equal(t, "Ready", view.status)

	pressKeys(cc, "5", "+", "3", "*", "2", "Return")

	assert.Equal(t, "11", view.display)
	assert.Equal(t, "11", cc.Display())
	assert.Equal(t, "Ready", view.status)
	assert.Equal(t, 6, session.Stats().EventCount)
}

func TestControllerDivisionByZero(t *testing.T) {
	cc, view, session := newController(t)

	pressKeys(cc, "6", "/", "0")
	before := cc.State()
	writes := view.writes

	cc.HandleEvent(calculator.EqualsEvent())

	assert.Equal(t, before, cc.State())
	assert.Equal(t, writes, view.writes)
	assert.Equal(t, "0", view.display)
	assert.Equal(t, "Cannot divide by zero", view.status)
	assert.Equal(t, "division by zero", session.LastError())
	assert.Equal(t, 1, session.Stats().ErrorCount)

	pressKeys(cc, "BackSpace", "3", "=")
	assert.Equal(t, "2", view.display)
	assert.Equal(t, "Ready", view.status)
	assert.Empty(t, session.LastError())
}

func TestControllerIgnoresUnknownKeys(t *testing.T) {
	cc, view, session := newController(t)

	pressKeys(cc, "q", "Tab", "%")
	assert.Equal(t, "0", view.display)
	assert.Zero(t, session.Stats().EventCount)
}

func TestControllerClear(t *testing.T) {
	cc, view, _ := newController(t)

	pressKeys(cc, "4", "2", "+", "1", "Escape")
	assert.Equal(t, "0", view.display)
	assert.Equal(t, calculator.NewEvaluator(calculator.DefaultMaxLength).State(), cc.State())
}

func TestControllerWithFyneView(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Calculator")
	defer w.Close()

	view := views.NewCalculatorView(w)
	cc := NewCalculatorController(calculator.DefaultMaxLength, models.NewSession(), logger.NewNop())
	cc.SetView(view)
	view.SetEventHandler(cc.HandleEvent)
	view.SetKeyHandler(cc.HandleKey)

	keypad := view.GetKeypad()
	for _, label := range []string{"5", "+", "3", "×", "2", "="} {
		b := keypad.Button(label)
		require.NotNil(t, b, label)
		test.Tap(b)
	}
	assert.Equal(t, "11", view.GetDisplay())

	for _, label := range []string{"8", "÷", "0", "="} {
		test.Tap(keypad.Button(label))
	}
	assert.Equal(t, "0", view.GetDisplay())
	assert.Equal(t, "Cannot divide by zero", view.GetStatus())

	test.Tap(keypad.Button("C"))
	assert.Equal(t, "0", view.GetDisplay())
	assert.Equal(t, "Ready", view.GetStatus())
}

func TestControllerShutdownLogsSummary(t *testing.T) {
	var buf bytes.Buffer
	session := models.NewSession()
	cc := NewCalculatorController(calculator.DefaultMaxLength, session, logger.NewZerolog(&buf, zerolog.DebugLevel))
	cc.SetView(&fakeDisplay{})

	pressKeys(cc, "1", "+")
	cc.Shutdown()

	var summary map[string]interface{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if entry["message"] == "session finished" {
			summary = entry
		}
	}
	require.NotNil(t, summary, "no session summary in %q", buf.String())

	assert.Equal(t, "CalculatorController", summary["component"])
	assert.Equal(t, "info", summary["level"])
	assert.Equal(t, float64(2), summary["events"])
	assert.Equal(t, float64(0), summary["errors"])
	assert.Equal(t, "1", summary["display"])
}
