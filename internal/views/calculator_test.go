package views

import (
	"testing"

	"desk-calc/internal/calculator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorViewRoutesInput(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Calculator")
	defer w.Close()

	view := NewCalculatorView(w)
	assert.Equal(t, "0", view.GetDisplay())
	assert.Equal(t, "Ready", view.GetStatus())

	var events []calculator.Event
	var keys []string
	view.SetEventHandler(func(ev calculator.Event) { events = append(events, ev) })
	view.SetKeyHandler(func(key string) { keys = append(keys, key) })

	test.Tap(view.GetKeypad().Button("7"))
	test.Tap(view.GetKeypad().Button("Del"))
	assert.Equal(t, []calculator.Event{calculator.DigitEvent(7), calculator.DeleteEvent()}, events)

	w.Canvas().OnTypedRune()('+')
	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})
	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.Key1})
	assert.Equal(t, []string{"+", "Return"}, keys)
}

func TestCalculatorViewUpdates(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Calculator")
	defer w.Close()

	view := NewCalculatorView(w)
	view.SetDisplay("11")
	view.SetStatus("Cannot divide by zero")

	assert.Equal(t, "11", view.GetDisplay())
	assert.Equal(t, "Cannot divide by zero", view.GetStatus())
	assert.Equal(t, w, view.GetWindow())
}

func TestCalculatorViewDisplayStyle(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Calculator")
	defer w.Close()

	view := NewCalculatorView(w)
	view.SetDisplay("42")

	require.Len(t, view.display.Segments, 1)
	seg, ok := view.display.Segments[0].(*widget.TextSegment)
	require.True(t, ok)
	assert.Equal(t, "42", seg.Text)
	assert.Equal(t, theme.SizeNameHeadingText, seg.Style.SizeName)
	assert.Equal(t, fyne.TextAlignTrailing, seg.Style.Alignment)
	assert.True(t, seg.Style.TextStyle.Bold)
}

func TestClockView(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Date")
	defer w.Close()

	view := NewClockView(w, "Monday, October 19, 2026 09:05:03")
	assert.Equal(t, "Monday, October 19, 2026 09:05:03", view.GetStatus())
}

func TestApplyTheme(t *testing.T) {
	a := test.NewTempApp(t)

	for _, name := range []string{"dark", "light", "system", "unknown"} {
		ApplyTheme(a, name)
		assert.NotNil(t, a.Settings().Theme(), name)
	}
}
