package components

import (
	"testing"

	"desk-calc/internal/calculator"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeysCoverEveryEvent(t *testing.T) {
	keys := DefaultKeys()
	require.Len(t, keys, 17)

	seen := map[string]Cell{}
	for _, k := range keys {
		_, dup := seen[k.Event.Label()]
		assert.False(t, dup, k.Event.Label())
		seen[k.Event.Label()] = k.Cell
	}

	assert.Equal(t, Cell{Row: 1, Col: 0}, seen["7"])
	assert.Equal(t, Cell{Row: 2, Col: 1}, seen["5"])
	assert.Equal(t, Cell{Row: 3, Col: 2}, seen["3"])
	assert.Equal(t, Cell{Row: 4, Col: 0, ColSpan: 2}, seen["0"])

	gl := NewGridSpanLayout(func() []Cell {
		cells := make([]Cell, len(keys))
		for i, k := range keys {
			cells[i] = k.Cell
		}
		return cells
	}(), 0)
	assert.Equal(t, 5, gl.Rows())
	assert.Equal(t, 4, gl.Cols())
}

func TestKeypadTap(t *testing.T) {
	test.NewTempApp(t)

	kp := NewKeypad(DefaultKeys())
	var pressed []calculator.Event
	kp.SetPressHandler(func(ev calculator.Event) {
		pressed = append(pressed, ev)
	})

	test.Tap(kp.Button("4"))
	test.Tap(kp.Button("×"))
	test.Tap(kp.Button("="))

	assert.Equal(t, []calculator.Event{
		calculator.DigitEvent(4),
		calculator.OperatorEvent(calculator.Multiply),
		calculator.EqualsEvent(),
	}, pressed)
	assert.Nil(t, kp.Button("%"))
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())

	sb.SetStatus("Cannot divide by zero")
	assert.Equal(t, "Cannot divide by zero", sb.GetStatus())

	sb.Reset()
	assert.Equal(t, "Ready", sb.GetStatus())
}
