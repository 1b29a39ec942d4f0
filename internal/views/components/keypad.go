package components

import (
	"desk-calc/internal/calculator"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Key is one keypad button and where it sits on the grid.
type Key struct {
	Event calculator.Event
	Cell  Cell
}

// DefaultKeys is the calculator keypad: operators across the top, digits
// in phone order below, C and = each two rows tall, 0 two columns wide.
func DefaultKeys() []Key {
	keys := []Key{
		{calculator.OperatorEvent(calculator.Add), Cell{Row: 0, Col: 0}},
		{calculator.OperatorEvent(calculator.Subtract), Cell{Row: 0, Col: 1}},
		{calculator.OperatorEvent(calculator.Multiply), Cell{Row: 0, Col: 2}},
		{calculator.OperatorEvent(calculator.Divide), Cell{Row: 0, Col: 3}},
	}

	for i := 1; i <= 9; i++ {
		keys = append(keys, Key{
			Event: calculator.DigitEvent(i),
			Cell:  Cell{Row: (9-i)/3 + 1, Col: (i - 1) % 3},
		})
	}

	return append(keys,
		Key{calculator.DigitEvent(0), Cell{Row: 4, Col: 0, ColSpan: 2}},
		Key{calculator.DeleteEvent(), Cell{Row: 4, Col: 2}},
		Key{calculator.ClearEvent(), Cell{Row: 1, Col: 3, RowSpan: 2}},
		Key{calculator.EqualsEvent(), Cell{Row: 3, Col: 3, RowSpan: 2}},
	)
}

// Keypad is the calculator's button grid.
type Keypad struct {
	container *fyne.Container
	buttons   map[string]*widget.Button
	keys      []Key

	pressHandler func(calculator.Event)
}

// NewKeypad builds a button for every key.
func NewKeypad(keys []Key) *Keypad {
	kp := &Keypad{
		keys:    keys,
		buttons: make(map[string]*widget.Button, len(keys)),
	}
	kp.createComponents()
	kp.buildLayout()
	return kp
}

func (kp *Keypad) createComponents() {
	for _, key := range kp.keys {
		ev := key.Event
		button := widget.NewButton(ev.Label(), func() {
			kp.press(ev)
		})

		switch ev.Kind {
		case calculator.KindEquals:
			button.Importance = widget.HighImportance
		case calculator.KindClear, calculator.KindDelete:
			button.Importance = widget.WarningImportance
		case calculator.KindOperator:
			button.Importance = widget.MediumImportance
		}

		kp.buttons[ev.Label()] = button
	}
}

func (kp *Keypad) buildLayout() {
	cells := make([]Cell, 0, len(kp.keys))
	objects := make([]fyne.CanvasObject, 0, len(kp.keys))
	for _, key := range kp.keys {
		cells = append(cells, key.Cell)
		objects = append(objects, kp.buttons[key.Event.Label()])
	}

	kp.container = container.New(NewGridSpanLayout(cells, theme.Padding()), objects...)
}

func (kp *Keypad) press(ev calculator.Event) {
	if kp.pressHandler != nil {
		kp.pressHandler(ev)
	}
}

// SetPressHandler sets the callback invoked for every button tap.
func (kp *Keypad) SetPressHandler(handler func(calculator.Event)) {
	kp.pressHandler = handler
}

// Button returns the button with the given label, or nil.
func (kp *Keypad) Button(label string) *widget.Button {
	return kp.buttons[label]
}

// GetContainer returns the keypad container
func (kp *Keypad) GetContainer() *fyne.Container {
	return kp.container
}
