package views

import (
	"desk-calc/internal/calculator"
	"desk-calc/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CalculatorView is the calculator window: display on top, keypad in the
// middle and a status bar at the bottom.
type CalculatorView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	display       *widget.RichText
	displayText   *widget.TextSegment
	keypad        *components.Keypad
	statusBar     *components.StatusBar

	eventHandler func(calculator.Event)
	keyHandler   func(string)
}

// NewCalculatorView builds the calculator content into window.
func NewCalculatorView(window fyne.Window) *CalculatorView {
	view := &CalculatorView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (cv *CalculatorView) initializeComponents() {
	cv.displayText = &widget.TextSegment{
		Text: "0",
		Style: widget.RichTextStyle{
			Alignment: fyne.TextAlignTrailing,
			SizeName:  theme.SizeNameHeadingText,
			TextStyle: fyne.TextStyle{Bold: true, Monospace: true},
		},
	}
	cv.display = widget.NewRichText(cv.displayText)
	cv.keypad = components.NewKeypad(components.DefaultKeys())
	cv.statusBar = components.NewStatusBar()
}

func (cv *CalculatorView) buildLayout() {
	cv.mainContainer = container.NewBorder(
		container.NewPadded(cv.display), // top
		cv.statusBar.GetContainer(),     // bottom
		nil,
		nil,
		cv.keypad.GetContainer(),
	)

	cv.window.SetContent(cv.mainContainer)
}

func (cv *CalculatorView) setupEventHandlers() {
	cv.keypad.SetPressHandler(func(ev calculator.Event) {
		if cv.eventHandler != nil {
			cv.eventHandler(ev)
		}
	})

	cv.window.Canvas().SetOnTypedRune(func(r rune) {
		if cv.keyHandler != nil {
			cv.keyHandler(string(r))
		}
	})

	// Printable keys also arrive as runes; only named keys are taken here.
	cv.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if cv.keyHandler == nil || len(ev.Name) <= 1 {
			return
		}
		cv.keyHandler(string(ev.Name))
	})
}

// SetEventHandler sets the handler for keypad presses
func (cv *CalculatorView) SetEventHandler(handler func(calculator.Event)) {
	cv.eventHandler = handler
}

// SetKeyHandler sets the handler for keyboard input
func (cv *CalculatorView) SetKeyHandler(handler func(string)) {
	cv.keyHandler = handler
}

// SetDisplay shows text in the display field.
func (cv *CalculatorView) SetDisplay(text string) {
	fyne.Do(func() {
		cv.displayText.Text = text
		cv.display.Refresh()
	})
}

// GetDisplay returns the displayed text.
func (cv *CalculatorView) GetDisplay() string {
	return cv.displayText.Text
}

// SetStatus updates the status bar message
func (cv *CalculatorView) SetStatus(status string) {
	cv.statusBar.SetStatus(status)
}

// GetStatus returns the status bar message
func (cv *CalculatorView) GetStatus() string {
	return cv.statusBar.GetStatus()
}

// GetKeypad returns the keypad component
func (cv *CalculatorView) GetKeypad() *components.Keypad {
	return cv.keypad
}

// GetWindow returns the calculator window
func (cv *CalculatorView) GetWindow() fyne.Window {
	return cv.window
}

// Show displays the view
func (cv *CalculatorView) Show() {
	fyne.Do(func() {
		cv.window.Show()
	})
}
