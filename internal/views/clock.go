package views

import (
	"desk-calc/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// ClockView is an otherwise empty window whose status bar carries the date
// and time it was opened.
type ClockView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	statusBar     *components.StatusBar
}

// NewClockView builds the view and writes status into the status bar.
func NewClockView(window fyne.Window, status string) *ClockView {
	view := &ClockView{
		window:    window,
		statusBar: components.NewStatusBar(),
	}

	view.mainContainer = container.NewBorder(
		nil,
		view.statusBar.GetContainer(),
		nil,
		nil,
		layout.NewSpacer(),
	)
	window.SetContent(view.mainContainer)
	view.statusBar.SetStatus(status)

	return view
}

// GetStatus returns the status bar message
func (cv *ClockView) GetStatus() string {
	return cv.statusBar.GetStatus()
}

// Show displays the view
func (cv *ClockView) Show() {
	fyne.Do(func() {
		cv.window.Show()
	})
}
