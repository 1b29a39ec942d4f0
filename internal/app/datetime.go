package app

import (
	"desk-calc/internal/clock"
	"desk-calc/internal/config"
	"desk-calc/internal/views"

	"fyne.io/fyne/v2"
)

// DateTime is the window that shows when it was opened.
type DateTime struct {
	*Application
	View *views.ClockView
}

// NewDateTime builds the date window, reading c exactly once.
func NewDateTime(opts Options, c clock.Clock) *DateTime {
	a := newApplication(opts, func(cfg config.Config) string {
		return cfg.Clock.Title
	})

	cfg := a.Config()
	format := clock.Format{
		DateLayout: cfg.Clock.DateLayout,
		TimeLayout: cfg.Clock.TimeLayout,
	}
	status := format.StatusLine(c.Now())

	view := views.NewClockView(a.window, status)
	a.window.Resize(fyne.NewSize(400, 200))

	a.logger.Debug("DateTime", "status rendered", map[string]interface{}{
		"status": status,
	})

	return &DateTime{
		Application: a,
		View:        view,
	}
}
