package app

import (
	"desk-calc/internal/config"
	"desk-calc/internal/controllers"
	"desk-calc/internal/models"
	"desk-calc/internal/views"
)

// Calculator is the calculator window and its controller.
type Calculator struct {
	*Application
	Controller *controllers.CalculatorController
	View       *views.CalculatorView
}

// NewCalculator builds the calculator window.
func NewCalculator(opts Options) *Calculator {
	a := newApplication(opts, func(cfg config.Config) string {
		return cfg.Calculator.Title
	})

	view := views.NewCalculatorView(a.window)
	controller := controllers.NewCalculatorController(a.Config().Calculator.DisplayLength, models.NewSession(), a.logger)
	controller.SetView(view)
	view.SetEventHandler(controller.HandleEvent)
	view.SetKeyHandler(controller.HandleKey)

	a.window.SetFixedSize(true)
	a.shutdown.Register("calculator controller", controller)

	a.logger.Debug("Calculator", "window built", map[string]interface{}{
		"display_length": controller.MaxLength(),
	})

	return &Calculator{
		Application: a,
		Controller:  controller,
		View:        view,
	}
}
