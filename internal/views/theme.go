package views

import (
	"desk-calc/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ApplyTheme switches the application theme by config name. Unknown names
// select the system default.
func ApplyTheme(app fyne.App, name string) {
	var t fyne.Theme
	switch name {
	case config.ThemeDark:
		t = theme.DarkTheme()
	case config.ThemeLight:
		t = theme.LightTheme()
	default:
		t = theme.DefaultTheme()
	}

	fyne.Do(func() {
		app.Settings().SetTheme(t)
	})
}
