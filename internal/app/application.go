// Package app wires configuration, logging, shutdown and the fyne
// application together for the calculator and datetime windows.
package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"desk-calc/internal/config"
	"desk-calc/internal/logger"
	"desk-calc/internal/shutdown"
	"desk-calc/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppID      = "io.github.deskcalc"
	AppVersion = "1.0.0"
)

// Options controls how an Application is built.
type Options struct {
	// ConfigPath is the calc.toml to load; empty selects config.DefaultPath.
	ConfigPath string
	// Watch reloads log level and theme when the config file changes.
	Watch bool
	// FyneApp replaces the real driver, used by tests.
	FyneApp fyne.App
	// Logger replaces the console logger, used by tests.
	Logger *logger.ZerologAdapter
}

// Application is one top-level window with its supporting services.
type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	logger   *logger.ZerologAdapter
	shutdown *shutdown.Manager
	watcher  *config.Watcher

	mu     sync.RWMutex
	config config.Config
}

func newApplication(opts Options, title func(config.Config) string) *Application {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, cfgErr := config.Load(path)
	level, _ := logger.ParseLevel(cfg.LogLevel)

	log := opts.Logger
	if log == nil {
		log = logger.NewConsoleLogger(level)
	} else {
		log.SetLevel(level)
	}

	if cfgErr != nil {
		log.Warning("Application", "using default settings", map[string]interface{}{
			"path":  path,
			"error": cfgErr.Error(),
		})
	}

	fyneApp := opts.FyneApp
	if fyneApp == nil {
		fyneApp = fyneapp.NewWithID(AppID)
	}
	views.ApplyTheme(fyneApp, cfg.Theme)

	a := &Application{
		fyneApp:  fyneApp,
		window:   fyneApp.NewWindow(title(cfg)),
		logger:   log,
		config:   cfg,
		shutdown: shutdown.NewManager(log),
	}

	if opts.Watch {
		a.startWatcher(path)
	}

	log.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"config":     path,
		"log_level":  level.String(),
		"theme":      cfg.Theme,
		"go_version": runtime.Version(),
	})

	return a
}

// startWatcher is best effort: a missing config directory only disables
// hot reload.
func (a *Application) startWatcher(path string) {
	if _, err := os.Stat(filepath.Dir(path)); errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug("Application", "config directory missing, reload disabled", map[string]interface{}{
			"path": path,
		})
		return
	}

	w, err := config.NewWatcher(path, a.logger, a.applyConfig)
	if err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"path": path,
		})
		return
	}

	a.watcher = w
	a.shutdown.Register("config watcher", w)
}

func (a *Application) applyConfig(cfg config.Config) {
	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		a.logger.SetLevel(level)
	}
	views.ApplyTheme(a.fyneApp, cfg.Theme)

	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()
}

// Config returns the settings the application started with or last
// reloaded.
func (a *Application) Config() config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Window returns the main window.
func (a *Application) Window() fyne.Window {
	return a.window
}

// Run shows the window and blocks until it is closed or the process is
// signalled, then stops every registered component.
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})

	a.window.ShowAndRun()
	a.Shutdown()
}

// Shutdown stops registered components. It is safe to call more than once.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
