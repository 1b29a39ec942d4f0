// Package config loads the calc.toml settings file shared by the
// calculator, datetime and calcscript programs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"desk-calc/internal/calculator"
	"desk-calc/internal/logger"

	"github.com/BurntSushi/toml"
)

const (
	FileName = "calc.toml"
	AppDir   = "desk-calc"

	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"

	MaxDisplayLength = 64
)

type Config struct {
	LogLevel   string           `toml:"log_level"`
	Theme      string           `toml:"theme"`
	Calculator CalculatorConfig `toml:"calculator"`
	Clock      ClockConfig      `toml:"clock"`
}

type CalculatorConfig struct {
	Title         string `toml:"title"`
	DisplayLength int    `toml:"display_length"`
}

type ClockConfig struct {
	Title      string `toml:"title"`
	DateLayout string `toml:"date_layout"`
	TimeLayout string `toml:"time_layout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Theme:    ThemeSystem,
		Calculator: CalculatorConfig{
			Title:         "Calculator",
			DisplayLength: 15,
		},
		Clock: ClockConfig{
			Title:      "Date",
			DateLayout: "Monday, January 2, 2006",
			TimeLayout: "15:04:05",
		},
	}
}

// DefaultPath returns calc.toml inside the user configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, AppDir, FileName)
}

// Load reads path on top of the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Default(), fmt.Errorf("decode %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CALC_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	} else if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	} else if os.Getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}
	if v := os.Getenv("CALC_THEME"); v != "" {
		c.Theme = v
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	if c.Calculator.DisplayLength < calculator.MinDisplayLength || c.Calculator.DisplayLength > MaxDisplayLength {
		return fmt.Errorf("display_length %d out of range %d..%d",
			c.Calculator.DisplayLength, calculator.MinDisplayLength, MaxDisplayLength)
	}
	return nil
}
