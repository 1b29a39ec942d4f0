package main

import (
	"flag"

	"desk-calc/internal/app"
)

func main() {
	configPath := flag.String("config", "", "Path to calc.toml (default: user config dir)")
	watch := flag.Bool("watch", true, "Reload log level and theme when the config file changes")
	flag.Parse()

	calc := app.NewCalculator(app.Options{
		ConfigPath: *configPath,
		Watch:      *watch,
	})
	calc.Run()
}
