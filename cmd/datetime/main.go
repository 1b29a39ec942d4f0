package main

import (
	"flag"

	"desk-calc/internal/app"
	"desk-calc/internal/clock"
)

func main() {
	configPath := flag.String("config", "", "Path to calc.toml (default: user config dir)")
	flag.Parse()

	dt := app.NewDateTime(app.Options{ConfigPath: *configPath}, clock.SystemClock{})
	dt.Run()
}
