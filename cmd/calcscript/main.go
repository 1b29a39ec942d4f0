// Command calcscript drives the calculator evaluator from a key script,
// e.g.
//
//	calcscript '5 + 3 * 2 ='
//	echo '1/3=' | calcscript -
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"desk-calc/internal/calculator"
	"desk-calc/internal/config"
	"desk-calc/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calcscript", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to calc.toml (default: user config dir)")
	trace := fs.Bool("trace", false, "Print the display after every key")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: calcscript [-config path] [-trace] <script> | -")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(path)
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewZerolog(stderr, level)
	if cfgErr != nil {
		log.Warning("calcscript", "using default settings", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}

	script := strings.Join(fs.Args(), " ")
	if script == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			log.Error("calcscript", err, nil)
			return 1
		}
		script = string(data)
	}

	events, err := calculator.ParseScript(script)
	if err != nil {
		fmt.Fprintln(stderr, "calcscript:", err)
		return 2
	}

	eval := calculator.NewEvaluator(cfg.Calculator.DisplayLength)
	for _, ev := range events {
		if err := eval.Apply(ev); err != nil {
			if errors.Is(err, calculator.ErrDivisionByZero) {
				fmt.Fprintf(stderr, "calcscript: %v (display %s)\n", err, eval.Text())
			} else {
				fmt.Fprintln(stderr, "calcscript:", err)
			}
			return 1
		}
		log.Debug("calcscript", "event applied", map[string]interface{}{
			"event":   ev.String(),
			"display": eval.Text(),
		})
		if *trace {
			fmt.Fprintf(stdout, "%-4s %s\n", ev.Label(), eval.Text())
		}
	}

	if !*trace {
		fmt.Fprintln(stdout, eval.Text())
	}
	return 0
}
