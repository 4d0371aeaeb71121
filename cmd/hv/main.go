// Package main is the entry point for the hv hex viewer.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hexvue/hv/internal/app"
	"github.com/hexvue/hv/internal/format"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	// With the default disposition the runtime re-raises SIGPIPE for
	// writes to stdout and kills the process before the EPIPE error
	// surfaces. Ignoring it turns a closed downstream pipe into a
	// plain write error that run can map to a clean exit.
	signal.Ignore(syscall.SIGPIPE)
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cliApp := newApp()
	if err := cliApp.Run(args); err != nil {
		// A closed downstream pipe (e.g. piping into a pager that
		// exits early) is normal termination, not a failure.
		if errors.Is(err, syscall.EPIPE) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "hv",
		Usage:           "Futuristic take on hexdump, made in Go.",
		Version:         version,
		ArgsUsage:       "[FILE]",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "cols",
				Aliases: []string{"c"},
				Usage:   "Set column length",
				Value:   10,
			},
			&cli.Uint64Flag{
				Name:    "len",
				Aliases: []string{"l"},
				Usage:   "Set `len` bytes to read",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Set format of octet: Octal (o), LowerHex (x), UpperHex (X), Binary (b)",
				Value:   "x",
			},
			&cli.StringFlag{
				Name:    "color",
				Aliases: []string{"t"},
				Usage:   "Set color tint terminal output. 0 to disable, 1 to enable",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"r"},
				Usage:   "Include prefix in output (e.g. 0x/0b/0o). 0 to disable, 1 to enable",
			},
			&cli.StringFlag{
				Name:    "array",
				Aliases: []string{"a"},
				Usage:   "Set source code format output: rust (r), C (c), golang (g), python (p), kotlin (k), java (j), swift (s), fsharp (f)",
			},
			&cli.Uint64Flag{
				Name:    "func",
				Aliases: []string{"u"},
				Usage:   "Set function wave length",
			},
			&cli.IntFlag{
				Name:    "places",
				Aliases: []string{"p"},
				Usage:   "Set function wave output decimal places",
				Value:   4,
			},
		},
		Action: func(c *cli.Context) error {
			opts, err := optionsFromContext(c)
			if err != nil {
				return err
			}
			return app.Run(opts)
		},
	}
}

// optionsFromContext resolves the parsed flag surface into app.Options.
func optionsFromContext(c *cli.Context) (app.Options, error) {
	opts := app.Options{
		Path:      c.Args().First(),
		Cols:      c.Uint64("cols"),
		Len:       c.Uint64("len"),
		Format:    format.Parse(c.String("format")),
		Prefix:    true,
		ArrayLang: c.String("array"),
		WaveLen:   c.Uint64("func"),
		WaveMode:  c.IsSet("func"),
		Places:    c.Int("places"),
	}

	color, err := parseSwitch("color", c.String("color"))
	if err != nil {
		return app.Options{}, err
	}
	switch color {
	case switchOn:
		opts.Color = app.ColorOn
	case switchOff:
		opts.Color = app.ColorOff
	default:
		opts.Color = app.ColorAuto
	}

	prefix, err := parseSwitch("prefix", c.String("prefix"))
	if err != nil {
		return app.Options{}, err
	}
	if prefix == switchOff {
		opts.Prefix = false
	}

	return opts, nil
}

type switchState int

const (
	switchUnset switchState = iota
	switchOff
	switchOn
)

// parseSwitch interprets a 0/1 flag value. Empty means the flag was not
// given; anything else must parse as 0 or 1.
func parseSwitch(name, value string) (switchState, error) {
	if value == "" {
		return switchUnset, nil
	}
	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil || n > 1 {
		return switchUnset, fmt.Errorf("invalid value %q for --%s: must be 0 or 1", value, name)
	}
	if n == 1 {
		return switchOn, nil
	}
	return switchOff, nil
}
