// Package cli provides the command-line interface for injitest.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands. Unset flags fall back to
// config.yaml and INJI_* environment variables.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "Path to config.yaml (default: ./config.yaml if present)",
	},
	&cli.StringFlag{
		Name:    "platform",
		Aliases: []string{"p"},
		Usage:   "Platform to run on (android, ios)",
	},
	&cli.StringFlag{
		Name:    "driver",
		Aliases: []string{"d"},
		Usage:   "Driver to use (appium, selenium, mock)",
	},
	&cli.StringFlag{
		Name:  "appium-url",
		Usage: "Appium server or WebDriver hub URL",
	},
	&cli.StringSliceFlag{
		Name:    "device",
		Aliases: []string{"udid"},
		Usage:   "Device UDID to run on (repeatable)",
	},
	&cli.StringFlag{
		Name:  "locale",
		Usage: "App language (en, fil, hi, kn, ta)",
	},
	&cli.DurationFlag{
		Name:  "timeout",
		Usage: "Element resolve timeout",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"INJI_VERBOSE"},
	},
	&cli.StringFlag{
		Name:  "log-file",
		Usage: "Write logs to this file",
	},
	&cli.BoolFlag{
		Name:  "no-ansi",
		Usage: "Disable ANSI colors",
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "injitest",
		Usage:   "Page-object UI tests for the Inji wallet app",
		Version: Version,
		Description: `injitest drives the Inji wallet through Appium or a WebDriver hub
and runs built-in page-object scenarios against it.

Examples:
  injitest run --device emulator-5554
  injitest -p ios --locale hi run --scenario welcome-skip
  injitest --driver mock run --parallel --device a --device b
  injitest locators --platform ios`,
		Flags: GlobalFlags,
		Before: func(c *cli.Context) error {
			if c.Bool("no-ansi") {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			runCommand,
			scenariosCommand,
			locatorsCommand,
			graphCommand,
		},
	}
}

// Execute runs the CLI.
func Execute() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
