package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/mosip/injitest/pkg/config"
	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/executor"
)

// Steps slower than this are flagged in the live output.
const slowThreshold = 5 * time.Second

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "Run built-in scenarios",
	Description: `Connects one session per device and runs the selected scenarios.
Without --scenario every built-in scenario runs.

Examples:
  injitest run
  injitest run --scenario welcome-skip --scenario welcome-back
  injitest --device emulator-5554 --device emulator-5556 run --parallel`,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "scenario",
			Aliases: []string{"s"},
			Usage:   "Scenario to run (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "parallel",
			Usage: "Spread scenarios across all devices",
		},
		&cli.BoolFlag{
			Name:  "stop-on-fail",
			Usage: "Skip remaining scenarios after the first failure",
		},
		&cli.StringFlag{
			Name:  "artifacts-dir",
			Usage: "Where failed steps save a screenshot and UI source (default: <home>/logs/artifacts)",
		},
		&cli.BoolFlag{
			Name:  "no-artifacts",
			Usage: "Do not capture artifacts on failure",
		},
	},
	Action: runScenarios,
}

func runScenarios(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	scenarios, err := executor.Lookup(c.StringSlice("scenario"))
	if err != nil {
		return err
	}

	devices := cfg.Devices
	if len(devices) == 0 {
		devices = []string{""}
	}
	if !c.Bool("parallel") {
		devices = devices[:1]
	}

	out := newProgress(c.App.Writer)
	runCfg := executor.RunnerConfig{
		FindTimeout:     cfg.FindTimeout,
		StopOnFail:      c.Bool("stop-on-fail"),
		ArtifactsDir:    artifactsDir(c),
		BeforeScenario:  beforeScenario(cfg),
		OnScenarioStart: out.scenarioStart,
		OnStepComplete:  out.stepComplete,
		OnScenarioEnd:   out.scenarioEnd,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	workers, err := openWorkers(cfg, devices)
	if err != nil {
		return err
	}

	var suite *core.SuiteResult
	if len(workers) > 1 {
		suite, err = executor.NewParallelRunner(workers, runCfg).Run(ctx, scenarios)
	} else {
		w := workers[0]
		suite, err = executor.New(w.Driver, w.DeviceID, runCfg).Run(ctx, scenarios)
		w.Cleanup()
	}
	if suite != nil {
		printSummary(c.App.Writer, suite)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if suite == nil || !suite.Success() {
		failed := 0
		if suite != nil {
			failed = suite.FailedScenarios
		}
		return fmt.Errorf("%d of %d scenario(s) failed", failed, len(scenarios))
	}
	return nil
}

func artifactsDir(c *cli.Context) string {
	if c.Bool("no-artifacts") {
		return ""
	}
	if dir := c.String("artifacts-dir"); dir != "" {
		return dir
	}
	return filepath.Join(config.GetLogsDir(), "artifacts")
}

// progress prints live results. Callbacks may come from several device
// workers at once.
type progress struct {
	mu sync.Mutex
	w  io.Writer

	bold   func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	green  func(a ...interface{}) string
	red    func(a ...interface{}) string
	yellow func(a ...interface{}) string
	gray   func(a ...interface{}) string
}

func newProgress(w io.Writer) *progress {
	return &progress{
		w:      w,
		bold:   color.New(color.Bold).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		red:    color.New(color.FgRed).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		gray:   color.New(color.FgHiBlack).SprintFunc(),
	}
}

func deviceLabel(device string) string {
	if device == "" {
		return "default device"
	}
	return device
}

func (p *progress) scenarioStart(device string, idx, total int, sc executor.Scenario) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\n  %s %s %s\n", p.cyan(fmt.Sprintf("[%d/%d]", idx+1, total)), p.bold(sc.Name), p.gray("on "+deviceLabel(device)))
	fmt.Fprintln(p.w, strings.Repeat("─", 60))
}

func (p *progress) stepComplete(device string, step core.StepResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	dur := formatDuration(step.Duration)
	switch {
	case step.Status == core.StatusPassed && step.Duration >= slowThreshold:
		fmt.Fprintf(p.w, "    %s %s %s\n", p.yellow("⚠"), step.Name, p.yellow("("+dur+")"))
	case step.Status == core.StatusPassed:
		fmt.Fprintf(p.w, "    %s %s (%s)\n", p.green("✓"), step.Name, dur)
	default:
		fmt.Fprintf(p.w, "    %s %s (%s)\n", p.red("✗"), step.Name, dur)
		if step.Error != "" {
			fmt.Fprintf(p.w, "      %s %s\n", p.gray("╰─"), step.Error)
		}
		for _, a := range step.Attachments {
			fmt.Fprintf(p.w, "      %s %s\n", p.gray(a.Name+":"), a.Path)
		}
	}
}

func (p *progress) scenarioEnd(device string, result core.ScenarioResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	status := p.green(result.Status.String())
	if !result.Status.IsSuccess() {
		status = p.red(result.Status.String())
	}
	fmt.Fprintf(p.w, "  %s %s in %s\n", result.Name, status, formatDuration(result.Duration))
}

func printSummary(w io.Writer, suite *core.SuiteResult) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", bold("Summary"))
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, sc := range suite.Scenarios {
		mark := green("✓")
		if !sc.Status.IsSuccess() {
			mark = red("✗")
		}
		fmt.Fprintf(w, "  %s %-22s %-16s %d/%d steps  %s\n",
			mark, sc.Name, deviceLabel(sc.Device), sc.PassedSteps, sc.TotalSteps, formatDuration(sc.Duration))
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))

	result := green(fmt.Sprintf("%d passed", suite.PassedScenarios))
	if suite.FailedScenarios > 0 {
		result += ", " + red(fmt.Sprintf("%d failed", suite.FailedScenarios))
	}
	fmt.Fprintf(w, "  %s in %s (run %s)\n", result, formatDuration(suite.Duration), suite.RunID)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}
