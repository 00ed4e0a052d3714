package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/mosip/injitest/pkg/config"
	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/driver/appium"
	"github.com/mosip/injitest/pkg/driver/mock"
	"github.com/mosip/injitest/pkg/driver/selenium"
	"github.com/mosip/injitest/pkg/executor"
	"github.com/mosip/injitest/pkg/locator"
	"github.com/mosip/injitest/pkg/logger"
)

// loadConfig resolves configuration: defaults, config file, .env,
// INJI_* variables, then command-line flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if err := config.LoadEnvFile(".env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if c.IsSet("platform") {
		cfg.Platform = c.String("platform")
	}
	if c.IsSet("driver") {
		cfg.Driver = c.String("driver")
	}
	if c.IsSet("appium-url") {
		cfg.AppiumURL = c.String("appium-url")
	}
	if c.IsSet("device") {
		cfg.Devices = c.StringSlice("device")
	}
	if c.IsSet("locale") {
		cfg.Locale = c.String("locale")
	}
	if c.IsSet("timeout") {
		cfg.FindTimeout = c.Duration("timeout")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.Bool("verbose") {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultLogFile is the log file name under the home logs dir.
const defaultLogFile = "injitest.log"

// setupLogging starts file logging, to <home>/logs/injitest.log unless a
// log file is configured. The returned func closes it.
func setupLogging(cfg *config.Config) (func(), error) {
	path := cfg.LogFile
	if path == "" {
		dir := config.GetLogsDir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create logs dir: %w", err)
		}
		path = filepath.Join(dir, defaultLogFile)
	}
	if err := logger.Init(path); err != nil {
		return nil, err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Close()
		return nil, core.ErrInvalidConfig.WithCause(err)
	}
	return logger.Close, nil
}

// openSession connects one session for device.
func openSession(cfg *config.Config, device string) (core.Driver, error) {
	caps := cfg.SessionCapabilities(device)
	switch cfg.Driver {
	case config.DriverSelenium:
		return selenium.NewDriver(cfg.AppiumURL, caps, cfg.PollInterval)
	case config.DriverMock:
		platform, _ := locator.ParsePlatform(cfg.Platform)
		return mock.NewApp(mock.Config{Platform: platform, DeviceID: device}, nil), nil
	default:
		return appium.NewDriver(cfg.AppiumURL, appium.Capabilities(caps), appium.WithPollInterval(cfg.PollInterval))
	}
}

// openWorkers connects one session per device. On error, sessions opened so
// far are closed.
func openWorkers(cfg *config.Config, devices []string) ([]executor.DeviceWorker, error) {
	workers := make([]executor.DeviceWorker, 0, len(devices))
	for i, device := range devices {
		d, err := openSession(cfg, device)
		if err != nil {
			for _, w := range workers {
				w.Cleanup()
			}
			return nil, fmt.Errorf("device %q: %w", device, err)
		}
		workers = append(workers, executor.DeviceWorker{
			ID:       i,
			DeviceID: device,
			Driver:   d,
			Cleanup:  closer(d, device),
		})
	}
	return workers, nil
}

func closer(d core.Driver, device string) func() {
	return func() {
		if err := d.Close(); err != nil {
			logger.Warn("close session on %s: %v", device, err)
		}
	}
}

// beforeScenario returns the hook that brings the app to a scenario's start
// screen. Only the mock app can jump screens; real sessions are expected to
// start there.
func beforeScenario(cfg *config.Config) func(core.Driver, executor.Scenario) error {
	if cfg.Driver != config.DriverMock {
		return nil
	}
	return func(d core.Driver, sc executor.Scenario) error {
		app, ok := d.(*mock.Driver)
		if !ok {
			return fmt.Errorf("driver %T cannot show %s", d, sc.Start)
		}
		app.Show(sc.Start.String())
		return nil
	}
}
