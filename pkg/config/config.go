// Package config handles configuration for injitest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locale"
	"github.com/mosip/injitest/pkg/locator"
)

// Supported driver backends.
const (
	DriverAppium   = "appium"
	DriverSelenium = "selenium"
	DriverMock     = "mock"
)

// Defaults.
const (
	DefaultAppiumURL    = "http://127.0.0.1:4723"
	DefaultFindTimeout  = 10 * time.Second
	DefaultPollInterval = 200 * time.Millisecond
)

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Session settings
	AppiumURL string   `yaml:"appiumUrl"` // Appium or WebDriver hub URL
	Driver    string   `yaml:"driver"`    // appium, selenium or mock
	Platform  string   `yaml:"platform"`  // android or ios
	Devices   []string `yaml:"devices"`   // UDIDs; one session per device
	Locale    string   `yaml:"locale"`    // App language, e.g. hi or fil

	// Timing
	FindTimeout  time.Duration `yaml:"findTimeout"`
	PollInterval time.Duration `yaml:"pollInterval"`

	// Extra capabilities merged into every session request
	Capabilities map[string]interface{} `yaml:"capabilities"`

	// Logging
	LogFile  string `yaml:"logFile"`
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		AppiumURL:    DefaultAppiumURL,
		Driver:       DriverAppium,
		Platform:     string(locator.Android),
		FindTimeout:  DefaultFindTimeout,
		PollInterval: DefaultPollInterval,
		LogLevel:     "info",
	}
}

// Load loads configuration from a file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return defaults
	return Default(), nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides fields from INJI_* environment variables.
func (c *Config) ApplyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("INJI_APPIUM_URL", &c.AppiumURL)
	setString("INJI_DRIVER", &c.Driver)
	setString("INJI_PLATFORM", &c.Platform)
	setString("INJI_LOCALE", &c.Locale)
	setString("INJI_LOG_FILE", &c.LogFile)
	setString("INJI_LOG_LEVEL", &c.LogLevel)

	if v := os.Getenv("INJI_DEVICES"); v != "" {
		c.Devices = splitList(v)
	}

	for key, dst := range map[string]*time.Duration{
		"INJI_FIND_TIMEOUT":  &c.FindTimeout,
		"INJI_POLL_INTERVAL": &c.PollInterval,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return core.ErrInvalidConfig.WithCause(fmt.Errorf("%s: %w", key, err))
		}
		*dst = d
	}
	return nil
}

// Validate checks that the configuration can open a session.
func (c *Config) Validate() error {
	if _, err := locator.ParsePlatform(c.Platform); err != nil {
		return core.ErrInvalidConfig.WithCause(err)
	}
	switch c.Driver {
	case DriverAppium, DriverSelenium, DriverMock:
	default:
		return core.ErrInvalidConfig.WithCause(fmt.Errorf("unknown driver %q", c.Driver))
	}
	if c.Driver != DriverMock && c.AppiumURL == "" {
		return core.ErrInvalidConfig.WithCause(errors.New("appiumUrl is required"))
	}
	if _, err := locale.Match(c.Locale); err != nil {
		return core.ErrInvalidConfig.WithCause(err)
	}
	if c.FindTimeout < 0 || c.PollInterval < 0 {
		return core.ErrInvalidConfig.WithCause(errors.New("timeouts must not be negative"))
	}
	seen := make(map[string]bool, len(c.Devices))
	for _, d := range c.Devices {
		if seen[d] {
			return core.ErrInvalidConfig.WithCause(fmt.Errorf("device %q listed twice", d))
		}
		seen[d] = true
	}
	return nil
}

// SessionCapabilities builds the session capabilities for device. An empty
// device lets the server pick one.
func (c *Config) SessionCapabilities(device string) map[string]interface{} {
	caps := make(map[string]interface{}, len(c.Capabilities)+5)
	for k, v := range c.Capabilities {
		caps[k] = v
	}

	platform, _ := locator.ParsePlatform(c.Platform)
	switch platform {
	case locator.IOS:
		caps["platformName"] = "iOS"
		setDefault(caps, "appium:automationName", "XCUITest")
	default:
		caps["platformName"] = "Android"
		setDefault(caps, "appium:automationName", "UiAutomator2")
	}

	if device != "" {
		caps["appium:udid"] = device
	}

	if c.Locale != "" {
		if lang, err := locale.Match(c.Locale); err == nil {
			base, _ := lang.Tag.Base()
			caps["appium:language"] = base.String()
			if region, _ := lang.Tag.Region(); region.String() != "ZZ" {
				caps["appium:locale"] = region.String()
			}
		}
	}
	return caps
}

func setDefault(caps map[string]interface{}, key string, value interface{}) {
	if _, ok := caps[key]; !ok {
		caps[key] = value
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
