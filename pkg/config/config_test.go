package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mosip/injitest/pkg/core"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
appiumUrl: http://grid.local:4444/wd/hub
driver: selenium
platform: ios
devices:
  - 00008110-001A
  - 00008110-002B
locale: hi
findTimeout: 15s
pollInterval: 500ms
capabilities:
  appium:bundleId: io.mosip.residentapp
logLevel: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppiumURL != "http://grid.local:4444/wd/hub" {
		t.Errorf("expected appiumUrl, got %s", cfg.AppiumURL)
	}
	if cfg.Driver != DriverSelenium {
		t.Errorf("expected driver selenium, got %s", cfg.Driver)
	}
	if cfg.Platform != "ios" {
		t.Errorf("expected platform ios, got %s", cfg.Platform)
	}
	if len(cfg.Devices) != 2 || cfg.Devices[1] != "00008110-002B" {
		t.Errorf("expected 2 devices, got %v", cfg.Devices)
	}
	if cfg.FindTimeout != 15*time.Second || cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("expected 15s/500ms, got %s/%s", cfg.FindTimeout, cfg.PollInterval)
	}
	if cfg.Capabilities["appium:bundleId"] != "io.mosip.residentapp" {
		t.Errorf("expected bundleId capability, got %v", cfg.Capabilities)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `devices: [invalid yaml`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad_EmptyConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(configPath, []byte(``), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppiumURL != DefaultAppiumURL || cfg.FindTimeout != DefaultFindTimeout {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFromDir_ConfigYaml(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(configPath, []byte(`platform: android`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Platform != "android" {
		t.Errorf("expected platform android, got %s", cfg.Platform)
	}
}

func TestLoadFromDir_ConfigYml(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	if err := os.WriteFile(configPath, []byte(`platform: ios`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Platform != "ios" {
		t.Errorf("expected platform ios, got %s", cfg.Platform)
	}
}

func TestLoadFromDir_NoConfig(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Driver != DriverAppium {
		t.Errorf("expected default driver, got %s", cfg.Driver)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("INJI_LOCALE=ta\nINJI_DEVICES=emulator-5554, emulator-5556\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Registered so t.Setenv restores them after godotenv sets them.
	t.Setenv("INJI_LOCALE", "")
	t.Setenv("INJI_DEVICES", "")
	os.Unsetenv("INJI_LOCALE")
	os.Unsetenv("INJI_DEVICES")

	if err := LoadEnvFile(envPath); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "ta" {
		t.Errorf("expected locale ta, got %q", cfg.Locale)
	}
	if len(cfg.Devices) != 2 || cfg.Devices[1] != "emulator-5556" {
		t.Errorf("expected trimmed device list, got %v", cfg.Devices)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("INJI_PLATFORM", "ios")
	t.Setenv("INJI_DRIVER", "mock")
	t.Setenv("INJI_FIND_TIMEOUT", "3s")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.Platform != "ios" || cfg.Driver != DriverMock || cfg.FindTimeout != 3*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestApplyEnv_BadDuration(t *testing.T) {
	t.Setenv("INJI_POLL_INTERVAL", "fast")

	err := Default().ApplyEnv()
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"mock without url", func(c *Config) { c.Driver = DriverMock; c.AppiumURL = "" }, true},
		{"bad platform", func(c *Config) { c.Platform = "windows" }, false},
		{"bad driver", func(c *Config) { c.Driver = "espresso" }, false},
		{"missing url", func(c *Config) { c.AppiumURL = "" }, false},
		{"bad locale", func(c *Config) { c.Locale = "not a tag!" }, false},
		{"negative timeout", func(c *Config) { c.FindTimeout = -time.Second }, false},
		{"duplicate device", func(c *Config) { c.Devices = []string{"a", "a"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSessionCapabilities(t *testing.T) {
	cfg := Default()
	cfg.Platform = "ios"
	cfg.Locale = "hi"
	cfg.Capabilities = map[string]interface{}{"appium:bundleId": "io.mosip.residentapp"}

	caps := cfg.SessionCapabilities("00008110-001A")

	want := map[string]interface{}{
		"platformName":          "iOS",
		"appium:automationName": "XCUITest",
		"appium:udid":           "00008110-001A",
		"appium:bundleId":       "io.mosip.residentapp",
		"appium:language":       "hi",
		"appium:locale":         "IN",
	}
	for k, v := range want {
		if caps[k] != v {
			t.Errorf("caps[%q] = %v, want %v", k, caps[k], v)
		}
	}
	if _, ok := cfg.Capabilities["appium:udid"]; ok {
		t.Error("SessionCapabilities must not mutate the configured map")
	}
}

func TestSessionCapabilities_AndroidDefaults(t *testing.T) {
	cfg := Default()
	cfg.Capabilities = map[string]interface{}{"appium:automationName": "Espresso"}

	caps := cfg.SessionCapabilities("")

	if caps["platformName"] != "Android" {
		t.Errorf("platformName = %v", caps["platformName"])
	}
	if caps["appium:automationName"] != "Espresso" {
		t.Errorf("configured automationName overridden: %v", caps["appium:automationName"])
	}
	if _, ok := caps["appium:udid"]; ok {
		t.Error("udid set without a device")
	}
	if _, ok := caps["appium:language"]; ok {
		t.Error("language set without a locale")
	}
}
