package appium

import (
	"time"

	"github.com/Masterminds/semver"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
	"github.com/mosip/injitest/pkg/logger"
	"github.com/mosip/injitest/pkg/wait"
)

// minServerVersion is the oldest Appium server the locator strategies are known to work with.
const minServerVersion = ">= 2.0.0"

// Driver implements core.Driver using Appium server.
type Driver struct {
	client       *Client
	pollInterval time.Duration
	info         core.SessionInfo
}

// Option configures a Driver.
type Option func(*Driver)

// WithPollInterval sets the delay between resolve attempts.
func WithPollInterval(d time.Duration) Option {
	return func(drv *Driver) { drv.pollInterval = d }
}

// NewDriver connects to serverURL and creates a session.
func NewDriver(serverURL string, caps Capabilities, opts ...Option) (*Driver, error) {
	client := NewClient(serverURL)
	checkServerVersion(client)

	if err := client.Connect(caps); err != nil {
		return nil, err
	}

	d := newDriver(client, opts...)
	if udid, ok := caps["appium:udid"].(string); ok {
		d.info.DeviceID = udid
	}

	// Polling is owned by wait.Until; an implicit wait would multiply every attempt.
	if err := client.SetImplicitWait(0); err != nil {
		logger.Warn("failed to disable implicit wait: %v", err)
	}

	logger.Info("appium session %s on %s", d.info.SessionID, d.info.Platform)
	return d, nil
}

func newDriver(client *Client, opts ...Option) *Driver {
	d := &Driver{
		client:       client,
		pollInterval: wait.DefaultInterval,
		info: core.SessionInfo{
			SessionID: client.SessionID(),
			Platform:  client.Platform(),
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// checkServerVersion logs a warning for servers older than minServerVersion.
// Failures are not fatal: some cloud hubs don't expose /status.
func checkServerVersion(client *Client) {
	raw, err := client.Status()
	if err != nil || raw == "" {
		logger.Debug("appium server version unavailable: %v", err)
		return
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		logger.Debug("unparseable appium server version %q: %v", raw, err)
		return
	}
	c, err := semver.NewConstraint(minServerVersion)
	if err != nil {
		return
	}
	if !c.Check(v) {
		logger.Warn("appium server %s does not satisfy %s", raw, minServerVersion)
	}
}

// Info returns the connected session's details.
func (d *Driver) Info() core.SessionInfo {
	return d.info
}

// Client exposes the underlying HTTP client for commands outside core.Driver.
func (d *Driver) Client() *Client {
	return d.client
}

// Platform implements core.Driver.
func (d *Driver) Platform() locator.Platform {
	return d.client.Platform()
}

// Resolve implements core.Driver.
func (d *Driver) Resolve(loc locator.Locator, timeout time.Duration) (*core.ElementHandle, error) {
	var id string
	err := wait.Until(timeout, d.pollInterval, func() error {
		var findErr error
		id, findErr = d.client.FindElement(string(loc.Strategy), loc.Value)
		return findErr
	})
	if err != nil {
		return nil, err
	}
	return &core.ElementHandle{ID: id, Locator: loc}, nil
}

// Click implements core.Driver.
func (d *Driver) Click(el *core.ElementHandle) error {
	return d.client.ClickElement(el.ID)
}

// Text implements core.Driver.
func (d *Driver) Text(el *core.ElementHandle) (string, error) {
	return d.client.GetElementText(el.ID)
}

// Displayed implements core.Driver.
func (d *Driver) Displayed(el *core.ElementHandle) (bool, error) {
	return d.client.IsElementDisplayed(el.ID)
}

// Screenshot implements core.ArtifactCollector.
func (d *Driver) Screenshot() ([]byte, error) {
	return d.client.Screenshot()
}

// Source implements core.ArtifactCollector.
func (d *Driver) Source() (string, error) {
	return d.client.Source()
}

// Close implements core.Driver.
func (d *Driver) Close() error {
	return d.client.Disconnect()
}
