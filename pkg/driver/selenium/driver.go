// Package selenium implements core.Driver on top of github.com/tebeka/selenium,
// for grids and cloud hubs that speak plain WebDriver.
package selenium

import (
	"errors"
	"time"

	"github.com/tebeka/selenium"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
	"github.com/mosip/injitest/pkg/logger"
	"github.com/mosip/injitest/pkg/wait"
)

// webElement is the part of selenium.WebElement the driver uses.
type webElement interface {
	Click() error
	Text() (string, error)
	IsDisplayed() (bool, error)
}

// Driver implements core.Driver using a tebeka/selenium session.
type Driver struct {
	find         func(by, value string) (webElement, error)
	quit         func() error
	screenshot   func() ([]byte, error)
	source       func() (string, error)
	platform     locator.Platform
	pollInterval time.Duration
}

// NewDriver opens a remote session at urlPrefix (e.g. http://127.0.0.1:4723/wd/hub).
func NewDriver(urlPrefix string, caps map[string]interface{}, pollInterval time.Duration) (*Driver, error) {
	name, _ := caps["platformName"].(string)
	platform, err := locator.ParsePlatform(name)
	if err != nil {
		return nil, core.ErrInvalidConfig.WithCause(err)
	}

	wd, err := selenium.NewRemote(selenium.Capabilities(caps), urlPrefix)
	if err != nil {
		return nil, mapError(err)
	}
	if err := wd.SetImplicitWaitTimeout(0); err != nil {
		logger.Warn("failed to disable implicit wait: %v", err)
	}
	logger.Info("selenium session %s on %s", wd.SessionID(), platform)

	d := newDriver(platform, pollInterval, func(by, value string) (webElement, error) {
		el, err := wd.FindElement(by, value)
		if err != nil {
			return nil, err
		}
		return el, nil
	}, wd.Quit)
	d.screenshot = wd.Screenshot
	d.source = wd.PageSource
	return d, nil
}

func newDriver(platform locator.Platform, pollInterval time.Duration, find func(by, value string) (webElement, error), quit func() error) *Driver {
	if pollInterval <= 0 {
		pollInterval = wait.DefaultInterval
	}
	return &Driver{
		find:         find,
		quit:         quit,
		platform:     platform,
		pollInterval: pollInterval,
	}
}

// Platform implements core.Driver.
func (d *Driver) Platform() locator.Platform {
	return d.platform
}

// Resolve implements core.Driver.
func (d *Driver) Resolve(loc locator.Locator, timeout time.Duration) (*core.ElementHandle, error) {
	var el webElement
	err := wait.Until(timeout, d.pollInterval, func() error {
		found, findErr := d.find(string(loc.Strategy), loc.Value)
		if findErr != nil {
			return mapError(findErr)
		}
		el = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &core.ElementHandle{Locator: loc, Ref: el}, nil
}

// Click implements core.Driver.
func (d *Driver) Click(h *core.ElementHandle) error {
	el, err := element(h)
	if err != nil {
		return err
	}
	return mapError(el.Click())
}

// Text implements core.Driver.
func (d *Driver) Text(h *core.ElementHandle) (string, error) {
	el, err := element(h)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	return text, mapError(err)
}

// Displayed implements core.Driver.
func (d *Driver) Displayed(h *core.ElementHandle) (bool, error) {
	el, err := element(h)
	if err != nil {
		return false, err
	}
	displayed, err := el.IsDisplayed()
	return displayed, mapError(err)
}

// Screenshot implements core.ArtifactCollector.
func (d *Driver) Screenshot() ([]byte, error) {
	if d.screenshot == nil {
		return nil, core.ErrDriverSession.WithMessage("screenshot not supported by this session")
	}
	data, err := d.screenshot()
	return data, mapError(err)
}

// Source implements core.ArtifactCollector.
func (d *Driver) Source() (string, error) {
	if d.source == nil {
		return "", core.ErrDriverSession.WithMessage("page source not supported by this session")
	}
	src, err := d.source()
	return src, mapError(err)
}

// Close implements core.Driver.
func (d *Driver) Close() error {
	return mapError(d.quit())
}

func element(h *core.ElementHandle) (webElement, error) {
	el, ok := h.Ref.(webElement)
	if !ok || el == nil {
		return nil, core.ErrStaleElement.WithMessage("handle was not resolved by the selenium driver")
	}
	return el, nil
}

// mapError converts tebeka errors to the core taxonomy by W3C code.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var se *selenium.Error
	if errors.As(err, &se) {
		return core.FromW3C(se.Err, se.Message)
	}
	return err
}
