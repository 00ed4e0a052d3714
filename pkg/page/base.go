// Package page implements page objects for the Inji wallet app.
//
// Every page object embeds nothing and inherits nothing: it holds a
// *BasePage and a static element catalog. BasePage is the only layer that
// talks to the driver. Page objects never verify that a screen finished
// loading before returning it; callers do that with IsLoaded.
package page

import (
	"errors"
	"time"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
	"github.com/mosip/injitest/pkg/logger"
)

// DefaultTimeout bounds every element resolve.
const DefaultTimeout = 10 * time.Second

// BasePage is the shared element-interaction layer used by all page objects.
type BasePage struct {
	driver  core.Driver
	timeout time.Duration
}

// Option configures a BasePage.
type Option func(*BasePage)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(b *BasePage) { b.timeout = d }
}

// NewBasePage wraps a live session.
func NewBasePage(d core.Driver, opts ...Option) *BasePage {
	b := &BasePage{driver: d, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Driver returns the session this page operates on.
func (b *BasePage) Driver() core.Driver {
	return b.driver
}

// Platform returns the platform of the session.
func (b *BasePage) Platform() locator.Platform {
	return b.driver.Platform()
}

// Timeout returns the resolve timeout.
func (b *BasePage) Timeout() time.Duration {
	return b.timeout
}

// RetrieveElement waits until el is present on screen.
func (b *BasePage) RetrieveElement(el locator.Element) (*core.ElementHandle, error) {
	loc, err := el.For(b.driver.Platform())
	if err != nil {
		return nil, core.ErrInvalidConfig.WithCause(err)
	}
	logger.Debug("resolve %s", el.Describe(b.driver.Platform()))
	return b.driver.Resolve(loc, b.timeout)
}

// IsElementDisplayed reports whether el is present and visible.
// An element that never appears is not displayed; other failures are returned.
func (b *BasePage) IsElementDisplayed(el locator.Element) (bool, error) {
	h, err := b.RetrieveElement(el)
	if err != nil {
		if errors.Is(err, core.ErrElementNotFound) {
			return false, nil
		}
		return false, err
	}
	return b.driver.Displayed(h)
}

// ClickOnElement resolves el and clicks it.
func (b *BasePage) ClickOnElement(el locator.Element) error {
	h, err := b.RetrieveElement(el)
	if err != nil {
		return err
	}
	logger.Debug("click %s", el.Name)
	return b.driver.Click(h)
}

// GetTextFromLocator resolves el and returns its visible text.
func (b *BasePage) GetTextFromLocator(el locator.Element) (string, error) {
	h, err := b.RetrieveElement(el)
	if err != nil {
		return "", err
	}
	return b.driver.Text(h)
}
