//go:generate mockgen -destination=coremock/driver.go -package=coremock . Driver

package core

import (
	"time"

	"github.com/mosip/injitest/pkg/locator"
)

// Driver is the capability a page object needs from an automation session.
// Implementations: Appium (W3C HTTP), Selenium (tebeka), mock.
// One Driver is one live session; callers must not share it across goroutines.
type Driver interface {
	// Platform returns the platform the session targets.
	Platform() locator.Platform

	// Resolve finds the element, waiting up to timeout for it to appear.
	// Fails with ErrElementNotFound when it never does.
	Resolve(loc locator.Locator, timeout time.Duration) (*ElementHandle, error)

	// Click taps the element. Fails with ErrElementNotInteractable when the
	// UI rejects the tap.
	Click(el *ElementHandle) error

	// Text returns the element's visible text.
	Text(el *ElementHandle) (string, error)

	// Displayed reports whether the element is currently visible.
	Displayed(el *ElementHandle) (bool, error)

	// Close ends the session.
	Close() error
}

// ElementHandle is a resolved element.
type ElementHandle struct {
	ID      string          // W3C element reference
	Locator locator.Locator // Locator it was resolved from

	// Ref holds a backend-specific element object, if the backend has one.
	Ref interface{}
}

// SessionInfo describes a connected session.
type SessionInfo struct {
	SessionID     string           `json:"sessionId"`
	Platform      locator.Platform `json:"platform"`
	DeviceID      string           `json:"deviceId,omitempty"`
	ServerVersion string           `json:"serverVersion,omitempty"`
}
