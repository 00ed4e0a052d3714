// Package locator describes how on-screen elements are found on each platform.
//
// An Element is pure data: a name plus one selector per supported platform.
// Which selector is used is decided at runtime from the platform the active
// session targets. Selector values are opaque and passed to the driver as-is.
package locator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Platform identifies the mobile OS a session targets.
type Platform string

// Supported platforms.
const (
	Android Platform = "android"
	IOS     Platform = "ios"
)

// ErrUnknownPlatform is returned by ParsePlatform for unsupported values.
var ErrUnknownPlatform = errors.New("unknown platform")

// ErrNoSelector is returned when an element declares no selector for a platform.
var ErrNoSelector = errors.New("no selector for platform")

// ParsePlatform converts a user or capability value ("Android", "iOS") to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android":
		return Android, nil
	case "ios":
		return IOS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
}

// Platforms returns all supported platforms in a stable order.
func Platforms() []Platform {
	return []Platform{Android, IOS}
}

// Strategy is a W3C/Appium location strategy.
type Strategy string

// Location strategies understood by Appium.
const (
	AccessibilityIDStrategy Strategy = "accessibility id"
	XPathStrategy           Strategy = "xpath"
	ClassChainStrategy      Strategy = "-ios class chain"
)

// Locator is a single (strategy, value) pair.
type Locator struct {
	Strategy Strategy
	Value    string
}

// AccessibilityID builds an accessibility id locator.
func AccessibilityID(v string) Locator { return Locator{Strategy: AccessibilityIDStrategy, Value: v} }

// XPath builds an XPath locator.
func XPath(v string) Locator { return Locator{Strategy: XPathStrategy, Value: v} }

// ClassChain builds an iOS class chain locator.
func ClassChain(v string) Locator { return Locator{Strategy: ClassChainStrategy, Value: v} }

// IsZero reports whether the locator is unset.
func (l Locator) IsZero() bool {
	return l.Strategy == "" && l.Value == ""
}

// String returns a human-readable description, e.g. `accessibility id="skip"`.
func (l Locator) String() string {
	return fmt.Sprintf("%s=%q", l.Strategy, l.Value)
}

// MarshalYAML renders the locator as a single-key mapping {strategy: value}.
func (l Locator) MarshalYAML() (interface{}, error) {
	return map[string]string{string(l.Strategy): l.Value}, nil
}

// Selectors maps each platform to its locator.
type Selectors map[Platform]Locator

// Element is a named on-screen element with per-platform selectors.
type Element struct {
	Name      string
	Selectors Selectors
}

// For returns the locator used on p.
func (e Element) For(p Platform) (Locator, error) {
	loc, ok := e.Selectors[p]
	if !ok || loc.IsZero() {
		return Locator{}, fmt.Errorf("%w: element %q on %s", ErrNoSelector, e.Name, p)
	}
	return loc, nil
}

// Platforms lists the platforms this element declares, sorted.
func (e Element) Platforms() []Platform {
	out := make([]Platform, 0, len(e.Selectors))
	for p := range e.Selectors {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Describe returns the element name and the selector used on p.
func (e Element) Describe(p Platform) string {
	loc, err := e.For(p)
	if err != nil {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, loc)
}

// MarshalYAML renders the element as {platform: {strategy: value}}.
func (e Element) MarshalYAML() (interface{}, error) {
	out := make(map[string]Locator, len(e.Selectors))
	for p, loc := range e.Selectors {
		out[string(p)] = loc
	}
	return out, nil
}
