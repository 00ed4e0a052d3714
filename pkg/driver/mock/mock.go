// Package mock provides an in-memory app model implementing core.Driver,
// for testing page objects without a real device.
package mock

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
	"github.com/mosip/injitest/pkg/wait"
)

// Element is one element of a scripted screen.
type Element struct {
	Locator locator.Locator
	Text    string
	// Label is the element's accessibility name. An XPath locator with a
	// @name="Label" predicate also finds the element.
	Label string
	// Hidden elements resolve but report not displayed.
	Hidden bool
	// Disabled elements resolve but reject clicks.
	Disabled bool
	// GoesTo is the screen shown after a click. Empty stays on the current screen.
	GoesTo string
}

// Config configures mock driver behavior.
type Config struct {
	// Platform to report. Defaults to android.
	Platform locator.Platform
	DeviceID string
	// Start is the screen shown when the session opens.
	Start string
	// AppearAfter makes the first N find attempts on every newly shown
	// screen fail with element not found.
	AppearAfter int
	// PollInterval between resolve attempts. Defaults to 1ms.
	PollInterval time.Duration
}

type handle struct {
	generation int
	element    *Element
}

// Driver is a mock implementation of core.Driver for testing.
type Driver struct {
	Config Config

	mu         sync.Mutex
	screens    map[string]map[locator.Locator]*Element
	current    string
	generation int
	finds      int
	handles    map[string]handle
	nextID     int
	clicks     []locator.Locator
	closed     bool
}

// New creates a new mock driver.
func New(cfg Config) *Driver {
	if cfg.Platform == "" {
		cfg.Platform = locator.Android
	}
	if cfg.DeviceID == "" {
		cfg.DeviceID = "mock-device"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Millisecond
	}
	return &Driver{
		Config:  cfg,
		screens: make(map[string]map[locator.Locator]*Element),
		current: cfg.Start,
		handles: make(map[string]handle),
	}
}

// AddScreen registers a screen and its elements, replacing any previous
// definition with the same name.
func (d *Driver) AddScreen(name string, elements ...Element) {
	d.mu.Lock()
	defer d.mu.Unlock()

	byLocator := make(map[locator.Locator]*Element, len(elements))
	for i := range elements {
		el := elements[i]
		byLocator[el.Locator] = &el
	}
	d.screens[name] = byLocator
}

// Show switches the app to screen, invalidating all handles.
func (d *Driver) Show(screen string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.show(screen)
}

func (d *Driver) show(screen string) {
	d.current = screen
	d.generation++
	d.finds = 0
}

// Current returns the screen being shown.
func (d *Driver) Current() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Clicks returns the locators of all successful clicks, in order.
func (d *Driver) Clicks() []locator.Locator {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]locator.Locator(nil), d.clicks...)
}

// Closed reports whether Close was called.
func (d *Driver) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Platform implements core.Driver.
func (d *Driver) Platform() locator.Platform {
	return d.Config.Platform
}

// Resolve implements core.Driver.
func (d *Driver) Resolve(loc locator.Locator, timeout time.Duration) (*core.ElementHandle, error) {
	var h *core.ElementHandle
	err := wait.Until(timeout, d.Config.PollInterval, func() error {
		var findErr error
		h, findErr = d.find(loc)
		return findErr
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (d *Driver) find(loc locator.Locator) (*core.ElementHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, core.ErrDriverSession.WithMessage("session closed")
	}
	d.finds++
	if d.finds <= d.Config.AppearAfter {
		return nil, core.ErrElementNotFound.WithCause(fmt.Errorf("%s not rendered yet", loc))
	}

	el, ok := d.screens[d.current][loc]
	if !ok && loc.Strategy == locator.XPathStrategy {
		el, ok = d.byLabel(loc.Value)
	}
	if !ok {
		return nil, core.ErrElementNotFound.WithCause(fmt.Errorf("%s on screen %q", loc, d.current))
	}

	d.nextID++
	id := fmt.Sprintf("mock-%d", d.nextID)
	d.handles[id] = handle{generation: d.generation, element: el}
	return &core.ElementHandle{ID: id, Locator: loc}, nil
}

// byLabel finds the first element, in locator order, whose Label an XPath
// @name predicate in query names. Callers hold d.mu.
func (d *Driver) byLabel(query string) (*Element, bool) {
	for _, el := range d.sorted() {
		if el.Label != "" && strings.Contains(query, `@name="`+el.Label+`"`) {
			return el, true
		}
	}
	return nil, false
}

// sorted returns the current screen's elements in locator order.
// Callers hold d.mu.
func (d *Driver) sorted() []*Element {
	screen := d.screens[d.current]
	elements := make([]*Element, 0, len(screen))
	for _, el := range screen {
		elements = append(elements, el)
	}
	sort.Slice(elements, func(i, j int) bool {
		return elements[i].Locator.String() < elements[j].Locator.String()
	})
	return elements
}

// lookup returns the element behind h if it belongs to the current screen.
// Callers hold d.mu.
func (d *Driver) lookup(h *core.ElementHandle) (*Element, error) {
	if d.closed {
		return nil, core.ErrDriverSession.WithMessage("session closed")
	}
	entry, ok := d.handles[h.ID]
	if !ok || entry.generation != d.generation {
		return nil, core.ErrStaleElement.WithCause(fmt.Errorf("handle %s", h.ID))
	}
	return entry.element, nil
}

// Click implements core.Driver.
func (d *Driver) Click(h *core.ElementHandle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, err := d.lookup(h)
	if err != nil {
		return err
	}
	if el.Disabled || el.Hidden {
		return core.ErrElementNotInteractable.WithCause(fmt.Errorf("%s", el.Locator))
	}
	d.clicks = append(d.clicks, el.Locator)
	if el.GoesTo != "" {
		d.show(el.GoesTo)
	}
	return nil
}

// Text implements core.Driver.
func (d *Driver) Text(h *core.ElementHandle) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, err := d.lookup(h)
	if err != nil {
		return "", err
	}
	return el.Text, nil
}

// Displayed implements core.Driver.
func (d *Driver) Displayed(h *core.ElementHandle) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, err := d.lookup(h)
	if err != nil {
		return false, err
	}
	return !el.Hidden, nil
}

// pngSignature starts every mock screenshot.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Screenshot implements core.ArtifactCollector. The data is the PNG
// signature followed by the current screen name.
func (d *Driver) Screenshot() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, core.ErrDriverSession.WithMessage("session closed")
	}
	return append(append([]byte(nil), pngSignature...), d.current...), nil
}

type sourceScreen struct {
	XMLName  xml.Name        `xml:"screen"`
	Name     string          `xml:"name,attr"`
	Elements []sourceElement `xml:"element"`
}

type sourceElement struct {
	Strategy string `xml:"strategy,attr"`
	Value    string `xml:"value,attr"`
	Text     string `xml:"text,attr,omitempty"`
	Hidden   bool   `xml:"hidden,attr,omitempty"`
	Disabled bool   `xml:"disabled,attr,omitempty"`
}

// Source implements core.ArtifactCollector. It renders the current screen
// as XML, elements in locator order.
func (d *Driver) Source() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return "", core.ErrDriverSession.WithMessage("session closed")
	}
	doc := sourceScreen{Name: d.current}
	for _, el := range d.sorted() {
		doc.Elements = append(doc.Elements, sourceElement{
			Strategy: string(el.Locator.Strategy),
			Value:    el.Locator.Value,
			Text:     el.Text,
			Hidden:   el.Hidden,
			Disabled: el.Disabled,
		})
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out), nil
}

// Close implements core.Driver.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
