// Package appium implements core.Driver against an Appium server via the W3C WebDriver protocol.
package appium

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
)

// W3C WebDriver element identifier key (standard constant)
const w3cElementKey = "element-6066-11e4-a52e-4f735466cecf"

// Capabilities is the alwaysMatch capability set for a new session.
type Capabilities map[string]interface{}

type newSessionRequest struct {
	Capabilities struct {
		AlwaysMatch Capabilities `json:"alwaysMatch"`
	} `json:"capabilities"`
}

// Client handles HTTP communication with Appium server.
type Client struct {
	serverURL string
	sessionID string
	client    *http.Client
	platform  locator.Platform
}

// NewClient creates a new Appium client.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		client: &http.Client{
			Timeout: 2 * time.Minute, // Session creation can install the app
		},
	}
}

// Connect creates a new session with the given capabilities.
func (c *Client) Connect(caps Capabilities) error {
	var body newSessionRequest
	body.Capabilities.AlwaysMatch = caps

	resp, err := c.post("/session", body)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	c.sessionID = resp.Get("value.sessionId").String()
	if c.sessionID == "" {
		// JSONWP servers return sessionId at the top level
		c.sessionID = resp.Get("sessionId").String()
	}
	if c.sessionID == "" {
		return core.ErrDriverSession.WithMessage("no session ID in response")
	}

	name := resp.Get("value.capabilities.platformName").String()
	if name == "" {
		if v, ok := caps["platformName"].(string); ok {
			name = v
		}
	}
	platform, err := locator.ParsePlatform(name)
	if err != nil {
		return fmt.Errorf("session %s: %w", c.sessionID, err)
	}
	c.platform = platform

	return nil
}

// Disconnect closes the session.
func (c *Client) Disconnect() error {
	if c.sessionID == "" {
		return nil
	}
	_, err := c.delete(c.sessionPath())
	c.sessionID = ""
	return err
}

// SessionID returns the current session ID.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Platform returns the session platform.
func (c *Client) Platform() locator.Platform {
	return c.platform
}

// Status returns the server build version reported by GET /status.
func (c *Client) Status() (string, error) {
	resp, err := c.get("/status")
	if err != nil {
		return "", err
	}
	return resp.Get("value.build.version").String(), nil
}

// Element Operations

// FindElement finds a single element.
func (c *Client) FindElement(strategy, value string) (string, error) {
	resp, err := c.post(c.sessionPath()+"/element", map[string]interface{}{
		"using": strategy,
		"value": value,
	})
	if err != nil {
		return "", err
	}

	id := extractElementID(resp.Get("value"))
	if id == "" {
		return "", core.ErrElementNotFound.WithCause(fmt.Errorf("%s=%q", strategy, value))
	}
	return id, nil
}

// ClickElement clicks an element using WebDriver standard endpoint.
func (c *Client) ClickElement(elementID string) error {
	_, err := c.post(c.elementPath(elementID)+"/click", map[string]interface{}{})
	return err
}

// GetElementText returns an element's text.
func (c *Client) GetElementText(elementID string) (string, error) {
	resp, err := c.get(c.elementPath(elementID) + "/text")
	if err != nil {
		return "", err
	}
	return resp.Get("value").String(), nil
}

// IsElementDisplayed checks if element is visible.
func (c *Client) IsElementDisplayed(elementID string) (bool, error) {
	resp, err := c.get(c.elementPath(elementID) + "/displayed")
	if err != nil {
		return false, err
	}
	return resp.Get("value").Bool(), nil
}

// Screen Operations

// Screenshot returns a screenshot as PNG bytes.
func (c *Client) Screenshot() ([]byte, error) {
	resp, err := c.get(c.sessionPath() + "/screenshot")
	if err != nil {
		return nil, err
	}
	encoded := resp.Get("value")
	if encoded.Type != gjson.String {
		return nil, fmt.Errorf("invalid screenshot response")
	}
	return base64.StdEncoding.DecodeString(encoded.String())
}

// Source returns the page source XML.
func (c *Client) Source() (string, error) {
	resp, err := c.get(c.sessionPath() + "/source")
	if err != nil {
		return "", err
	}
	return resp.Get("value").String(), nil
}

// Timeouts

// SetImplicitWait sets the implicit wait timeout.
func (c *Client) SetImplicitWait(timeout time.Duration) error {
	_, err := c.post(c.sessionPath()+"/timeouts", map[string]interface{}{
		"implicit": timeout.Milliseconds(),
	})
	return err
}

// HTTP Helpers

func (c *Client) sessionPath() string {
	return "/session/" + c.sessionID
}

func (c *Client) elementPath(elementID string) string {
	return c.sessionPath() + "/element/" + elementID
}

func (c *Client) get(path string) (gjson.Result, error) {
	return c.request(http.MethodGet, path, nil)
}

func (c *Client) post(path string, body interface{}) (gjson.Result, error) {
	return c.request(http.MethodPost, path, body)
}

func (c *Client) delete(path string) (gjson.Result, error) {
	return c.request(http.MethodDelete, path, nil)
}

func (c *Client) request(method, path string, body interface{}) (gjson.Result, error) {
	url := c.serverURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return gjson.Result{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return gjson.Result{}, core.ErrServerUnreachable.WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}

	if !gjson.ValidBytes(respBody) {
		return gjson.Result{}, fmt.Errorf("failed to parse response (HTTP %d): %s", resp.StatusCode, truncate(respBody, 200))
	}
	result := gjson.ParseBytes(respBody)

	// W3C error payload: {"value": {"error": "...", "message": "..."}}
	if code := result.Get("value.error"); code.Exists() && code.String() != "" {
		return result, core.FromW3C(code.String(), result.Get("value.message").String())
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return result, core.ErrDriverSession.WithCause(fmt.Errorf("HTTP %d from %s %s", resp.StatusCode, method, path))
	}

	return result, nil
}

func extractElementID(value gjson.Result) string {
	// W3C format
	if id := value.Get(w3cElementKey); id.Exists() {
		return id.String()
	}
	// Legacy format
	return value.Get("ELEMENT").String()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
