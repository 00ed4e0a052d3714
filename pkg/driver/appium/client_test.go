package appium

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
)

// writeJSON encodes data as JSON to the response writer.
func writeJSON(w http.ResponseWriter, data interface{}) {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeW3CError writes a W3C error payload with the given HTTP status.
func writeW3CError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeJSON(w, map[string]interface{}{
		"value": map[string]interface{}{
			"error":   code,
			"message": message,
		},
	})
}

func TestClient_Connect(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session" && r.Method == "POST" {
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &gotBody)
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{
					"sessionId": "test-session-123",
					"capabilities": map[string]interface{}{
						"platformName":    "iOS",
						"platformVersion": "17.2",
					},
				},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	err := client.Connect(Capabilities{
		"platformName":         "iOS",
		"appium:automationName": "XCUITest",
	})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if client.SessionID() != "test-session-123" {
		t.Errorf("Expected sessionID 'test-session-123', got '%s'", client.SessionID())
	}
	if client.Platform() != locator.IOS {
		t.Errorf("Expected platform 'ios', got '%s'", client.Platform())
	}

	always := gjson.Get(mustJSON(t, gotBody), "capabilities.alwaysMatch.appium:automationName")
	if always.String() != "XCUITest" {
		t.Errorf("alwaysMatch not sent: %v", gotBody)
	}
}

func TestClient_ConnectFallsBackToRequestedPlatform(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"value": map[string]interface{}{"sessionId": "s1"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Connect(Capabilities{"platformName": "Android"}); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if client.Platform() != locator.Android {
		t.Errorf("Expected platform 'android', got '%s'", client.Platform())
	}
}

func TestClient_ConnectSessionNotCreated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeW3CError(w, http.StatusInternalServerError, "session not created", "Could not find a connected Android device")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Connect(Capabilities{"platformName": "Android"})
	if !errors.Is(err, core.ErrDriverSession) {
		t.Fatalf("expected ErrDriverSession, got %v", err)
	}
}

func TestClient_ConnectNoSessionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"value": map[string]interface{}{}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Connect(Capabilities{"platformName": "Android"}); err == nil {
		t.Fatal("expected error when no session ID is returned")
	}
}

func TestClient_Disconnect(t *testing.T) {
	deleteCalled := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/test-session" && r.Method == "DELETE" {
			deleteCalled = true
			writeJSON(w, map[string]interface{}{"value": nil})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	if err := client.Disconnect(); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	if !deleteCalled {
		t.Error("DELETE /session was not called")
	}
	if client.sessionID != "" {
		t.Error("sessionID should be cleared after disconnect")
	}

	// Second disconnect is a no-op
	if err := client.Disconnect(); err != nil {
		t.Errorf("second Disconnect failed: %v", err)
	}
}

func TestClient_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/status" {
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{
					"ready": true,
					"build": map[string]interface{}{"version": "2.5.1"},
				},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	v, err := NewClient(server.URL).Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if v != "2.5.1" {
		t.Errorf("Status() = %q, want 2.5.1", v)
	}
}

func TestClient_FindElement(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/test-session/element" && r.Method == "POST" {
			_ = json.NewDecoder(r.Body).Decode(&got)
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{
					"element-6066-11e4-a52e-4f735466cecf": "elem-123",
				},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	elemID, err := client.FindElement("accessibility id", "introTitle")
	if err != nil {
		t.Fatalf("FindElement failed: %v", err)
	}
	if elemID != "elem-123" {
		t.Errorf("Expected element ID 'elem-123', got '%s'", elemID)
	}
	if got["using"] != "accessibility id" || got["value"] != "introTitle" {
		t.Errorf("unexpected request body: %v", got)
	}
}

func TestClient_FindElementLegacyID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"value": map[string]interface{}{"ELEMENT": "legacy-1"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "s"

	id, err := client.FindElement("id", "x")
	if err != nil || id != "legacy-1" {
		t.Errorf("FindElement = %q, %v", id, err)
	}
}

func TestClient_FindElementNoSuchElement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeW3CError(w, http.StatusNotFound, "no such element", "An element could not be located on the page using the given search parameters.")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	_, err := client.FindElement("accessibility id", "missing")
	if !errors.Is(err, core.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
}

func TestClient_ClickElement(t *testing.T) {
	clicked := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/test-session/element/elem-1/click" && r.Method == "POST" {
			clicked = true
			writeJSON(w, map[string]interface{}{"value": nil})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	if err := client.ClickElement("elem-1"); err != nil {
		t.Fatalf("ClickElement failed: %v", err)
	}
	if !clicked {
		t.Error("click endpoint was not called")
	}
}

func TestClient_ClickElementNotInteractable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeW3CError(w, http.StatusBadRequest, "element click intercepted", "Other element would receive the click")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	err := client.ClickElement("elem-1")
	if !errors.Is(err, core.ErrElementNotInteractable) {
		t.Fatalf("expected ErrElementNotInteractable, got %v", err)
	}
}

func TestClient_GetElementText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/test-session/element/elem-1/text" {
			writeJSON(w, map[string]interface{}{"value": "Welcome!"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	text, err := client.GetElementText("elem-1")
	if err != nil {
		t.Fatalf("GetElementText failed: %v", err)
	}
	if text != "Welcome!" {
		t.Errorf("Expected 'Welcome!', got '%s'", text)
	}
}

func TestClient_IsElementDisplayed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/s/element/e/displayed" {
			writeJSON(w, map[string]interface{}{"value": true})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "s"

	displayed, err := client.IsElementDisplayed("e")
	if err != nil || !displayed {
		t.Errorf("IsElementDisplayed = %v, %v", displayed, err)
	}
}

func TestClient_StaleElement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeW3CError(w, http.StatusNotFound, "stale element reference", "The element 'e' does not exist in DOM anymore")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "s"

	_, err := client.IsElementDisplayed("e")
	if !errors.Is(err, core.ErrStaleElement) {
		t.Fatalf("expected ErrStaleElement, got %v", err)
	}
}

func TestClient_Screenshot(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/test-session/screenshot" {
			writeJSON(w, map[string]interface{}{
				"value": base64.StdEncoding.EncodeToString(png),
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	data, err := client.Screenshot()
	if err != nil {
		t.Fatalf("Screenshot failed: %v", err)
	}
	if len(data) != len(png) {
		t.Errorf("Expected %d bytes, got %d", len(png), len(data))
	}
}

func TestClient_Source(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/test-session/source" {
			writeJSON(w, map[string]interface{}{"value": "<hierarchy/>"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	source, err := client.Source()
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	if source != "<hierarchy/>" {
		t.Errorf("unexpected source: %s", source)
	}
}

func TestClient_SetImplicitWait(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/session/test-session/timeouts" {
			_ = json.NewDecoder(r.Body).Decode(&got)
			writeJSON(w, map[string]interface{}{"value": nil})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "test-session"

	if err := client.SetImplicitWait(1500 * time.Millisecond); err != nil {
		t.Fatalf("SetImplicitWait failed: %v", err)
	}
	if got["implicit"] != 1500.0 {
		t.Errorf("implicit = %v, want 1500", got["implicit"])
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.sessionID = "s"

	if _, err := client.Source(); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

func TestClient_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).Status()
	if !errors.Is(err, core.ErrServerUnreachable) {
		t.Fatalf("expected ErrServerUnreachable, got %v", err)
	}
}

func TestExtractElementID(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`{"element-6066-11e4-a52e-4f735466cecf":"w3c"}`, "w3c"},
		{`{"ELEMENT":"legacy"}`, "legacy"},
		{`{}`, ""},
	}
	for _, tt := range tests {
		if got := extractElementID(gjson.Parse(tt.json)); got != tt.want {
			t.Errorf("extractElementID(%s) = %q, want %q", tt.json, got, tt.want)
		}
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
