package appium

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
)

// fakeAppium serves a session where the element with accessibility id
// "introTitle" appears after findsBeforeAppear failed lookups.
func fakeAppium(t *testing.T, findsBeforeAppear int32) (*httptest.Server, *int32) {
	t.Helper()
	var finds int32
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"value": map[string]interface{}{"build": map[string]interface{}{"version": "1.22.3"}},
		})
	})
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"value": map[string]interface{}{
				"sessionId":    "s1",
				"capabilities": map[string]interface{}{"platformName": "Android"},
			},
		})
	})
	mux.HandleFunc("/session/s1/timeouts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"value": nil})
	})
	mux.HandleFunc("/session/s1/element", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&finds, 1)
		if n <= findsBeforeAppear {
			writeW3CError(w, http.StatusNotFound, "no such element", "not yet")
			return
		}
		writeJSON(w, map[string]interface{}{
			"value": map[string]interface{}{w3cElementKey: "e1"},
		})
	})
	mux.HandleFunc("/session/s1/element/e1/text", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"value": "Welcome!"})
	})
	mux.HandleFunc("/session/s1/element/e1/displayed", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"value": true})
	})
	mux.HandleFunc("/session/s1/element/e1/click", func(w http.ResponseWriter, r *http.Request) {
		writeW3CError(w, http.StatusBadRequest, "element not interactable", "disabled")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &finds
}

func TestNewDriver(t *testing.T) {
	server, _ := fakeAppium(t, 0)

	d, err := NewDriver(server.URL, Capabilities{"platformName": "Android", "appium:udid": "emulator-5554"})
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	if d.Platform() != locator.Android {
		t.Errorf("Platform() = %s, want android", d.Platform())
	}
	info := d.Info()
	if info.SessionID != "s1" || info.DeviceID != "emulator-5554" {
		t.Errorf("Info() = %+v", info)
	}
}

func TestDriver_ResolveRetriesUntilFound(t *testing.T) {
	server, finds := fakeAppium(t, 2)

	d, err := NewDriver(server.URL, Capabilities{"platformName": "Android"}, WithPollInterval(5*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	el, err := d.Resolve(locator.AccessibilityID("introTitle"), 2*time.Second)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if el.ID != "e1" {
		t.Errorf("ID = %q, want e1", el.ID)
	}
	if got := atomic.LoadInt32(finds); got != 3 {
		t.Errorf("find calls = %d, want 3", got)
	}
}

func TestDriver_ResolveTimeout(t *testing.T) {
	server, _ := fakeAppium(t, 1<<30)

	d, err := NewDriver(server.URL, Capabilities{"platformName": "Android"}, WithPollInterval(5*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	_, err = d.Resolve(locator.AccessibilityID("introTitle"), 60*time.Millisecond)
	if !errors.Is(err, core.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "not yet") {
		t.Errorf("driver message lost: %v", err)
	}
	// The driver's error comes back as is, without a local wrap.
	if want := core.FromW3C("no such element", "not yet").Error(); err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestDriver_TextDisplayedClick(t *testing.T) {
	server, _ := fakeAppium(t, 0)

	d, err := NewDriver(server.URL, Capabilities{"platformName": "Android"})
	if err != nil {
		t.Fatal(err)
	}
	el := &core.ElementHandle{ID: "e1"}

	text, err := d.Text(el)
	if err != nil || text != "Welcome!" {
		t.Errorf("Text = %q, %v", text, err)
	}
	displayed, err := d.Displayed(el)
	if err != nil || !displayed {
		t.Errorf("Displayed = %v, %v", displayed, err)
	}
	if err := d.Click(el); !errors.Is(err, core.ErrElementNotInteractable) {
		t.Errorf("Click error = %v, want ErrElementNotInteractable", err)
	}
}
