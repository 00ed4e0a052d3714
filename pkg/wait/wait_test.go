package wait

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mosip/injitest/pkg/core"
)

func TestUntil_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Until(time.Second, 10*time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestUntil_RetriesNotFound(t *testing.T) {
	calls := 0
	err := Until(2*time.Second, 5*time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return core.ErrElementNotFound
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestUntil_RetriesStale(t *testing.T) {
	calls := 0
	err := Until(2*time.Second, 5*time.Millisecond, func() error {
		calls++
		if calls == 1 {
			return core.ErrStaleElement
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUntil_StopsOnPermanentError(t *testing.T) {
	calls := 0
	sessionErr := core.ErrDriverSession.WithCause(errors.New("invalid session id"))
	err := Until(time.Second, 5*time.Millisecond, func() error {
		calls++
		return sessionErr
	})
	if !errors.Is(err, core.ErrDriverSession) {
		t.Fatalf("expected ErrDriverSession, got %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on session error)", calls)
	}
}

func TestUntil_TimeoutReturnsLastError(t *testing.T) {
	notFound := core.ErrElementNotFound.WithCause(errors.New("no such element: introTitle"))
	start := time.Now()
	err := Until(50*time.Millisecond, 10*time.Millisecond, func() error {
		return notFound
	})
	if err != notFound {
		t.Fatalf("expected last error unchanged, got %v", err)
	}
	if time.Since(start) < 40*time.Millisecond {
		t.Error("returned before the timeout elapsed")
	}
}

func TestUntil_ZeroTimeoutStillTriesOnce(t *testing.T) {
	calls := 0
	err := Until(0, 0, func() error {
		calls++
		return core.ErrElementNotFound
	})
	if !errors.Is(err, core.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestUntilContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := UntilContext(ctx, 5*time.Millisecond, func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return core.ErrElementNotFound
	})
	if !errors.Is(err, core.ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
}
