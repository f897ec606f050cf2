package cli

import (
	"io"
	"strings"
	"testing"
)

// withTerminal stubs TTY detection for the duration of a test.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	previous := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = previous })
}

func TestResolveUIModeAuto(t *testing.T) {
	withTerminal(t, true)
	decision, err := resolveUIMode("auto", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !decision.useLive {
		t.Fatalf("expected live UI on a TTY")
	}

	withTerminal(t, false)
	decision, err = resolveUIMode("auto", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected plain output without a TTY")
	}
}

func TestResolveUIModeLiveFallsBack(t *testing.T) {
	withTerminal(t, false)
	decision, err := resolveUIMode("live", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected fallback to plain output")
	}
	if !strings.Contains(decision.warning, "not a TTY") {
		t.Fatalf("expected a fallback warning, got %q", decision.warning)
	}
}

func TestResolveUIModePlain(t *testing.T) {
	withTerminal(t, true)
	decision, err := resolveUIMode("plain", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("plain mode must not use the live UI")
	}
}

func TestResolveUIModeInvalid(t *testing.T) {
	if _, err := resolveUIMode("fancy", nil); err == nil {
		t.Fatalf("expected an error for an invalid mode")
	}
}
