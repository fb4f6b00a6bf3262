package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Loading symbols")
	s.start()
	time.Sleep(3 * spinnerInterval)
	s.update("Loading symbols from ./examples")
	time.Sleep(3 * spinnerInterval)
	s.stop()

	out := buf.String()
	for _, want := range []string{"Loading symbols", "./examples"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("output should end by clearing the line, got %q", out)
	}
	if !s.cancelled() {
		t.Error("cancelled() = false after stop")
	}
}

func TestSpinnerParentContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, &bytes.Buffer{}, "waiting")
	s.start()
	<-ctx.Done()

	if !s.cancelled() {
		t.Error("cancelled() = false after parent context ended")
	}
	s.stop()
	s.stop()
}

func TestWithSpinner(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")

	err := withSpinner(context.Background(), &buf, "working", func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}

	called := false
	if err := withSpinner(context.Background(), &buf, "working", func() error {
		called = true
		return nil
	}); err != nil || !called {
		t.Errorf("withSpinner = %v, called = %v", err, called)
	}
}
