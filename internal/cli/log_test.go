package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", "", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info", "", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug", "", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"env raises to debug", "debug", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"env lowers to warn", "WARN", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, false},
		{"bad env ignored", "loud", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envLogLevel, tt.env)
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	t.Setenv(envLogLevel, "")
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	prog.done("Rendered arrow", "formats", "svg,png")

	out := buf.String()
	for _, want := range []string{"Rendered arrow (", "formats=svg,png"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if got := loggerFromContext(ctx); got != custom {
		t.Errorf("loggerFromContext = %p, want %p", got, custom)
	}
}
