package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// envLogLevel sets the starting log level. It is the same variable the
// service config expands, so one setting covers both.
const envLogLevel = "SIGIL_LOG_LEVEL"

// newLogger creates a timestamped logger ("15:04:05.00") writing to w.
// SIGIL_LOG_LEVEL, when it parses, replaces level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           levelFromEnv(level),
	})
}

func levelFromEnv(fallback log.Level) log.Level {
	s := strings.TrimSpace(os.Getenv(envLogLevel))
	if s == "" {
		return fallback
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return fallback
	}
	return lvl
}

// progress logs how long an operation took, e.g. "Rendered arrow (12ms)".
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond, followed by
// any key/value pairs.
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg+" ("+time.Since(p.start).Round(time.Millisecond).String()+")", keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored by the root command, or
// log.Default() when a command runs without one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
