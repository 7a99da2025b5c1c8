// Package obslog wraps charmbracelet/log for the decoder's ambient
// logging: one structured line per run-level event (input read errors,
// per-input run summary), distinct from the per-burst error_log spec.md §7
// carries on each ClassifiedFrame.
package obslog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the decoder's process-wide logger handle. Unlike the per-run
// timing.Context (spec.md §9: no process-wide mutable decode state), this
// only ever writes — it carries no state the decode pipeline reads back.
type Logger struct {
	*log.Logger
}

// New builds a Logger writing to w at the given level ("debug", "info",
// "warn", "error"; anything else falls back to "info").
func New(w io.Writer, level string) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "iridium",
	})
	l.SetLevel(parseLevel(level))
	return &Logger{Logger: l}
}

// Default builds a Logger at info level writing to stderr, for commands
// that don't expose a --log-level flag of their own.
func Default() *Logger {
	return New(os.Stderr, "info")
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
