// Package logging configures the process-wide slog logger. Diagnostics go to
// stderr so they never mix with the report on stdout.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint-backed logger writing to w. Only warnings and errors
// are emitted unless debug is set.
func New(w io.Writer, debug, noColor bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}))
}
