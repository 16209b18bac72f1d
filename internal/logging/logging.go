// Package logging configures the process-wide slog logger from the CLI
// verbosity level. Verbosity only changes what is logged to stderr; command
// output on stdout is unaffected.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level mapping for the counted -v flag:
// 0 = warnings only, 1 = info, 2+ = debug.
func levelFor(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Setup installs a text handler on stderr at the level implied by verbosity
// and returns the logger. The logger is also set as the slog default.
func Setup(verbosity int) *slog.Logger {
	return SetupWithWriter(os.Stderr, verbosity)
}

// SetupWithWriter is Setup with an explicit output writer, used in tests.
func SetupWithWriter(w io.Writer, verbosity int) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelFor(verbosity),
	}))
	slog.SetDefault(logger)
	return logger
}
