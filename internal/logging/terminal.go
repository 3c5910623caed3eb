// Package logging provides the slog handler used for terminal output.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminalHandler creates a tinted handler writing to stderr. Colors are
// disabled when stderr is not a terminal (log files, task scheduler runs).
// The level defaults to info and can be changed via LOG_LEVEL.
func NewTerminalHandler() slog.Handler {
	w := os.Stderr
	return tint.NewHandler(w, &tint.Options{
		Level:      levelFromEnv(),
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	})
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
