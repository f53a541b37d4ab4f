// Package logging configures structured logging for the acos binary.
//
// Usage:
//
//	logging.Setup(logging.Options{Level: "debug"})   // colored tint output on stderr
//	logging.Setup(logging.Options{Format: "json"})    // JSON lines for log shippers
//
// An empty level falls back to the LOG_LEVEL env var (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the level and handler
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// Setup installs the default slog logger and returns it
func Setup(opts Options) *slog.Logger {
	logger := New(opts)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger without installing it
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := ParseLevel(opts.Level)
	if opts.Level == "" {
		level = ParseLevel(os.Getenv("LOG_LEVEL"))
	}

	if strings.EqualFold(opts.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps debug, warn and error to slog levels; anything else is info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
