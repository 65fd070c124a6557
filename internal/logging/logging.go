// Package logging provides centralized slog.Logger construction from the
// hubctl logging configuration.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/nuvias-uc/hubctl/internal/config"
)

// New creates a *slog.Logger from the logging configuration. verbose
// forces the debug level regardless of the configured one. Output goes
// to stderr so it never mixes with command results on stdout.
func New(cfg config.LoggingConfig, verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg, verbose)
}

// NewWithWriter creates a *slog.Logger writing to w.
// Useful for testing or redirecting output.
func NewWithWriter(w io.Writer, cfg config.LoggingConfig, verbose bool) *slog.Logger {
	level := parseLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a level string to slog.Level. Recognized values:
// "debug", "warn", "error". Everything else maps to LevelInfo.
func parseLevel(level string) slog.Level {
	switch level {
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
