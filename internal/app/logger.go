package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ofirgaash1/engsub/internal/config"
)

// NewLogger builds the application *slog.Logger from LogConfig and installs
// it as the slog default so library code logging through slog.Default ends
// up in the same stream. Everything goes to stderr; stdout stays free for
// exported word lists piped from the CLI.
//
// Format "json" is for running under a supervisor, "text" (with source
// locations) for developing against a local player.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

// newHandler is the single place handler options are decided; tests point it
// at a buffer to assert on output.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel maps a config string to a slog level. Unknown values and the
// empty string fall back to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
