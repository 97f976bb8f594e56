// Package logger configures structured logging.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Config selects the log destination and verbosity.
type Config struct {
	Writer  io.Writer
	Verbose bool
}

// Init builds a logger and installs it as the slog default.
// LOG_LEVEL sets the level unless Verbose forces debug. LOG_FORMAT=json
// switches to JSON output.
func Init(cfg Config) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if os.Getenv("LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// WithRequestID tags log with a fresh request id.
func WithRequestID(log *slog.Logger) (*slog.Logger, string) {
	id := uuid.Must(uuid.NewV7()).String()
	return log.With("requestId", id), id
}
