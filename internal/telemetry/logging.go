// Package telemetry configures structured logging for the command-line
// tools. Library packages never log.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel reads the level from LOG_LEVEL.
// Accepted values: DEBUG, INFO, WARN, ERROR. Default: INFO.
func LogLevel() slog.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w.
//
// LOG_FORMAT selects the handler:
//   - "text" (default): human-readable output
//   - "json": one JSON object per line
func NewLogger(w io.Writer) *slog.Logger {
	level := LogLevel()
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// SetupLogger builds a logger writing to w and installs it as the default.
func SetupLogger(w io.Writer) *slog.Logger {
	logger := NewLogger(w)
	slog.SetDefault(logger)
	return logger
}

type ctxKey string

const (
	// CtxLogger is the context key holding the logger.
	CtxLogger ctxKey = "logger"
)

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, CtxLogger, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(CtxLogger).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithRunID returns logger annotated with run_id.
func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	return logger.With("run_id", runID)
}
