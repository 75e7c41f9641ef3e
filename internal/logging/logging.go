// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// RequestIDKey is the context key for request IDs.
const RequestIDKey ContextKey = "request_id"

var defaultLogger *slog.Logger

func init() {
	Init(LevelInfo, FormatText)
}

// Level represents a log level.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Format represents a log output format.
type Format int

// Output formats.
const (
	FormatText Format = iota
	FormatJSON
)

// Init initializes the global logger. Logs go to stderr so the stdio tool
// transport keeps stdout to itself.
func Init(level Level, format Format) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Logger returns the global logger instance.
func Logger() *slog.Logger {
	return defaultLogger
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID retrieves the request ID from the context, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns a logger with context values attached.
func FromContext(ctx context.Context) *slog.Logger {
	logger := defaultLogger
	if id := RequestID(ctx); id != "" {
		logger = logger.With("request_id", id)
	}
	return logger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// ProviderRequest logs one upstream provider call with common fields.
func ProviderRequest(ctx context.Context, provider, url string, status int, cached bool, duration time.Duration) {
	FromContext(ctx).Info("provider_request",
		"provider", provider,
		"url", url,
		"status", status,
		"cached", cached,
		"duration_ms", duration.Milliseconds(),
	)
}

// ToolCall logs one tool invocation.
func ToolCall(ctx context.Context, tool string, duration time.Duration, err error) {
	logger := FromContext(ctx)
	if err != nil {
		logger.Error("tool_call", "tool", tool, "duration_ms", duration.Milliseconds(), "error", err.Error())
		return
	}
	logger.Info("tool_call", "tool", tool, "duration_ms", duration.Milliseconds())
}

// ServerStartup logs server startup information.
func ServerStartup(transport string, args ...any) {
	allArgs := append([]any{"transport", transport}, args...)
	defaultLogger.Info("server_startup", allArgs...)
}
