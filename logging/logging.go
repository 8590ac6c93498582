// Package logging provides the structured logger used by the processor and
// the CLI. It is a thin layer over log/slog.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the minimum severity a Logger emits.
type Level int

// Level values, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format selects the record encoding.
type Format string

const (
	// FormatText emits logfmt-style key=value records.
	FormatText Format = "text"
	// FormatJSON emits one JSON object per record.
	FormatJSON Format = "json"
)

// Config holds configuration for a Logger.
type Config struct {
	// Level sets the minimum level.
	Level Level
	// Format selects text or JSON output. Empty means text.
	Format Format
	// Output is where records are written. Nil means stderr.
	Output io.Writer
	// AddSource includes file and line in each record.
	AddSource bool
}

// DefaultConfig returns info-level text logging to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatText,
	}
}

// Logger provides leveled, structured logging with context fields.
// A nil *Logger discards everything.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger from the given configuration.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.slog(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{logger: slog.New(handler)}
}

// NewNop creates a Logger that discards all records.
func NewNop() *Logger {
	return &Logger{logger: slog.New(slog.DiscardHandler)}
}

// Debug logs a debug-level message.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	if l != nil && l.logger != nil {
		l.logger.DebugContext(ctx, msg, args...)
	}
}

// Info logs an info-level message.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l != nil && l.logger != nil {
		l.logger.InfoContext(ctx, msg, args...)
	}
}

// Warn logs a warning-level message.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l != nil && l.logger != nil {
		l.logger.WarnContext(ctx, msg, args...)
	}
}

// Error logs an error-level message.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l != nil && l.logger != nil {
		l.logger.ErrorContext(ctx, msg, args...)
	}
}

// With returns a logger that adds the given fields to every record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.logger == nil {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithCall returns a logger tagged with a processing call ID.
func (l *Logger) WithCall(id string) *Logger {
	return l.With("call_id", id)
}

// WithFile returns a logger tagged with a file name.
func (l *Logger) WithFile(name string) *Logger {
	return l.With("file", name)
}

// ParseLevel parses a level name. Matching is case-insensitive.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", level)
	}
}

// ParseFormat parses a format name. Matching is case-insensitive.
func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid log format %q: must be %q or %q", format, FormatText, FormatJSON)
	}
}
