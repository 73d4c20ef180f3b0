// Package log wraps log/slog with a component-scoped logger.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with a component name
type Logger struct {
	*slog.Logger
	base      slog.Handler // handler without the component attribute
	component string
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Format    string // "text" or "json"
	Component string
	Output    io.Writer
}

// DefaultConfig returns sensible defaults for logging
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Component: ComponentApp,
		Output:    os.Stdout,
	}
}

// New creates a new logger with the given configuration
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	component := config.Component
	if component == "" {
		component = ComponentApp
	}
	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, component),
		base:      handler,
		component: component,
	}
}

// ParseLevel maps LOG_LEVEL values to slog levels
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// With returns a new logger with the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		base:      l.base,
		component: l.component,
	}
}

// WithComponent returns a logger for a sub-component.
// The component attribute is replaced, not repeated; attributes added with With are dropped.
func (l *Logger) WithComponent(component string) *Logger {
	base := l.base
	if base == nil {
		base = l.Handler()
	}
	return &Logger{
		Logger:    slog.New(base).With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

// Component returns the logger's component name
func (l *Logger) Component() string {
	return l.component
}

// SetDefault sets the default logger for the application
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}

type contextKey struct{}

// NewContext returns a context carrying logger
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a logger from ctx, or wraps slog.Default
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}
