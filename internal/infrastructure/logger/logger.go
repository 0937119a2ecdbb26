// Package logger builds the service-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and output format.
type Config struct {
	// Level is the minimum level to emit (debug, info, warn, error).
	Level string

	// Format is "json" for machine-readable output or "console" for
	// human-readable local development output.
	Format string

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string

	// EnableCaller adds the emitting file and line to each entry.
	EnableCaller bool
}

// Logger wraps zerolog.Logger so callers depend on this package's
// constructor rather than assembling zerolog contexts themselves.
type Logger struct {
	zerolog.Logger
}

// New builds a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput builds a Logger writing to the given writer. Tests pass a
// buffer here to assert on emitted fields.
//
// An unrecognized level falls back to info rather than failing startup.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = output
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}
