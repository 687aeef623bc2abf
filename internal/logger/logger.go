// Package logger wraps zerolog behind a small package-level facade so every
// package logs through the same configured writer.
package logger

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls global logger behaviour.
type Config struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic.
	Level string
	// Format is "json" for machine output or "pretty" for a console writer.
	Format string
	// TimeFormat overrides the timestamp layout (defaults to RFC3339).
	TimeFormat string
	// ReportCaller adds file:line to every event.
	ReportCaller bool
}

// Logger is the shared root logger. Packages either use the helpers below
// or derive a child via Logger.With().
var Logger zerolog.Logger

func init() {
	Init(Config{Level: "info", Format: "json"})
}

// Init rebuilds the shared logger from cfg. Safe to call again after config
// is loaded; an unknown level falls back to info.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	zerolog.TimeFieldFormat = timeFormat

	var logger zerolog.Logger
	if strings.EqualFold(cfg.Format, "pretty") {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}
		logger = zerolog.New(writer)
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logCtx := logger.Level(level).With().Timestamp()
	if cfg.ReportCaller {
		logCtx = logCtx.Caller()
	}
	Logger = logCtx.Logger()
}

// Trace starts a trace-level event on the shared logger.
func Trace() *zerolog.Event { return Logger.Trace() }

// Debug starts a debug-level event on the shared logger.
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an info-level event on the shared logger.
func Info() *zerolog.Event { return Logger.Info() }

// Warn starts a warn-level event on the shared logger.
func Warn() *zerolog.Event { return Logger.Warn() }

// Error starts an error-level event on the shared logger.
func Error() *zerolog.Event { return Logger.Error() }

// Fatal starts a fatal-level event; the process exits when it is sent.
func Fatal() *zerolog.Event { return Logger.Fatal() }

// WithContext stores the shared logger in ctx for retrieval via Ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, or the shared logger when none is.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &Logger
	}
	return l
}
