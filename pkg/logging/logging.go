// Package logging builds the application's structured logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level string does not parse.
const DefaultLevel = zerolog.InfoLevel

// Options configures logger construction.
type Options struct {
	Level   string // "trace".."panic", defaults to "info"
	Console bool   // human-readable console output instead of JSON
	Output  io.Writer
}

// New creates the root logger. Services derive their own loggers from it
// with a "component" field.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel parses a level string, falling back to DefaultLevel on
// empty or unknown input.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return DefaultLevel
	}

	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}
