package infra

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger. Development gets debug level and
// console output; every other environment logs JSON at info. A non-empty
// level overrides the environment default.
func NewLogger(appEnv, level string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if appEnv == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return newLogger(out, appEnv, level)
}

func newLogger(out io.Writer, appEnv, level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if appEnv == "development" {
		lvl = zerolog.DebugLevel
	}
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && level != "" {
		lvl = parsed
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "tagsmith").
		Logger()
}

// Logger aliases zerolog.Logger so packages outside infra can accept a
// logger without importing zerolog directly.
type Logger = zerolog.Logger
