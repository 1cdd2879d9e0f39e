// Package logger configures the zerolog logger shared across the service.
//
// Production emits JSON to stdout; every other environment gets the
// human-friendly console writer. Each subsystem tags its entries with a
// component field so log pipelines can filter the notification fan-out,
// the HTTP layer, and storage independently.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger for the given environment and minimum level.
// Unrecognised levels fall back to info.
func New(env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if env == "production" {
		log = zerolog.New(os.Stdout)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Level(lvl).With().
		Timestamp().
		Str("service", "zomma-portal").
		Logger()
}

// Component returns a child logger tagged for one subsystem.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
