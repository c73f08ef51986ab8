// Package logging builds the process-wide zerolog logger.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a structured logger writing to stderr at the given level.
// Unknown level strings fall back to info.
func New(levelStr string) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "trace":
		level = zerolog.TraceLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", "reviewgate").
		Logger().
		Level(level)
}
