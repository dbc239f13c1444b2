// Package logging configures diagnostic logging on stderr.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel names the environment variable selecting the log level.
const EnvLogLevel = "META_INFO_LOG_LEVEL"

// Init initializes the global logger with configuration from environment variables.
// META_INFO_LOG_LEVEL controls the log level: trace, debug, info, warn, error.
// Any other value, including unset, disables logging so stdout and stderr
// carry nothing but the report.
func Init() {
	zerolog.SetGlobalLevel(parseLevel(os.Getenv(EnvLogLevel)))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
