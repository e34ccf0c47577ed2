// Package config provides environment lookup, logging setup and gameplay rule sets.
package config

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Environment variables understood by the binaries.
const (
	EnvRules    = "SKYRAID_RULES"
	EnvLogLevel = "SKYRAID_LOG_LEVEL"
	EnvLogFile  = "SKYRAID_LOG_FILE"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// NewLogger builds a timestamped logger writing to w. The level comes from
// SKYRAID_LOG_LEVEL and defaults to info when unset or unparsable.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		logger.Warn("unknown log level, using info", "value", os.Getenv(EnvLogLevel))
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
