// Package constants defines shared defaults and environment variable names
// used throughout navstack.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the configured log level (debug, info, warn, error).
const LogLevelEnvVar = "NAVSTACK_LOG_LEVEL"

// LocaleEnvVar overrides the configured locale, e.g. "de" or "pt-BR".
const LocaleEnvVar = "NAVSTACK_LOCALE"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default sizing and timing constants.
const (
	DefaultNotificationDuration = 3 * time.Second // Lifetime of a snackbar when none is given
	DefaultInboxSize            = 64              // Buffered commands waiting for the owner loop
	DefaultContentCacheSize     = 8               // Built screens kept by a destination registry
	DefaultLocale               = "en"
)
