package navstack

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/clock"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Options configures a Controller. The zero value is valid.
type Options struct {
	NotificationDuration time.Duration    // Snackbar lifetime when the caller passes 0 (default 3s)
	InboxSize            int              // Commands buffered ahead of the owner loop (default 64)
	Locale               string           // BCP 47 tag for localized strings (default "en")
	MessageFiles         []string         // go-i18n TOML message files to load
	LogPath              string           // Full path for log file including filename (creates parent directories)
	LogLevel             string           // debug, info, warn or error; ignored when Logger is set
	Logger               *slog.Logger     // Overrides the package logger
	Clock                clock.Clock      // Time source for notification expiry (default system clock)
	AcceptRoute          route.Predicate  // Restricts which routes may be pushed; nil accepts all
	NewID                func() uuid.UUID // Notification ID generator (default uuid.New)
}

// fileOptions is the TOML shape of Options.
type fileOptions struct {
	NotificationDuration string   `toml:"notification_duration"`
	InboxSize            int      `toml:"inbox_size"`
	Locale               string   `toml:"locale"`
	MessageFiles         []string `toml:"message_files"`
	LogPath              string   `toml:"log_path"`
	LogLevel             string   `toml:"log_level"`
}

// LoadOptions reads options from a TOML file:
//
//	notification_duration = "5s"
//	inbox_size = 128
//	locale = "de"
//	message_files = ["i18n/active.de.toml"]
//	log_level = "debug"
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, NewControllerError("load_options", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes options from TOML bytes.
func ParseOptions(data []byte) (Options, error) {
	var raw fileOptions
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return Options{}, NewControllerError("load_options", err)
	}

	opts := Options{
		InboxSize:    raw.InboxSize,
		Locale:       raw.Locale,
		MessageFiles: raw.MessageFiles,
		LogPath:      raw.LogPath,
		LogLevel:     raw.LogLevel,
	}

	if raw.NotificationDuration != "" {
		d, err := time.ParseDuration(raw.NotificationDuration)
		if err != nil {
			return Options{}, NewControllerError("load_options", fmt.Errorf("notification_duration: %w", err))
		}
		opts.NotificationDuration = d
	}

	return opts, nil
}

// withDefaults fills unset fields and applies environment overrides.
func (o Options) withDefaults() Options {
	if o.NotificationDuration <= 0 {
		o.NotificationDuration = constants.DefaultNotificationDuration
	}
	if o.InboxSize <= 0 {
		o.InboxSize = constants.DefaultInboxSize
	}
	if env := os.Getenv(constants.LocaleEnvVar); env != "" {
		o.Locale = env
	}
	if o.Locale == "" {
		o.Locale = constants.DefaultLocale
	}
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		o.LogLevel = env
	} else if constants.IsDevMode() {
		o.LogLevel = "debug"
	}
	if o.Clock == nil {
		o.Clock = &clock.RealClock{}
	}
	if o.NewID == nil {
		o.NewID = uuid.New
	}
	return o
}

// logger resolves the configured logger, setting up the package logger when
// none was supplied.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	if o.LogPath != "" {
		internal.SetLogPath(o.LogPath)
	}
	if o.LogLevel != "" {
		internal.SetRawLogLevel(o.LogLevel)
	}
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before creating the first Controller to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the package logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the package logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
