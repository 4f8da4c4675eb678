// File: settings.go
// Title: gopress Settings
// Description: Typed view over the configuration keys understood by the CLI
//              and the store/fetch constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-08 v0.1.0: Initial settings
// - 2026-10-13 v0.1.1: i18n.locale and i18n.dir

package config

import (
	"strings"
	"time"

	gperror "github.com/msto63/gopress/core/error"
)

// EnvPrefix is the environment override prefix used by the CLI
const EnvPrefix = "GOPRESS"

// Defaults store drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Settings is the typed gopress configuration
type Settings struct {
	LogLevel  string
	LogFormat string

	DefaultsDriver string
	DefaultsDSN    string
	DefaultsBucket string
	DefaultsPrefix string

	FetchTimeout time.Duration

	Locale     string
	LocalesDir string
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		LogLevel:       "info",
		LogFormat:      "text",
		DefaultsDriver: DriverMemory,
		DefaultsPrefix: "defaults/",
		FetchTimeout:   30 * time.Second,
		Locale:         "en",
	}
}

// LoadSettings reads Settings from c, falling back to DefaultSettings
func LoadSettings(c *Config) (Settings, error) {
	s := DefaultSettings()
	if c == nil {
		return s, nil
	}

	s.LogLevel = c.GetString("log.level", s.LogLevel)
	s.LogFormat = c.GetString("log.format", s.LogFormat)
	s.DefaultsDriver = strings.ToLower(c.GetString("defaults.driver", s.DefaultsDriver))
	s.DefaultsDSN = c.GetString("defaults.dsn", s.DefaultsDSN)
	s.DefaultsBucket = c.GetString("defaults.bucket", s.DefaultsBucket)
	s.DefaultsPrefix = c.GetString("defaults.prefix", s.DefaultsPrefix)
	s.FetchTimeout = c.GetDuration("fetch.timeout", s.FetchTimeout)
	s.Locale = c.GetString("i18n.locale", s.Locale)
	s.LocalesDir = c.GetString("i18n.dir", s.LocalesDir)

	return s, s.Validate()
}

// Validate checks driver specific requirements
func (s Settings) Validate() error {
	switch s.DefaultsDriver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(s.DefaultsDSN) == "" {
			return invalidSetting("defaults.dsn", s.DefaultsDriver+" driver requires a dsn")
		}
	case DriverS3:
		if strings.TrimSpace(s.DefaultsBucket) == "" {
			return invalidSetting("defaults.bucket", "s3 driver requires a bucket")
		}
	default:
		return invalidSetting("defaults.driver", "unknown driver "+s.DefaultsDriver)
	}
	if s.FetchTimeout < 0 {
		return invalidSetting("fetch.timeout", "timeout must not be negative")
	}
	return nil
}

func invalidSetting(key, reason string) error {
	return gperror.New("invalid setting "+key+": "+reason).
		WithCode(gperror.CodeConfigError).
		WithOperation("config.Settings.Validate").
		WithDetail("key", key)
}
