// Package config loads gopress settings from TOML or YAML files.
//
// Package: config
// Title: gopress Configuration
// Description: File based configuration with dotted-key access, typed getters,
//              defaults and environment variable overrides. The CLI uses it to
//              pick the log level/format, the defaults store backend and the
//              fetch timeout; library users may load their own files with it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-29 v0.1.0: TOML/YAML loading and typed getters
// - 2026-10-08 v0.1.1: Settings struct for the CLI and store selection
//
// File formats:
//
// The format is detected from the file extension: .yaml and .yml are parsed
// with gopkg.in/yaml.v3, everything else with github.com/BurntSushi/toml.
//
//	[log]
//	level = "debug"
//	format = "console"
//
//	[defaults]
//	driver = "sqlite"
//	dsn = "/var/lib/gopress/defaults.db"
//
//	[fetch]
//	timeout = "10s"
//
// Environment overrides:
//
// With an EnvPrefix of "GOPRESS" the key defaults.driver is overridden by
// the variable GOPRESS_DEFAULTS_DRIVER. Overrides are read on every access.
package config
