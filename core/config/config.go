// File: config.go
// Title: Configuration Loading and Access
// Description: Loads TOML/YAML content into a nested map and exposes typed,
//              dotted-key getters with optional defaults and environment
//              overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/utils/stringx"
)

// Format is a configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML parses TOML
	FormatTOML

	// FormatYAML parses YAML
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Config is a loaded configuration, safe for concurrent use
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions controls LoadWithOptions
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// Load loads a file, detecting its format
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads a file with explicit options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, gperror.New("config file path cannot be empty").
			WithCode(gperror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := gperror.CodeConfigError
		if os.IsNotExist(err) {
			code = gperror.CodeNotFound
		}
		return nil, gperror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("file_path", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, gperror.Wrap(err, "failed to parse config file").
			WithCode(gperror.CodeInvalidFormat).
			WithOperation("config.LoadWithOptions").
			WithDetail("file_path", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString parses content in the given format; FormatAuto means TOML
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, gperror.Wrap(err, "failed to parse config string").
			WithCode(gperror.CodeInvalidFormat).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration with no values, useful when no file is given
func Empty(envPrefix string) *Config {
	return &Config{data: make(map[string]interface{}), format: FormatTOML, envPrefix: envPrefix}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults fills keys missing from data with defaults, recursing into
// nested tables
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = make(map[string]interface{})
	}
	for k, dv := range defaults {
		existing, ok := data[k]
		if !ok {
			data[k] = dv
			continue
		}
		em, eIsMap := existing.(map[string]interface{})
		dm, dIsMap := dv.(map[string]interface{})
		if eIsMap && dIsMap {
			data[k] = mergeDefaults(em, dm)
		}
	}
	return data
}

// SetEnvPrefix sets the environment override prefix
func (c *Config) SetEnvPrefix(prefix string) {
	c.mu.Lock()
	c.envPrefix = prefix
	c.mu.Unlock()
}

// FilePath returns the file the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the parsed format
func (c *Config) Format() Format {
	return c.format
}

// GetString returns a string value
func (c *Config) GetString(key string, defaultValue ...string) string {
	raw, ok := c.lookup(key)
	if !ok {
		return first(defaultValue)
	}
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer value
func (c *Config) GetInt(key string, defaultValue ...int) int {
	raw, ok := c.lookup(key)
	if !ok {
		return first(defaultValue)
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return first(defaultValue)
}

// GetBool returns a boolean value
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	raw, ok := c.lookup(key)
	if !ok {
		return first(defaultValue)
	}
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return first(defaultValue)
}

// GetFloat returns a float value
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	raw, ok := c.lookup(key)
	if !ok {
		return first(defaultValue)
	}
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return first(defaultValue)
}

// GetDuration returns a duration; strings use time.ParseDuration, integers are
// taken as seconds
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	raw, ok := c.lookup(key)
	if !ok {
		return first(defaultValue)
	}
	switch v := raw.(type) {
	case time.Duration:
		return v
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	}
	return first(defaultValue)
}

// GetStringSlice returns a list of strings; a comma separated string is split
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	raw, ok := c.lookup(key)
	if !ok {
		return first(defaultValue)
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return first(defaultValue)
}

// Has reports whether key has a value in the file or the environment
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Set stores a value at a dotted key, creating intermediate tables
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data
	for _, k := range parts[:len(parts)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// lookup resolves key from the environment first, then the data tree
func (c *Config) lookup(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.envPrefix != "" {
		if v, ok := os.LookupEnv(c.envKey(key)); ok {
			return v, true
		}
	}

	current := c.data
	parts := strings.Split(key, ".")
	for i, k := range parts {
		v, ok := current[k]
		if !ok || v == nil {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// envKey maps defaults.driver to PREFIX_DEFAULTS_DRIVER
func (c *Config) envKey(key string) string {
	return strings.ToUpper(c.envPrefix) + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func first[T any](values []T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	return values[0]
}
