// File: i18n.go
// Title: Localization Bundle
// Description: Bundle of per-locale messages loaded from TOML and YAML files
//              with key lookup, fallback and single-parameter formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-13 v0.1.1: Match and package default bundle

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/core/log"
)

// Bundle holds messages for several locales
type Bundle struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	messages      map[string]map[string]string // locale -> dotted key -> text
	logger        *log.Logger
}

// New creates an empty bundle whose current locale is defaultLocale
func New(defaultLocale string) *Bundle {
	locale := NormalizeLocale(defaultLocale)
	return &Bundle{
		defaultLocale: locale,
		currentLocale: locale,
		messages:      make(map[string]map[string]string),
	}
}

// Load reads every .toml, .yaml and .yml file in dir of fsys into a new
// bundle. The file name without extension names the locale.
func Load(fsys fs.FS, dir, defaultLocale string) (*Bundle, error) {
	if strings.TrimSpace(defaultLocale) == "" {
		return nil, gperror.New("default locale cannot be empty").
			WithCode(gperror.CodeInvalidInput).
			WithOperation("i18n.Load")
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, gperror.Wrap(err, "failed to read locales directory").
			WithCode(gperror.CodeNotFound).
			WithOperation("i18n.Load").
			WithDetail("directory", dir)
	}

	b := New(defaultLocale)
	for _, entry := range entries {
		if entry.IsDir() || formatOf(entry.Name()) == "" {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, gperror.Wrap(err, "failed to read locale file").
				WithCode(gperror.CodeIOError).
				WithOperation("i18n.Load").
				WithDetail("file", name)
		}
		if err := b.AddFile(entry.Name(), data); err != nil {
			return nil, err
		}
	}

	if !b.HasLocale(b.defaultLocale) {
		return nil, gperror.New("no message file for default locale").
			WithCode(gperror.CodeNotFound).
			WithOperation("i18n.Load").
			WithDetail("locale", b.defaultLocale)
	}
	return b, nil
}

// WithLogger sets the logger used for missing keys and returns b
func (b *Bundle) WithLogger(logger *log.Logger) *Bundle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = logger
	return b
}

// Add merges messages into locale, replacing existing keys
func (b *Bundle) Add(locale string, messages map[string]string) {
	locale = NormalizeLocale(locale)

	b.mu.Lock()
	defer b.mu.Unlock()
	target, ok := b.messages[locale]
	if !ok {
		target = make(map[string]string, len(messages))
		b.messages[locale] = target
	}
	for k, v := range messages {
		target[k] = v
	}
}

// AddFile parses a TOML or YAML message file named like "de_DE.toml"
func (b *Bundle) AddFile(name string, data []byte) error {
	format := formatOf(name)
	locale := strings.TrimSuffix(path.Base(name), path.Ext(name))

	var raw map[string]interface{}
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &raw)
	case "yaml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return gperror.New("unsupported locale file format").
			WithCode(gperror.CodeInvalidFormat).
			WithOperation("i18n.AddFile").
			WithDetail("file", name)
	}
	if err != nil {
		return gperror.Wrap(err, "failed to parse locale file").
			WithCode(gperror.CodeInvalidFormat).
			WithOperation("i18n.AddFile").
			WithDetail("file", name).
			WithDetail("format", format)
	}

	messages := make(map[string]string)
	flatten("", raw, messages)
	b.Add(locale, messages)
	return nil
}

// flatten turns nested tables into dotted keys
func flatten(prefix string, data map[string]interface{}, out map[string]string) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch value := v.(type) {
		case map[string]interface{}:
			flatten(key, value, out)
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(value)
		}
	}
}

func formatOf(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// SetLocale switches the current locale; it must have messages
func (b *Bundle) SetLocale(locale string) error {
	locale = NormalizeLocale(locale)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.messages[locale]; !ok {
		return gperror.New("locale not available").
			WithCode(gperror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}
	b.currentLocale = locale
	return nil
}

// Locale returns the current locale
func (b *Bundle) Locale() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.currentLocale
}

// DefaultLocale returns the fallback locale
func (b *Bundle) DefaultLocale() string {
	return b.defaultLocale
}

// Locales returns the available locales sorted by name
func (b *Bundle) Locales() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	locales := make([]string, 0, len(b.messages))
	for l := range b.messages {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale reports whether locale has messages
func (b *Bundle) HasLocale(locale string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.messages[NormalizeLocale(locale)]
	return ok
}

// Lookup returns the message for key in the current or default locale
func (b *Bundle) Lookup(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if msg, ok := b.messages[b.currentLocale][key]; ok {
		return msg, true
	}
	if msg, ok := b.messages[b.defaultLocale][key]; ok {
		return msg, true
	}
	return "", false
}

// Localized returns the message for key, or key itself when missing
func (b *Bundle) Localized(key string) string {
	if msg, ok := b.Lookup(key); ok {
		return msg
	}
	b.log().Debug("missing translation", log.Fields{
		"key":    key,
		"locale": b.Locale(),
	})
	return key
}

// LocalizedWith formats the message for key with a single parameter
func (b *Bundle) LocalizedWith(key, param string) string {
	return Format(b.Localized(key), param)
}

// Match returns the available locale that best fits an Accept-Language
// header, or the default locale
func (b *Bundle) Match(acceptLanguage string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return b.defaultLocale
	}

	// the default locale comes first so it wins when nothing matches
	available := []string{b.defaultLocale}
	for _, l := range b.Locales() {
		if l != b.defaultLocale {
			available = append(available, l)
		}
	}
	tags := make([]language.Tag, len(available))
	for i, l := range available {
		tags[i] = language.Make(l)
	}

	_, index, confidence := language.NewMatcher(tags).Match(prefs...)
	if confidence == language.No {
		return b.defaultLocale
	}
	return available[index]
}

func (b *Bundle) log() *log.Logger {
	b.mu.RLock()
	logger := b.logger
	b.mu.RUnlock()
	if logger != nil {
		return logger
	}
	return log.GetDefault().WithName("i18n")
}

// Format replaces the first %@ or %s in format with param and unescapes %%
func Format(format, param string) string {
	var sb strings.Builder
	sb.Grow(len(format) + len(param))

	replaced := false
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			sb.WriteByte(c)
			continue
		}
		switch next := format[i+1]; {
		case next == '%':
			sb.WriteByte('%')
			i++
		case (next == '@' || next == 's') && !replaced:
			sb.WriteString(param)
			replaced = true
			i++
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// NormalizeLocale canonicalizes a locale name such as "de_de" to "de-DE"
func NormalizeLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return strings.ToLower(locale)
	}
	return tag.String()
}
