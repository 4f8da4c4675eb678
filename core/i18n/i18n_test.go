// File: i18n_test.go
// Title: Localization Bundle Tests
// Description: Tests for loading, lookup, fallback, formatting and matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial tests
// - 2026-10-13 v0.1.1: Match and Key tests

package i18n

import (
	"bytes"
	"testing"
	"testing/fstest"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/core/log"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"locales/en.toml": {Data: []byte(`
search = "Search"
done = "Done"

[greeting]
named = "Hello, %@!"
`)},
		"locales/de_DE.yaml": {Data: []byte(`
search: Suchen
greeting:
  named: "Hallo, %@!"
`)},
		"locales/README.md": {Data: []byte("not a locale")},
	}
}

func TestLoad(t *testing.T) {
	b, err := Load(testFS(), "locales", "en")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := b.Locales()
	if len(got) != 2 || got[0] != "de-DE" || got[1] != "en" {
		t.Errorf("Locales() = %v", got)
	}
	if b.Locale() != "en" || b.DefaultLocale() != "en" {
		t.Errorf("Locale()/DefaultLocale() = %q/%q", b.Locale(), b.DefaultLocale())
	}

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			fsys fstest.MapFS
			dir  string
			def  string
			code gperror.Code
		}{
			{"empty default", testFS(), "locales", " ", gperror.CodeInvalidInput},
			{"missing dir", testFS(), "nope", "en", gperror.CodeNotFound},
			{"no default file", testFS(), "locales", "fr", gperror.CodeNotFound},
			{"bad toml", fstest.MapFS{"l/en.toml": {Data: []byte("search = ")}}, "l", "en", gperror.CodeInvalidFormat},
			{"bad yaml", fstest.MapFS{"l/en.yml": {Data: []byte("a: [")}}, "l", "en", gperror.CodeInvalidFormat},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(tt.fsys, tt.dir, tt.def)
				if !gperror.HasCode(err, tt.code) {
					t.Errorf("Load() error = %v, want code %s", err, tt.code)
				}
			})
		}
	})
}

func TestLocalized(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New().WithOutput(&buf).WithLevel(log.LevelDebug).
		WithFormatter(&log.TextFormatter{DisableTimestamp: true})

	b, err := Load(testFS(), "locales", "en")
	if err != nil {
		t.Fatal(err)
	}
	b.WithLogger(logger)

	if err := b.SetLocale("de_de"); err != nil {
		t.Fatalf("SetLocale() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"search", "Suchen"},
		{"done", "Done"},
		{"greeting.named", "Hallo, %@!"},
		{"missing.key", "missing.key"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := b.Localized(tt.key); got != tt.want {
				t.Errorf("Localized(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if got := b.LocalizedWith("greeting.named", "Ada"); got != "Hallo, Ada!" {
		t.Errorf("LocalizedWith() = %q", got)
	}

	if !bytes.Contains(buf.Bytes(), []byte("missing translation")) ||
		!bytes.Contains(buf.Bytes(), []byte("key=missing.key")) {
		t.Errorf("missing key not logged: %s", buf.String())
	}

	if _, ok := b.Lookup("missing.key"); ok {
		t.Error("Lookup() found a missing key")
	}

	err = b.SetLocale("fr")
	if !gperror.HasCode(err, gperror.CodeNotFound) {
		t.Errorf("SetLocale(fr) error = %v", err)
	}
	if b.Locale() != "de-DE" {
		t.Errorf("failed SetLocale changed locale to %q", b.Locale())
	}
}

func TestAdd(t *testing.T) {
	b := New("en")
	b.Add("en", map[string]string{"a": "1"})
	b.Add("EN", map[string]string{"b": "2", "a": "3"})

	if got := b.Localized("a"); got != "3" {
		t.Errorf("Localized(a) = %q, want replaced value", got)
	}
	if got := b.Localized("b"); got != "2" {
		t.Errorf("Localized(b) = %q", got)
	}
	if !b.HasLocale("en") || b.HasLocale("de") {
		t.Error("HasLocale() mismatch")
	}

	err := b.AddFile("en.json", []byte("{}"))
	if !gperror.HasCode(err, gperror.CodeInvalidFormat) {
		t.Errorf("AddFile(json) error = %v", err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		param  string
		want   string
	}{
		{"object placeholder", "Hello, %@!", "Ada", "Hello, Ada!"},
		{"string placeholder", "Hello, %s!", "Ada", "Hello, Ada!"},
		{"only first replaced", "%@ and %@", "x", "x and %@"},
		{"escaped percent", "100%% of %@", "you", "100% of you"},
		{"other verbs kept", "%d items for %s", "Ada", "%d items for Ada"},
		{"trailing percent", "50%", "x", "50%"},
		{"no placeholder", "plain", "x", "plain"},
		{"empty", "", "x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.format, tt.param); got != tt.want {
				t.Errorf("Format(%q, %q) = %q, want %q", tt.format, tt.param, got, tt.want)
			}
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := map[string]string{
		"en":     "en",
		"EN":     "en",
		"de_de":  "de-DE",
		"de-DE":  "de-DE",
		" pt_BR": "pt-BR",
		"":       "",
	}
	for in, want := range tests {
		if got := NormalizeLocale(in); got != want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatch(t *testing.T) {
	b, err := Load(testFS(), "locales", "en")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		header string
		want   string
	}{
		{"de-DE,de;q=0.9,en;q=0.8", "de-DE"},
		{"de", "de-DE"},
		{"en-US", "en"},
		{"fr-FR", "en"},
		{"", "en"},
		{"!!!", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := b.Match(tt.header); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	const search Key = "search"
	const greeting Key = "greeting.named"

	previous := Default()
	defer SetDefault(previous)

	b, err := Load(testFS(), "locales", "en")
	if err != nil {
		t.Fatal(err)
	}
	SetDefault(b)

	if got := search.Localized(); got != "Search" {
		t.Errorf("Key.Localized() = %q", got)
	}
	if got := greeting.LocalizedWith("Ada"); got != "Hello, Ada!" {
		t.Errorf("Key.LocalizedWith() = %q", got)
	}

	SetDefault(nil)
	if Default() != b {
		t.Error("SetDefault(nil) replaced the default bundle")
	}
}
