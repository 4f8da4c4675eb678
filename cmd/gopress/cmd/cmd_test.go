package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/msto63/gopress/core/config"
	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/core/log"
)

// execute runs the root command with fresh flag values
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	prev := log.GetDefault()
	t.Cleanup(func() { log.SetDefault(prev) })

	cfgFile, verbose = "", false
	truncateLength, ipv4Strict, chunkSize = 10, false, 2
	htmlPlain, colorAlpha = false, 1
	fetchTimeout, fetchPretty = 0, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "gopress v"+Version) {
		t.Errorf("version = (%q, %v)", out, err)
	}
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"slug", []string{"string", "slug", "Hello, World!"}, "hello-world"},
		{"truncate", []string{"string", "truncate", "-n", "5", "Hello, World!"}, "Hello..."},
		{"truncate short", []string{"string", "truncate", "-n", "50", "Hi"}, "Hi"},
		{"camel", []string{"string", "camel", "user_id"}, "UserId"},
		{"snake", []string{"string", "snake", "userId"}, "user_id"},
		{"bool true", []string{"string", "bool", "TRUE"}, "true"},
		{"bool one", []string{"string", "bool", "1"}, "false"},
		{"email", []string{"string", "email", "a@b.co"}, "true"},
		{"ipv4 permissive", []string{"string", "ipv4", "999.1.1.1"}, "true"},
		{"ipv4 strict", []string{"string", "ipv4", "--strict", "999.1.1.1"}, "false"},
		{"roman", []string{"int", "roman", "1994"}, "MCMXCIV"},
		{"factorial", []string{"int", "factorial", "5"}, "120"},
		{"factorial zero", []string{"int", "factorial", "0"}, "1"},
		{"prime", []string{"int", "prime", "13"}, "true"},
		{"parity", []string{"int", "parity", "7"}, "odd"},
		{"hex", []string{"hex", "Hello, World!"}, "48656c6c6f2c20576f726c6421"},
		{"mmss", []string{"time", "mmss", "3620"}, "60:20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("execute(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestIntErrors(t *testing.T) {
	tests := [][]string{
		{"int", "factorial", "--", "-5"},
		{"int", "roman", "0"},
		{"int", "prime", "abc"},
		{"int", "cube", "3"},
	}
	for _, args := range tests {
		_, err := execute(t, "", args...)
		if !gperror.HasCode(err, gperror.CodeInvalidInput) {
			t.Errorf("execute(%v) error = %v, want INVALID_INPUT", args, err)
		}
	}
}

func TestChunk(t *testing.T) {
	out, err := execute(t, "", "chunk", "-s", "3", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	if err != nil {
		t.Fatal(err)
	}
	var got [][]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %q", out)
	}
	want := [][]string{{"1", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("chunk = %v", got)
	}

	if _, err := execute(t, "", "chunk", "-s", "0", "a"); !gperror.HasCode(err, gperror.CodeInvalidInput) {
		t.Errorf("chunk -s 0 error = %v", err)
	}
}

func TestHTML(t *testing.T) {
	out, err := execute(t, "<p>Hello <b>world</b></p><p>bye</p>", "html", "--plain")
	if err != nil || out != "Hello world\nbye\n" {
		t.Errorf("html --plain = (%q, %v)", out, err)
	}

	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<h1>Title</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "", "html", path)
	if err != nil || !strings.Contains(out, "Title") {
		t.Errorf("html file = (%q, %v)", out, err)
	}

	_, err = execute(t, "\xff\xfe", "html")
	if !gperror.HasCode(err, gperror.CodeInvalidFormat) {
		t.Errorf("html invalid = %v", err)
	}
}

func TestColor(t *testing.T) {
	out, err := execute(t, "", "color", "#1E90FF", "--alpha", "0.5")
	if err != nil || !strings.Contains(out, "#1e90ff rgb(30, 144, 255) alpha 0.50") {
		t.Errorf("color = (%q, %v)", out, err)
	}
	if _, err := execute(t, "", "color", "#XYZ"); !gperror.HasCode(err, gperror.CodeInvalidFormat) {
		t.Errorf("color invalid = %v", err)
	}
}

func TestDefaultsSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "gopress.toml")
	content := "[defaults]\ndriver = \"sqlite\"\ndsn = \"" + filepath.ToSlash(filepath.Join(dir, "prefs.db")) + "\"\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	run := func(args ...string) (string, error) {
		return execute(t, "", append([]string{"--config", cfg, "defaults"}, args...)...)
	}

	if _, err := run("set", "theme", `"dark"`); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if _, err := run("set", "count", "3"); err != nil {
		t.Fatalf("set count: %v", err)
	}
	if _, err := run("set", "name", "plain text"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	for key, want := range map[string]string{"theme": `"dark"`, "count": "3", "name": `"plain text"`} {
		out, err := run("get", key)
		if err != nil || strings.TrimSpace(out) != want {
			t.Errorf("get %s = (%q, %v), want %s", key, out, err, want)
		}
	}

	if _, err := run("delete", "theme"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := run("get", "theme"); !gperror.HasCode(err, gperror.CodeNotFound) {
		t.Errorf("get deleted = %v", err)
	}
}

func TestDefaultsBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "gopress.yaml")
	if err := os.WriteFile(cfg, []byte("defaults:\n  driver: sqlite\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "", "--config", cfg, "defaults", "get", "x")
	if !gperror.HasCode(err, gperror.CodeConfigError) {
		t.Errorf("missing dsn error = %v", err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			_, _ = w.Write([]byte(`{"a":1}`))
		case "/text":
			_, _ = w.Write([]byte("hello"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	out, err := execute(t, "", "fetch", srv.URL+"/text")
	if err != nil || out != "hello\n" {
		t.Errorf("fetch text = (%q, %v)", out, err)
	}

	out, err = execute(t, "", "fetch", "--pretty", srv.URL+"/json")
	if err != nil || out != "{\n  \"a\": 1\n}\n" {
		t.Errorf("fetch --pretty = (%q, %v)", out, err)
	}

	_, err = execute(t, "", "fetch", srv.URL+"/missing")
	if !gperror.HasCode(err, gperror.CodeInvalidResponse) {
		t.Errorf("fetch 404 = %v", err)
	}

	_, err = execute(t, "", "fetch", "http://127.0.0.1:1/")
	if !gperror.HasCode(err, gperror.CodeNetworkError) {
		t.Errorf("fetch unreachable = %v", err)
	}
}

func TestPreviewModel(t *testing.T) {
	m := newPreviewModel()
	if m.Init() == nil || !m.indicator.IsAnimating() {
		t.Fatal("Init() should start the indicator")
	}

	next, _ := m.Update(heartbeatMsg(3))
	m = next.(previewModel)
	if m.beats != 3 || !strings.Contains(m.View(), "heartbeat 3") {
		t.Errorf("View() = %q", m.View())
	}
	if !strings.Contains(m.View(), "Save") || !strings.Contains(m.View(), "on") {
		t.Errorf("View() misses widgets: %q", m.View())
	}
}

func TestLocalize(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		args   []string
		want   string
	}{
		{"english", "", []string{"localize", "preview.idle"}, "idle"},
		{"german", "de", []string{"localize", "preview.idle"}, "bereit"},
		{"accept language", "fr-FR, de;q=0.8", []string{"localize", "preview.heartbeat", "7"}, "Herzschlag 7"},
		{"unknown locale", "ja", []string{"localize", "preview.idle"}, "idle"},
		{"missing key", "", []string{"localize", "no.such.key"}, "no.such.key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GOPRESS_I18N_LOCALE", tt.locale)
			t.Cleanup(func() { _ = loadMessages(config.DefaultSettings()) })

			out, err := execute(t, "", tt.args...)
			if err != nil || strings.TrimSpace(out) != tt.want {
				t.Errorf("%v = (%q, %v), want %q", tt.args, out, err, tt.want)
			}
		})
	}

	t.Run("locales directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("preview:\n  idle: resting\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("GOPRESS_I18N_DIR", dir)
		t.Cleanup(func() { _ = loadMessages(config.DefaultSettings()) })

		out, err := execute(t, "", "localize", "preview.idle")
		if err != nil || strings.TrimSpace(out) != "resting" {
			t.Errorf("localize with dir = (%q, %v)", out, err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Setenv("GOPRESS_I18N_DIR", filepath.Join(t.TempDir(), "absent"))
		t.Cleanup(func() { _ = loadMessages(config.DefaultSettings()) })

		_, err := execute(t, "", "localize", "preview.idle")
		if !gperror.HasCode(err, gperror.CodeNotFound) {
			t.Errorf("localize with missing dir = %v", err)
		}
	})
}
