// File: fetch_test.go
// Title: Fetch Client Tests
// Description: httptest based tests for success, invalid response, request
//              failure, cancellation, JSON decoding and metrics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-07 v0.1.0: Initial tests
// - 2026-10-09 v0.1.1: Metrics tests

package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/msto63/gopress/core/log"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("payload"))
	})
	mux.HandleFunc("/created", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("new"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})
	mux.HandleFunc("/redirect-loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/redirect-loop", http.StatusFound)
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Ada","age":36}`))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func quietClient(opts ...Option) *Client {
	var buf bytes.Buffer
	logger := log.New().WithOutput(&buf).WithLevel(log.LevelError)
	return New(append([]Option{WithLogger(logger)}, opts...)...)
}

func TestData(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		body, resp, err := quietClient().Data(ctx, srv.URL+"/ok")
		if err != nil {
			t.Fatalf("Data() error = %v", err)
		}
		if string(body) != "payload" || resp.StatusCode != http.StatusOK {
			t.Errorf("Data() = (%q, %d)", body, resp.StatusCode)
		}
	})

	t.Run("any 2xx succeeds", func(t *testing.T) {
		body, resp, err := quietClient().Data(ctx, srv.URL+"/created")
		if err != nil || string(body) != "new" || resp.StatusCode != http.StatusCreated {
			t.Errorf("Data(201) = (%q, %v, %v)", body, resp, err)
		}
	})

	t.Run("non-2xx is invalid response", func(t *testing.T) {
		body, resp, err := quietClient().Data(ctx, srv.URL+"/missing")
		if !errors.Is(err, ErrInvalidResponse) {
			t.Fatalf("Data(404) error = %v, want ErrInvalidResponse", err)
		}
		var rf *RequestFailedError
		if errors.As(err, &rf) {
			t.Error("invalid response must not be wrapped as request failure")
		}
		if body != nil || resp == nil || resp.StatusCode != http.StatusNotFound {
			t.Errorf("Data(404) = (%q, %v)", body, resp)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		_, _, err := quietClient().Data(ctx, "http://127.0.0.1:1/unreachable")
		var rf *RequestFailedError
		if !errors.As(err, &rf) {
			t.Fatalf("Data(unreachable) error = %v, want *RequestFailedError", err)
		}
		if rf.Err == nil || errors.Is(err, ErrInvalidResponse) {
			t.Errorf("RequestFailedError = %+v", rf)
		}
	})

	t.Run("redirect loop is request failure", func(t *testing.T) {
		_, _, err := quietClient().Data(ctx, srv.URL+"/redirect-loop")
		var rf *RequestFailedError
		if !errors.As(err, &rf) {
			t.Errorf("Data(redirect loop) error = %v", err)
		}
	})

	t.Run("malformed url", func(t *testing.T) {
		_, _, err := quietClient().Data(ctx, "://bad")
		var rf *RequestFailedError
		if !errors.As(err, &rf) {
			t.Errorf("Data(malformed) error = %v", err)
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		cctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, _, err := quietClient().Data(cctx, srv.URL+"/slow")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Data(slow) error = %v, want deadline exceeded", err)
		}
	})

	t.Run("client timeout", func(t *testing.T) {
		_, _, err := quietClient(WithTimeout(50*time.Millisecond)).Data(ctx, srv.URL+"/slow")
		var rf *RequestFailedError
		if !errors.As(err, &rf) {
			t.Errorf("Data(slow) with timeout error = %v", err)
		}
	})
}

func TestJSON(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	u, err := JSON[user](ctx, quietClient(), srv.URL+"/user")
	if err != nil || u.Name != "Ada" || u.Age != 36 {
		t.Errorf("JSON() = (%+v, %v)", u, err)
	}

	_, err = JSON[user](ctx, quietClient(), srv.URL+"/ok")
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("JSON(non-json) error = %T %v, want *json.SyntaxError", err, err)
	}

	_, err = JSON[user](ctx, quietClient(), srv.URL+"/missing")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("JSON(404) error = %v", err)
	}
}

func TestMetrics(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	client := quietClient(WithMetrics(reg))

	_, _, _ = client.Data(ctx, srv.URL+"/ok")
	_, _, _ = client.Data(ctx, srv.URL+"/ok")
	_, _, _ = client.Data(ctx, srv.URL+"/missing")
	_, _, _ = client.Data(ctx, "http://127.0.0.1:1/")

	expected := `
# HELP gopress_fetch_requests_total Number of fetch requests by outcome.
# TYPE gopress_fetch_requests_total counter
gopress_fetch_requests_total{outcome="invalid_response"} 1
gopress_fetch_requests_total{outcome="ok"} 2
gopress_fetch_requests_total{outcome="request_failed"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "gopress_fetch_requests_total"); err != nil {
		t.Error(err)
	}
	if n := testutil.CollectAndCount(client.metrics.duration); n != 1 {
		t.Errorf("duration histogram series = %d, want 1", n)
	}
}

func TestRequestLogging(t *testing.T) {
	srv := newServer(t)
	var buf bytes.Buffer
	logger := log.New().
		WithOutput(&buf).
		WithLevel(log.LevelDebug).
		WithFormatter(&log.TextFormatter{DisableTimestamp: true})

	_, _, _ = New(WithLogger(logger)).Data(context.Background(), srv.URL+"/missing")
	if !strings.Contains(buf.String(), "[WRN] invalid response") || !strings.Contains(buf.String(), "status=404") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestValidateOpenURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"mailto:someone@example.com", true},
		{"tel:+4912345", true},
		{"example.com", false},
		{"/relative/path", false},
		{"", false},
		{"http://[::1", false},
	}
	for _, tt := range tests {
		if _, ok := ValidateOpenURL(tt.input); ok != tt.want {
			t.Errorf("ValidateOpenURL(%q) = %v, want %v", tt.input, ok, tt.want)
		}
	}
}
