// File: error_test.go
// Title: Structured Error Tests
// Description: Tests for construction, wrapping and code lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-03
//
// Change History:
// - 2026-09-28 v0.1.0: Initial tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("boom")

	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil cause", func(t *testing.T) {
		if Wrap(nil, "ignored") != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("standard cause", func(t *testing.T) {
		err := Wrap(io.ErrUnexpectedEOF, "decode failed")

		if err.Error() != "decode failed: unexpected EOF" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("inherits code and details", func(t *testing.T) {
		inner := New("missing").WithCode(CodeNotFound).WithDetail("key", "theme")
		outer := Wrap(inner, "lookup failed")

		if outer.Code() != CodeNotFound {
			t.Errorf("Code() = %v, want %v", outer.Code(), CodeNotFound)
		}
		if outer.Details()["key"] != "theme" {
			t.Errorf("Details() = %v, want key=theme", outer.Details())
		}
	})
}

func TestWithCodeSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidFormat, SeverityLow},
		{CodeNotFound, SeverityLow},
		{CodeNetworkError, SeverityHigh},
		{CodeDatabaseError, SeverityHigh},
		{CodeConfigError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("explicit severity wins", func(t *testing.T) {
		err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidFormat)
		if err.Severity() != SeverityCritical {
			t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
		}
	})
}

func TestHasCode(t *testing.T) {
	inner := New("bad json").WithCode(CodeInvalidFormat)
	outer := Wrap(inner, "load failed").WithCode(CodeConfigError)
	plain := fmt.Errorf("context: %w", outer)

	if !HasCode(plain, CodeConfigError) {
		t.Error("HasCode should find the outer code through fmt wrapping")
	}
	if !HasCode(plain, CodeInvalidFormat) {
		t.Error("HasCode should find the inner code")
	}
	if HasCode(plain, CodeNetworkError) {
		t.Error("HasCode should not report an absent code")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode should be false for non-structured errors")
	}
	if GetCode(plain) != CodeConfigError {
		t.Errorf("GetCode() = %v, want %v", GetCode(plain), CodeConfigError)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(io.EOF, "read").WithCode(CodeEncodingError).WithOperation("jsonx.Decode")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if uerr := json.Unmarshal(data, &decoded); uerr != nil {
		t.Fatalf("Unmarshal() error = %v", uerr)
	}
	if decoded["code"] != "ENCODING_ERROR" || decoded["operation"] != "jsonx.Decode" || decoded["cause"] != "EOF" {
		t.Errorf("unexpected JSON: %s", data)
	}
}
