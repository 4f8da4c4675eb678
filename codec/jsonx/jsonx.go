// File: jsonx.go
// Title: JSON Helpers
// Description: Decode, DecodeErr, Encode and EncodeString.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation

package jsonx

import (
	"encoding/json"
	"fmt"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/core/log"
)

// Indent is the indentation used by Encode
const Indent = "  "

// DecodeErr decodes data into a new T and returns the cause on failure
func DecodeErr[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, gperror.Wrap(err, "failed to decode JSON").
			WithCode(gperror.CodeInvalidFormat).
			WithOperation("jsonx.Decode").
			WithDetail("target", fmt.Sprintf("%T", v)).
			WithDetail("bytes", len(data))
	}
	return v, nil
}

// Decode decodes data into a new T; absent on any failure
func Decode[T any](data []byte) (T, bool) {
	v, err := DecodeErr[T](data)
	if err != nil {
		log.GetDefault().WithName("jsonx").LogError(err)
		return v, false
	}
	return v, true
}

// Encode renders v as indented JSON; absent when v cannot be encoded
func Encode(v any) ([]byte, bool) {
	data, err := json.MarshalIndent(v, "", Indent)
	if err != nil {
		log.GetDefault().WithName("jsonx").LogError(
			gperror.Wrap(err, "failed to encode JSON").
				WithCode(gperror.CodeEncodingError).
				WithSeverity(gperror.SeverityLow).
				WithOperation("jsonx.Encode").
				WithDetail("source", fmt.Sprintf("%T", v)))
		return nil, false
	}
	return data, true
}

// EncodeString is Encode returning a string
func EncodeString(v any) (string, bool) {
	data, ok := Encode(v)
	if !ok {
		return "", false
	}
	return string(data), true
}
