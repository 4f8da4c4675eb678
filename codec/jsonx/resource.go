// File: resource.go
// Title: Resource Decoding and Build Info
// Description: Decodes JSON resource files from an fs.FS with snake_case key
//              conversion and reports the main module version.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-20
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation
// - 2026-10-20 v0.1.1: Preserve number precision in DecodeFile

package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"runtime/debug"
	"strings"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/core/log"
	"github.com/msto63/gopress/utils/stringx"
)

// DefaultExtension is used by DecodeFile when ext is empty
const DefaultExtension = "json"

// DecodeFile reads name.ext from fsys and decodes it into T. Object keys
// containing '_' are converted to camel case first so that "user_name"
// fills a field named UserName. Absent when the file is missing or invalid.
func DecodeFile[T any](fsys fs.FS, name, ext string) (T, bool) {
	var zero T
	logger := log.GetDefault().WithName("jsonx")

	if ext == "" {
		ext = DefaultExtension
	}
	path := name + "." + strings.TrimPrefix(ext, ".")

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		logger.LogError(gperror.Wrap(err, "failed to read resource").
			WithCode(gperror.CodeNotFound).
			WithOperation("jsonx.DecodeFile").
			WithDetail("path", path))
		return zero, false
	}

	// UseNumber keeps integers beyond float64 precision intact
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	err = dec.Decode(&raw)
	if err == nil {
		if _, tail := dec.Token(); tail != io.EOF {
			err = errors.New("unexpected data after top-level value")
		}
	}
	if err != nil {
		logger.LogError(gperror.Wrap(err, "failed to decode resource").
			WithCode(gperror.CodeInvalidFormat).
			WithOperation("jsonx.DecodeFile").
			WithDetail("path", path))
		return zero, false
	}

	converted, err := json.Marshal(convertKeys(raw))
	if err != nil {
		return zero, false
	}
	return Decode[T](converted)
}

// convertKeys rewrites snake_case object keys recursively
func convertKeys(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			if strings.Contains(strings.Trim(k, "_"), "_") {
				k = stringx.SnakeToCamelCase(k)
			}
			out[k] = convertKeys(child)
		}
		return out
	case []any:
		for i, child := range node {
			node[i] = convertKeys(child)
		}
		return node
	default:
		return v
	}
}

// AppVersion returns the main module version recorded at build time. Absent
// for development builds and binaries without build information.
func AppVersion() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	v := info.Main.Version
	if v == "" || v == "(devel)" {
		return "", false
	}
	return v, true
}
