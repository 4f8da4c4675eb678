// File: bytes.go
// Title: Byte Rendering
// Description: Lowercase hex and standard Base64 rendering of byte slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation

package jsonx

import (
	"encoding/base64"
	"encoding/hex"
)

// HexString renders every byte as two lowercase hex digits
func HexString(b []byte) string {
	return hex.EncodeToString(b)
}

// Base64 renders b with the standard padded alphabet
func Base64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
