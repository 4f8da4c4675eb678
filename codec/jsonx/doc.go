// Package jsonx wraps JSON encoding and decoding with absent-on-failure
// results.
//
// Package: jsonx
// Title: JSON and Byte Encoding Helpers
// Description: Generic JSON decode/encode helpers that report failure as an
//              absent value and log the cause, hex and Base64 rendering of
//              byte slices, JSON resource loading from an fs.FS with
//              snake_case key conversion, and the application version from
//              build information.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-04 v0.1.0: Initial implementation
// - 2026-10-06 v0.1.1: DecodeFile and AppVersion
//
// Failure handling:
//
// Decode and Encode never return errors. A failure yields (zero, false) and
// the cause is logged at debug level through the default core/log logger as
// a *gperror.Error with code INVALID_FORMAT or ENCODING_ERROR. Callers that
// need the cause use DecodeErr.
//
//	user, ok := jsonx.Decode[User](body)
//	if !ok {
//	    return
//	}
//
// Resource files:
//
// DecodeFile reads name+"."+ext from any fs.FS, typically an embed.FS, and
// maps snake_case object keys onto Go field names before decoding:
//
//	//go:embed testdata
//	var assets embed.FS
//	cfg, ok := jsonx.DecodeFile[Catalog](assets, "testdata/catalog", "")
package jsonx
