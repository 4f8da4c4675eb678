// File: errors.go
// Title: Fetch Errors
// Description: The invalid response sentinel and the request failure type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package fetch

import "errors"

// ErrInvalidResponse is returned when the server answers with a non-2xx status
var ErrInvalidResponse = errors.New("fetch: invalid response")

// RequestFailedError reports that the request could not be performed
type RequestFailedError struct {
	URL string
	Err error
}

func (e *RequestFailedError) Error() string {
	return "fetch: request to " + e.URL + " failed: " + e.Err.Error()
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}
