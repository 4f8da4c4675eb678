// Package fetch performs HTTP GET requests with a two-kind error taxonomy.
//
// Package: fetch
// Title: HTTP Data Fetching
// Description: A small HTTP client that returns the body and response of a
//              successful (2xx) GET, distinguishes transport failures from
//              non-success responses, decodes JSON bodies generically, logs
//              every request and records Prometheus metrics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-07 v0.1.0: Data and JSON
// - 2026-10-09 v0.1.1: Prometheus metrics, ValidateOpenURL
//
// Errors:
//
// Data reports exactly one of two kinds:
//
//	*RequestFailedError  the request could not be performed; Unwrap returns
//	                     the transport or context error
//	ErrInvalidResponse   a response arrived with a status outside 200..299
//
//	body, resp, err := client.Data(ctx, "https://example.com/api")
//	var rf *fetch.RequestFailedError
//	switch {
//	case errors.Is(err, fetch.ErrInvalidResponse):
//	    // inspect resp.StatusCode
//	case errors.As(err, &rf):
//	    // network problem, rf.Err holds the cause
//	}
//
// JSON decode failures from fetch.JSON are returned unchanged so callers can
// tell them apart from both kinds above.
//
// Metrics:
//
// WithMetrics registers gopress_fetch_requests_total{outcome} and
// gopress_fetch_duration_seconds on the given registerer.
//
// Cancellation:
//
// The context passed to Data bounds the whole request. There is no retry and
// no timeout besides the context and the configured http.Client.
package fetch
