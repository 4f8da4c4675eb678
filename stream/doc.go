// File: doc.go
// Title: Stream Package Documentation
// Description: Minimal push-based publishers with subject, operators and a
//              websocket source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial package documentation

/*
Package stream provides a small push-based value stream.

A Publisher delivers values to a Subscriber until it completes or the
subscription is cancelled. Subject is a publisher fed by Send and Complete;
FromSlice and FromWebSocket are ready-made sources. Operators wrap a
publisher and return a new one:

	sub := stream.Sink(
		stream.ReceiveOnMain(stream.LogValues(stream.FilterNotNil(src), nil)),
		func(v int) { render(v) },
		nil,
	)
	defer sub.Cancel()

Operators introduce no buffering of their own. ReceiveOn hands every event
to a sched.Queue, which preserves the upstream order.
*/
package stream
