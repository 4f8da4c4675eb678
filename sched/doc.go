// File: doc.go
// Title: Serial Queue and Scheduling Package Documentation
// Description: Serial execution queues plus delayed and repeated scheduling
//              of work with cancellable handles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-10 v0.1.0: Initial package documentation

/*
Package sched runs closures on serial queues, after a delay or repeatedly.

A SerialQueue executes submitted work one closure at a time in submission
order on a single goroutine. Main returns the process-wide main queue, the
place where UI-facing code and stream deliveries run.

	item := sched.ScheduleRepeatedly(sched.Main(), time.Second, tick, sched.Times(5))
	defer item.Cancel()
	<-item.Done()

Cancelling a WorkItem prevents future invocations. An invocation that is
already running is never interrupted; Done closes once it returns.

Panics raised by scheduled work are recovered by the queue and logged.
*/
package sched
