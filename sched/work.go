// File: work.go
// Title: Delayed and Repeated Work
// Description: Cancellable work items scheduled on a queue after a delay or
//              at a fixed interval.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation
// - 2026-10-12 v0.1.1: Done channel

package sched

import (
	"sync"
	"time"
)

// WorkItem is the handle of delayed or repeated work
type WorkItem struct {
	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
	finished  bool
	done      chan struct{}
}

func newWorkItem() *WorkItem {
	return &WorkItem{done: make(chan struct{})}
}

// Cancel prevents future invocations. A running invocation completes.
func (w *WorkItem) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancelled || w.finished {
		return
	}
	w.cancelled = true
	// a timer that has not fired yet owns no pending invocation
	if w.timer != nil && w.timer.Stop() {
		w.finishLocked()
	}
}

// IsCancelled reports whether Cancel was called before the item finished
func (w *WorkItem) IsCancelled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancelled
}

// Done is closed when the item has run to completion or was cancelled and
// no invocation is in flight
func (w *WorkItem) Done() <-chan struct{} {
	return w.done
}

func (w *WorkItem) schedule(q Queue, d time.Duration, run func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancelled {
		w.finishLocked()
		return
	}
	w.timer = time.AfterFunc(d, func() { q.Async(run) })
}

// begin reports whether an invocation may start
func (w *WorkItem) begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancelled {
		w.finishLocked()
		return false
	}
	return true
}

func (w *WorkItem) finish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.finishLocked()
}

func (w *WorkItem) finishLocked() {
	if w.finished {
		return
	}
	w.finished = true
	close(w.done)
}

// Delay runs fn on q once d has elapsed
func Delay(q Queue, d time.Duration, fn func()) *WorkItem {
	item := newWorkItem()
	item.schedule(q, d, func() {
		if !item.begin() {
			return
		}
		defer item.finish()
		if fn != nil {
			fn()
		}
	})
	return item
}

type repeatOptions struct {
	times int
}

// RepeatOption configures ScheduleRepeatedly
type RepeatOption func(*repeatOptions)

// Times bounds the number of invocations. n <= 0 means unbounded.
func Times(n int) RepeatOption {
	return func(o *repeatOptions) {
		o.times = n
	}
}

// ScheduleRepeatedly runs fn on q every interval until the item is cancelled
// or the Times bound is reached. The interval is measured from the end of
// one invocation to the scheduling of the next.
func ScheduleRepeatedly(q Queue, interval time.Duration, fn func(), opts ...RepeatOption) *WorkItem {
	var o repeatOptions
	for _, opt := range opts {
		opt(&o)
	}

	item := newWorkItem()
	remaining := o.times
	bounded := remaining > 0

	var run func()
	run = func() {
		if !item.begin() {
			return
		}
		last := false
		if bounded {
			remaining--
			last = remaining == 0
		}
		defer func() {
			if last {
				item.finish()
				return
			}
			item.schedule(q, interval, run)
		}()
		if fn != nil {
			fn()
		}
	}

	item.schedule(q, interval, run)
	return item
}
