// File: queue.go
// Title: Serial Queues
// Description: FIFO execution queues backed by a single worker goroutine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation
// - 2026-10-12 v0.1.1: Sync and panic recovery

package sched

import (
	"fmt"
	"sync"

	"github.com/msto63/gopress/core/log"
)

// Queue accepts work for asynchronous execution
type Queue interface {
	Async(fn func())
}

// QueueFunc adapts a function to the Queue interface
type QueueFunc func(fn func())

// Async calls f(fn)
func (f QueueFunc) Async(fn func()) { f(fn) }

// Inline runs work immediately on the calling goroutine
var Inline Queue = QueueFunc(func(fn func()) { fn() })

// QueueOption configures a SerialQueue
type QueueOption func(*SerialQueue)

// WithLogger sets the logger used for recovered panics and dropped work
func WithLogger(logger *log.Logger) QueueOption {
	return func(q *SerialQueue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// SerialQueue runs closures one at a time in submission order
type SerialQueue struct {
	name   string
	logger *log.Logger

	mu     sync.Mutex
	tasks  []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// NewSerialQueue starts a queue and its worker goroutine
func NewSerialQueue(name string, opts ...QueueOption) *SerialQueue {
	q := &SerialQueue{
		name:   name,
		logger: log.GetDefault().WithName("sched"),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.loop()
	return q
}

var (
	mainOnce  sync.Once
	mainQueue *SerialQueue
)

// Main returns the process-wide main queue
func Main() *SerialQueue {
	mainOnce.Do(func() {
		mainQueue = NewSerialQueue("main")
	})
	return mainQueue
}

// Name returns the queue name
func (q *SerialQueue) Name() string {
	return q.name
}

// Async appends fn to the queue. It never blocks. Work submitted after
// Close is dropped.
func (q *SerialQueue) Async(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("work submitted to closed queue dropped", log.Field("queue", q.name))
		return
	}
	q.tasks = append(q.tasks, fn)
	select {
	case q.wake <- struct{}{}:
	default:
	}
	q.mu.Unlock()
}

// Sync submits fn and waits until it has run. Calling Sync from work running
// on the same queue deadlocks.
func (q *SerialQueue) Sync(fn func()) {
	ran := make(chan struct{})
	q.Async(func() {
		defer close(ran)
		if fn != nil {
			fn()
		}
	})

	select {
	case <-ran:
	case <-q.done:
	}
}

// Close stops accepting work, runs everything already queued and waits for
// the worker to exit
func (q *SerialQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.wake)
	}
	q.mu.Unlock()
	<-q.done
}

func (q *SerialQueue) loop() {
	defer close(q.done)
	for {
		fn, ok := q.next()
		if ok {
			q.run(fn)
			continue
		}
		if _, open := <-q.wake; !open {
			// closed: drain whatever arrived before Close
			for {
				fn, ok := q.next()
				if !ok {
					return
				}
				q.run(fn)
			}
		}
	}
}

func (q *SerialQueue) next() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return nil, false
	}
	fn := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return fn, true
}

func (q *SerialQueue) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("recovered panic in scheduled work", log.Fields{
				"queue": q.name,
				"panic": fmt.Sprint(r),
			})
		}
	}()
	fn()
}
