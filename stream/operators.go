// File: operators.go
// Title: Stream Operators
// Description: Queue redirection, nil filtering, value logging and mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Map operator

package stream

import (
	"sync"

	"github.com/msto63/gopress/core/log"
	"github.com/msto63/gopress/sched"
)

// ReceiveOn delivers the events of p on q. Events keep their upstream order
// as long as q is serial. Nothing is delivered after the returned
// subscription is cancelled.
func ReceiveOn[T any](p Publisher[T], q sched.Queue) Publisher[T] {
	return PublisherFunc[T](func(sub Subscriber[T]) Cancellable {
		var (
			mu       sync.Mutex
			upstream Cancellable
		)
		subscription := newSubscription(func() {
			mu.Lock()
			u := upstream
			mu.Unlock()
			if u != nil {
				u.Cancel()
			}
		})
		u := p.Subscribe(Subscriber[T]{
			OnValue: func(v T) {
				q.Async(func() {
					if !subscription.IsCancelled() {
						sub.receive(v)
					}
				})
			},
			OnComplete: func() {
				q.Async(func() {
					if !subscription.IsCancelled() {
						sub.complete()
					}
				})
			},
		})
		mu.Lock()
		upstream = u
		mu.Unlock()
		if subscription.IsCancelled() {
			u.Cancel()
		}
		return subscription
	})
}

// ReceiveOnMain delivers the events of p on the main queue
func ReceiveOnMain[T any](p Publisher[T]) Publisher[T] {
	return ReceiveOn(p, sched.Main())
}

// FilterNotNil drops nil values and dereferences the rest
func FilterNotNil[T any](p Publisher[*T]) Publisher[T] {
	return PublisherFunc[T](func(sub Subscriber[T]) Cancellable {
		return p.Subscribe(Subscriber[*T]{
			OnValue: func(v *T) {
				if v != nil {
					sub.receive(*v)
				}
			},
			OnComplete: sub.complete,
		})
	})
}

// LogValues logs every value at info level as "received value" and passes it
// through unchanged. A nil logger uses the default logger.
func LogValues[T any](p Publisher[T], logger *log.Logger) Publisher[T] {
	if logger == nil {
		logger = log.GetDefault().WithName("stream")
	}
	return PublisherFunc[T](func(sub Subscriber[T]) Cancellable {
		return p.Subscribe(Subscriber[T]{
			OnValue: func(v T) {
				logger.Info("received value", log.Field("value", v))
				sub.receive(v)
			},
			OnComplete: sub.complete,
		})
	})
}

// Map transforms every value of p with fn
func Map[T, U any](p Publisher[T], fn func(T) U) Publisher[U] {
	return PublisherFunc[U](func(sub Subscriber[U]) Cancellable {
		return p.Subscribe(Subscriber[T]{
			OnValue: func(v T) {
				sub.receive(fn(v))
			},
			OnComplete: sub.complete,
		})
	})
}
