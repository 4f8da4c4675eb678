// File: stream.go
// Title: Publishers and Subscriptions
// Description: Publisher and Subscriber types, subscriptions with ids, the
//              Subject implementation and slice source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: FromSlice source

package stream

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscriber receives the events of a publisher. Nil callbacks are skipped.
type Subscriber[T any] struct {
	OnValue    func(T)
	OnComplete func()
}

func (s Subscriber[T]) receive(v T) {
	if s.OnValue != nil {
		s.OnValue(v)
	}
}

func (s Subscriber[T]) complete() {
	if s.OnComplete != nil {
		s.OnComplete()
	}
}

// Cancellable ends a subscription
type Cancellable interface {
	Cancel()
}

// Publisher delivers values to subscribers
type Publisher[T any] interface {
	Subscribe(sub Subscriber[T]) Cancellable
}

// PublisherFunc adapts a function to the Publisher interface
type PublisherFunc[T any] func(sub Subscriber[T]) Cancellable

// Subscribe calls f(sub)
func (f PublisherFunc[T]) Subscribe(sub Subscriber[T]) Cancellable {
	return f(sub)
}

// Subscription is the Cancellable handed out by publishers of this package
type Subscription struct {
	id        uuid.UUID
	cancelled atomic.Bool
	once      sync.Once
	onCancel  func()
}

func newSubscription(onCancel func()) *Subscription {
	return &Subscription{id: uuid.New(), onCancel: onCancel}
}

// ID identifies the subscription
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Cancel stops delivery. Calling it more than once has no effect.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.cancelled.Store(true)
		if s.onCancel != nil {
			s.onCancel()
		}
	})
}

// IsCancelled reports whether Cancel was called
func (s *Subscription) IsCancelled() bool {
	return s.cancelled.Load()
}

// Sink subscribes callbacks to p
func Sink[T any](p Publisher[T], onValue func(T), onComplete func()) Cancellable {
	return p.Subscribe(Subscriber[T]{OnValue: onValue, OnComplete: onComplete})
}

type subjectEntry[T any] struct {
	sub Subscriber[T]
	s   *Subscription
}

// Subject is a publisher driven by Send and Complete. Values are delivered
// synchronously on the sending goroutine in subscription order.
type Subject[T any] struct {
	mu        sync.Mutex
	entries   []subjectEntry[T]
	completed bool
}

// NewSubject creates an open subject
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe registers sub. Subscribing to a completed subject completes sub
// immediately.
func (s *Subject[T]) Subscribe(sub Subscriber[T]) Cancellable {
	var subscription *Subscription
	subscription = newSubscription(func() { s.remove(subscription.id) })

	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		sub.complete()
		subscription.Cancel()
		return subscription
	}
	s.entries = append(s.entries, subjectEntry[T]{sub: sub, s: subscription})
	s.mu.Unlock()
	return subscription
}

// Send delivers v to every active subscriber. Values sent after Complete are
// dropped.
func (s *Subject[T]) Send(v T) {
	for _, e := range s.snapshot() {
		if !e.s.IsCancelled() {
			e.sub.receive(v)
		}
	}
}

// Complete finishes the subject and notifies every active subscriber
func (s *Subject[T]) Complete() {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		return
	}
	s.completed = true
	entries := s.entries
	s.entries = nil
	s.mu.Unlock()

	for _, e := range entries {
		if !e.s.IsCancelled() {
			e.sub.complete()
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (s *Subject[T]) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Subject[T]) snapshot() []subjectEntry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return nil
	}
	out := make([]subjectEntry[T], len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Subject[T]) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.s.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// FromSlice publishes values synchronously to each subscriber, then completes
func FromSlice[T any](values []T) Publisher[T] {
	return PublisherFunc[T](func(sub Subscriber[T]) Cancellable {
		subscription := newSubscription(nil)
		for _, v := range values {
			if subscription.IsCancelled() {
				return subscription
			}
			sub.receive(v)
		}
		if !subscription.IsCancelled() {
			sub.complete()
		}
		return subscription
	})
}
