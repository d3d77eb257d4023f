// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package events provides the in-process publish/subscribe bus shared by a
// document and its synchronized element set.
//
// Delivery is synchronous and in subscription order: Publish invokes every
// handler for the topic before returning. Downstream consumers (undo stacks,
// renderers) rely on that determinism, so the bus never reorders, drops, or
// defers events.
package events

import (
	"slices"
	"sync"
)

// Bus is a topic-keyed publish/subscribe channel carrying payloads of type T.
// The zero value is not usable; call New.
type Bus[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// New constructs an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[string][]subscription[T])}
}

// Subscribe registers fn for topic and returns a cancel function releasing
// the registration. Cancel is idempotent and safe to call concurrently with
// Publish.
func (b *Bus[T]) Subscribe(topic string, fn func(T)) (cancel func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription[T]{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs[topic] = slices.DeleteFunc(b.subs[topic], func(s subscription[T]) bool {
			return s.id == id
		})
	}
}

// Publish delivers v to every handler subscribed to topic, in subscription
// order, on the calling goroutine.
func (b *Bus[T]) Publish(topic string, v T) {
	b.mu.RLock()
	handlers := slices.Clone(b.subs[topic])
	b.mu.RUnlock()

	for _, s := range handlers {
		s.fn(v)
	}
}
