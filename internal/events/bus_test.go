// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishInSubscriptionOrder(t *testing.T) {
	bus := New[string]()

	var got []string
	bus.Subscribe("topic", func(v string) { got = append(got, "first:"+v) })
	bus.Subscribe("topic", func(v string) { got = append(got, "second:"+v) })

	bus.Publish("topic", "x")

	require.Equal(t, []string{"first:x", "second:x"}, got)
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	bus := New[int]()

	var adds, removes int
	bus.Subscribe("add", func(int) { adds++ })
	bus.Subscribe("remove", func(int) { removes++ })

	bus.Publish("add", 1)
	bus.Publish("add", 2)

	assert.Equal(t, 2, adds)
	assert.Equal(t, 0, removes)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New[int]()

	var calls int
	cancel := bus.Subscribe("topic", func(int) { calls++ })

	bus.Publish("topic", 1)
	cancel()
	bus.Publish("topic", 2)
	cancel() // idempotent

	assert.Equal(t, 1, calls)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := New[struct{}]()
	assert.NotPanics(t, func() { bus.Publish("nobody-home", struct{}{}) })
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	bus := New[int]()

	var lateCalls int
	bus.Subscribe("topic", func(int) {
		// Subscribing from a handler must not deadlock.
		bus.Subscribe("topic", func(int) { lateCalls++ })
	})

	require.NotPanics(t, func() { bus.Publish("topic", 1) })
	bus.Publish("topic", 2)
	assert.Equal(t, 1, lateCalls)
}
