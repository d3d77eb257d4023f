// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package cache implements the object cache that turns an element id into
// its singleton hydrated element.
//
// The cache may be shared across documents: whatever element it returns for
// an id is canonical, and at most one live element exists per id. A small
// LRU of recently fetched payloads sits under the live map, so a remove
// followed by a re-add does not cost a second round-trip to the hub.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/avdeenko/biograph/internal/element"
	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

//go:generate mockgen -source=cache.go -destination=../mock/source_mock.go -package=mock

// DefaultPayloadCacheSize bounds the payload LRU when no size is given.
const DefaultPayloadCacheSize = 512

// Source fetches an element's transport form by id.
type Source interface {
	FetchElement(ctx context.Context, id models.ElementID) (models.ElementPayload, error)
}

// Cache resolves ids to singleton hydrated elements.
type Cache struct {
	log    *logger.Logger
	source Source
	synch  element.SynchFunc

	mu       sync.Mutex
	live     map[models.ElementID]models.Element
	inflight map[models.ElementID]*loadCall
	payloads *lru.Cache[models.ElementID, models.ElementPayload]
}

// loadCall is a pending hydration; concurrent loads of the same id wait on
// it instead of fetching twice.
type loadCall struct {
	done chan struct{}
	el   models.Element
	err  error
}

// Option configures a Cache.
type Option func(*Cache)

// WithSynchFunc installs the hook passed to every hydrated element.
func WithSynchFunc(fn element.SynchFunc) Option {
	return func(c *Cache) { c.synch = fn }
}

// New constructs a cache over the given source.
func New(log *logger.Logger, source Source, opts ...Option) (*Cache, error) {
	payloads, err := lru.New[models.ElementID, models.ElementPayload](DefaultPayloadCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating payload cache: %w", err)
	}

	c := &Cache{
		log:      log,
		source:   source,
		live:     make(map[models.ElementID]models.Element),
		inflight: make(map[models.ElementID]*loadCall),
		payloads: payloads,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Load returns the singleton element for id, hydrating it on first use.
// Concurrent loads of the same id coalesce into one fetch. A failed load is
// not cached; the next call retries.
func (c *Cache) Load(ctx context.Context, id models.ElementID) (models.Element, error) {
	c.mu.Lock()
	if el, ok := c.live[id]; ok {
		c.mu.Unlock()
		return el, nil
	}
	if call, ok := c.inflight[id]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.el, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &loadCall{done: make(chan struct{})}
	c.inflight[id] = call
	c.mu.Unlock()

	el, err := c.hydrate(ctx, id)

	c.mu.Lock()
	delete(c.inflight, id)
	if err == nil {
		c.live[id] = el
	}
	c.mu.Unlock()

	call.el, call.err = el, err
	close(call.done)
	return el, err
}

func (c *Cache) hydrate(ctx context.Context, id models.ElementID) (models.Element, error) {
	payload, ok := c.payloads.Get(id)
	if !ok {
		fetched, err := c.source.FetchElement(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch element %s: %w", id, err)
		}
		c.payloads.Add(id, fetched)
		payload = fetched
	}
	return element.FromPayload(payload, element.WithSynchFunc(c.synch)), nil
}

// Peek returns the live element for id without hydrating.
func (c *Cache) Peek(id models.ElementID) (models.Element, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.live[id]
	return el, ok
}

// Forget drops the live reference for id. The payload LRU keeps its copy, so
// a later Load rebuilds the element without refetching.
func (c *Cache) Forget(id models.ElementID) {
	c.mu.Lock()
	delete(c.live, id)
	c.mu.Unlock()
}

// Len returns the number of live elements.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}
