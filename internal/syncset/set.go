// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package syncset implements the synchronized element set: the bridge
// between a document's replicated entry sequence and the local index of
// hydrated elements.
//
// Local API calls mutate the index optimistically, push the change to the
// replicated store, and publish "local" events. Remote changes arrive as
// whole-document diffs; the set computes the membership delta, hydrates
// additions from the object cache, commits all index mutations, and only
// then flushes a batch of "remote" events. Subscribers therefore never
// observe the index mid-diff.
package syncset

import (
	"context"
	"errors"
	"sync"

	"github.com/avdeenko/biograph/internal/events"
	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/internal/replica"
	"github.com/avdeenko/biograph/models"
)

var (
	// ErrInvalidConfiguration means the replicated store does not declare
	// an entry sequence field; the set has nowhere to persist membership.
	ErrInvalidConfiguration = errors.New("store declares no entry sequence field")

	// ErrInvariantViolation marks a programming-contract breach, e.g. an id
	// present in the local index but missing from the entry sequence.
	ErrInvariantViolation = errors.New("set invariant violated")
)

// Loader hydrates an element by id. The object cache is the canonical
// implementation; whatever element it returns for an id is treated as
// canonical, and the set holds only non-owning references.
type Loader interface {
	Load(ctx context.Context, id models.ElementID) (models.Element, error)
}

// Set keeps the local element index consistent with the replicated entry
// sequence and publishes the document's element events.
//
// The index is exclusively owned by the set. All index mutations are
// serialized by mu; hydration I/O runs outside the lock and is always
// followed by a single atomic commit.
type Set struct {
	log    *logger.Logger
	bus    *events.Bus[models.Event]
	store  replica.Store
	loader Loader

	mu    sync.Mutex
	index map[models.ElementID]models.Element

	unsub     func()
	closeOnce sync.Once
}

// New constructs a set over the given store and subscribes it to the
// store's remote-diff feed. The caller owns the returned set's lifecycle
// and must Close it to release the subscription.
func New(log *logger.Logger, bus *events.Bus[models.Event], store replica.Store, loader Loader) (*Set, error) {
	if !store.HasField(replica.FieldEntries) {
		return nil, ErrInvalidConfiguration
	}

	s := &Set{
		log:    log,
		bus:    bus,
		store:  store,
		loader: loader,
		index:  make(map[models.ElementID]models.Element),
	}
	s.unsub = store.SubscribeDiffs(s.reconcile)
	return s, nil
}

// Close releases the remote-diff subscription. Idempotent. The index and
// read API stay usable; only reconciliation stops.
func (s *Set) Close() {
	s.closeOnce.Do(s.unsub)
}

// resolve looks up the canonical element for a reference in the index.
func (s *Set) resolve(ref models.Ref) (models.Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.index[ref.ElementID()]
	return el, ok
}
