// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package replica implements the replicated document state shared between
// collaboration sessions.
//
// A Doc holds the authoritative local copy of a document's replicated
// fields. Local mutations apply optimistically and are forwarded to the hub;
// remote changes arrive as whole-document snapshots and are surfaced to
// subscribers as (updated, previous) diff pairs. Session is the websocket
// transport binding a Doc to the hub.
package replica

import (
	"context"
	"errors"

	"github.com/avdeenko/biograph/models"
)

//go:generate mockgen -source=replica.go -destination=../mock/store_mock.go -package=mock

// Replicated field names declared by every document.
const (
	FieldName      = "name"
	FieldOrganisms = "organisms"
	FieldEntries   = "elements"
	FieldLive      = "live"
)

var (
	// ErrDuplicateEntry rejects a push whose id is already present in the
	// entry sequence. Id-uniqueness is enforced at every mutation point.
	ErrDuplicateEntry = errors.New("duplicate entry id")

	// ErrEntryNotFound rejects a pull or merge addressing an id that is not
	// in the entry sequence.
	ErrEntryNotFound = errors.New("entry not found")
)

// DiffFunc receives a remote diff: the snapshot after and before the change.
// Returning an error marks the reconciliation of that diff as failed; the
// store logs it and moves on; there is no retry at this layer.
type DiffFunc func(ctx context.Context, updated, previous models.DocumentState) error

// Options qualify a store mutation. Silent suppresses the store's own
// propagation side effects (the hub does not broadcast the resulting
// snapshot); the mutation is still applied and persisted.
type Options struct {
	Silent bool
}

// Store is the replicated-state surface the synchronized set consumes.
// *Doc is the canonical implementation.
type Store interface {
	// HasField reports whether the store declares the named replicated
	// field. A set cannot operate on a store without an entry sequence.
	HasField(name string) bool

	// Entries returns the current entry sequence, in order.
	Entries() []models.Entry

	// Live reports whether this scope is actively synchronizing.
	Live() bool

	// Push appends a new entry to the entry sequence.
	Push(ctx context.Context, entry models.Entry, opts Options) error

	// PullByID removes the entry with the given id.
	PullByID(ctx context.Context, id models.ElementID, opts Options) error

	// MergeByID patches the entry with the given id in place. Only the
	// group classification is patchable; identity never changes.
	MergeByID(ctx context.Context, id models.ElementID, patch models.Entry, opts Options) error

	// SubscribeDiffs registers fn on the remote-diff feed and returns a
	// cancel function releasing the subscription.
	SubscribeDiffs(fn DiffFunc) (cancel func())
}
