// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package replica

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/models"
)

// Forwarder carries local mutations to the hub. A Doc without a forwarder is
// standalone: mutations apply locally only, which is exactly what tests and
// offline use need.
type Forwarder interface {
	Forward(ctx context.Context, msg models.WireMessage) error
}

// Doc is the local copy of a replicated document.
//
// The state is guarded by mu. Remote snapshots are delivered to diff
// subscribers outside the state lock, serialized by deliverMu so one diff is
// fully processed, subscriber callbacks included, before the next begins.
type Doc struct {
	log *logger.Logger

	mu        sync.RWMutex
	state     models.DocumentState
	live      bool
	forwarder Forwarder

	deliverMu sync.Mutex

	subMu  sync.Mutex
	nextID int
	subs   []diffSub
}

type diffSub struct {
	id int
	fn DiffFunc
}

// NewDoc constructs an empty standalone document.
func NewDoc(log *logger.Logger) *Doc {
	return &Doc{log: log}
}

// SetForwarder binds the transport that carries local mutations to the hub.
func (d *Doc) SetForwarder(f Forwarder) {
	d.mu.Lock()
	d.forwarder = f
	d.mu.Unlock()
}

// SetLive flips the scope's own synchronization flag.
func (d *Doc) SetLive(live bool) {
	d.mu.Lock()
	d.live = live
	d.mu.Unlock()
}

// Live implements Store.
func (d *Doc) Live() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.live
}

// HasField implements Store. Every Doc declares the full field set.
func (d *Doc) HasField(name string) bool {
	switch name {
	case FieldName, FieldOrganisms, FieldEntries, FieldLive:
		return true
	}
	return false
}

// State returns a snapshot of the current document state.
func (d *Doc) State() models.DocumentState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Clone()
}

// Entries implements Store.
func (d *Doc) Entries() []models.Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.state.Entries)
}

// Name returns the document's replicated name.
func (d *Doc) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Name
}

// Organisms returns the document's replicated organism list.
func (d *Doc) Organisms() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.state.Organisms)
}

// Push implements Store. The entry applies locally first, then the op is
// forwarded; a forwarding failure reverts the local append so the doc never
// drifts ahead of a hub that rejected the op.
func (d *Doc) Push(ctx context.Context, entry models.Entry, opts Options) error {
	d.mu.Lock()
	if _, ok := models.EntryByID(d.state.Entries, entry.ID); ok {
		d.mu.Unlock()
		return fmt.Errorf("push %s: %w", entry.ID, ErrDuplicateEntry)
	}
	d.state.Entries = append(d.state.Entries, entry)
	d.mu.Unlock()

	err := d.forward(ctx, models.WireMessage{Type: models.MsgPush, Entry: &entry, Silent: opts.Silent})
	if err != nil {
		d.mu.Lock()
		d.state.Entries = slices.DeleteFunc(d.state.Entries, func(e models.Entry) bool {
			return e.ID == entry.ID
		})
		d.mu.Unlock()
		return fmt.Errorf("forward push %s: %w", entry.ID, err)
	}
	return nil
}

// PullByID implements Store.
func (d *Doc) PullByID(ctx context.Context, id models.ElementID, opts Options) error {
	d.mu.Lock()
	idx := slices.IndexFunc(d.state.Entries, func(e models.Entry) bool { return e.ID == id })
	if idx < 0 {
		d.mu.Unlock()
		return fmt.Errorf("pull %s: %w", id, ErrEntryNotFound)
	}
	removed := d.state.Entries[idx]
	d.state.Entries = slices.Delete(slices.Clone(d.state.Entries), idx, idx+1)
	d.mu.Unlock()

	err := d.forward(ctx, models.WireMessage{Type: models.MsgPull, TargetID: id, Silent: opts.Silent})
	if err != nil {
		d.mu.Lock()
		if _, ok := models.EntryByID(d.state.Entries, id); !ok {
			d.state.Entries = slices.Insert(d.state.Entries, min(idx, len(d.state.Entries)), removed)
		}
		d.mu.Unlock()
		return fmt.Errorf("forward pull %s: %w", id, err)
	}
	return nil
}

// MergeByID implements Store.
func (d *Doc) MergeByID(ctx context.Context, id models.ElementID, patch models.Entry, opts Options) error {
	d.mu.Lock()
	idx := slices.IndexFunc(d.state.Entries, func(e models.Entry) bool { return e.ID == id })
	if idx < 0 {
		d.mu.Unlock()
		return fmt.Errorf("merge %s: %w", id, ErrEntryNotFound)
	}
	prev := d.state.Entries[idx].Group
	d.state.Entries[idx].Group = patch.Group
	d.mu.Unlock()

	err := d.forward(ctx, models.WireMessage{Type: models.MsgMerge, TargetID: id, Patch: &patch, Silent: opts.Silent})
	if err != nil {
		d.mu.Lock()
		if i := slices.IndexFunc(d.state.Entries, func(e models.Entry) bool { return e.ID == id }); i >= 0 {
			d.state.Entries[i].Group = prev
		}
		d.mu.Unlock()
		return fmt.Errorf("forward merge %s: %w", id, err)
	}
	return nil
}

// SetName replaces the document's replicated name.
func (d *Doc) SetName(ctx context.Context, name string, opts Options) error {
	d.mu.Lock()
	prev := d.state.Name
	d.state.Name = name
	d.mu.Unlock()

	err := d.forward(ctx, models.WireMessage{Type: models.MsgRename, Name: name, Silent: opts.Silent})
	if err != nil {
		d.mu.Lock()
		d.state.Name = prev
		d.mu.Unlock()
		return fmt.Errorf("forward rename: %w", err)
	}
	return nil
}

// AddOrganism appends an organism tag to the document. Duplicates are
// dropped silently; the list behaves as an ordered set.
func (d *Doc) AddOrganism(ctx context.Context, organism string, opts Options) error {
	d.mu.Lock()
	if slices.Contains(d.state.Organisms, organism) {
		d.mu.Unlock()
		return nil
	}
	d.state.Organisms = append(d.state.Organisms, organism)
	d.mu.Unlock()

	err := d.forward(ctx, models.WireMessage{Type: models.MsgOrganism, Organism: organism, Silent: opts.Silent})
	if err != nil {
		d.mu.Lock()
		d.state.Organisms = slices.DeleteFunc(d.state.Organisms, func(o string) bool { return o == organism })
		d.mu.Unlock()
		return fmt.Errorf("forward organism: %w", err)
	}
	return nil
}

// SubscribeDiffs implements Store.
func (d *Doc) SubscribeDiffs(fn DiffFunc) (cancel func()) {
	d.subMu.Lock()
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, diffSub{id: id, fn: fn})
	d.subMu.Unlock()

	return func() {
		d.subMu.Lock()
		defer d.subMu.Unlock()
		d.subs = slices.DeleteFunc(d.subs, func(s diffSub) bool { return s.id == id })
	}
}

// ApplyRemote installs a snapshot received from the hub and feeds the remote
// diff feed. Identical snapshots (by digest) are dropped without notifying
// anyone. Deliveries are serialized: one diff is fully processed before the
// next begins. A subscriber error is logged and returned, and rolls the
// snapshot back so a later resync can re-deliver it.
func (d *Doc) ApplyRemote(ctx context.Context, state models.DocumentState) error {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	updated := state.Clone()

	d.mu.Lock()
	previous := d.state
	if Digest(previous) == Digest(updated) {
		d.mu.Unlock()
		return nil
	}
	d.state = updated.Clone()
	d.mu.Unlock()

	d.subMu.Lock()
	subs := slices.Clone(d.subs)
	d.subMu.Unlock()

	var firstErr error
	for _, s := range subs {
		if err := s.fn(ctx, updated.Clone(), previous.Clone()); err != nil {
			d.log.Error().Err(err).Msg("remote diff subscriber failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	// A failed delivery rolls the snapshot back, so the next resync is not
	// digest-deduped and re-delivers the diff.
	if firstErr != nil {
		d.mu.Lock()
		d.state = previous
		d.mu.Unlock()
	}
	return firstErr
}

// forward hands the op to the bound transport, if any.
func (d *Doc) forward(ctx context.Context, msg models.WireMessage) error {
	d.mu.RLock()
	f := d.forwarder
	d.mu.RUnlock()

	if f == nil {
		return nil
	}
	return f.Forward(ctx, msg)
}
