// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package document assembles the working aggregate for one open diagram:
// the replicated state, the synchronized element set, and the event bus the
// rest of the application subscribes to.
package document

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/avdeenko/biograph/internal/events"
	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/internal/replica"
	"github.com/avdeenko/biograph/internal/syncset"
	"github.com/avdeenko/biograph/models"
)

// Document owns the lifecycle of one open diagram. It wires the set into
// the replica's diff feed, watches the replicated name and organisms fields
// itself, and tears the whole assembly down in Close.
type Document struct {
	log *logger.Logger
	bus *events.Bus[models.Event]
	doc *replica.Doc
	set *syncset.Set

	session io.Closer
	unsub   func()

	closeOnce sync.Once
}

// Option customizes Open.
type Option func(*Document)

// WithSession hands the document ownership of the sync session; Close will
// close it after the diff subscriptions are released.
func WithSession(s io.Closer) Option {
	return func(d *Document) { d.session = s }
}

// Open builds the aggregate over an already-populated replica and hydrates
// every element currently in the sequence. A hydration failure tears down
// the partially built aggregate and returns the error.
func Open(ctx context.Context, log *logger.Logger, doc *replica.Doc, loader syncset.Loader, opts ...Option) (*Document, error) {
	bus := events.New[models.Event]()

	set, err := syncset.New(log, bus, doc, loader)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	d := &Document{
		log: log,
		bus: bus,
		doc: doc,
		set: set,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.unsub = doc.SubscribeDiffs(d.reconcileFields)

	if err := set.LoadElements(ctx); err != nil {
		d.Close()
		return nil, fmt.Errorf("open document: %w", err)
	}
	return d, nil
}

// Close releases the diff subscriptions and the session, once. Read access
// to the set and replica stays valid afterwards; only synchronization stops.
func (d *Document) Close() {
	d.closeOnce.Do(func() {
		d.set.Close()
		d.unsub()
		if d.session != nil {
			if err := d.session.Close(); err != nil {
				d.log.Error().Err(err).Msg("close session")
			}
		}
	})
}

// Set exposes the synchronized element set.
func (d *Document) Set() *syncset.Set { return d.set }

// Events exposes the aggregate's event bus.
func (d *Document) Events() *events.Bus[models.Event] { return d.bus }

// Name returns the current document name.
func (d *Document) Name() string { return d.doc.Name() }

// Organisms returns the document's organisms list.
func (d *Document) Organisms() []string { return d.doc.Organisms() }

// State returns a snapshot of the full replicated state.
func (d *Document) State() models.DocumentState { return d.doc.State() }

// Rename sets the document name. Renaming to the current name is a no-op.
// Events: rename, then local-rename, carrying old and new name.
func (d *Document) Rename(ctx context.Context, name string) error {
	old := d.doc.Name()
	if old == name {
		return nil
	}
	if err := d.doc.SetName(ctx, name, replica.Options{}); err != nil {
		return fmt.Errorf("rename document: %w", err)
	}

	ev := models.Event{Name: name, OldName: old}
	d.bus.Publish(models.EventRename, ev)
	d.bus.Publish(models.EventLocalRename, ev)
	return nil
}

// AddOrganism appends an organism to the document. Adding one already listed
// is a no-op. Event: organism-add.
func (d *Document) AddOrganism(ctx context.Context, organism string) error {
	if slices.Contains(d.doc.Organisms(), organism) {
		return nil
	}
	if err := d.doc.AddOrganism(ctx, organism, replica.Options{}); err != nil {
		return fmt.Errorf("add organism: %w", err)
	}

	d.bus.Publish(models.EventOrganismAdd, models.Event{Organism: organism})
	return nil
}

// reconcileFields watches the non-element replicated fields. Element
// membership is the set's business; this handler only reports name and
// organism changes carried by a remote snapshot.
func (d *Document) reconcileFields(_ context.Context, updated, previous models.DocumentState) error {
	if updated.Name != previous.Name {
		ev := models.Event{Name: updated.Name, OldName: previous.Name}
		d.bus.Publish(models.EventRename, ev)
		d.bus.Publish(models.EventRemoteRename, ev)
	}
	for _, organism := range updated.Organisms {
		if !slices.Contains(previous.Organisms, organism) {
			d.bus.Publish(models.EventOrganismAdd, models.Event{Organism: organism})
		}
	}
	return nil
}
