// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package syncset

import (
	"context"
	"fmt"

	"github.com/avdeenko/biograph/internal/replica"
	"github.com/avdeenko/biograph/models"
	"golang.org/x/sync/errgroup"
)

// AddOptions qualify Add. Silent suppresses both the published events and
// the store's propagation of the push.
type AddOptions struct {
	Silent bool
	Group  *string
}

// RemoveOptions qualify Remove.
type RemoveOptions struct {
	Silent bool
}

// RegroupOptions qualify Regroup. A nil Group is the explicit "ungrouped"
// value; the store never persists an ambiguous unset.
type RegroupOptions struct {
	Silent bool
	Group  *string
}

// Add inserts the element into the set. Adding a current member is a no-op
// that succeeds without events. The index mutates optimistically before the
// store push; if the push is rejected the insert is reverted, so a failed
// Add leaves no trace. Events: add, then local-add.
func (s *Set) Add(ctx context.Context, el models.Element, opts AddOptions) error {
	id := el.ElementID()

	s.mu.Lock()
	if _, ok := s.index[id]; ok {
		s.mu.Unlock()
		return nil
	}
	s.index[id] = el
	s.mu.Unlock()

	entry := models.Entry{ID: id, Group: opts.Group}
	if err := s.store.Push(ctx, entry, replica.Options{Silent: opts.Silent}); err != nil {
		s.mu.Lock()
		delete(s.index, id)
		s.mu.Unlock()
		return fmt.Errorf("push entry %s: %w", id, err)
	}

	if opts.Silent {
		return nil
	}
	ev := models.Event{Element: el, Group: opts.Group}
	s.bus.Publish(models.EventAdd, ev)
	s.bus.Publish(models.EventLocalAdd, ev)
	return nil
}

// Remove deletes the referenced element from the set. Removing a non-member
// is a no-op. A member whose entry is missing from the sequence is a
// contract breach and fails with ErrInvariantViolation. The optimistic
// delete is reverted if the store rejects the pull. Events: remove, then
// local-remove.
func (s *Set) Remove(ctx context.Context, ref models.Ref, opts RemoveOptions) error {
	id := ref.ElementID()

	el, ok := s.resolve(ref)
	if !ok {
		return nil
	}

	entry, ok := models.EntryByID(s.store.Entries(), id)
	if !ok {
		return fmt.Errorf("entry %s gone from sequence: %w", id, ErrInvariantViolation)
	}

	s.mu.Lock()
	delete(s.index, id)
	s.mu.Unlock()

	if err := s.store.PullByID(ctx, id, replica.Options{Silent: opts.Silent}); err != nil {
		s.mu.Lock()
		s.index[id] = el
		s.mu.Unlock()
		return fmt.Errorf("pull entry %s: %w", id, err)
	}

	if opts.Silent {
		return nil
	}
	ev := models.Event{Element: el, Group: entry.Group}
	s.bus.Publish(models.EventRemove, ev)
	s.bus.Publish(models.EventLocalRemove, ev)
	return nil
}

// Regroup changes the referenced element's classification. Regrouping an id
// with no entry, or one whose element is not hydrated, is a no-op. Events:
// regroup, then local-regroup, carrying both the new and the old group.
func (s *Set) Regroup(ctx context.Context, ref models.Ref, opts RegroupOptions) error {
	id := ref.ElementID()

	el, ok := s.resolve(ref)
	if !ok {
		return nil
	}
	entry, ok := models.EntryByID(s.store.Entries(), id)
	if !ok {
		return nil
	}

	patch := models.Entry{ID: id, Group: opts.Group}
	if err := s.store.MergeByID(ctx, id, patch, replica.Options{Silent: opts.Silent}); err != nil {
		return fmt.Errorf("merge entry %s: %w", id, err)
	}

	if opts.Silent {
		return nil
	}
	ev := models.Event{Element: el, Group: opts.Group, OldGroup: entry.Group}
	s.bus.Publish(models.EventRegroup, ev)
	s.bus.Publish(models.EventLocalRegroup, ev)
	return nil
}

// Synch toggles every hydrated element's own synchronization, in parallel.
// Ids present in the entry sequence but not yet hydrated are untouched.
func (s *Set) Synch(ctx context.Context, enable bool) error {
	s.mu.Lock()
	elements := make([]models.Element, 0, len(s.index))
	for _, el := range s.index {
		elements = append(elements, el)
	}
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, el := range elements {
		el := el
		g.Go(func() error {
			return el.Synch(gctx, enable)
		})
	}
	return g.Wait()
}
