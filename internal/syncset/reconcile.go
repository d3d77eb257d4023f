// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package syncset

import (
	"context"
	"fmt"

	"github.com/avdeenko/biograph/models"
	"golang.org/x/sync/errgroup"
)

// pair is an element with its membership classification, accumulated during
// a reconciliation pass and flushed as one event batch after commit.
type pair struct {
	el    models.Element
	group *string
}

type regroup struct {
	el       models.Element
	group    *string
	oldGroup *string
}

// groupChange records a same-id entry whose classification changed.
type groupChange struct {
	id       models.ElementID
	group    *string
	oldGroup *string
}

// reconcile processes one remote diff. Strict phase order: diff membership,
// resolve removals synchronously, hydrate additions concurrently, commit all
// index mutations, then flush events. A hydration failure aborts before the
// commit phase, so a failed reconciliation mutates nothing and emits
// nothing.
func (s *Set) reconcile(ctx context.Context, updated, previous models.DocumentState) error {
	added, removed, changed := diffEntries(updated.Entries, previous.Entries)
	if len(added) == 0 && len(removed) == 0 && len(changed) == 0 {
		return nil
	}

	// Removals resolve against the index without hydration: a removed entry
	// was a member, so its element is already resident. Ids that never
	// hydrated are silently dropped.
	s.mu.Lock()
	removals := make([]pair, 0, len(removed))
	for _, e := range removed {
		if el, ok := s.index[e.ID]; ok {
			removals = append(removals, pair{el: el, group: e.Group})
		}
	}
	s.mu.Unlock()

	// Additions hydrate concurrently, one slot per entry so the batch keeps
	// entry order regardless of load completion order.
	additions := make([]pair, len(added))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range added {
		i, e := i, e
		g.Go(func() error {
			el, err := s.loader.Load(gctx, e.ID)
			if err != nil {
				return fmt.Errorf("hydrate %s: %w", e.ID, err)
			}
			if s.store.Live() && !el.Live() {
				if err := el.Synch(gctx, true); err != nil {
					return fmt.Errorf("activate %s: %w", e.ID, err)
				}
			}
			additions[i] = pair{el: el, group: e.Group}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Commit: additions before removals, one critical section, no events
	// until the index fully reflects the diff.
	regroups := make([]regroup, 0, len(changed))
	s.mu.Lock()
	for _, a := range additions {
		s.index[a.el.ElementID()] = a.el
	}
	for _, r := range removals {
		delete(s.index, r.el.ElementID())
	}
	for _, c := range changed {
		if el, ok := s.index[c.id]; ok {
			regroups = append(regroups, regroup{el: el, group: c.group, oldGroup: c.oldGroup})
		}
	}
	s.mu.Unlock()

	// Flush: adds, then removes, then regroups; a generic/remote pair per
	// mutation.
	for _, a := range additions {
		ev := models.Event{Element: a.el, Group: a.group}
		s.bus.Publish(models.EventAdd, ev)
		s.bus.Publish(models.EventRemoteAdd, ev)
	}
	for _, r := range removals {
		ev := models.Event{Element: r.el, Group: r.group}
		s.bus.Publish(models.EventRemove, ev)
		s.bus.Publish(models.EventRemoteRemove, ev)
	}
	for _, c := range regroups {
		ev := models.Event{Element: c.el, Group: c.group, OldGroup: c.oldGroup}
		s.bus.Publish(models.EventRegroup, ev)
		s.bus.Publish(models.EventRemoteRegroup, ev)
	}
	return nil
}

// LoadElements hydrates every entry currently in the sequence, concurrently.
// Each entry runs the full pipeline (load, index insert, liveness step)
// and a single load-elements event fires after all entries complete. No
// per-entry events are published; the terminal signal is the only one.
// Any single failure fails the whole call and suppresses the event.
func (s *Set) LoadElements(ctx context.Context) error {
	entries := dedupByID(s.store.Entries())

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			el, err := s.loader.Load(gctx, e.ID)
			if err != nil {
				return fmt.Errorf("hydrate %s: %w", e.ID, err)
			}

			s.mu.Lock()
			s.index[e.ID] = el
			s.mu.Unlock()

			if s.store.Live() && !el.Live() {
				if err := el.Synch(gctx, true); err != nil {
					return fmt.Errorf("activate %s: %w", e.ID, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.bus.Publish(models.EventLoadElements, models.Event{})
	return nil
}

// diffEntries computes the membership delta between two entry sequences by
// id. Entries present in both with a different group are reported as
// changed. Both inputs are deduplicated by first occurrence, keeping the
// id-uniqueness invariant even against a malformed snapshot.
func diffEntries(updated, previous []models.Entry) (added, removed []models.Entry, changed []groupChange) {
	updated = dedupByID(updated)
	previous = dedupByID(previous)

	prevByID := make(map[models.ElementID]models.Entry, len(previous))
	for _, e := range previous {
		prevByID[e.ID] = e
	}
	updByID := make(map[models.ElementID]struct{}, len(updated))

	for _, e := range updated {
		updByID[e.ID] = struct{}{}
		prev, ok := prevByID[e.ID]
		if !ok {
			added = append(added, e)
			continue
		}
		if !models.GroupEqual(e.Group, prev.Group) {
			changed = append(changed, groupChange{id: e.ID, group: e.Group, oldGroup: prev.Group})
		}
	}
	for _, e := range previous {
		if _, ok := updByID[e.ID]; !ok {
			removed = append(removed, e)
		}
	}
	return added, removed, changed
}

func dedupByID(entries []models.Entry) []models.Entry {
	seen := make(map[models.ElementID]struct{}, len(entries))
	out := entries[:0:0]
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}
