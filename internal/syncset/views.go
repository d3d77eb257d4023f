// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package syncset

import (
	"github.com/avdeenko/biograph/models"
)

// Has reports membership. Membership is governed by the local index alone:
// an id whose entry is replicated but not yet hydrated is not a member yet.
func (s *Set) Has(ref models.Ref) bool {
	_, ok := s.resolve(ref)
	return ok
}

// Get returns the hydrated element for a reference.
func (s *Set) Get(ref models.Ref) (models.Element, bool) {
	return s.resolve(ref)
}

// Size returns the number of hydrated members.
func (s *Set) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.index)
}

// Elements returns every hydrated element in entry-sequence order. Entries
// whose element has not hydrated yet are skipped without error: the view
// tolerates an index that lags the sequence.
func (s *Set) Elements() []models.Element {
	return s.collect(func(models.Entry) bool { return true })
}

// ElementsByGroup returns the hydrated elements whose entry carries the
// given group, in entry-sequence order. A nil group selects ungrouped
// entries.
func (s *Set) ElementsByGroup(group *string) []models.Element {
	return s.collect(func(e models.Entry) bool { return models.GroupEqual(e.Group, group) })
}

// Group returns the referenced entry's current classification. The second
// return value reports whether the id is a current member of the entry
// sequence; a nil group with true means explicitly ungrouped.
func (s *Set) Group(ref models.Ref) (*string, bool) {
	entry, ok := models.EntryByID(s.store.Entries(), ref.ElementID())
	if !ok {
		return nil, false
	}
	return entry.Group, true
}

func (s *Set) collect(match func(models.Entry) bool) []models.Element {
	entries := s.store.Entries()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Element, 0, len(entries))
	for _, e := range entries {
		if !match(e) {
			continue
		}
		if el, ok := s.index[e.ID]; ok {
			out = append(out, el)
		}
	}
	return out
}
