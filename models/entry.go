// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package models

// Entry is the lightweight replicated membership record: an element belongs
// to a document exactly when an Entry with its id is present in the
// document's entry sequence.
//
// Group is either a non-empty classification tag or nil. Absence is always
// stored as an explicit null (a nil pointer marshals to JSON null, never an
// omitted field), so replicas never have to distinguish "unset" from
// "missing".
type Entry struct {
	ID    ElementID `json:"id"`
	Group *string   `json:"group"`
}

// EntryByID returns the first entry with the given id. The entry sequence is
// id-unique by invariant; first match wins if that invariant is ever broken.
func EntryByID(entries []Entry, id ElementID) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// GroupEqual reports whether two group tags are the same, treating nil as
// the ungrouped state.
func GroupEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Group returns a pointer to the given tag, for building entries and patches.
func Group(tag string) *string { return &tag }
