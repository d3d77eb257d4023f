// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package models

import "slices"

// DocumentState is a full snapshot of a document's replicated fields. Remote
// diffs are delivered as (updated, previous) pairs of these snapshots.
type DocumentState struct {
	Name      string   `json:"name"`
	Organisms []string `json:"organisms"`
	Entries   []Entry  `json:"entries"`
}

// Clone returns a deep copy. Snapshots handed to diff subscribers must never
// alias the store's internal state.
func (s DocumentState) Clone() DocumentState {
	return DocumentState{
		Name:      s.Name,
		Organisms: slices.Clone(s.Organisms),
		Entries:   slices.Clone(s.Entries),
	}
}
