// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package server

import (
	"fmt"
	"slices"

	"github.com/avdeenko/biograph/models"
)

// applyMessage applies one client op to a document state, in place. It
// reports whether the state changed; a resync never changes state and an
// invalid op leaves the state untouched.
func applyMessage(state *models.DocumentState, msg models.WireMessage) (bool, error) {
	switch msg.Type {
	case models.MsgPush:
		if msg.Entry == nil {
			return false, ErrMissingEntry
		}
		if _, ok := models.EntryByID(state.Entries, msg.Entry.ID); ok {
			return false, fmt.Errorf("push %s: %w", msg.Entry.ID, ErrDuplicateEntry)
		}
		state.Entries = append(state.Entries, *msg.Entry)
		return true, nil

	case models.MsgPull:
		idx := slices.IndexFunc(state.Entries, func(e models.Entry) bool {
			return e.ID == msg.TargetID
		})
		if idx < 0 {
			return false, fmt.Errorf("pull %s: %w", msg.TargetID, ErrEntryNotFound)
		}
		state.Entries = slices.Delete(state.Entries, idx, idx+1)
		return true, nil

	case models.MsgMerge:
		if msg.Patch == nil {
			return false, fmt.Errorf("merge %s: %w", msg.TargetID, ErrMissingEntry)
		}
		idx := slices.IndexFunc(state.Entries, func(e models.Entry) bool {
			return e.ID == msg.TargetID
		})
		if idx < 0 {
			return false, fmt.Errorf("merge %s: %w", msg.TargetID, ErrEntryNotFound)
		}
		state.Entries[idx].Group = msg.Patch.Group
		return true, nil

	case models.MsgRename:
		if state.Name == msg.Name {
			return false, nil
		}
		state.Name = msg.Name
		return true, nil

	case models.MsgOrganism:
		if slices.Contains(state.Organisms, msg.Organism) {
			return false, nil
		}
		state.Organisms = append(state.Organisms, msg.Organism)
		return true, nil

	case models.MsgResync:
		return false, nil

	default:
		return false, fmt.Errorf("%q: %w", msg.Type, ErrUnknownMessage)
	}
}
