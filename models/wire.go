// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package models

// Wire message types exchanged between a client session and the hub over the
// websocket sync channel.
const (
	// Client → hub operations against the replicated document.
	MsgPush     = "push"
	MsgPull     = "pull"
	MsgMerge    = "merge"
	MsgRename   = "rename"
	MsgOrganism = "organism-add"
	// MsgResync asks the hub to re-send the current snapshot to the
	// requesting session only.
	MsgResync = "resync"

	// Hub → client: full document snapshot.
	MsgSnapshot = "snapshot"
)

// WireMessage is the single frame format of the sync channel. Type selects
// which of the optional fields are meaningful.
type WireMessage struct {
	Type string `json:"type"`

	// MsgPush carries the new entry; MsgMerge carries the patch.
	Entry *Entry `json:"entry,omitempty"`
	Patch *Entry `json:"patch,omitempty"`

	// MsgPull and MsgMerge address an entry by id.
	TargetID ElementID `json:"target_id,omitempty"`

	Name     string `json:"name,omitempty"`
	Organism string `json:"organism,omitempty"`

	// Silent suppresses the hub's broadcast of the resulting snapshot; the
	// op is still applied and persisted.
	Silent bool `json:"silent,omitempty"`

	// MsgSnapshot payload.
	State *DocumentState `json:"state,omitempty"`
}
