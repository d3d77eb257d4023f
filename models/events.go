// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package models

// Event topics published on the document bus. For every element mutation a
// generic topic fires first, immediately followed by its local-/remote-
// qualified twin, so subscribers that only care about "something changed"
// (renderers) and subscribers that must tell local edits from remote ones
// apart (undo stacks, notification badges) share one bus.
const (
	EventAdd           = "add"
	EventRemoteAdd     = "remote-add"
	EventLocalAdd      = "local-add"
	EventRemove        = "remove"
	EventRemoteRemove  = "remote-remove"
	EventLocalRemove   = "local-remove"
	EventRegroup       = "regroup"
	EventRemoteRegroup = "remote-regroup"
	EventLocalRegroup  = "local-regroup"
	EventLoadElements  = "load-elements"

	EventRename       = "rename"
	EventRemoteRename = "remote-rename"
	EventLocalRename  = "local-rename"
	EventOrganismAdd  = "organism-add"
)

// Event is the payload carried on every document bus topic. Fields are
// sparse: element topics fill Element and the group fields, rename topics
// fill Name/OldName, organism topics fill Organism, and load-elements
// carries the zero value.
type Event struct {
	Element  Element
	Group    *string
	OldGroup *string

	Name    string
	OldName string

	Organism string
}
