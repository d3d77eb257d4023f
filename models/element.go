// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package models

import "context"

// ElementID identifies a biological element within a document.
type ElementID string

// ElementID implements [Ref], so a bare identifier can be passed anywhere
// an element reference is accepted.
func (id ElementID) ElementID() ElementID { return id }

// Ref is a typed reference to an element: either a bare [ElementID] or a
// hydrated [Element]. Every API that documents an "element" parameter takes
// a Ref and resolves it through this single method, so callers are never
// forced to hold the hydrated object just to name it.
type Ref interface {
	ElementID() ElementID
}

// Element is a hydrated biological element. Elements own their replication
// lifecycle independently of any set that holds them: Live reports whether
// the element is currently self-synchronizing, and Synch toggles that state.
//
// The object cache is the sole allocator of elements; everything else holds
// non-owning references.
type Element interface {
	Ref

	// Live reports whether the element is currently self-synchronizing.
	Live() bool

	// Synch enables or disables the element's own synchronization. The call
	// may block on a storage or network round-trip; ctx governs it.
	Synch(ctx context.Context, enable bool) error
}

// Element kinds follow SBGN entity-pool and process-node vocabulary.
const (
	KindMacromolecule = "macromolecule"
	KindComplex       = "complex"
	KindCompartment   = "compartment"
	KindProcess       = "process"
)

// ElementPayload is the transport form of an element: everything the hub
// persists and a client needs to hydrate the element locally.
type ElementPayload struct {
	ID      ElementID `json:"id"`
	Kind    string    `json:"kind"`
	Label   string    `json:"label"`
	SBOTerm string    `json:"sbo_term,omitempty"`
}
