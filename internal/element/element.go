// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package element provides the concrete biological element types hydrated by
// the object cache.
package element

import (
	"context"
	"fmt"
	"sync"

	"github.com/avdeenko/biograph/models"
)

// SynchFunc is invoked when an element's own replication is toggled. It is
// how an element hooks into whatever transport its owner uses; the element
// itself stays transport-agnostic.
type SynchFunc func(ctx context.Context, id models.ElementID, enable bool) error

// Remote is a hydrated biological element replicated through the hub.
// It implements models.Element.
type Remote struct {
	payload models.ElementPayload
	synch   SynchFunc

	mu   sync.Mutex
	live bool
}

// Option configures a Remote at hydration time.
type Option func(*Remote)

// WithSynchFunc installs the hook invoked on every liveness transition.
func WithSynchFunc(fn SynchFunc) Option {
	return func(r *Remote) { r.synch = fn }
}

// FromPayload builds an element from its transport form. The element starts
// out not live; the owning scope activates it when appropriate.
func FromPayload(p models.ElementPayload, opts ...Option) *Remote {
	r := &Remote{payload: p}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ElementID implements models.Ref.
func (r *Remote) ElementID() models.ElementID { return r.payload.ID }

// Kind returns the SBGN kind of the element.
func (r *Remote) Kind() string { return r.payload.Kind }

// Label returns the display label.
func (r *Remote) Label() string { return r.payload.Label }

// Payload returns the element's transport form.
func (r *Remote) Payload() models.ElementPayload { return r.payload }

// Live implements models.Element.
func (r *Remote) Live() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

// Synch implements models.Element. Toggling to the current state is a no-op.
// The liveness flag only flips after the hook succeeds, so a failed
// transition leaves the element in its previous state.
func (r *Remote) Synch(ctx context.Context, enable bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live == enable {
		return nil
	}
	if r.synch != nil {
		if err := r.synch(ctx, r.payload.ID, enable); err != nil {
			return fmt.Errorf("synch element %s: %w", r.payload.ID, err)
		}
	}
	r.live = enable
	return nil
}
