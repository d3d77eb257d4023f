// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package replica

import (
	"context"
	"sync"
	"time"
)

// Resyncer periodically asks the hub for a fresh snapshot. Snapshot
// broadcasts are push-based; the resyncer is the pull-based repair path for
// sessions that missed a frame. Idle until Start is called.
type Resyncer struct {
	session *Session

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResyncer creates a resyncer bound to a session.
func NewResyncer(session *Session) *Resyncer {
	return &Resyncer{session: session}
}

// Start stops any previously running job, then requests a snapshot every
// interval until ctx is cancelled or Stop is called. A non-positive interval
// defaults to one minute.
func (r *Resyncer) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = r.session.Resync(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (r *Resyncer) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}
