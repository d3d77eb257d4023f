// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package server implements the collaboration hub: one room per document,
// each holding the authoritative document state, the connected websocket
// sessions, and the persistence hook. Ops arrive as wire frames, are applied
// to the room state under the room lock, persisted, and re-broadcast as full
// snapshots to every other session.
package server

import (
	"context"
	"errors"
	"sync"

	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/internal/store"
	"github.com/avdeenko/biograph/models"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub routes sessions into per-document rooms.
type Hub struct {
	log  *logger.Logger
	repo store.DocumentRepository

	mu    sync.Mutex
	rooms map[string]*room
}

func NewHub(log *logger.Logger, repo store.DocumentRepository) *Hub {
	log.Debug().Msg("creating collaboration hub")
	return &Hub{
		log:   log,
		repo:  repo,
		rooms: make(map[string]*room),
	}
}

// room serializes every op against one document. Sessions of the room hold
// their own write locks so a slow reader cannot block the op path of others.
type room struct {
	docID string
	log   *logger.Logger
	repo  store.DocumentRepository

	mu       sync.Mutex
	state    models.DocumentState
	sessions map[*session]struct{}
}

type session struct {
	user string
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (s *session) send(msg models.WireMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(msg)
}

// Join attaches a connected websocket to the document's room and runs its
// read loop until the peer disconnects or ctx is done. The first frame the
// session receives is the current snapshot.
func (h *Hub) Join(ctx context.Context, docID, user string, conn *websocket.Conn) error {
	r, err := h.room(ctx, docID)
	if err != nil {
		return err
	}

	s := &session{user: user, conn: conn}
	r.attach(s)
	defer r.detach(s)

	log := h.log.Child()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("doc", docID).Str("user", user)
	})
	log.Info().Msg("session joined")

	if err = s.send(models.WireMessage{Type: models.MsgSnapshot, State: r.snapshot()}); err != nil {
		return err
	}

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		var msg models.WireMessage
		if err = conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info().Msg("session left")
				return nil
			}
			return err
		}

		if err = r.handle(ctx, s, msg); err != nil {
			// Op-level rejections are reported to the log and the session
			// keeps running; the peer resynchronizes via snapshots.
			log.Err(err).Str("type", msg.Type).Msg("op rejected")
		}
	}
}

// room returns the live room for a document, loading its persisted state on
// first access. An unknown document starts as an empty diagram.
func (h *Hub) room(ctx context.Context, docID string) (*room, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if r, ok := h.rooms[docID]; ok {
		return r, nil
	}

	state, err := h.repo.GetDocument(ctx, docID)
	if err != nil && !errors.Is(err, store.ErrDocumentNotFound) {
		return nil, err
	}

	r := &room{
		docID:    docID,
		log:      h.log,
		repo:     h.repo,
		state:    state,
		sessions: make(map[*session]struct{}),
	}
	h.rooms[docID] = r
	return r, nil
}

// Snapshot returns the current state of a document's room, or false when no
// room is live for it.
func (h *Hub) Snapshot(docID string) (models.DocumentState, bool) {
	h.mu.Lock()
	r, ok := h.rooms[docID]
	h.mu.Unlock()
	if !ok {
		return models.DocumentState{}, false
	}
	return *r.snapshot(), true
}

func (r *room) attach(s *session) {
	r.mu.Lock()
	r.sessions[s] = struct{}{}
	r.mu.Unlock()
}

func (r *room) detach(s *session) {
	r.mu.Lock()
	delete(r.sessions, s)
	r.mu.Unlock()
}

func (r *room) snapshot() *models.DocumentState {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.state.Clone()
	return &state
}

// handle applies one op, persists the result, and fans the new snapshot out
// to every other session. A silent op is applied and persisted but not
// broadcast. A resync sends the snapshot back to the requesting session
// only.
func (r *room) handle(ctx context.Context, from *session, msg models.WireMessage) error {
	if msg.Type == models.MsgResync {
		return from.send(models.WireMessage{Type: models.MsgSnapshot, State: r.snapshot()})
	}

	// The whole op path runs under the room lock so peers always observe
	// snapshots in apply order.
	r.mu.Lock()
	defer r.mu.Unlock()

	changed, err := applyMessage(&r.state, msg)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	state := r.state.Clone()
	if err = r.repo.SaveDocument(ctx, r.docID, state); err != nil {
		return err
	}

	if msg.Silent {
		return nil
	}
	for s := range r.sessions {
		if s == from {
			continue
		}
		if err = s.send(models.WireMessage{Type: models.MsgSnapshot, State: &state}); err != nil {
			r.log.Err(err).Str("doc", r.docID).Str("user", s.user).Msg("broadcast failed")
		}
	}
	return nil
}
