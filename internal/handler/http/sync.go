// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package http

import (
	"net/http"

	"github.com/avdeenko/biograph/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// sync upgrades the request and hands the connection to the hub; the call
// blocks for the session's lifetime.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	docID := chi.URLParam(r, "docID")
	user := userFromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	if err = h.hub.Join(r.Context(), docID, user, conn); err != nil {
		log.Err(err).Str("doc", docID).Str("user", user).Msg("sync session ended")
	}
}
