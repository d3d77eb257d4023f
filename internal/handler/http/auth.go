// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdeenko/biograph/internal/auth"
	"github.com/avdeenko/biograph/internal/logger"
)

type sessionRequest struct {
	User string `json:"user"`
}

// openSession issues a signed session for the named collaborator. The hub
// trusts the client-declared name; access control beyond identity is not its
// business.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.User == "" {
		log.Err(ErrEmptyUser).Send()
		http.Error(w, ErrEmptyUser.Error(), http.StatusBadRequest)
		return
	}

	session, err := auth.GenerateToken(h.auth, req.User)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(session); err != nil {
		log.Err(err).Msg("encoding session response failed")
	}
}
