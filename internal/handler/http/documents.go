// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/internal/store"
	"github.com/avdeenko/biograph/models"
	"github.com/go-chi/chi/v5"
)

// getDocument serves the current snapshot. A live room is fresher than the
// persisted row, so the hub's in-memory state wins when one exists.
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	docID := chi.URLParam(r, "docID")

	state, live := h.hub.Snapshot(docID)
	if !live {
		var err error
		state, err = h.repo.GetDocument(ctx, docID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrDocumentNotFound):
				http.Error(w, store.ErrDocumentNotFound.Error(), http.StatusNotFound)
			default:
				log.Err(err).Msg("unexpected error occurred during document lookup")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		log.Err(err).Msg("encoding document response failed")
	}
}

func (h *Handler) getElement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	docID := chi.URLParam(r, "docID")
	elementID := models.ElementID(chi.URLParam(r, "elementID"))

	payload, err := h.repo.GetElementPayload(ctx, docID, elementID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrElementNotFound):
			http.Error(w, store.ErrElementNotFound.Error(), http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during element lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("encoding element response failed")
	}
}
