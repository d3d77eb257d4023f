// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package http implements the HTTP transport of the hub: session issuing,
// document and element payload reads, and the websocket sync endpoint.
// Authentication, tracing and request logging are handled as middleware
// before requests reach the collaboration layer.
package http

import (
	"github.com/avdeenko/biograph/internal/auth"
	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/internal/server"
	"github.com/avdeenko/biograph/internal/store"
)

type Handler struct {
	hub  *server.Hub
	repo store.DocumentRepository
	auth auth.Settings

	logger *logger.Logger
}

func NewHandler(hub *server.Hub, repo store.DocumentRepository, settings auth.Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		hub:    hub,
		repo:   repo,
		auth:   settings,
		logger: logger,
	}
}

// userCtxKey carries the authenticated user name through the request
// context.
type userCtxKeyType struct{}

var userCtxKey userCtxKeyType
