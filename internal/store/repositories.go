// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package store

import (
	"context"

	"github.com/avdeenko/biograph/models"
)

//go:generate mockgen -source=repositories.go -destination=../mock/repository_mock.go -package=mock

// DocumentRepository persists document snapshots and the element payloads
// backing them. Element payloads are stored per document because diagrams in
// different documents may carry divergent annotations for the same id.
type DocumentRepository interface {
	GetDocument(ctx context.Context, docID string) (models.DocumentState, error)
	SaveDocument(ctx context.Context, docID string, state models.DocumentState) error

	GetElementPayload(ctx context.Context, docID string, id models.ElementID) (models.ElementPayload, error)
	SaveElementPayload(ctx context.Context, docID string, payload models.ElementPayload) error
	ListElementPayloads(ctx context.Context, docID string) ([]models.ElementPayload, error)
}
