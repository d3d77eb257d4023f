// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/models"
)

// documentRepository is the SQLite-backed implementation of
// [DocumentRepository]. Document state and element payloads are stored as
// JSON text and decoded on read.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *documentRepository) GetDocument(ctx context.Context, docID string) (models.DocumentState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(docID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.GetDocument").Msg("error building query")
		return models.DocumentState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DocumentState{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.GetDocument").Msg("error scanning document row")
		return models.DocumentState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var state models.DocumentState
	if err = json.Unmarshal(raw, &state); err != nil {
		return models.DocumentState{}, fmt.Errorf("decode document state: %w", err)
	}
	return state, nil
}

func (r *documentRepository) SaveDocument(ctx context.Context, docID string, state models.DocumentState) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode document state: %w", err)
	}

	query, args, err := buildUpsertDocumentQuery(docID, raw)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveDocument").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveDocument").Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrDocumentNotSaved
	}
	return nil
}

func (r *documentRepository) GetElementPayload(ctx context.Context, docID string, id models.ElementID) (models.ElementPayload, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectElementQuery(docID, string(id))
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.GetElementPayload").Msg("error building query")
		return models.ElementPayload{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ElementPayload{}, ErrElementNotFound
		}
		log.Err(err).Str("func", "*documentRepository.GetElementPayload").Msg("error scanning payload row")
		return models.ElementPayload{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var payload models.ElementPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return models.ElementPayload{}, fmt.Errorf("decode element payload: %w", err)
	}
	return payload, nil
}

func (r *documentRepository) SaveElementPayload(ctx context.Context, docID string, payload models.ElementPayload) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode element payload: %w", err)
	}

	query, args, err := buildUpsertElementQuery(docID, string(payload.ID), payload.Kind, raw)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveElementPayload").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveElementPayload").Msg("error executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *documentRepository) ListElementPayloads(ctx context.Context, docID string) ([]models.ElementPayload, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectElementsQuery(docID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListElementPayloads").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListElementPayloads").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var payloads []models.ElementPayload
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		var payload models.ElementPayload
		if err = json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode element payload: %w", err)
		}
		payloads = append(payloads, payload)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return payloads, nil
}
