// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// All builders use the SQLite question-mark placeholder format.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectDocumentQuery(docID string) (string, []any, error) {
	return builder.
		Select("state").
		From("documents").
		Where(sq.Eq{"id": docID}).
		ToSql()
}

func buildUpsertDocumentQuery(docID string, state []byte) (string, []any, error) {
	return builder.
		Insert("documents").
		Columns("id", "state").
		Values(docID, string(state)).
		Suffix("ON CONFLICT (id) DO UPDATE SET state = excluded.state, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildSelectElementQuery(docID, elementID string) (string, []any, error) {
	return builder.
		Select("payload").
		From("elements").
		Where(sq.Eq{"doc_id": docID, "id": elementID}).
		ToSql()
}

func buildSelectElementsQuery(docID string) (string, []any, error) {
	return builder.
		Select("payload").
		From("elements").
		Where(sq.Eq{"doc_id": docID}).
		OrderBy("id").
		ToSql()
}

func buildUpsertElementQuery(docID, elementID, kind string, payload []byte) (string, []any, error) {
	return builder.
		Insert("elements").
		Columns("doc_id", "id", "kind", "payload").
		Values(docID, elementID, kind, string(payload)).
		Suffix("ON CONFLICT (doc_id, id) DO UPDATE SET kind = excluded.kind, payload = excluded.payload").
		ToSql()
}
