// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildSelectDocumentQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectDocumentQuery("doc-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "doc-1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "state")
	require.Contains(t, q, "from documents")
	require.Contains(t, q, "where")
	require.Contains(t, q, "id")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildUpsertDocumentQuery(t *testing.T) {
	query, args, err := buildUpsertDocumentQuery("doc-1", []byte(`{"name":"n"}`))
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "doc-1", args[0])
	require.Equal(t, `{"name":"n"}`, args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into documents")
	require.Contains(t, q, "on conflict")
	require.Contains(t, q, "excluded.state")
	require.Contains(t, q, "updated_at")
}

func Test_buildSelectElementQuery(t *testing.T) {
	query, args, err := buildSelectElementQuery("doc-1", "e1")
	require.NoError(t, err)

	// squirrel emits sq.Eq map keys in sorted order: doc_id before id.
	require.Equal(t, []any{"doc-1", "e1"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from elements")
	require.Contains(t, q, "doc_id")
	require.Contains(t, q, "payload")
}

func Test_buildSelectElementsQuery_OrdersByID(t *testing.T) {
	query, args, err := buildSelectElementsQuery("doc-1")
	require.NoError(t, err)

	require.Equal(t, []any{"doc-1"}, args)
	require.Contains(t, strings.ToLower(query), "order by id")
}

func Test_buildUpsertElementQuery(t *testing.T) {
	query, args, err := buildUpsertElementQuery("doc-1", "e1", "macromolecule", []byte(`{}`))
	require.NoError(t, err)

	require.Len(t, args, 4)
	require.Equal(t, "doc-1", args[0])
	require.Equal(t, "e1", args[1])
	require.Equal(t, "macromolecule", args[2])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into elements")
	require.Contains(t, q, "on conflict")
	require.Contains(t, q, "excluded.payload")
}
