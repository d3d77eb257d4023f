// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a lookup targets a document id
	// with no row in the documents table.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrElementNotFound is returned when an element payload lookup matches
	// no row for the given document and element id pair.
	ErrElementNotFound = errors.New("element payload was not found")

	// ErrDocumentNotSaved is returned when an upsert completes without a
	// driver error but affects zero rows, meaning nothing was persisted.
	ErrDocumentNotSaved = errors.New("document was not saved")
)

// Low-level database operation errors, returned (or wrapped) when a
// SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
