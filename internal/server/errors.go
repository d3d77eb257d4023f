// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package server

import "errors"

var (
	// ErrDuplicateEntry is returned when a push carries an entry id already
	// present in the document.
	ErrDuplicateEntry = errors.New("entry id already present in document")

	// ErrEntryNotFound is returned when a pull or merge addresses an entry
	// id with no entry in the document.
	ErrEntryNotFound = errors.New("entry not found in document")

	// ErrMissingEntry is returned when a push frame has no entry payload.
	ErrMissingEntry = errors.New("push frame carries no entry")

	// ErrUnknownMessage is returned for a frame whose type the hub does not
	// understand.
	ErrUnknownMessage = errors.New("unknown message type")
)
