// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is hit
	// without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrEmptyUser is returned when a session request carries no user name.
	ErrEmptyUser = errors.New("empty user")
)
