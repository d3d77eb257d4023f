// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package models

import "time"

// Session is an authenticated collaboration session issued by the hub. The
// token is presented as a bearer credential on every REST call and on the
// websocket handshake.
type Session struct {
	User     string    `json:"user"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}
