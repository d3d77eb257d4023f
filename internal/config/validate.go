// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package config

import (
	"errors"
	"fmt"
	"net"
)

var ErrBadAddress = errors.New("bad listen address")

// validate checks structural constraints that hold for every binary. Values
// that only one binary needs (e.g. the signing key on the hub) are checked
// by that binary at startup.
func (c *Config) validate() error {
	if _, _, err := net.SplitHostPort(c.Hub.Address); err != nil {
		return fmt.Errorf("%w %q: %w", ErrBadAddress, c.Hub.Address, err)
	}
	return nil
}
