// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using caarlos0/env.
// Fields are mapped via the `env` and `envPrefix` tags on [Config] and its
// nested types.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing env config: %w", err)
	}
	return nil
}
