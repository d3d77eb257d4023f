// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// builder accumulates partial configurations from the individual sources and
// merges them into one effective Config. Earlier sources win: a later source
// only fills fields the earlier ones left at their zero value (mergo's
// non-override merge).
type builder struct {
	configs []*Config
	err     error
}

func newBuilder() *builder {
	return &builder{configs: make([]*Config, 0, 3)}
}

func (b *builder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building config: %w", b.err)
	}

	cfg := new(Config)
	for _, partial := range b.configs {
		if err := mergo.Merge(cfg, partial); err != nil {
			return nil, fmt.Errorf("merging configs: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (b *builder) withEnv() *builder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *builder) withFlags() *builder {
	flagCfg, err := parseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

func (b *builder) withJSON() *builder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}
