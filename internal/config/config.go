// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package config

import (
	"time"
)

// Config is the top-level configuration container for biograph. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file, in that order of precedence.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds settings shared by the hub and the client: token signing
	// material and the application version.
	App App `envPrefix:"APP_"`

	// Hub holds network settings for the collaboration hub binary.
	Hub Hub `envPrefix:"HUB_"`

	// Client holds settings for the headless watch client binary.
	Client Client `envPrefix:"CLIENT_"`

	// Storage holds the persistence settings of the hub.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of environment and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// TokenSignKey is the secret used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Hub holds network and timeout settings for the collaboration hub.
type Hub struct {
	// Address is the TCP address the hub listens on, "host:port".
	// Env: HUB_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single REST request.
	// Env: HUB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings for the watch client.
type Client struct {
	// ServerURL is the base URL of the hub, e.g. "http://localhost:8080".
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// User is the display name the session is opened under.
	// Env: CLIENT_USER
	User string `env:"USER"`

	// DocumentID names the document to open.
	// Env: CLIENT_DOCUMENT_ID
	DocumentID string `env:"DOCUMENT_ID"`

	// ResyncInterval is how often the client asks the hub for a fresh
	// snapshot as a repair mechanism. Non-positive values fall back to the
	// resyncer's one-minute default.
	// Env: CLIENT_RESYNC_INTERVAL
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// Storage holds hub persistence settings.
type Storage struct {
	// DSN is the sqlite database path; ":memory:" keeps everything
	// in-process.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Get builds the effective configuration from environment variables, flags,
// and the optional JSON file.
func Get() (*Config, error) {
	return newBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills zero-valued fields that have sensible defaults.
func (c *Config) applyDefaults() {
	if c.Hub.Address == "" {
		c.Hub.Address = "localhost:8080"
	}
	if c.Hub.RequestTimeout <= 0 {
		c.Hub.RequestTimeout = 15 * time.Second
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = "biograph-hub"
	}
	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = 24 * time.Hour
	}
	if c.Client.ServerURL == "" {
		c.Client.ServerURL = "http://localhost:8080"
	}
	if c.Storage.DSN == "" {
		c.Storage.DSN = ":memory:"
	}
}
