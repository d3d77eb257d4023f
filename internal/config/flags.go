// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags parses command-line configuration flags into a partial Config.
//
// Flags:
//
//	-a hub listen address in [host]:[port] format
//	-d storage DSN (sqlite path, ":memory:" allowed)
//	-c/-config JSON file path with configs
//	-server-url hub base URL (client)
//	-user session user name (client)
//	-doc document id to open (client)
//	-resync-interval periodic snapshot repair interval (client)
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-token-duration session token lifetime (e.g. "24h")
//	-request-timeout REST request timeout (e.g. "15s")
//
// A fresh FlagSet is used so tests can call the parser repeatedly.
func parseFlags() (*Config, error) {
	return parseFlagArgs(os.Args[1:])
}

func parseFlagArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("biograph", flag.ContinueOnError)

	var (
		address        string
		dsn            string
		jsonConfigPath string
		serverURL      string
		user           string
		documentID     string
		resyncInterval time.Duration
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
	)

	fs.StringVar(&address, "a", "", "Hub listen address host:port")
	fs.StringVar(&dsn, "d", "", "Storage DSN (sqlite path)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&serverURL, "server-url", "", "Hub base URL")
	fs.StringVar(&user, "user", "", "Session user name")
	fs.StringVar(&documentID, "doc", "", "Document id to open")
	fs.DurationVar(&resyncInterval, "resync-interval", 0, "Periodic resync interval (e.g. 1m)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token lifetime (e.g. 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "REST request timeout (e.g. 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Hub: Hub{
			Address:        address,
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			ServerURL:      serverURL,
			User:           user,
			DocumentID:     documentID,
			ResyncInterval: resyncInterval,
		},
		Storage: Storage{
			DSN: dsn,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
