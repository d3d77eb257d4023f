// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors Config with JSON tags and string durations, so the file
// format can say "15s" instead of nanosecond integers.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app"`

	Hub struct {
		Address        string   `json:"address"`
		RequestTimeout duration `json:"request_timeout"`
	} `json:"hub"`

	Client struct {
		ServerURL      string   `json:"server_url"`
		User           string   `json:"user"`
		DocumentID     string   `json:"document_id"`
		ResyncInterval duration `json:"resync_interval"`
	} `json:"client"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage"`
}

// duration is a time.Duration that unmarshals from "1h30m"-style strings.
type duration time.Duration

func (d *duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = duration(parsed)
	return nil
}

// parseJSON reads the JSON configuration file at path into a partial Config.
func parseJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading json config: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, fmt.Errorf("parsing json config: %w", err)
	}

	return &Config{
		App: App{
			TokenSignKey:  jc.App.TokenSignKey,
			TokenIssuer:   jc.App.TokenIssuer,
			TokenDuration: time.Duration(jc.App.TokenDuration),
			Version:       jc.App.Version,
		},
		Hub: Hub{
			Address:        jc.Hub.Address,
			RequestTimeout: time.Duration(jc.Hub.RequestTimeout),
		},
		Client: Client{
			ServerURL:      jc.Client.ServerURL,
			User:           jc.Client.User,
			DocumentID:     jc.Client.DocumentID,
			ResyncInterval: time.Duration(jc.Client.ResyncInterval),
		},
		Storage: Storage{
			DSN: jc.Storage.DSN,
		},
	}, nil
}
