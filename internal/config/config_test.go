// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagArgs(t *testing.T) {
	cfg, err := parseFlagArgs([]string{
		"-a", "0.0.0.0:9999",
		"-d", "/tmp/biograph.db",
		"-doc", "doc-1",
		"-user", "alice",
		"-token-duration", "2h",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.Hub.Address)
	assert.Equal(t, "/tmp/biograph.db", cfg.Storage.DSN)
	assert.Equal(t, "doc-1", cfg.Client.DocumentID)
	assert.Equal(t, "alice", cfg.Client.User)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("HUB_ADDRESS", "127.0.0.1:7777")
	t.Setenv("STORAGE_DSN", ":memory:")
	t.Setenv("CLIENT_DOCUMENT_ID", "doc-env")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "127.0.0.1:7777", cfg.Hub.Address)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, "doc-env", cfg.Client.DocumentID)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"token_sign_key": "sekret", "token_duration": "1h"},
		"hub": {"address": "localhost:8081", "request_timeout": "5s"},
		"client": {"server_url": "http://hub:8081", "document_id": "glycolysis"},
		"storage": {"dsn": "hub.db"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sekret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8081", cfg.Hub.Address)
	assert.Equal(t, 5*time.Second, cfg.Hub.RequestTimeout)
	assert.Equal(t, "glycolysis", cfg.Client.DocumentID)
	assert.Equal(t, "hub.db", cfg.Storage.DSN)
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hub": {"request_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestBuilder_EnvWinsOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hub": {"address": "json:1111"}, "storage": {"dsn": "json.db"}}`), 0o600))

	t.Setenv("HUB_ADDRESS", "env:2222")
	t.Setenv("CONFIG", path)

	cfg, err := newBuilder().withEnv().withJSON().build()
	require.NoError(t, err)

	// Env is an earlier source, so it wins; the JSON file only fills gaps.
	assert.Equal(t, "env:2222", cfg.Hub.Address)
	assert.Equal(t, "json.db", cfg.Storage.DSN)
}

func TestBuilder_Defaults(t *testing.T) {
	cfg, err := newBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Hub.Address)
	assert.Equal(t, 15*time.Second, cfg.Hub.RequestTimeout)
	assert.Equal(t, "biograph-hub", cfg.App.TokenIssuer)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
}

func TestValidate_BadAddress(t *testing.T) {
	cfg := &Config{Hub: Hub{Address: "no-port"}}
	require.ErrorIs(t, cfg.validate(), ErrBadAddress)
}
