// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package adapter provides the REST client side of the hub API: opening an
// authenticated session and fetching element payloads for the object cache.
//
// Errors are mapped from HTTP status codes to the sentinel values in this
// package so callers can use errors.Is without knowing about transport
// details.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avdeenko/biograph/models"
	"github.com/go-resty/resty/v2"
)

var (
	ErrUnauthorized     = errors.New("session unauthorized")
	ErrElementNotFound  = errors.New("element not found")
	ErrDocumentNotFound = errors.New("document not found")
)

// Config configures the hub REST client.
type Config struct {
	// BaseURL of the hub, e.g. "http://localhost:8080".
	BaseURL string

	// DocumentID scopes element fetches.
	DocumentID string

	// Timeout bounds a single request. Defaults to 15s.
	Timeout time.Duration
}

// Client is the REST client; it implements the object cache's Source.
type Client struct {
	client *resty.Client
	docID  string
}

// New constructs a hub REST client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli, docID: cfg.DocumentID}
}

// OpenSession asks the hub for a session token for the given user and
// installs it on the client for subsequent requests.
func (c *Client) OpenSession(ctx context.Context, user string) (models.Session, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"user": user}).
		Post("/api/auth/session")
	if err != nil {
		return models.Session{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp, ErrUnauthorized); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decoding session: %w", err)
	}

	c.client.SetAuthToken(session.Token)
	return session, nil
}

// FetchDocument returns the current snapshot of the configured document.
func (c *Client) FetchDocument(ctx context.Context) (models.DocumentState, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/documents/" + c.docID)
	if err != nil {
		return models.DocumentState{}, fmt.Errorf("document request: %w", err)
	}
	if err = mapHTTPError(resp, ErrDocumentNotFound); err != nil {
		return models.DocumentState{}, err
	}

	var state models.DocumentState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.DocumentState{}, fmt.Errorf("decoding document: %w", err)
	}
	return state, nil
}

// FetchElement implements the cache Source.
func (c *Client) FetchElement(ctx context.Context, id models.ElementID) (models.ElementPayload, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/documents/" + c.docID + "/elements/" + string(id))
	if err != nil {
		return models.ElementPayload{}, fmt.Errorf("element request: %w", err)
	}
	if err = mapHTTPError(resp, ErrElementNotFound); err != nil {
		return models.ElementPayload{}, err
	}

	var payload models.ElementPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.ElementPayload{}, fmt.Errorf("decoding element: %w", err)
	}
	return payload, nil
}

// mapHTTPError converts non-2xx responses to sentinel errors; notFound is
// the sentinel a 404 maps to for the resource being requested.
func mapHTTPError(resp *resty.Response, notFound error) error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return notFound
	default:
		return fmt.Errorf("hub responded %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
}
