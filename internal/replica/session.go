// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package replica

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/models"
	"github.com/gorilla/websocket"
)

// SessionConfig configures a hub connection.
type SessionConfig struct {
	// URL is the websocket endpoint of the document's sync channel, e.g.
	// "ws://localhost:8080/api/documents/doc-1/sync".
	URL string

	// Token is the bearer session token obtained from the hub.
	Token string

	// HandshakeTimeout bounds the websocket dial. Defaults to 10s.
	HandshakeTimeout time.Duration
}

// Session binds a Doc to the hub over a websocket. Local mutations of the
// doc are forwarded as ops; snapshot frames from the hub are applied via
// ApplyRemote. One read-loop goroutine runs for the session's lifetime.
type Session struct {
	log  *logger.Logger
	doc  *Doc
	conn *websocket.Conn

	writeMu sync.Mutex

	cancel context.CancelFunc
	done   chan struct{}
}

// Dial connects to the hub and binds the session as the doc's forwarder.
func Dial(ctx context.Context, log *logger.Logger, doc *Doc, cfg SessionConfig) (*Session, error) {
	dialer := websocket.Dialer{HandshakeTimeout: cfg.HandshakeTimeout}
	if dialer.HandshakeTimeout <= 0 {
		dialer.HandshakeTimeout = 10 * time.Second
	}

	header := http.Header{}
	if cfg.Token != "" {
		header.Set("Authorization", "Bearer "+cfg.Token)
	}

	conn, _, err := dialer.DialContext(ctx, cfg.URL, header)
	if err != nil {
		return nil, fmt.Errorf("dial hub %s: %w", cfg.URL, err)
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &Session{
		log:    log,
		doc:    doc,
		conn:   conn,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	doc.SetForwarder(s)
	doc.SetLive(true)

	go s.readLoop(loopCtx)
	return s, nil
}

// Forward implements Forwarder.
func (s *Session) Forward(_ context.Context, msg models.WireMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write %s frame: %w", msg.Type, err)
	}
	return nil
}

// Resync asks the hub to re-send the current snapshot to this session only.
func (s *Session) Resync(ctx context.Context) error {
	return s.Forward(ctx, models.WireMessage{Type: models.MsgResync})
}

func (s *Session) readLoop(ctx context.Context) {
	defer close(s.done)

	for {
		var msg models.WireMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil {
				s.log.Error().Err(err).Msg("sync channel closed")
			}
			return
		}
		if msg.Type != models.MsgSnapshot || msg.State == nil {
			s.log.Warn().Str("type", msg.Type).Msg("unexpected frame on sync channel")
			continue
		}
		if err := s.doc.ApplyRemote(ctx, *msg.State); err != nil {
			s.log.Error().Err(err).Msg("remote snapshot reconciliation failed")
		}
	}
}

// Close detaches the session from the doc and tears the connection down,
// waiting for the read loop to exit.
func (s *Session) Close() error {
	s.doc.SetForwarder(nil)
	s.doc.SetLive(false)
	s.cancel()

	s.writeMu.Lock()
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.writeMu.Unlock()

	err := s.conn.Close()
	<-s.done
	return err
}
