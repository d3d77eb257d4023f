// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used throughout biograph.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error, Fatal, ...) is available directly. Components receive a *Logger at
// construction; request-scoped loggers come from FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger so helper methods can be added without
// touching the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger for the given role label ("hub", "client",
// ...). Every entry carries the role, a timestamp, and the fully qualified
// caller function name under "func".
func New(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a logger inheriting all fields of the receiver; the child
// can be enriched without affecting the parent.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context, falling
// back to zerolog's global logger when none was attached.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, falling back to zerolog's
// global logger when none was attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
