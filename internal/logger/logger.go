// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and context helpers used throughout destinykit.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// SDK components receive a *Logger at construction time; nothing in the
// module writes through a global logger.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// SDK to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given component
// label (e.g. "destinykit", "destinyctl").
//
// The logger is configured with:
//   - a "component" field set to component, useful for filtering logs from
//     different parts of an embedding application;
//   - a "ts" timestamp on every entry;
//   - a "func" caller field recording the fully-qualified function name.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(component string) *Logger {
	return NewLoggerTo(component, os.Stdout)
}

// NewLoggerTo is NewLogger with an explicit output writer. Embedding
// applications use it to redirect SDK logs into their own sink.
func NewLoggerTo(component string, w io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("component", component).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and as the default when a caller passes a
// nil logger to an SDK constructor.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// OrNop returns l unchanged if non-nil, otherwise a discard logger. It lets
// constructors accept an optional logger without nil checks at every call
// site.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
