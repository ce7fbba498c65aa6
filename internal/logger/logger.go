// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-absence-keeper application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain operation-scoped
// loggers via FromContext after attaching one with WithOperation.
//
// Key material, PINs and decrypted profile fields must never be logged.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger writing JSON to os.Stdout for the given
// role label (e.g. "cli", "worker").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. The global level is set to
// Debug; narrow it afterwards with [SetLevel].
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but appends to the per-user log file
// returned by [DefaultLogPath], so prompts and command output on stdout stay
// clean. Falls back to os.Stderr when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	l, err := NewFileLogger(role, DefaultLogPath())
	if err != nil {
		l = newLogger(os.Stderr, role)
		l.Warn().Err(err).Msg("log file unavailable, logging to stderr")
	}
	return l
}

// NewFileLogger appends JSON entries to the file at path, creating it and
// its directory with owner-only permissions.
func NewFileLogger(role, path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, role), nil
}

// DefaultLogPath is absence-keeper.log in the user cache directory, or in
// the working directory when no cache directory is known.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "absence-keeper.log"
	}
	return filepath.Join(dir, "absence-keeper", "absence-keeper.log")
}

// SetLevel sets the global minimum level from its name ("debug", "info",
// "warn", ...). An empty name leaves the level unchanged.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
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

// WithOperation returns a copy of ctx carrying a child logger enriched with the
// operation name and a fresh trace id. Loggers obtained later via
// [FromContext] share these fields.
func (l *Logger) WithOperation(ctx context.Context, operation string) context.Context {
	child := l.With().
		Str("op", operation).
		Str("trace_id", uuid.NewString()).
		Logger()
	return child.WithContext(ctx)
}
