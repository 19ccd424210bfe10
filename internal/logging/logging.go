// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging holds the process-wide structured logger.
//
// The terminal belongs to the UI, so log output goes to a file as JSON
// lines. Until Setup or SetLogger is called every log call is a no-op.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level names accepted in the config file and MEGASENA_LOG_LEVEL.
const (
	LevelOff   = "off"
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// SetLogger installs l as the process-wide logger.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L returns the current logger.
func L() *zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return &l
}

// With returns a child of the current logger tagged with component.
func With(component string) zerolog.Logger {
	return L().With().Str("component", component).Logger()
}

// ParseLevel maps a level name to a zerolog level.
// The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelOff:
		return zerolog.Disabled, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	case LevelWarn, "warning":
		return zerolog.WarnLevel, nil
	case LevelInfo, "":
		return zerolog.InfoLevel, nil
	case LevelDebug:
		return zerolog.DebugLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger writing JSON lines with timestamps to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// nopCloser is returned when no file was opened.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup opens (or creates) path and installs a logger at the named level.
// With level "off" or an empty path nothing is opened and logging stays
// disabled. The returned Closer must be closed on exit.
func Setup(level, path string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nopCloser{}, err
	}
	if lvl == zerolog.Disabled || path == "" {
		SetLogger(zerolog.Nop())
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	SetLogger(New(f, lvl))
	return f, nil
}
