// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the rankvote command.
//
// Logs go to stderr so stdout stays clean for results (raw output is meant to
// be piped). Every record carries a run_id so the lines of one tally can be
// picked out of an aggregated log.
//
// Usage:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug})
//	logger.Debug("ballot loaded", "voters", b.Voters())
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Level is the minimum severity that is written.
type Level int

const (
	// LevelDebug traces loading and every round.
	LevelDebug Level = iota
	// LevelInfo reports the run summary.
	LevelInfo
	// LevelWarn reports recoverable oddities in the input.
	LevelWarn
	// LevelError reports the failure that ends the run.
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	return l.toSlogLevel().String()
}

// toSlogLevel bridges Level to slog.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures New. The zero value writes Info and above as text to stderr.
type Config struct {
	Level Level
	// JSON selects slog.JSONHandler instead of slog.TextHandler.
	JSON bool
	// Writer overrides the destination; nil means os.Stderr.
	Writer io.Writer
	// RunID overrides the generated run identifier (tests pin it).
	RunID string
}

// New returns a logger tagged with service and run_id attributes.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	return slog.New(h).With("service", "rankvote", "run_id", runID)
}
