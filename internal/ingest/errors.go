// SPDX-License-Identifier: MIT
// Package ingest: sentinel error set.
// Every failure is fatal to the whole read; no partial ballot is returned.
// Row and column context is attached through *RecordError, so callers match
// the sentinel with errors.Is and the coordinates with errors.As.

package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrOptions is returned for negative column or base settings.
	ErrOptions = errors.New("ingest: invalid options")

	// ErrHeader is returned when the header row cannot be read.
	ErrHeader = errors.New("ingest: cannot read header")

	// ErrColumns is returned when the requested rank columns select nothing
	// from the header (start beyond width, or an empty selection).
	ErrColumns = errors.New("ingest: no rank columns selected")

	// ErrRecord is returned for a malformed CSV record.
	ErrRecord = errors.New("ingest: bad record")

	// ErrRankParse is returned when a rank cell is not a non-negative integer.
	ErrRankParse = errors.New("ingest: invalid rank")

	// ErrWidth is returned when a record holds a different number of ranks
	// than there are labels.
	ErrWidth = errors.New("ingest: invalid number of ranks")

	// ErrIndexBase is returned when a rank is lower than the configured
	// base index, i.e. subtracting the base would underflow.
	ErrIndexBase = errors.New("ingest: rank lower than index base")
)

// RecordError locates a failure in the input. Row is the zero-based data
// record (the header is not counted). Col is the zero-based position within
// the selected rank columns, or -1 when the failure concerns the whole row.
type RecordError struct {
	Row    int
	Col    int
	Detail string
	Err    error
}

// Error implements error.
func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%v, record %d", e.Err, e.Row)
	if e.Col >= 0 {
		msg += fmt.Sprintf(", value %d", e.Col)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}

	return msg
}

// Unwrap exposes the sentinel.
func (e *RecordError) Unwrap() error { return e.Err }
