// SPDX-License-Identifier: MIT
// Package ballot: sentinel error set.
// Construction is the only fallible operation in this package. Once a Ballot
// exists, the round algorithm has no error path: every index it touches is
// bounded by the invariants checked in New.

package ballot

import (
	"errors"
	"fmt"
)

// ErrMismatch is matched (errors.Is) by every construction failure: the vote
// buffer is not a whole number of rows, or some rank is outside [0, C).
var ErrMismatch = errors.New("ballot: labels and votes mismatch")

// Reasons reported by MismatchError. Kept as constants for grep-ability.
const (
	reasonNoLabels   = "no candidate labels"
	reasonRowWidth   = "vote count is not a multiple of the label count"
	reasonRankBounds = "rank out of range"
)

// MismatchError is returned by New when the inputs violate the matrix
// invariants. The rejected inputs are handed back unchanged so the caller can
// inspect or repair them.
type MismatchError[T comparable] struct {
	Labels []T   // labels exactly as passed to New
	Votes  []int // votes exactly as passed to New
	Reason string
	// Index is the flat offset of the first out-of-range rank, or -1 when the
	// failure concerns the shape rather than a single cell.
	Index int
}

// Error implements error.
func (e *MismatchError[T]) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s (voter %d, candidate %d, rank %d, candidates %d)",
			ErrMismatch, e.Reason, e.Index/len(e.Labels), e.Index%len(e.Labels), e.Votes[e.Index], len(e.Labels))
	}

	return fmt.Sprintf("%s: %s (labels %d, votes %d)", ErrMismatch, e.Reason, len(e.Labels), len(e.Votes))
}

// Is reports ErrMismatch so callers need not know the label type.
func (e *MismatchError[T]) Is(target error) bool { return target == ErrMismatch }
