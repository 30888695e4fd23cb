// SPDX-License-Identifier: MIT

// Package ballot: result types produced by the runoff.
package ballot

// Tally is one candidate's first-place vote count within a single round.
type Tally[T comparable] struct {
	Label T
	Votes int
}

// Round is the outcome of one selection step.
//
// Label is the round's leader (the candidate removed this round) and Votes
// its first-place count. Others lists every candidate still standing at the
// start of the round, except the leader, in label order, each with the
// tally it held in the same round (before any re-ranking).
type Round[T comparable] struct {
	Label  T
	Votes  int
	Others []Tally[T]
}

// Total returns the number of first-place votes cast in the round. For a
// well-formed ballot it equals the number of voters.
func (r Round[T]) Total() int {
	n := r.Votes
	for _, o := range r.Others {
		n += o.Votes
	}

	return n
}

// Winners returns the leader of every round, in selection order.
// Complexity: O(len(rounds)).
func Winners[T comparable](rounds []Round[T]) []T {
	out := make([]T, 0, len(rounds))
	for _, r := range rounds {
		out = append(out, r.Label)
	}

	return out
}
