// SPDX-License-Identifier: MIT

package ballot

import "iter"

// Runoff — round-by-round selection over a Ballot
//
// Description:
//
//	Each round counts first-place votes, selects the candidate holding the
//	most of them, re-ranks every ballot as if that candidate had never
//	stood, and removes it. The sequence is lazy: a round is computed only
//	when it is pulled.
//
//	NOTE: the candidate removed each round is the plurality LEADER, not the
//	last-place candidate of textbook instant-runoff. The first round's
//	leader is therefore the overall winner, and later rounds rank the rest.
//
// Algorithm Outline (one round, C candidates, V voters):
//  1. tally[j] = #{ rows i : rank(i, j) == 0 } for j = 0..C-1.
//  2. lead = smallest j with tally[j] == max(tally).
//  3. For every row i, with r = rank(i, lead):
//     rank(i, k) -= 1 for every k with rank(i, k) > r.
//  4. Remove column lead and label lead.
//  5. Emit (label[lead], tally[lead], [(label[k], tally[k]) for k != lead]).
//
// Invariants:
//   - Step 3 uses each row's own rank for the leader, keeping every row a
//     dense permutation of 0..C-2 once the column is gone.
//   - Tallies in the emitted round are the ones counted in step 1.
//
// Complexity:
//
//	Time   = O(V·C) per round, O(V·C²) for the whole runoff
//	Memory = O(V·C) (one rebuilt buffer per round)
type Runoff[T comparable] struct {
	b     *Ballot[T]
	tally []int // scratch, reused across rounds
}

// Runoff hands the ballot's storage to a single-pass round sequence.
// The ballot is consumed: calling Runoff again returns an exhausted sequence,
// and Candidates reports zero once every round has been pulled.
func (b *Ballot[T]) Runoff() *Runoff[T] {
	if b.spent {
		return &Runoff[T]{b: &Ballot[T]{spent: true}}
	}
	b.spent = true

	return &Runoff[T]{b: b, tally: make([]int, len(b.labels))}
}

// Remaining returns how many rounds are still to be produced.
func (r *Runoff[T]) Remaining() int { return r.b.Candidates() }

// Next computes and returns the next round. It returns false once every
// candidate has been selected, and on every call after that.
// Runoff is not safe for concurrent use.
func (r *Runoff[T]) Next() (Round[T], bool) {
	b := r.b
	c := b.Candidates()
	if c == 0 {
		return Round[T]{}, false
	}

	// Stage 1: first-place tallies.
	tally := r.tally[:c]
	for j := range tally {
		n := 0
		b.column(j, func(rank int) {
			if rank == 0 {
				n++
			}
		})
		tally[j] = n
	}

	// Stage 2: leftmost maximum.
	lead := 0
	for j := 1; j < c; j++ {
		if tally[j] > tally[lead] {
			lead = j
		}
	}

	// Stage 3: close the gap the leader leaves in each row.
	b.rows(func(row []int) {
		pivot := row[lead]
		for k, rank := range row {
			if rank > pivot {
				row[k] = rank - 1
			}
		}
	})

	// Stage 4 + 5: snapshot the other tallies in label order, then remove.
	others := make([]Tally[T], 0, c-1)
	for j, label := range b.labels {
		if j != lead {
			others = append(others, Tally[T]{Label: label, Votes: tally[j]})
		}
	}
	label := b.removeColumn(lead)

	return Round[T]{Label: label, Votes: tally[lead], Others: others}, true
}

// All returns the remaining rounds as a range-over-func sequence. Breaking
// out of the loop leaves the rest uncomputed; the sequence cannot be
// replayed, so a second range over it yields nothing further.
func (r *Runoff[T]) All() iter.Seq[Round[T]] {
	return func(yield func(Round[T]) bool) {
		for {
			round, ok := r.Next()
			if !ok || !yield(round) {
				return
			}
		}
	}
}

// Collect drains the sequence and returns every remaining round in order.
func (r *Runoff[T]) Collect() []Round[T] {
	out := make([]Round[T], 0, r.Remaining())
	for round := range r.All() {
		out = append(out, round)
	}

	return out
}
