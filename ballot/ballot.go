// SPDX-License-Identifier: MIT

// Package ballot - rank matrix storage (row-major) and its views.
//
// Purpose:
//   - Hold V complete ballots over C candidates in one flat buffer, offset = voter*C + candidate.
//   - Validate once, at construction, so the round algorithm never needs a runtime check.
//   - Provide row windows (mutable) and column strides (read-only) for the engine.
//
// Complexity quicksheet:
//   - New: O(V*C) validation; rows/column: O(1) per element; removeColumn: O(V*C) rebuild.

package ballot

// Ballot is a dense V×C rank table plus the candidate labels.
//   - labels holds the C surviving candidates in their original relative order.
//   - votes is a flat buffer of length V*C in row-major order; 0 <= votes[k] < C.
//   - spent is set once Runoff has taken ownership of the storage.
type Ballot[T comparable] struct {
	labels []T
	votes  []int
	spent  bool
}

// New builds a Ballot from candidate labels and a flat row-major rank buffer.
// MAIN DESCRIPTION:
//   - The only validating entry point. Ranks must already be zero-based
//     (0 = most preferred); base-index normalisation belongs to the caller.
//
// Implementation:
//   - Stage 1: reject an empty label set (no row width to divide by).
//   - Stage 2: require len(votes) to be a whole number of rows.
//   - Stage 3: require every rank in [0, len(labels)).
//
// Errors:
//   - *MismatchError[T] (errors.Is ErrMismatch), carrying labels and votes
//     unchanged.
//
// Notes:
//   - New takes ownership of both slices on success; the caller must not
//     mutate them afterwards.
//   - Zero voters is legal: every round then reports zero votes.
//
// Complexity:
//   - Time O(V*C), Space O(1).
func New[T comparable](labels []T, votes []int) (*Ballot[T], error) {
	c := len(labels)
	if c == 0 {
		return nil, &MismatchError[T]{Labels: labels, Votes: votes, Reason: reasonNoLabels, Index: -1}
	}
	if len(votes)%c != 0 {
		return nil, &MismatchError[T]{Labels: labels, Votes: votes, Reason: reasonRowWidth, Index: -1}
	}
	for k, v := range votes {
		if v < 0 || v >= c {
			return nil, &MismatchError[T]{Labels: labels, Votes: votes, Reason: reasonRankBounds, Index: k}
		}
	}

	return &Ballot[T]{labels: labels, votes: votes}, nil
}

// Candidates returns the number of candidates still standing.
func (b *Ballot[T]) Candidates() int { return len(b.labels) }

// Voters returns the number of ballots (rows).
func (b *Ballot[T]) Voters() int {
	if len(b.labels) == 0 {
		return 0
	}

	return len(b.votes) / len(b.labels)
}

// Labels returns a copy of the surviving candidate labels in order.
func (b *Ballot[T]) Labels() []T {
	out := make([]T, len(b.labels))
	copy(out, b.labels)

	return out
}

// rows calls fn with each voter's rank window, in voter order.
// The window aliases the backing buffer; writes are visible to later rounds.
func (b *Ballot[T]) rows(fn func(row []int)) {
	c := len(b.labels)
	for off := 0; off < len(b.votes); off += c {
		fn(b.votes[off : off+c : off+c]) // cap-limited so append cannot spill into the next row
	}
}

// column calls fn with every voter's rank for candidate j, in voter order.
// Stride access over the row-major buffer: offset = i*C + j.
func (b *Ballot[T]) column(j int, fn func(rank int)) {
	c := len(b.labels)
	for off := j; off < len(b.votes); off += c {
		fn(b.votes[off])
	}
}

// removeColumn drops candidate j from every row and from the label list,
// returning the removed label.
// Implementation:
//   - Stage 1: allocate a V*(C-1) buffer.
//   - Stage 2: copy each row without cell j (two contiguous copies per row).
//   - Stage 3: swap in the new buffer and splice the label out.
//
// Complexity: O(V*C) time, O(V*C) transient space.
func (b *Ballot[T]) removeColumn(j int) T {
	c := len(b.labels)
	next := make([]int, 0, len(b.votes)-b.Voters())
	b.rows(func(row []int) {
		next = append(next, row[:j]...)
		next = append(next, row[j+1:]...)
	})
	b.votes = next

	label := b.labels[j]
	labels := make([]T, 0, c-1)
	labels = append(labels, b.labels[:j]...)
	b.labels = append(labels, b.labels[j+1:]...)

	return label
}
