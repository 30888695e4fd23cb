// SPDX-License-Identifier: MIT

package ballot

// Test bridge: exposes the live rank buffer of the ballot behind a Runoff so
// ballot_test can check per-row density between rounds.

// RowsOf_TestOnly returns a copy of every row of the matrix still owned by r.
func RowsOf_TestOnly[T comparable](r *Runoff[T]) [][]int {
	var out [][]int
	r.b.rows(func(row []int) {
		out = append(out, append([]int(nil), row...))
	})

	return out
}
