// Package ballot computes round-by-round runoff results from complete ranked
// ballots stored in a dense rank matrix.
//
// 🗳 What is stored?
//
//	V voters × C candidates, row-major in one flat []int:
//	  votes[i*C + j] = voter i's rank for candidate j   (0 = most preferred)
//	Every row ranks every candidate; every rank is in [0, C).
//
// ⚙️ What does a round do?
//
//	1. Count first-place (rank 0) votes per candidate.
//	2. Select the candidate with the most (ties → lowest index).
//	3. Re-rank each ballot so it is dense again without that candidate.
//	4. Remove the candidate and report its tally plus everyone else's.
//
// ⚠️ Selection order
//
//	Each round removes the plurality LEADER. This is the reverse of
//	textbook instant-runoff (which drops the last-place candidate and keeps
//	the winner for the end): here round 1 names the winner, round 2 the
//	runner-up, and so on. The tie-break on index is deterministic but
//	arbitrary.
//
// Usage:
//
//	b, err := ballot.New([]string{"ann", "bob", "cy"}, []int{
//	    0, 1, 2,
//	    2, 0, 1,
//	})
//	if err != nil {
//	    // errors.Is(err, ballot.ErrMismatch)
//	}
//	for round := range b.Runoff().All() {
//	    fmt.Println(round.Label, round.Votes)
//	}
//
// Performance:
//
//   - Time:   O(V·C) per round, O(V·C²) overall
//   - Memory: O(V·C)
//
// A Ballot is consumed by its Runoff: the sequence is single-pass and cannot
// be restarted. Neither type is safe for concurrent use.
package ballot
