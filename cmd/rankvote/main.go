// SPDX-License-Identifier: MIT

// Command rankvote tallies ranked ballots read as CSV.
//
// Usage:
//
//	rankvote [len] [flags] < ballots.csv
//	rankvote -s 2 -i 1 -f survey.csv
//	rankvote --raw < ballots.csv
//
// Each round removes the candidate with the most first-place votes, so the
// first "winner" printed is the overall winner and later rounds rank the
// rest. This is the reverse of textbook instant-runoff elimination.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
