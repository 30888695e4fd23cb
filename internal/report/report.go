// SPDX-License-Identifier: MIT

// Package report renders runoff rounds for people (Human) or pipes (Raw).
// Renderers pull rounds from an iter.Seq, so nothing past the last printed
// round is ever computed.
package report

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/rankvote/ballot"
)

// Raw writes each round's leader on its own line.
func Raw(w io.Writer, rounds iter.Seq[ballot.Round[string]]) error {
	for round := range rounds {
		if _, err := fmt.Fprintln(w, round.Label); err != nil {
			return err
		}
	}

	return nil
}

// Human renders every round as a heading followed by the other candidates,
// most votes first. Color styles the heading and counts with lipgloss; with
// Color off the output is plain text.
type Human struct {
	Color bool
}

// styles used when Color is on.
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#20B9B4"))
)

// paint applies s only when colour is enabled.
func (h Human) paint(s lipgloss.Style, text string) string {
	if !h.Color {
		return text
	}

	return s.Render(text)
}

// Render writes the rounds to w.
//
// Layout per round:
//
//	Winner #N: <label> with <votes> votes
//	<label>: <votes>        (one line per other candidate, descending)
//	<blank>
//	<blank>
//
// Others with equal tallies keep their label order.
func (h Human) Render(w io.Writer, rounds iter.Seq[ballot.Round[string]]) error {
	n := 0
	for round := range rounds {
		n++
		heading := fmt.Sprintf("Winner #%d: %s with %s votes",
			n, h.paint(labelStyle, round.Label), h.paint(countStyle, fmt.Sprint(round.Votes)))
		if _, err := fmt.Fprintln(w, h.paint(headingStyle, heading)); err != nil {
			return err
		}

		for _, o := range SortedOthers(round) {
			if _, err := fmt.Fprintf(w, "%s: %s\n", o.Label, h.paint(countStyle, fmt.Sprint(o.Votes))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n\n"); err != nil {
			return err
		}
	}

	return nil
}

// SortedOthers returns a copy of round.Others ordered by votes, descending.
// The sort is stable so ties stay in label order.
func SortedOthers[T comparable](round ballot.Round[T]) []ballot.Tally[T] {
	out := slices.Clone(round.Others)
	slices.SortStableFunc(out, func(a, b ballot.Tally[T]) int {
		return cmp.Compare(b.Votes, a.Votes)
	})

	return out
}
