// SPDX-License-Identifier: MIT

// Package ingest reads ranked ballots from CSV into a ballot.Ballot.
//
// The first record is a header whose selected columns name the candidates.
// Each following record is one voter; its selected columns hold that voter's
// rank for the candidate in the same column. Ranks are shifted by
// Options.IndexedAt so the best rank becomes 0 before construction.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/rankvote/ballot"
)

// Options selects which columns hold ranks and what the best rank is.
type Options struct {
	// Start is the zero-based index of the first rank column.
	Start int
	// Len is the number of rank columns. Zero means every column from Start on.
	Len int
	// IndexedAt is the value that denotes the most preferred rank
	// (1 for "1st, 2nd, ..." surveys, 0 for zero-based exports).
	IndexedAt int
}

// DefaultOptions mirrors the command-line defaults: ranks start in column 0
// and are numbered from 1.
func DefaultOptions() Options {
	return Options{Start: 0, Len: 0, IndexedAt: 1}
}

// ReadCSV parses r and builds the ballot.
// Implementation:
//   - Stage 1: read the header and slice out the label columns.
//   - Stage 2: for every record, slice the same columns and parse each cell.
//   - Stage 3: subtract IndexedAt from every rank (underflow is an error).
//   - Stage 4: hand labels and the flat rank buffer to ballot.New.
//
// Errors: ErrOptions, ErrHeader, ErrColumns, ErrRecord, ErrRankParse, ErrWidth,
// ErrIndexBase, or ballot.ErrMismatch for ranks beyond the candidate count.
// Complexity: O(V*C).
func ReadCSV(r io.Reader, opts Options) (*ballot.Ballot[string], error) {
	if opts.Start < 0 || opts.Len < 0 || opts.IndexedAt < 0 {
		return nil, fmt.Errorf("%w: start %d, len %d, indexed-at %d", ErrOptions, opts.Start, opts.Len, opts.IndexedAt)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // width is checked per selection, not per raw record
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeader, err)
	}
	labels := selectColumns(header, opts)
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w (header has %d columns, start %d)", ErrColumns, len(header), opts.Start)
	}
	for i, l := range labels {
		labels[i] = strings.TrimSpace(l)
	}

	var votes []int
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RecordError{Row: row, Col: -1, Detail: err.Error(), Err: ErrRecord}
		}

		cells := selectColumns(record, opts)
		if len(cells) != len(labels) {
			return nil, &RecordError{
				Row: row, Col: -1,
				Detail: fmt.Sprintf("expected %d, got %d", len(labels), len(cells)),
				Err:    ErrWidth,
			}
		}
		for col, cell := range cells {
			rank, err := parseRank(cell, opts.IndexedAt)
			if err != nil {
				return nil, &RecordError{Row: row, Col: col, Detail: strconv.Quote(cell), Err: err}
			}
			votes = append(votes, rank)
		}
	}

	return ballot.New(labels, votes)
}

// selectColumns returns the [Start, Start+Len) window of fields, clipped to
// the record width. Len <= 0 selects everything from Start on.
func selectColumns(fields []string, opts Options) []string {
	if opts.Start >= len(fields) {
		return nil
	}
	out := fields[opts.Start:]
	if opts.Len > 0 && opts.Len < len(out) {
		out = out[:opts.Len]
	}

	return append([]string(nil), out...)
}

// parseRank converts one cell to a zero-based rank.
func parseRank(cell string, base int) (int, error) {
	raw, err := strconv.ParseUint(strings.TrimSpace(cell), 10, 0)
	if err != nil {
		return 0, ErrRankParse
	}
	if raw < uint64(base) {
		return 0, ErrIndexBase
	}

	return int(raw) - base, nil
}
