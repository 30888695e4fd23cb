// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rankvote/ballot"
	"github.com/katalvlaran/rankvote/internal/config"
	"github.com/katalvlaran/rankvote/internal/ingest"
	"github.com/katalvlaran/rankvote/internal/logging"
	"github.com/katalvlaran/rankvote/internal/report"
)

// flag names double as YAML keys in config files.
const (
	flagConfig    = "config"
	flagInput     = "input"
	flagStart     = "start"
	flagIndexedAt = "indexed-at"
	flagRaw       = "raw"
	flagNoColor   = "no-color"
	flagVerbose   = "verbose"
	flagLogJSON   = "log-json"
)

// newRootCmd builds the command tree. A fresh tree per call keeps tests
// independent of flag state left by earlier runs.
func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		flags   = config.Default()
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "rankvote [len]",
		Short: "Calculate the results of instant-runoff voting from CSV ballots",
		Long: `Reads a CSV file with a header row, where each record is one voter and a
contiguous run of columns holds that voter's rank for the candidate named in
the header. Pass [len] to limit how many columns hold ranks; otherwise every
column from --start on is used.

Each round removes the candidate with the most first-place votes and
re-ranks the remaining ballots, so round 1 names the winner and later rounds
rank the rest. Ties go to the leftmost column.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, cfgPath, flags, noColor, args)
			if err != nil {
				return reportErr(cmd, err)
			}

			level := logging.LevelInfo
			if cfg.Verbose {
				level = logging.LevelDebug
			}
			logger := logging.New(logging.Config{Level: level, JSON: cfg.LogJSON, Writer: cmd.ErrOrStderr()})

			if err := run(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger); err != nil {
				return reportErr(cmd, err)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, flagConfig, "", "YAML file with default settings (flags override it)")
	f.StringVarP(&flags.Input, flagInput, "f", "", "read CSV from this file instead of stdin")
	f.IntVarP(&flags.Start, flagStart, "s", flags.Start, "what column ranks start at, indexed at 0")
	f.IntVarP(&flags.IndexedAt, flagIndexedAt, "i", flags.IndexedAt, "what value corresponds to the highest rank")
	f.BoolVarP(&flags.Raw, flagRaw, "r", false, "output the winners only, delimited by newlines")
	f.BoolVar(&noColor, flagNoColor, false, "disable coloured output")
	f.BoolVarP(&flags.Verbose, flagVerbose, "v", false, "log loading and every round to stderr")
	f.BoolVar(&flags.LogJSON, flagLogJSON, false, "write logs as JSON")

	return cmd
}

// reportErr prints err to the command's stderr and returns it for the exit code.
func reportErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

	return err
}

// resolveConfig layers defaults, the optional YAML file, explicitly set flags
// and the positional len argument, then validates the result.
func resolveConfig(cmd *cobra.Command, cfgPath string, flags config.Config, noColor bool, args []string) (config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set(flagInput) {
		cfg.Input = flags.Input
	}
	if set(flagStart) {
		cfg.Start = flags.Start
	}
	if set(flagIndexedAt) {
		cfg.IndexedAt = flags.IndexedAt
	}
	if set(flagRaw) {
		cfg.Raw = flags.Raw
	}
	if set(flagVerbose) {
		cfg.Verbose = flags.Verbose
	}
	if set(flagLogJSON) {
		cfg.LogJSON = flags.LogJSON
	}
	if noColor {
		cfg.Color = false
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%w: len must be a positive integer, got %q", config.ErrInvalid, args[0])
		}
		cfg.Len = n
	}

	return cfg, cfg.Validate()
}

// run reads the ballot, drives the runoff and renders it.
func run(stdin io.Reader, stdout io.Writer, cfg config.Config, logger *slog.Logger) error {
	in := stdin
	if cfg.Input != "" {
		file, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
	}

	b, err := ingest.ReadCSV(in, cfg.IngestOptions())
	if err != nil {
		return err
	}
	candidates, voters := b.Candidates(), b.Voters()
	logger.Debug("ballot loaded",
		"candidates", candidates, "voters", voters, "start", cfg.Start, "indexed_at", cfg.IndexedAt)

	rounds := traceRounds(b.Runoff().All(), logger)
	if cfg.Raw {
		err = report.Raw(stdout, rounds)
	} else {
		err = report.Human{Color: cfg.Color && isTerminal(stdout)}.Render(stdout, rounds)
	}
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	logger.Info("tally complete", "candidates", candidates, "voters", voters)

	return nil
}

// traceRounds logs each round at debug level as the renderer pulls it.
func traceRounds(seq iter.Seq[ballot.Round[string]], logger *slog.Logger) iter.Seq[ballot.Round[string]] {
	return func(yield func(ballot.Round[string]) bool) {
		n := 0
		for round := range seq {
			n++
			logger.Debug("round", "n", n, "leader", round.Label, "votes", round.Votes, "standing", len(round.Others)+1)
			if !yield(round) {
				return
			}
		}
	}
}

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
