// Package rankvote computes ranked-ballot runoff results with a full,
// auditable round-by-round trace rather than just a final winner.
//
// 🚀 What is in here?
//
//	ballot/             — dense rank matrix + the round engine (public API)
//	internal/ingest/    — CSV → zero-based rank matrix
//	internal/report/    — human and raw renderers
//	internal/config/    — defaults, YAML file, validation
//	internal/logging/   — slog logger construction
//	cmd/rankvote/       — the command-line tool
//
// ⚠️ Each round removes the candidate with the MOST first-place votes, so
// round 1 names the winner and later rounds order the rest. Classic
// instant-runoff does the opposite (drops the last-place candidate); the
// leader-first order here is intentional.
//
// Quick example:
//
//	id,ada,bo,cy
//	1,1,2,3        →  rankvote -s 1 -r  →  ada
//	2,2,1,3                               bo
//	3,1,3,2                               cy
//
//	go install github.com/katalvlaran/rankvote/cmd/rankvote@latest
package rankvote
