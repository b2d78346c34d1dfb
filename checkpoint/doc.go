// Package checkpoint persists and restores a running depth-first
// branch-and-bound search so a long job can survive an interrupt signal.
//
// The on-disk format is a flat key=value text file — `;` or `#` start a
// comment, blank lines are ignored — grounded on
// original_source/prospr/core/src/utils.cpp's dump_protein_state /
// load_protein_state / parse_ini_line. Load followed immediately by Save
// reproduces the same logical state (whitespace and comments excepted).
//
// Runner ties the codec to search.BnBEngine and an os/signal handler,
// giving cmd/prospr-bench a resumable, signal-safe long-running search.
package checkpoint

import "errors"

// Sentinel errors returned by Load.
var (
	// ErrMissingKey indicates a required key was absent from the file.
	ErrMissingKey = errors.New("checkpoint: missing required key")

	// ErrInvalidValue indicates a key's value could not be parsed.
	ErrInvalidValue = errors.New("checkpoint: invalid value")
)
