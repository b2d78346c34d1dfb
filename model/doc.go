// Package model defines the scoring table shared by every residue in a
// Lattice conformation: which residue pairs form a bond, how strong that
// bond is, and the single most optimistic bond each residue could ever
// contribute (used by the bounding functions in package search).
//
// Two presets are built in — HP and HPXN — and any other table can be
// supplied explicitly. In all three cases the table is completed with its
// mirror image (PN implies NP) unless bond symmetry is disabled, so that
// the engine never has to care which of two neighboring residues was
// placed first.
package model

import "errors"

// Sentinel errors returned by New.
var (
	// ErrUnknownModel indicates a model name that is neither a recognized
	// preset nor accompanied by an explicit, non-empty Table.
	ErrUnknownModel = errors.New("model: unknown preset and no explicit table given")

	// ErrEmptyTable indicates an explicit table with no entries.
	ErrEmptyTable = errors.New("model: explicit table must not be empty")
)
