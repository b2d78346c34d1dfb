// Package search implements the tree-search algorithms that explore the
// conformation space exposed by package lattice: exhaustive depth-first
// enumeration, two admissible bounding functions and the depth-first
// branch-and-bound they prune, a priority-width-limited beam search, a
// best-first (uniform-cost) search, and a bound-pruned best-first variant.
//
// Every algorithm here mutates a *lattice.Lattice in place via Place and
// Remove and leaves it holding the best conformation found, installed via
// SetHash. None of them retains a Lattice reference across a call; beam
// search and best-first search instead clone a Lattice per candidate, per
// the value-semantics discipline in SPEC_FULL.md §9.
//
// All algorithms apply the same symmetry-breaking prefix before exploring
// the full move alphabet: the second residue is pinned to move -1, and the
// third residue (if any) is restricted to lattice.NegativeAlphabet, per
// SPEC_FULL.md §4.2. Sequences of length <= 2 return immediately with no
// further exploration possible.
package search

import "errors"

// Sentinel errors returned by the search entry points.
var (
	// ErrNilLattice indicates a nil *lattice.Lattice was passed in.
	ErrNilLattice = errors.New("search: lattice is nil")

	// ErrBeamWidth indicates a beam width that is neither -1 nor positive.
	ErrBeamWidth = errors.New("search: beam_width must be -1 or a positive integer")

	// ErrUnknownBound indicates a prune function name NewBound does not
	// recognize.
	ErrUnknownBound = errors.New("search: unknown bound name")
)
