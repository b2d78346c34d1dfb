// Package lattice implements the self-avoiding-walk conformation state
// machine at the core of the HP-family protein folding engine: placing and
// removing residues on a d-dimensional integer lattice while maintaining an
// exact running contact score in O(dim) per operation.
//
// Lattice is deliberately the only mutable type in this package. Its
// occupancy is a flat arena of Residue values plus an index map, never a
// graph of pointers — the same re-architecture the teacher codebase
// applies to its own Graph/Vertex/Edge triple (see DESIGN.md) — so that
// Clone is a cheap, unambiguous deep copy and nothing outlives a remove.
//
// Every public mutator restores the Lattice to a consistent state before
// returning an error; callers are expected to gate place with is_valid and
// therefore should never observe ErrInvalidMove from the search algorithms
// in package search.
package lattice

import "errors"

// Sentinel errors returned by Lattice operations.
var (
	// ErrInvalidMove indicates a zero move, an out-of-range axis, or a
	// move that is not legal to try before placement (callers should gate
	// with IsValid; the search algorithms never trigger this).
	ErrInvalidMove = errors.New("lattice: invalid move")

	// ErrFoldedOntoItself is the defensive variant of ErrInvalidMove,
	// raised when an internal invariant would otherwise be broken by
	// completing a placement that collides with an occupied position.
	ErrFoldedOntoItself = errors.New("lattice: chain folded onto itself")

	// ErrEmptyChain indicates Remove was called with only the origin
	// residue placed.
	ErrEmptyChain = errors.New("lattice: cannot remove the only placed residue")

	// ErrBadDimension indicates dim < 1.
	ErrBadDimension = errors.New("lattice: dim must be >= 1")

	// ErrEmptySequence indicates an empty residue sequence.
	ErrEmptySequence = errors.New("lattice: sequence must not be empty")

	// ErrHashTooLong indicates a move hash that does not fit the sequence.
	ErrHashTooLong = errors.New("lattice: hash is too long for this sequence")
)
