package checkpoint

import "github.com/okkevaneck/prospr/lattice"

// Checkpoint is the resumable state of one depth_first_bnb run, holding
// both the Lattice's own conformation counters and the search engine's
// machine state (search.BnBState), per spec.md §4.7's required key list.
type Checkpoint struct {
	Algorithm string

	// Lattice state.
	CurrentHash      []lattice.Move
	AminosPlaced     uint64
	SolutionsChecked uint64

	// search.BnBEngine machine state, plus the Lattice's Score.
	DFSStack    []lattice.Move
	Move        lattice.Move
	PlacedAmino bool
	BestScore   int
	Score       int
	BestHash    []lattice.Move
	Iterations  uint64
}
