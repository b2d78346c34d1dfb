package lattice

import "github.com/okkevaneck/prospr/model"

// Move is a nonzero axis-aligned unit step: magnitude selects a 1-based
// axis, sign selects direction. Move(0) is reserved for "no outgoing move".
type Move int

// Position is an integer vector in Z^d. The origin (all zeros) is where
// the first residue of every Lattice is placed.
type Position []int

// Residue is one entry per sequence position: its type character, its
// index in [0, N), and the moves connecting it to its chain neighbors.
// PrevMove is the move that placed it (0 for the first residue);
// NextMove is the move placing its successor (0 while it is the chain
// end).
type Residue struct {
	Type     byte
	Index    int
	PrevMove Move
	NextMove Move
}

// Lattice is a partial self-avoiding walk on Z^d labeled by a residue
// sequence, scored under a model. See the package doc for its mutation
// discipline.
type Lattice struct {
	sequence string
	dim      int
	model    *model.Model

	// residues is the flat arena backing every residue position; only the
	// first curLen entries are currently placed. occupancy maps a
	// position's canonical string key to an index into residues.
	residues  []Residue
	occupancy map[string]int

	curLen   int
	lastPos  Position
	lastMove Move
	score    int

	maxWeights []int

	aminosPlaced     uint64
	solutionsChecked uint64
}

// Sequence returns the residue sequence the Lattice was constructed with.
func (l *Lattice) Sequence() string { return l.sequence }

// Dim returns the lattice dimensionality.
func (l *Lattice) Dim() int { return l.dim }

// BondValues returns the model's completed bond table.
func (l *Lattice) BondValues() model.Table { return l.model.Table }

// CurLen returns the number of currently placed residues.
func (l *Lattice) CurLen() int { return l.curLen }

// Len returns the full sequence length N.
func (l *Lattice) Len() int { return len(l.sequence) }

// LastMove returns the move that placed the most recently placed residue,
// or 0 if only the origin residue is placed.
func (l *Lattice) LastMove() Move { return l.lastMove }

// LastPos returns the position of the most recently placed residue.
func (l *Lattice) LastPos() Position {
	out := make(Position, len(l.lastPos))
	copy(out, l.lastPos)

	return out
}

// Score returns the exact current contact score.
func (l *Lattice) Score() int { return l.score }

// SolutionsChecked returns the number of complete conformations tracked so
// far (placements that brought CurLen to Len with track=true).
func (l *Lattice) SolutionsChecked() uint64 { return l.solutionsChecked }

// AminosPlaced returns the number of tracked placements performed so far.
func (l *Lattice) AminosPlaced() uint64 { return l.aminosPlaced }

// MaxWeights returns, per sequence position, the model's MaxWeight for
// that position's residue type, or 0 if the residue is unweighted.
func (l *Lattice) MaxWeights() []int {
	out := make([]int, len(l.maxWeights))
	copy(out, l.maxWeights)

	return out
}

// IsWeighted reports whether the residue at index i can ever score a bond.
func (l *Lattice) IsWeighted(i int) bool {
	return l.model.IsWeighted(l.sequence[i])
}
