package lattice

import (
	"strconv"
	"strings"

	"github.com/okkevaneck/prospr/model"
)

// New constructs a Lattice for sequence under the given dimensionality and
// model, with exactly one residue — the first — placed at the origin.
// CurLen starts at 1; Score and both counters start at 0.
func New(sequence string, dim int, m *model.Model) (*Lattice, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}

	n := len(sequence)
	residues := make([]Residue, n)
	maxWeights := make([]int, n)
	for i := 0; i < n; i++ {
		residues[i] = Residue{Type: sequence[i], Index: i}
		if m.IsWeighted(sequence[i]) {
			maxWeights[i] = m.MaxWeight[sequence[i]]
		}
	}

	origin := make(Position, dim)
	l := &Lattice{
		sequence:   sequence,
		dim:        dim,
		model:      m,
		residues:   residues,
		occupancy:  map[string]int{keyOf(origin): 0},
		curLen:     1,
		lastPos:    origin,
		maxWeights: maxWeights,
	}

	return l, nil
}

// keyOf returns the canonical occupancy-map key for a position.
func keyOf(p Position) string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// IsValid reports whether m is nonzero, within the dimension's axis range,
// and steps from LastPos to an unoccupied position.
func (l *Lattice) IsValid(m Move) bool {
	if m == 0 || int(m) > l.dim || int(m) < -l.dim {
		return false
	}
	to := step(l.lastPos, m, l.dim)
	_, occupied := l.occupancy[keyOf(to)]

	return !occupied
}

// fullMovesExcept returns Alphabet(dim) with the single move `exclude`
// removed — used to scan every contact-forming neighbor of a newly placed
// or about-to-be-removed residue except its chain predecessor.
func (l *Lattice) fullMovesExcept(exclude Move) []Move {
	all := Alphabet(l.dim)
	out := make([]Move, 0, len(all)-1)
	for _, m := range all {
		if m != exclude {
			out = append(out, m)
		}
	}

	return out
}

// neighborSum sums model.Weight(residues[at].Type, neighbor.Type) over
// every neighbor of position pos reachable by a move in moves, for any
// neighbor that is currently occupied.
func (l *Lattice) neighborSum(at int, pos Position, moves []Move) int {
	cur := l.residues[at].Type
	sum := 0
	for _, mv := range moves {
		np := step(pos, mv, l.dim)
		if idx, ok := l.occupancy[keyOf(np)]; ok {
			sum += l.model.Weight(cur, l.residues[idx].Type)
		}
	}

	return sum
}

// Place extends the conformation by one residue via move m. track, when
// true (the normal case for an exhaustive search), increments the
// AminosPlaced counter and, when the placement completes the sequence,
// SolutionsChecked. See SPEC_FULL.md §4.1 for the exact effect ordering.
func (l *Lattice) Place(m Move, track bool) error {
	if l.curLen >= len(l.sequence) {
		return ErrFoldedOntoItself
	}
	if m == 0 || int(m) > l.dim || int(m) < -l.dim {
		return ErrInvalidMove
	}

	newPos := step(l.lastPos, m, l.dim)
	if _, occupied := l.occupancy[keyOf(newPos)]; occupied {
		return ErrFoldedOntoItself
	}

	predIdx := l.occupancy[keyOf(l.lastPos)]
	l.residues[predIdx].NextMove = m

	newIdx := l.curLen
	l.residues[newIdx].PrevMove = m
	l.residues[newIdx].NextMove = 0
	l.occupancy[keyOf(newPos)] = newIdx
	l.lastPos = newPos
	l.lastMove = m

	if l.model.IsWeighted(l.sequence[newIdx]) {
		l.score += l.neighborSum(newIdx, newPos, l.fullMovesExcept(-m))
	}

	l.curLen++

	if track {
		l.aminosPlaced++
		if l.curLen == len(l.sequence) {
			l.solutionsChecked++
		}
	}

	return nil
}

// Remove exactly undoes the last Place, restoring the Lattice to the state
// it was in before that call (side-effect counters excepted).
func (l *Lattice) Remove() error {
	if l.curLen <= 1 {
		return ErrEmptyChain
	}

	l.curLen--
	removedIdx := l.curLen

	if l.model.IsWeighted(l.sequence[removedIdx]) {
		l.score -= l.neighborSum(removedIdx, l.lastPos, l.fullMovesExcept(-l.lastMove))
	}

	delete(l.occupancy, keyOf(l.lastPos))
	axis, delta := l.lastMove.axis()
	l.lastPos[axis] -= delta

	predIdx := l.occupancy[keyOf(l.lastPos)]
	l.residues[predIdx].NextMove = 0
	l.lastMove = l.residues[predIdx].PrevMove

	return nil
}

// HashFold returns the ordered sequence of NextMoves from the origin
// residue until the chain end — the canonical serialization of the
// current conformation. Its length is always CurLen()-1.
func (l *Lattice) HashFold() []Move {
	fold := make([]Move, 0, l.curLen-1)
	for i := 0; i < l.curLen-1; i++ {
		fold = append(fold, l.residues[i].NextMove)
	}

	return fold
}

// SetHash resets the conformation and replays moves in order via Place.
func (l *Lattice) SetHash(moves []Move, track bool) error {
	if len(moves) >= len(l.sequence) {
		return ErrHashTooLong
	}

	l.ResetConformation()
	for _, m := range moves {
		if err := l.Place(m, track); err != nil {
			return err
		}
	}

	return nil
}

// ResetConformation restores the Lattice to CurLen==1 at the origin with
// Score==0, preserving the AminosPlaced/SolutionsChecked counters.
func (l *Lattice) ResetConformation() {
	for i := range l.residues {
		l.residues[i].PrevMove = 0
		l.residues[i].NextMove = 0
	}

	origin := make(Position, l.dim)
	l.occupancy = map[string]int{keyOf(origin): 0}
	l.curLen = 1
	l.lastPos = origin
	l.lastMove = 0
	l.score = 0
}

// Reset restores the Lattice as ResetConformation does, and additionally
// zeros the AminosPlaced/SolutionsChecked counters.
func (l *Lattice) Reset() {
	l.ResetConformation()
	l.aminosPlaced = 0
	l.solutionsChecked = 0
}

// SetCounters overwrites AminosPlaced and SolutionsChecked directly,
// without touching the conformation. Used by package checkpoint to
// restore a resumed search's counters exactly.
func (l *Lattice) SetCounters(aminosPlaced, solutionsChecked uint64) {
	l.aminosPlaced = aminosPlaced
	l.solutionsChecked = solutionsChecked
}

// GetAmino returns the residue index occupying pos and true, or (0, false)
// if pos is unoccupied.
func (l *Lattice) GetAmino(pos Position) (int, bool) {
	idx, ok := l.occupancy[keyOf(pos)]

	return idx, ok
}

// Bond is a single reported contact between two non-chain-adjacent,
// negatively-scoring residues. Both orientations of a contact are
// reported, matching the original engine's get_bonds contract.
type Bond struct {
	I, J int
}

// GetBonds enumerates every contact between non-chain-adjacent residues
// whose pair energy is strictly negative.
func (l *Lattice) GetBonds() []Bond {
	var bonds []Bond

	pos := make(Position, l.dim)
	moves := l.fullMovesExcept(l.residues[0].NextMove)
	bonds = l.appendBondPairs(bonds, pos, moves)

	for _, m := range l.HashFold() {
		pos = step(pos, m, l.dim)
		idx := l.occupancy[keyOf(pos)]

		exclude := -l.residues[idx].PrevMove
		cur := l.fullMovesExcept(exclude)
		if l.residues[idx].NextMove != 0 {
			cur = removeMove(cur, l.residues[idx].NextMove)
		}
		bonds = l.appendBondPairs(bonds, pos, cur)
	}

	return bonds
}

func removeMove(moves []Move, m Move) []Move {
	out := moves[:0:0]
	for _, mv := range moves {
		if mv != m {
			out = append(out, mv)
		}
	}

	return out
}

func (l *Lattice) appendBondPairs(pairs []Bond, pos Position, moves []Move) []Bond {
	curIdx := l.occupancy[keyOf(pos)]
	curType := l.residues[curIdx].Type
	if !l.model.IsWeighted(curType) {
		return pairs
	}

	for _, m := range moves {
		other := step(pos, m, l.dim)
		otherIdx, ok := l.occupancy[keyOf(other)]
		if !ok {
			continue
		}
		if l.model.Weight(curType, l.residues[otherIdx].Type) < 0 {
			pairs = append(pairs, Bond{I: curIdx, J: otherIdx})
		}
	}

	return pairs
}

// Clone returns a deep, independently-mutable copy of l.
func (l *Lattice) Clone() *Lattice {
	residues := make([]Residue, len(l.residues))
	copy(residues, l.residues)

	occupancy := make(map[string]int, len(l.occupancy))
	for k, v := range l.occupancy {
		occupancy[k] = v
	}

	maxWeights := make([]int, len(l.maxWeights))
	copy(maxWeights, l.maxWeights)

	return &Lattice{
		sequence:         l.sequence,
		dim:              l.dim,
		model:            l.model,
		residues:         residues,
		occupancy:        occupancy,
		curLen:           l.curLen,
		lastPos:          l.LastPos(),
		lastMove:         l.lastMove,
		score:            l.score,
		maxWeights:       maxWeights,
		aminosPlaced:     l.aminosPlaced,
		solutionsChecked: l.solutionsChecked,
	}
}

// Equal reports whether l and other are the same conformation: same
// sequence, dim, bond table and move hash, and the same CurLen. Counters
// are excluded, per SPEC_FULL.md §9.
func (l *Lattice) Equal(other *Lattice) bool {
	if other == nil {
		return false
	}
	if l.sequence != other.sequence || l.dim != other.dim || l.curLen != other.curLen {
		return false
	}
	if len(l.model.Table) != len(other.model.Table) {
		return false
	}
	for k, v := range l.model.Table {
		if other.model.Table[k] != v {
			return false
		}
	}

	a, b := l.HashFold(), other.HashFold()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
