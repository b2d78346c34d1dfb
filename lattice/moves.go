package lattice

// Alphabet returns the full move alphabet A(dim) = {-dim,...,-1,1,...,dim}
// in the deterministic descending order the tree searches in package
// search rely on: +dim, +dim-1, ..., 1, -1, ..., -dim.
func Alphabet(dim int) []Move {
	moves := make([]Move, 0, 2*dim)
	for m := dim; m >= 1; m-- {
		moves = append(moves, Move(m))
	}
	for m := -1; m >= -dim; m-- {
		moves = append(moves, Move(m))
	}

	return moves
}

// axis returns the 0-based axis and unit step (+1 or -1) a Move encodes.
func (m Move) axis() (int, int) {
	if m < 0 {
		return int(-m) - 1, -1
	}

	return int(m) - 1, 1
}

// step returns the position reached by applying m to from. It does not
// mutate from.
func step(from Position, m Move, dim int) Position {
	to := make(Position, dim)
	copy(to, from)
	axis, delta := m.axis()
	to[axis] += delta

	return to
}

// NegativeAlphabet returns the negative half of Alphabet(dim), in the same
// order: -1, -2, ..., -dim. The tree searches in package search use it to
// restrict the third residue's move to prevent reflection symmetry, per
// the rules in SPEC_FULL.md §4.2.
func NegativeAlphabet(dim int) []Move {
	moves := make([]Move, 0, dim)
	for m := -1; m >= -dim; m-- {
		moves = append(moves, Move(m))
	}

	return moves
}
