package search

import "github.com/okkevaneck/prospr/lattice"

// DepthFirst exhaustively enumerates every self-avoiding conformation of l's
// sequence, leaving l folded into the best (most negative score) one found,
// installed via SetHash. Every complete conformation is counted against
// l's SolutionsChecked; every attempted placement against its AminosPlaced.
//
// Grounded on original_source/prospr/core/src/depth_first.cpp's traversal
// shape, but recursive rather than an explicit stack, matching the
// teacher's own dfs.DFS/traverse recursion style. Unlike DepthFirstBnB,
// this search runs to completion uninterruptibly — only BnB searches are
// checkpoint-resumable (SPEC_FULL.md §4.9).
func DepthFirst(l *lattice.Lattice) error {
	if l == nil {
		return ErrNilLattice
	}

	n := l.Len()
	if n > 1 {
		if err := l.Place(-1, true); err != nil {
			return err
		}
	}
	if n <= 2 {
		return nil
	}

	w := &dfsWalker{l: l, n: n, bestScore: 1}
	if err := w.recurse(lattice.NegativeAlphabet(l.Dim())); err != nil {
		return err
	}

	return l.SetHash(w.bestHash, false)
}

type dfsWalker struct {
	l         *lattice.Lattice
	n         int
	bestScore int
	bestHash  []lattice.Move
}

// recurse tries every move in moves from the current conformation, placing
// and recursing on each valid one before backtracking.
func (w *dfsWalker) recurse(moves []lattice.Move) error {
	for _, m := range moves {
		if !w.l.IsValid(m) {
			continue
		}
		if err := w.l.Place(m, true); err != nil {
			return err
		}

		if w.l.CurLen() == w.n {
			if score := w.l.Score(); score < w.bestScore {
				w.bestScore = score
				w.bestHash = w.l.HashFold()
			}
		} else if err := w.recurse(lattice.Alphabet(w.l.Dim())); err != nil {
			return err
		}

		if err := w.l.Remove(); err != nil {
			return err
		}
	}

	return nil
}
