package search

import "github.com/okkevaneck/prospr/lattice"

// Bound is an admissible upper bound on the additional (most negative)
// score a partial conformation's unplaced suffix can still contribute.
// Prune places m on l without tracking, evaluates the bound, removes m
// again, and reports whether the branch can be discarded without losing
// the true optimum — true iff score+branch_score >= bestScore.
type Bound interface {
	// Init precomputes any bound-specific tables from a freshly
	// constructed Lattice. Called once, before the search begins.
	Init(l *lattice.Lattice)

	// Prune evaluates the bound for the branch reached by playing m.
	Prune(l *lattice.Lattice, m lattice.Move, bestScore int) bool
}

// NewBound resolves the prune function name accepted by DepthFirstBnB:
// "" or "naive" selects the naive bound, "reach_prune" or "reach" selects
// the tighter reach bound. Any other name is an error.
func NewBound(name string) (Bound, error) {
	switch name {
	case "", "naive":
		return &NaiveBound{}, nil
	case "reach_prune", "reach":
		return &ReachBound{}, nil
	default:
		return nil, ErrUnknownBound
	}
}

// NaiveBound credits every remaining residue with its own MaxWeight times
// the number of free neighbor slots a future residue can use, per
// SPEC_FULL.md / spec.md §4.4.
type NaiveBound struct {
	noNeighbors int
}

// Init precomputes no_neighbors = 2^(dim-1).
func (b *NaiveBound) Init(l *lattice.Lattice) {
	b.noNeighbors = 1 << (l.Dim() - 1)
}

// Prune implements the naive bound's place/evaluate/remove contract.
func (b *NaiveBound) Prune(l *lattice.Lattice, m lattice.Move, bestScore int) bool {
	_ = l.Place(m, false)
	defer func() { _ = l.Remove() }()

	curLen := l.CurLen()
	curScore := l.Score()
	maxWeights := l.MaxWeights()
	n := l.Len()

	branch := 0
	for i := curLen; i < n; i++ {
		branch += maxWeights[i]
	}
	branch *= b.noNeighbors

	if curLen != n && maxWeights[n-1] != 0 {
		branch += maxWeights[n-1]
	}

	return curScore+branch >= bestScore
}

// ReachBound only credits a future weighted residue for contacts with
// earlier weighted residues that are actually reachable by a self-avoiding
// walk: an odd chain-distance of at least 3. Its bond_dists precompute is
// grounded on original_source/prospr/core/src/beam_search.cpp's
// _comp_bondable_aminos, the only place in the original engine where this
// bound is genuinely implemented (depth_first_bnb.cpp's own "reach_prune"
// is an incomplete copy of the naive one).
type ReachBound struct {
	noNeighbors int
	n           int
	maxWeights  []int
	hIdxs       []int
	bondDists   [][]int
}

// Init builds the bond_dists table once per search.
func (b *ReachBound) Init(l *lattice.Lattice) {
	b.noNeighbors = 1 << (l.Dim() - 1)
	b.n = l.Len()
	b.maxWeights = l.MaxWeights()

	b.hIdxs = nil
	b.bondDists = nil
	for i := 0; i < b.n; i++ {
		if b.maxWeights[i] == 0 {
			continue
		}
		var dists []int
		for _, h := range b.hIdxs {
			d := i - h
			if d >= 3 && d%2 == 1 {
				dists = append(dists, d)
			}
		}
		b.bondDists = append(b.bondDists, dists)
		b.hIdxs = append(b.hIdxs, i)
	}
}

// Prune implements the reach bound's place/evaluate/remove contract.
func (b *ReachBound) Prune(l *lattice.Lattice, m lattice.Move, bestScore int) bool {
	_ = l.Place(m, false)
	defer func() { _ = l.Remove() }()

	curLen := l.CurLen()
	curScore := l.Score()

	future := 0
	for _, h := range b.hIdxs {
		if h >= curLen {
			future++
		}
	}

	branch := 0
	numIdxs := len(b.hIdxs)
	for i := numIdxs - future; i < numIdxs; i++ {
		h := b.hIdxs[i]
		slots := b.noNeighbors
		if h == b.n-1 {
			slots = b.noNeighbors + 1
		}
		branch += b.maxWeights[h] * min(slots, len(b.bondDists[i]))
	}

	return curScore+branch >= bestScore
}
