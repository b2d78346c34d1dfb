package search

import (
	"container/heap"

	"github.com/okkevaneck/prospr/lattice"
)

// bondInfo precomputes, once per search, which positions in the sequence
// can ever form a bond and how far apart (in chain distance) two bondable
// positions are, for use by the reach-style heuristic in compScore.
//
// Grounded on original_source/prospr/core/src/beam_search.cpp's BondInfo /
// _comp_bondable_aminos.
type bondInfo struct {
	maxLength   int
	noNeighbors int
	maxWeights  []int
	hIdxs       []int
	bondDists   [][]int
}

func compBondableAminos(l *lattice.Lattice) *bondInfo {
	n := l.Len()
	maxWeights := l.MaxWeights()
	b := &bondInfo{
		maxLength:   n,
		noNeighbors: 1 << (l.Dim() - 1),
		maxWeights:  maxWeights,
	}

	for i := 0; i < n; i++ {
		if maxWeights[i] == 0 {
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

	return b
}

// compScore returns l's current score plus an optimistic bound on the
// additional score its unplaced suffix could still contribute, used as the
// beam's priority: smaller is more promising.
func compScore(l *lattice.Lattice, b *bondInfo) int {
	curLen := l.CurLen()

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
		if h == b.maxLength-1 {
			slots = b.noNeighbors + 1
		}
		branch += b.maxWeights[h] * min(slots, len(b.bondDists[i]))
	}

	return l.Score() + branch
}

// candidate pairs a cloned Lattice with the priority it was expanded with.
type candidate struct {
	l        *lattice.Lattice
	priority int
}

// candidateHeap is a min-heap over candidate.priority: the most promising
// (lowest-score) conformation sits at the root, matching beam_search.cpp's
// std::priority_queue<PrioProtein, ..., std::greater<PrioProtein>>.
type candidateHeap []*candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(*candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return c
}

// BeamSearch keeps the beamWidth most promising partial conformations per
// level (all of them if beamWidth == -1) and expands them in lockstep
// until they are complete, leaving l folded into the best final
// conformation found, installed via SetHash.
//
// Grounded on original_source/prospr/core/src/beam_search.cpp, generalized
// to apply the full three-residue symmetry prefix from SPEC_FULL.md §4.2
// uniformly with the other search algorithms (the original's beam search
// omits the third-residue restriction; spec.md §4.2 states the prefix
// applies to all searches, so this module follows the spec over the
// original here).
func BeamSearch(l *lattice.Lattice, beamWidth int) error {
	if l == nil {
		return ErrNilLattice
	}
	if beamWidth < 1 && beamWidth != -1 {
		return ErrBeamWidth
	}

	l.Reset()
	n := l.Len()
	dim := l.Dim()

	if n > 1 {
		if err := l.Place(-1, true); err != nil {
			return err
		}
	}
	if n <= 2 {
		return nil
	}

	binfo := compBondableAminos(l)
	beam := []*candidate{{l: l.Clone(), priority: compScore(l, binfo)}}

	levelMoves := lattice.NegativeAlphabet(dim)
	for beam[0].l.CurLen() != n {
		var pq candidateHeap
		for _, cur := range beam {
			for _, m := range levelMoves {
				if !cur.l.IsValid(m) {
					continue
				}
				child := cur.l.Clone()
				if err := child.Place(m, true); err != nil {
					return err
				}
				heap.Push(&pq, &candidate{l: child, priority: compScore(child, binfo)})
			}
		}

		numElements := beamWidth
		if beamWidth == -1 || beamWidth > pq.Len() {
			numElements = pq.Len()
		}

		beam = beam[:0]
		for i := 0; i < numElements; i++ {
			beam = append(beam, heap.Pop(&pq).(*candidate))
		}

		levelMoves = lattice.Alphabet(dim)
	}

	best := beam[0]
	for _, c := range beam[1:] {
		if c.l.Score() < best.l.Score() {
			best = c
		}
	}

	return l.SetHash(best.l.HashFold(), true)
}
