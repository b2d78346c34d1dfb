package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
)

// parallelResult is one worker's contribution to RunParallel: a zero
// Hash means the worker's prefix was never valid (or dim was too small
// to produce it) and it found nothing.
type parallelResult struct {
	score int
	hash  []lattice.Move
}

// symmetryPrefixes enumerates the disjoint third-residue choices the
// symmetry-breaking rule of SPEC_FULL.md §4.2 leaves available, one per
// worker.
func symmetryPrefixes(dim int) [][]lattice.Move {
	prefixes := make([][]lattice.Move, 0, dim)
	for _, m3 := range lattice.NegativeAlphabet(dim) {
		prefixes = append(prefixes, []lattice.Move{-1, m3})
	}

	return prefixes
}

// RunParallel partitions the symmetry-broken search space of sequence
// across one *lattice.Lattice clone per disjoint third-residue choice and
// runs DepthFirstBnB in each with a shared atomic best score, so that an
// improvement found by one worker immediately strengthens pruning in the
// others. It returns the globally best score and the move hash that
// achieves it.
//
// Per spec.md §5, the atomic best score is the only datum shared between
// workers; each worker owns its Lattice exclusively and no other
// synchronization is used.
func RunParallel(ctx context.Context, sequence string, dim int, m *model.Model, boundName string) (int, []lattice.Move, error) {
	base, err := lattice.New(sequence, dim, m)
	if err != nil {
		return 0, nil, err
	}
	if base.Len() <= 2 {
		return base.Score(), base.HashFold(), nil
	}

	shared := &atomic.Int64{}
	shared.Store(1)

	prefixes := symmetryPrefixes(dim)
	results := make([]parallelResult, len(prefixes))

	var wg sync.WaitGroup
	errs := make([]error, len(prefixes))
	for i, prefix := range prefixes {
		wg.Add(1)
		go func(i int, prefix []lattice.Move) {
			defer wg.Done()
			results[i], errs[i] = runPrefixWorker(ctx, base, prefix, boundName, shared)
		}(i, prefix)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, nil, err
		}
	}

	best := parallelResult{hash: nil}
	haveBest := false
	for _, r := range results {
		if r.hash == nil {
			continue
		}
		if !haveBest || r.score < best.score {
			best = r
			haveBest = true
		}
	}

	return best.score, best.hash, nil
}

// runPrefixWorker clones base, commits prefix to it, and either reports
// the (already complete) result directly or hands the remainder of the
// sequence to a BnBEngine confined to that subtree.
func runPrefixWorker(ctx context.Context, base *lattice.Lattice, prefix []lattice.Move, boundName string, shared *atomic.Int64) (parallelResult, error) {
	l := base.Clone()
	for _, mv := range prefix {
		if !l.IsValid(mv) {
			return parallelResult{}, nil
		}
		if err := l.Place(mv, true); err != nil {
			return parallelResult{}, err
		}
	}

	if l.CurLen() == l.Len() {
		return parallelResult{score: l.Score(), hash: l.HashFold()}, nil
	}

	bound, err := NewBound(boundName)
	if err != nil {
		return parallelResult{}, err
	}

	e := newBnBEngineAt(l, bound, shared, lattice.Move(l.Dim()))
	if err := e.Run(ctx); err != nil {
		return parallelResult{}, err
	}

	return parallelResult{score: e.bestScore, hash: e.bestHash}, nil
}
