package search

import (
	"context"
	"sync/atomic"

	"github.com/okkevaneck/prospr/lattice"
)

// BnBState is the resumable machine state of a BnBEngine, exactly the
// fields package checkpoint needs to serialize and restore a running
// search (SPEC_FULL.md §4.7 / spec.md §4.7).
type BnBState struct {
	Move        lattice.Move
	Stack       []lattice.Move
	PlacedAmino bool
	BestScore   int
	BestHash    []lattice.Move
	Iterations  uint64
}

// BnBEngine drives a depth-first branch-and-bound search over a Lattice
// with a pluggable Bound. We use a dedicated engine struct, in the manner
// of tsp.bbEngine, rather than closures, so the search's machine state can
// be read out via State and restored via Restore for checkpointing.
//
// Its move/stack/placedAmino state machine mirrors
// original_source/prospr/core/src/depth_first_bnb.cpp exactly: a single
// "next move to try" register plus an explicit backtracking stack, instead
// of Go's own call stack, so a long search can be paused and resumed
// without losing progress.
type BnBEngine struct {
	l     *lattice.Lattice
	bound Bound
	dim   int
	n     int

	move        lattice.Move
	stack       []lattice.Move
	placedAmino bool
	bestScore   int
	bestHash    []lattice.Move
	iterations  uint64

	// shared, when non-nil, backs bestScore with a value other workers of
	// RunParallel also read and compare-and-swap, per spec.md §5's
	// atomic-best-score sharing model.
	shared *atomic.Int64

	started bool
}

// best returns the current best score, preferring the shared value when
// this engine is one of several RunParallel workers.
func (e *BnBEngine) best() int {
	if e.shared != nil {
		return int(e.shared.Load())
	}

	return e.bestScore
}

// improve records a new best score locally and, if shared, publishes it
// so sibling workers prune against it immediately.
func (e *BnBEngine) improve(score int) {
	e.bestScore = score
	if e.shared == nil {
		return
	}
	for {
		cur := e.shared.Load()
		if int64(score) >= cur {
			return
		}
		if e.shared.CompareAndSwap(cur, int64(score)) {
			return
		}
	}
}

// NewBnBEngine builds a fresh engine over l using bound. l must be freshly
// constructed (lattice.New), with nothing placed yet except its origin
// residue. A nil bound defaults to NaiveBound.
func NewBnBEngine(l *lattice.Lattice, bound Bound) (*BnBEngine, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if bound == nil {
		bound = &NaiveBound{}
	}
	bound.Init(l)

	return &BnBEngine{
		l:         l,
		bound:     bound,
		dim:       l.Dim(),
		n:         l.Len(),
		move:      lattice.Move(-1),
		bestScore: 1,
	}, nil
}

// State returns a snapshot of the engine's resumable state.
func (e *BnBEngine) State() BnBState {
	return BnBState{
		Move:        e.move,
		Stack:       append([]lattice.Move(nil), e.stack...),
		PlacedAmino: e.placedAmino,
		BestScore:   e.bestScore,
		BestHash:    append([]lattice.Move(nil), e.bestHash...),
		Iterations:  e.iterations,
	}
}

// Restore replaces the engine's machine state with s. The caller must
// first have restored l's own conformation (lattice.SetHash against
// whatever the checkpoint's current_hash records) before calling Run.
func (e *BnBEngine) Restore(s BnBState) {
	e.move = s.Move
	e.stack = append([]lattice.Move(nil), s.Stack...)
	e.placedAmino = s.PlacedAmino
	e.bestScore = s.BestScore
	e.bestHash = append([]lattice.Move(nil), s.BestHash...)
	e.iterations = s.Iterations
	e.started = true
}

// Run drives the search to completion or until ctx is cancelled. On
// cancellation it returns ctx.Err() with the engine's machine state left
// consistent and ready for State() to checkpoint; the Lattice sits at
// whatever conformation the last completed Place/Remove pair left it in.
// On successful completion it installs the best conformation found via
// SetHash and returns nil.
func (e *BnBEngine) Run(ctx context.Context) error {
	if e.n <= 2 {
		return e.bootstrap()
	}
	if !e.started {
		if err := e.bootstrap(); err != nil {
			return err
		}
	}

	for {
		e.iterations++
		if e.iterations&1023 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		e.placedAmino = false
		for !e.placedAmino && e.move != lattice.Move(-e.dim-1) {
			if e.l.IsValid(e.move) && !e.bound.Prune(e.l, e.move, e.best()) {
				if err := e.l.Place(e.move, true); err != nil {
					return err
				}
				e.placedAmino = true
				if e.move == 1 {
					e.stack = append(e.stack, lattice.Move(-1))
				} else {
					e.stack = append(e.stack, e.move-1)
				}
			} else if e.move == 1 {
				e.move = -1
			} else {
				e.move--
			}
		}

		if e.placedAmino && e.l.CurLen() == e.n {
			if score := e.l.Score(); score < e.best() {
				e.improve(score)
				e.bestHash = e.l.HashFold()
			}
		}

		if e.placedAmino && e.l.CurLen() != e.n {
			e.move = lattice.Move(e.dim)
		} else {
			e.move = lattice.Move(-e.dim - 1)
			for e.move == lattice.Move(-e.dim-1) && len(e.stack) > 0 {
				if err := e.l.Remove(); err != nil {
					return err
				}
				e.move, e.stack = e.stack[len(e.stack)-1], e.stack[:len(e.stack)-1]
			}
		}

		if e.move == lattice.Move(-e.dim-1) && len(e.stack) == 0 {
			break
		}
	}

	return e.l.SetHash(e.bestHash, false)
}

// bootstrap places the fixed symmetry-breaking second residue, per
// SPEC_FULL.md §4.2.
func (e *BnBEngine) bootstrap() error {
	if e.n > 1 {
		if err := e.l.Place(-1, true); err != nil {
			return err
		}
	}
	e.started = true

	return nil
}

// newBnBEngineAt builds an engine over l that is already mid-search: l
// must already hold some fixed prefix of placed residues, and the engine
// resumes from move (typically the full alphabet's first candidate,
// lattice.Move(l.Dim())), never backtracking past that prefix since
// nothing pushed it onto the stack. Used by RunParallel to confine each
// worker to its own disjoint subtree.
func newBnBEngineAt(l *lattice.Lattice, bound Bound, shared *atomic.Int64, move lattice.Move) *BnBEngine {
	bound.Init(l)

	return &BnBEngine{
		l:         l,
		bound:     bound,
		dim:       l.Dim(),
		n:         l.Len(),
		move:      move,
		bestScore: int(shared.Load()),
		shared:    shared,
		started:   true,
	}
}

// DepthFirstBnB runs a fresh BnBEngine over l with bound to completion. It
// is the entry point used by callers with no need to checkpoint; long
// searches that must survive interruption should instead build a
// BnBEngine via NewBnBEngine and drive it from package checkpoint's
// Runner.
func DepthFirstBnB(ctx context.Context, l *lattice.Lattice, bound Bound) error {
	e, err := NewBnBEngine(l, bound)
	if err != nil {
		return err
	}

	return e.Run(ctx)
}
