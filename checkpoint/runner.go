package checkpoint

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/search"
)

// cacheDir resolves the cache directory for algorithmBnB under
// PROSPR_CACHE_DIR, creating it if create is true. Returns "" if the
// environment variable is unset or the directory could not be created.
//
// Grounded on original_source/prospr/core/src/utils.cpp's get_cache_dir.
func cacheDir(create bool) string {
	base := os.Getenv("PROSPR_CACHE_DIR")
	if base == "" {
		return ""
	}

	dir := filepath.Join(base, algorithmBnB)
	if create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ""
		}
	}

	return dir
}

func checkpointPath(l *lattice.Lattice) string {
	dir := cacheDir(true)
	if dir == "" {
		return ""
	}

	return filepath.Join(dir, l.Sequence()+"_"+strconv.Itoa(l.Dim())+".checkpoint")
}

// Runner drives a search.BnBEngine to completion over l, transparently
// resuming from a prior checkpoint if PROSPR_CACHE_DIR has one, and
// writing a fresh checkpoint if the run is interrupted by SIGINT/SIGTERM.
//
// It owns the only signal.Notify in this module, per spec.md §9's
// "Global state and signal handlers" note: the search loop itself only
// ever observes a context.Context, never a package-level signal handler.
type Runner struct {
	l      *lattice.Lattice
	engine *search.BnBEngine
	path   string
}

// NewRunner builds a Runner over l with bound. l must be freshly
// constructed, as for search.NewBnBEngine.
func NewRunner(l *lattice.Lattice, bound search.Bound) (*Runner, error) {
	e, err := search.NewBnBEngine(l, bound)
	if err != nil {
		return nil, err
	}

	return &Runner{l: l, engine: e, path: checkpointPath(l)}, nil
}

// resume loads and applies a prior checkpoint for this Lattice's sequence
// and dimension, if one exists. Absence of a checkpoint is not an error.
func (r *Runner) resume() error {
	if r.path == "" {
		return nil
	}
	if _, err := os.Stat(r.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	cp, err := Load(r.path)
	if err != nil {
		return err
	}

	if err := r.l.SetHash(cp.CurrentHash, false); err != nil {
		return err
	}
	r.l.SetCounters(cp.AminosPlaced, cp.SolutionsChecked)

	r.engine.Restore(search.BnBState{
		Move:        cp.Move,
		Stack:       cp.DFSStack,
		PlacedAmino: cp.PlacedAmino,
		BestScore:   cp.BestScore,
		BestHash:    cp.BestHash,
		Iterations:  cp.Iterations,
	})

	return nil
}

// snapshot captures the engine's and Lattice's current state as a
// Checkpoint ready to Save.
func (r *Runner) snapshot() *Checkpoint {
	st := r.engine.State()

	return &Checkpoint{
		Algorithm:        algorithmBnB,
		CurrentHash:      r.l.HashFold(),
		AminosPlaced:     r.l.AminosPlaced(),
		SolutionsChecked: r.l.SolutionsChecked(),
		DFSStack:         st.Stack,
		Move:             st.Move,
		PlacedAmino:      st.PlacedAmino,
		BestScore:        st.BestScore,
		Score:            r.l.Score(),
		BestHash:         st.BestHash,
		Iterations:       st.Iterations,
	}
}

// Run resumes from any prior checkpoint, then drives the search to
// completion or until SIGINT/SIGTERM arrives. On interrupt, the engine
// finishes its current Place/Remove pair (search.BnBEngine's own
// invariant), a checkpoint is written if PROSPR_CACHE_DIR is configured,
// and the signal's context.Canceled error is returned. On successful
// completion any leftover checkpoint for this sequence is removed.
func (r *Runner) Run() error {
	if err := r.resume(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := r.engine.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) && r.path != "" {
			if saveErr := r.snapshot().Save(r.path); saveErr != nil {
				return saveErr
			}
		}

		return err
	}

	if r.path != "" {
		_ = os.Remove(r.path)
	}

	return nil
}
