package checkpoint

import (
	"testing"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
	"github.com/okkevaneck/prospr/search"
	"github.com/stretchr/testify/require"
)

func TestNewRunner_NilLatticeRejected(t *testing.T) {
	_, err := NewRunner(nil, &search.NaiveBound{})
	require.Error(t, err)
}

func TestRunner_RunsToCompletionWithoutCacheDir(t *testing.T) {
	t.Setenv("PROSPR_CACHE_DIR", "")

	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)
	l, err := lattice.New("PHPHPHPPH", 2, m)
	require.NoError(t, err)

	r, err := NewRunner(l, &search.NaiveBound{})
	require.NoError(t, err)
	require.Empty(t, r.path)

	require.NoError(t, r.Run())
	require.Equal(t, -3, l.Score())
}

func TestRunner_ResolvesCacheDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROSPR_CACHE_DIR", dir)

	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)
	l, err := lattice.New("PHPHPHPPH", 2, m)
	require.NoError(t, err)

	r, err := NewRunner(l, &search.NaiveBound{})
	require.NoError(t, err)
	require.NotEmpty(t, r.path)

	require.NoError(t, r.Run())
	require.Equal(t, -3, l.Score())

	// A successful run removes any checkpoint it might have left behind.
	_, statErr := Load(r.path)
	require.Error(t, statErr)
}

func TestRunner_ResumeAppliesPriorCheckpoint(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROSPR_CACHE_DIR", dir)

	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)
	l, err := lattice.New("HPPHPHPHPH", 3, m)
	require.NoError(t, err)

	r, err := NewRunner(l, &search.NaiveBound{})
	require.NoError(t, err)

	cp := &Checkpoint{
		Algorithm:        algorithmBnB,
		CurrentHash:      []lattice.Move{-1},
		AminosPlaced:     2,
		SolutionsChecked: 0,
		DFSStack:         nil,
		Move:             lattice.Move(3),
		PlacedAmino:      true,
		BestScore:        1,
		Score:            0,
		BestHash:         nil,
		Iterations:       0,
	}
	require.NoError(t, cp.Save(r.path))

	require.NoError(t, r.resume())
	require.Equal(t, uint64(2), l.AminosPlaced())
	require.Equal(t, []lattice.Move{-1}, l.HashFold())
}
