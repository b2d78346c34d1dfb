package lattice_test

import (
	"testing"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
	"github.com/stretchr/testify/require"
)

func hpModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)

	return m
}

func TestNew_InitialState(t *testing.T) {
	l, err := lattice.New("HPPH", 2, hpModel(t))
	require.NoError(t, err)
	require.Equal(t, 1, l.CurLen())
	require.Equal(t, 0, l.Score())
	require.Equal(t, uint64(0), l.AminosPlaced())
	require.Equal(t, uint64(0), l.SolutionsChecked())
	require.Equal(t, lattice.Position{0, 0}, l.LastPos())
	require.Equal(t, lattice.Move(0), l.LastMove())
}

func TestNew_Errors(t *testing.T) {
	_, err := lattice.New("HPPH", 0, hpModel(t))
	require.ErrorIs(t, err, lattice.ErrBadDimension)

	_, err = lattice.New("", 2, hpModel(t))
	require.ErrorIs(t, err, lattice.ErrEmptySequence)
}

func TestPlaceRemove_Reversible(t *testing.T) {
	l, err := lattice.New("HPHPHPPH", 2, hpModel(t))
	require.NoError(t, err)

	require.NoError(t, l.Place(-1, true))
	before := snapshot(l)

	for _, m := range lattice.Alphabet(l.Dim()) {
		if !l.IsValid(m) {
			continue
		}
		require.NoError(t, l.Place(m, true))
		require.NoError(t, l.Remove())
		require.Equal(t, before, snapshot(l), "place;remove for move %d must restore state", m)
	}
}

func TestHashFold_LengthAndRoundTrip(t *testing.T) {
	l, err := lattice.New("HPHPHPPH", 2, hpModel(t))
	require.NoError(t, err)

	moves := []lattice.Move{-1, 2, -1, -2}
	for _, m := range moves {
		require.NoError(t, l.Place(m, true))
	}

	fold := l.HashFold()
	require.Equal(t, l.CurLen()-1, len(fold))
	require.Equal(t, moves, fold)

	// set_hash(hash_fold()) is a no-op on conformation state.
	before := snapshot(l)
	require.NoError(t, l.SetHash(fold, false))
	require.Equal(t, before, snapshot(l))
}

func TestSetHash_TooLong(t *testing.T) {
	l, err := lattice.New("HPH", 2, hpModel(t))
	require.NoError(t, err)
	err = l.SetHash([]lattice.Move{1, -1, 2}, false)
	require.ErrorIs(t, err, lattice.ErrHashTooLong)
}

func TestRemove_EmptyChain(t *testing.T) {
	l, err := lattice.New("HPH", 2, hpModel(t))
	require.NoError(t, err)
	require.ErrorIs(t, l.Remove(), lattice.ErrEmptyChain)
}

func TestScore_HHContact(t *testing.T) {
	// Four residues folded into a 2x2 square: every H sits next to every
	// other H except its chain neighbors, the square closes an H-H
	// contact between residue 0 and residue 3.
	l, err := lattice.New("HHHH", 2, hpModel(t))
	require.NoError(t, err)
	require.NoError(t, l.Place(1, true))
	require.NoError(t, l.Place(2, true))
	require.NoError(t, l.Place(-1, true))
	require.Equal(t, -1, l.Score())
}

func TestGetBonds_S1Scenario(t *testing.T) {
	// From SPEC_FULL.md / spec.md §8: sequence HPPHPPHH, moves
	// [1,2,-1,-1,-1,-2,1] in 2D/HP must report both orientations of the
	// bonds between residues 0 and 3, and 0 and 7.
	l, err := lattice.New("HPPHPPHH", 2, hpModel(t))
	require.NoError(t, err)
	for _, m := range []lattice.Move{1, 2, -1, -1, -1, -2, 1} {
		require.NoError(t, l.Place(m, true))
	}

	bonds := l.GetBonds()
	want := []lattice.Bond{{0, 3}, {0, 7}, {3, 0}, {7, 0}}
	for _, w := range want {
		require.Contains(t, bonds, w)
	}
}

func TestClone_Independent(t *testing.T) {
	l, err := lattice.New("HPHPHPPH", 2, hpModel(t))
	require.NoError(t, err)
	require.NoError(t, l.Place(-1, true))

	c := l.Clone()
	require.True(t, l.Equal(c))

	require.NoError(t, c.Place(2, true))
	require.False(t, l.Equal(c))
	require.Equal(t, 2, l.CurLen(), "mutating the clone must not affect the original")
}

type stateSnapshot struct {
	curLen   int
	score    int
	lastPos  lattice.Position
	lastMove lattice.Move
	fold     string
}

func snapshot(l *lattice.Lattice) stateSnapshot {
	fold := ""
	for _, m := range l.HashFold() {
		fold += string(rune('a' + (int(m) + 10)))
	}

	return stateSnapshot{
		curLen:   l.CurLen(),
		score:    l.Score(),
		lastPos:  l.LastPos(),
		lastMove: l.LastMove(),
		fold:     fold,
	}
}
