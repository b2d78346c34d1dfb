package search_test

import (
	"context"
	"testing"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
	"github.com/okkevaneck/prospr/search"
	"github.com/stretchr/testify/require"
)

func newHP(t *testing.T, seq string, dim int) *lattice.Lattice {
	t.Helper()
	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)
	l, err := lattice.New(seq, dim, m)
	require.NoError(t, err)

	return l
}

// Concrete end-to-end scenarios from spec.md §8, S1-S5: exhaustive and
// branch-and-bound search must agree on the true optimum.
func TestScenarios_DepthFirstAndBnB(t *testing.T) {
	cases := []struct {
		name  string
		seq   string
		dim   int
		want  int
		bound string
	}{
		{"S1_depth_first", "PHPHPHPPH", 2, -3, ""},
		{"S4_depth_first", "HPPHPHPHPH", 3, -4, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := newHP(t, c.seq, c.dim)
			require.NoError(t, search.DepthFirst(l))
			require.Equal(t, c.want, l.Score())
		})
	}

	bnbCases := []struct {
		name  string
		seq   string
		dim   int
		want  int
		bound string
	}{
		{"S2_bnb_naive", "PHPHPHPPH", 2, -3, ""},
		{"S3_bnb_reach", "PHPHPHPPH", 2, -3, "reach_prune"},
		{"S5_bnb_naive", "HPPHPHPHPH", 3, -4, ""},
	}

	for _, c := range bnbCases {
		t.Run(c.name, func(t *testing.T) {
			l := newHP(t, c.seq, c.dim)
			bound, err := search.NewBound(c.bound)
			require.NoError(t, err)
			require.NoError(t, search.DepthFirstBnB(context.Background(), l, bound))
			require.Equal(t, c.want, l.Score())
		})
	}
}

// S6-S9: beam search with varying widths.
func TestScenarios_BeamSearch(t *testing.T) {
	cases := []struct {
		name  string
		seq   string
		dim   int
		width int
		want  int
	}{
		{"S6", "PHPHPHPPH", 2, -1, -3},
		{"S7", "PHPHPHPPH", 2, 40, -2},
		{"S8", "HPPHPHPHPH", 3, 10, -4},
		{"S9", "HPPHPHPHPH", 3, 5, -3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := newHP(t, c.seq, c.dim)
			require.NoError(t, search.BeamSearch(l, c.width))
			require.Equal(t, c.want, l.Score())
		})
	}
}

func TestDepthFirstBnB_MatchesExhaustiveOptimum(t *testing.T) {
	seq, dim := "PHPHPHPPH", 2

	exhaustive := newHP(t, seq, dim)
	require.NoError(t, search.DepthFirst(exhaustive))

	naive := newHP(t, seq, dim)
	nb, err := search.NewBound("")
	require.NoError(t, err)
	require.NoError(t, search.DepthFirstBnB(context.Background(), naive, nb))

	reach := newHP(t, seq, dim)
	rb, err := search.NewBound("reach_prune")
	require.NoError(t, err)
	require.NoError(t, search.DepthFirstBnB(context.Background(), reach, rb))

	require.Equal(t, exhaustive.Score(), naive.Score())
	require.Equal(t, exhaustive.Score(), reach.Score())
}

func TestBeamSearch_InvalidWidth(t *testing.T) {
	l := newHP(t, "HPPH", 2)
	err := search.BeamSearch(l, 0)
	require.ErrorIs(t, err, search.ErrBeamWidth)
}

func TestBeamSearch_ShortSequenceReturnsImmediately(t *testing.T) {
	l := newHP(t, "HP", 2)
	require.NoError(t, search.BeamSearch(l, -1))
	require.Equal(t, 2, l.CurLen())
}

func TestNilLattice_ReturnsErrNilLattice(t *testing.T) {
	require.ErrorIs(t, search.DepthFirst(nil), search.ErrNilLattice)
	require.ErrorIs(t, search.BeamSearch(nil, -1), search.ErrNilLattice)
	require.ErrorIs(t, search.BestFirst(nil), search.ErrNilLattice)

	nb, err := search.NewBound("")
	require.NoError(t, err)
	require.ErrorIs(t, search.DepthFirstBnB(context.Background(), nil, nb), search.ErrNilLattice)
}
