package search_test

import (
	"testing"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/search"
	"github.com/stretchr/testify/require"
)

func TestNewBound_UnknownName(t *testing.T) {
	_, err := search.NewBound("not_a_bound")
	require.ErrorIs(t, err, search.ErrUnknownBound)
}

// Naive bound must never be tighter than the reach bound: both are
// admissible upper bounds on the branch's best possible additional score,
// evaluated from the same partial conformation.
func TestBounds_ReachAtLeastAsTightAsNaive(t *testing.T) {
	l := newHP(t, "HPPHPHPHPH", 3)
	require.NoError(t, l.Place(-1, true))
	require.NoError(t, l.Place(-1, true))

	naive := &search.NaiveBound{}
	naive.Init(l)
	reach := &search.ReachBound{}
	reach.Init(l)

	for bestScore := -6; bestScore <= 1; bestScore++ {
		for _, m := range lattice.Alphabet(l.Dim()) {
			if !l.IsValid(m) {
				continue
			}
			// Naive's branch estimate is never tighter than reach's, so
			// whenever naive prunes a branch at a given bestScore, reach
			// must prune it too.
			if naive.Prune(l, m, bestScore) {
				require.True(t, reach.Prune(l, m, bestScore),
					"reach must prune whenever naive does (move %d, bestScore %d)", m, bestScore)
			}
		}
	}
}
