package search

import (
	"context"
	"testing"

	"github.com/okkevaneck/prospr/model"
	"github.com/stretchr/testify/require"
)

func TestRunParallel_MatchesSequentialBnB(t *testing.T) {
	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)

	score, hash, err := RunParallel(context.Background(), "PHPHPHPPH", 2, m, "reach_prune")
	require.NoError(t, err)
	require.Equal(t, -3, score)
	require.NotEmpty(t, hash)
}

func TestRunParallel_ShortSequenceReturnsImmediately(t *testing.T) {
	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)

	score, hash, err := RunParallel(context.Background(), "HP", 2, m, "naive")
	require.NoError(t, err)
	require.Equal(t, 0, score)
	require.Empty(t, hash)
}

func TestRunParallel_UnknownBoundPropagatesError(t *testing.T) {
	m, err := model.New(model.HP, nil, true)
	require.NoError(t, err)

	_, _, err = RunParallel(context.Background(), "PHPHPHPPH", 2, m, "not_a_bound")
	require.ErrorIs(t, err, ErrUnknownBound)
}
