package lattice_test

import (
	"testing"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/stretchr/testify/assert"
)

func TestAlphabet_DescendingOrder(t *testing.T) {
	got := lattice.Alphabet(3)
	want := []lattice.Move{3, 2, 1, -1, -2, -3}
	assert.Equal(t, want, got)
}

func TestNegativeAlphabet(t *testing.T) {
	got := lattice.NegativeAlphabet(2)
	want := []lattice.Move{-1, -2}
	assert.Equal(t, want, got)
}
