package lattice_test

import (
	"fmt"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
)

// ExampleLattice demonstrates placing a short HP sequence into a square and
// reading back its score and move hash.
func ExampleLattice() {
	m, err := model.New(model.HP, nil, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l, err := lattice.New("HHHH", 2, m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, mv := range []lattice.Move{1, 2, -1} {
		if err := l.Place(mv, true); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Println(l.Score(), l.HashFold())
	// Output: -1 [1 2 -1]
}
