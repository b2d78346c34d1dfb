package search_test

import (
	"context"
	"fmt"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
	"github.com/okkevaneck/prospr/search"
)

// ExampleDepthFirstBnB folds a short HP sequence to its optimum using the
// naive bound.
func ExampleDepthFirstBnB() {
	m, err := model.New(model.HP, nil, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l, err := lattice.New("PHPHPHPPH", 2, m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	bound, err := search.NewBound("")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := search.DepthFirstBnB(context.Background(), l, bound); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(l.Score())
	// Output: -3
}
