// Package main demonstrates folding a longer HP sequence on the cubic
// lattice with branch-and-bound search, mirroring scenario S4/S5 from
// the test suite: HPPHPHPHPH should fold to score -4 on dim=3.
//
// Scenario:
//
//	A ten-residue sequence folded on dim=3 (the cubic lattice) using
//	depth_first_bnb with the tighter reach_prune bound, comparing it
//	against the naive bound's iteration count to show the pruning gain.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
	"github.com/okkevaneck/prospr/search"
)

func main() {
	m, err := model.New(model.HP, nil, true)
	if err != nil {
		log.Fatalf("building model: %v", err)
	}

	const sequence = "HPPHPHPHPH"
	ctx := context.Background()

	for _, boundName := range []string{"naive", "reach_prune"} {
		l, err := lattice.New(sequence, 3, m)
		if err != nil {
			log.Fatalf("building lattice: %v", err)
		}

		bound, err := search.NewBound(boundName)
		if err != nil {
			log.Fatalf("building bound: %v", err)
		}

		engine, err := search.NewBnBEngine(l, bound)
		if err != nil {
			log.Fatalf("building engine: %v", err)
		}
		if err := engine.Run(ctx); err != nil {
			log.Fatalf("depth_first_bnb (%s): %v", boundName, err)
		}

		fmt.Printf("bound=%-11s score=%d hash=%v iterations=%d\n",
			boundName, l.Score(), l.HashFold(), engine.State().Iterations)
	}
}
