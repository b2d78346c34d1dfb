// Package main demonstrates folding a short HP sequence on the square
// lattice with exhaustive depth-first search, mirroring scenario S1 from
// the test suite: PHPHPHPPH should fold to score -3.
//
// Scenario:
//
//	A nine-residue sequence alternating hydrophobic (H) and polar (P)
//	residues, folded on dim=2 (the square lattice) in search of the
//	conformation that maximizes buried H-H contacts.
package main

import (
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

	const sequence = "PHPHPHPPH"
	l, err := lattice.New(sequence, 2, m)
	if err != nil {
		log.Fatalf("building lattice: %v", err)
	}

	if err := search.DepthFirst(l); err != nil {
		log.Fatalf("depth_first: %v", err)
	}

	fmt.Printf("sequence=%s dim=2 score=%d hash=%v\n", sequence, l.Score(), l.HashFold())
	fmt.Printf("bonds=%v\n", l.GetBonds())
}
