// Package prospr folds protein-like residue sequences onto a regular
// lattice and scores the resulting self-avoiding walk under a pairwise
// contact-energy model.
//
// What it does:
//
//	model/      — contact-energy tables (HP, HPXN, or a custom table)
//	lattice/    — the self-avoiding walk: incremental placement, scoring,
//	              move-hash serialization, bond enumeration
//	search/     — depth_first, depth_first_bnb (with pluggable bounds),
//	              beam, best_first, and a goroutine-per-subtree RunParallel
//	checkpoint/ — a flat-text codec plus a signal-aware Runner that lets a
//	              long depth_first_bnb job survive SIGINT/SIGTERM
//
// A minimal fold:
//
//	m, _ := model.New(model.HP, nil, true)
//	l, _ := lattice.New("PHPHPHPPH", 2, m)
//	_ = search.DepthFirst(l)
//	l.Score()     // -3
//	l.HashFold()  // the winning conformation's move sequence
//
// cmd/prospr-bench is a small CLI front end over the same packages;
// cmd/prospr-example-2d and cmd/prospr-example-3d are runnable,
// single-scenario demonstrations.
package prospr
