package model

import "sort"

// New builds a Model from either a recognized preset name (HP, HPXN) or an
// explicit, non-empty Table. bondSymmetry, when true (the default a caller
// should pass unless they have a specific reason not to), mirrors every
// (a,b)->w entry into (b,a)->w wherever the mirror is absent, so that a
// contact scores the same regardless of which of the two residues in the
// pair happened to be placed first.
//
// Complexity: O(k log k) in the number of table entries, for the
// deterministic key ordering used by the MaxWeight resolution below.
func New(name string, table Table, bondSymmetry bool) (*Model, error) {
	var resolved Table
	if preset, ok := presetTable(name); ok {
		resolved = preset
	} else {
		if len(table) == 0 {
			if name == "" {
				return nil, ErrEmptyTable
			}

			return nil, ErrUnknownModel
		}
		resolved = make(Table, len(table))
		for k, v := range table {
			resolved[k] = v
		}
	}

	if bondSymmetry {
		completeSymmetry(resolved)
	}

	weighted := weightedSet(resolved)
	maxWeight := maxWeights(resolved, weighted)

	return &Model{
		Name:      name,
		Table:     resolved,
		Weighted:  weighted,
		MaxWeight: maxWeight,
	}, nil
}

// completeSymmetry mirrors every two-character key into its reverse when
// the reverse is not already present in t.
func completeSymmetry(t Table) {
	keys := sortedKeys(t)
	for _, k := range keys {
		if len(k) != 2 {
			continue
		}
		rev := string([]byte{k[1], k[0]})
		if _, ok := t[rev]; !ok {
			t[rev] = t[k]
		}
	}
}

// weightedSet returns the union of residue characters appearing in any key
// of t.
func weightedSet(t Table) map[byte]bool {
	w := make(map[byte]bool)
	for k := range t {
		for i := 0; i < len(k); i++ {
			w[k[i]] = true
		}
	}

	return w
}

// maxWeights resolves, for each weighted residue character, the most
// optimistic bond energy it can contribute: the most-negative entry
// touching that character if one exists, else the first strictly-positive
// entry encountered in lexicographic key order, else 0.
//
// The "first positive wins, later positives never override" rule matches
// original_source/prospr/core/src/protein.cpp's max_amino_weights
// construction exactly (it keys off std::map's sorted iteration order);
// see SPEC_FULL.md §9 for the derivation.
func maxWeights(t Table, weighted map[byte]bool) map[byte]int {
	max := make(map[byte]int, len(weighted))
	for c := range weighted {
		max[c] = 0
	}

	for _, k := range sortedKeys(t) {
		v := t[k]
		for i := 0; i < len(k); i++ {
			c := k[i]
			if _, ok := max[c]; !ok {
				continue
			}
			if v < max[c] || (max[c] == 0 && v > max[c]) {
				max[c] = v
			}
		}
	}

	return max
}

func sortedKeys(t Table) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
