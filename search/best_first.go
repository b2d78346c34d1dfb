package search

import (
	"container/heap"

	"github.com/okkevaneck/prospr/lattice"
)

// bfNode is a partial conformation queued for expansion, each owning its
// own cloned Lattice (value semantics, as required for beam search).
type bfNode struct {
	l *lattice.Lattice
}

// bfHeap orders nodes by ascending score, then by descending cur_len on
// ties: a deeper partial conformation at equal score is closer to a
// complete answer and is preferred, matching dijkstra.cpp's Conformation
// operator> tie-break.
type bfHeap []*bfNode

func (h bfHeap) Len() int { return len(h) }
func (h bfHeap) Less(i, j int) bool {
	si, sj := h[i].l.Score(), h[j].l.Score()
	if si != sj {
		return si < sj
	}

	return h[i].l.CurLen() > h[j].l.CurLen()
}
func (h bfHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *bfHeap) Push(x interface{})  { *h = append(*h, x.(*bfNode)) }
func (h *bfHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return node
}

// BestFirst is a priority-queue-driven search over partial conformations,
// ordered by bfHeap's ascending-score/descending-cur_len rule. Contact
// energies are non-positive, so a node's current score is only an upper
// bound on what its descendants can still reach, never a lower one — the
// top of the queue being complete does not mean it is optimal, a shallower
// node still in the queue can fold into something better later. BestFirst
// therefore does not stop at the first popped complete conformation: it
// drains the whole queue, keeps the best complete conformation seen at any
// point, and installs it once the queue is empty. It differs from
// BestFirstBnB (which takes the same approach but additionally prunes
// against an admissible Bound) only in that it has no bound to prune with,
// so it must expand every reachable node instead of discarding branches
// that provably cannot improve on the current best.
//
// Grounded on original_source/prospr/core/src/dijkstra.cpp's Conformation
// priority queue, completed to terminate and actually install a result —
// the original never checks for completion and runs forever, and its
// operator>-based ordering alone (without a bound) does not justify
// stopping on first completion either. See SPEC_FULL.md §4.8.
func BestFirst(l *lattice.Lattice) error {
	if l == nil {
		return ErrNilLattice
	}

	n := l.Len()
	dim := l.Dim()

	if n > 1 {
		if err := l.Place(-1, true); err != nil {
			return err
		}
	}
	if n <= 2 {
		return nil
	}

	var pq bfHeap
	heap.Push(&pq, &bfNode{l: l.Clone()})

	bestScore := 1
	var bestHash []lattice.Move

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*bfNode)

		moves := lattice.Alphabet(dim)
		if cur.l.CurLen() == 2 {
			moves = lattice.NegativeAlphabet(dim)
		}

		for _, m := range moves {
			if !cur.l.IsValid(m) {
				continue
			}
			child := cur.l.Clone()
			if err := child.Place(m, true); err != nil {
				return err
			}

			if child.CurLen() == n {
				if score := child.Score(); score < bestScore {
					bestScore = score
					bestHash = child.HashFold()
				}
				continue
			}

			heap.Push(&pq, &bfNode{l: child})
		}
	}

	return l.SetHash(bestHash, false)
}

// BestFirstBnB is a priority-queue-driven search like BestFirst, but prunes
// each candidate child against bound before queueing it instead of stopping
// at the first complete conformation popped: every queued node can still be
// beaten by one with a lower score, so the search keeps draining the queue
// until it is empty and installs the best complete conformation found.
//
// Grounded on original_source/prospr/core/src/dijkstra_bnb.cpp, which pairs
// the same priority queue as dijkstra.cpp with its own dijkstra_prune_branch
// — algebraically the same bound NaiveBound computes, reused here via the
// shared Bound interface rather than a third, duplicate implementation. A
// nil bound defaults to NaiveBound.
func BestFirstBnB(l *lattice.Lattice, bound Bound) error {
	if l == nil {
		return ErrNilLattice
	}
	if bound == nil {
		bound = &NaiveBound{}
	}
	bound.Init(l)

	n := l.Len()
	dim := l.Dim()

	if n > 1 {
		if err := l.Place(-1, true); err != nil {
			return err
		}
	}
	if n <= 2 {
		return nil
	}

	var pq bfHeap
	heap.Push(&pq, &bfNode{l: l.Clone()})

	bestScore := 1
	var bestHash []lattice.Move

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*bfNode)

		moves := lattice.Alphabet(dim)
		if cur.l.CurLen() == 2 {
			moves = lattice.NegativeAlphabet(dim)
		}

		for _, m := range moves {
			if !cur.l.IsValid(m) {
				continue
			}

			child := cur.l.Clone()
			if err := child.Place(m, true); err != nil {
				return err
			}

			if child.CurLen() == n {
				if score := child.Score(); score < bestScore {
					bestScore = score
					bestHash = child.HashFold()
				}
				continue
			}

			if bound.Prune(cur.l, m, bestScore) {
				continue
			}
			heap.Push(&pq, &bfNode{l: child})
		}
	}

	return l.SetHash(bestHash, false)
}
