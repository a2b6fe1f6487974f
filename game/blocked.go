package game

import "github.com/domino14/agnes/cards"

// suitGraph is a directed graph over the four suits. Bit j of
// suitGraph[i] is set for an edge i -> j.
type suitGraph [cards.NumSuits]uint8

// AnyPileBlocked reports whether the position can no longer be won
// because highest-rank cards block each other.
//
// A highest-rank card can only leave its pile for the foundation, which
// it reaches last. Every card it covers therefore waits for its whole
// suit. We add an edge k -> s for each card of suit s covered by the
// highest card of suit k (other than that card itself), and the game is
// lost if the graph has a cycle.
//
// This only holds when nothing can be moved to an empty pile, so callers
// must only use it with EmptyPileNone. It has no side effects.
func (s *State) AnyPileBlocked() bool {
	var g suitGraph
	for pile := 0; pile < NumPiles; pile++ {
		var highFound [cards.NumSuits]bool
		visit := func(c cards.Card) {
			if c.Rank == highRank {
				highFound[c.Suit] = true
			}
			for k := 0; k < cards.NumSuits; k++ {
				if highFound[k] && (c.Rank < highRank || c.Suit != k) {
					g[k] |= 1 << c.Suit
				}
			}
		}
		exp, hid := s.exposed[pile], s.hidden[pile]
		for i := len(exp) - 1; i >= 0; i-- {
			visit(exp[i])
		}
		for i := len(hid) - 1; i >= 0; i-- {
			visit(hid[i])
		}
	}
	return g.cyclic()
}

func (g suitGraph) cyclic() bool {
	var visited, onPath uint8
	var visit func(v int) bool
	visit = func(v int) bool {
		if visited&(1<<v) != 0 {
			return false
		}
		visited |= 1 << v
		onPath |= 1 << v
		for w := 0; w < cards.NumSuits; w++ {
			if g[v]&(1<<w) == 0 {
				continue
			}
			if onPath&(1<<w) != 0 || visit(w) {
				return true
			}
		}
		onPath &^= 1 << v
		return false
	}
	for v := 0; v < cards.NumSuits; v++ {
		if visit(v) {
			return true
		}
	}
	return false
}
