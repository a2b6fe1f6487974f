package game

import (
	"github.com/domino14/agnes/cards"
	"github.com/domino14/agnes/move"
)

// MovablePrefixes returns the numbers of cards, counted from the bottom of
// a pile's exposed cards, that form a run that may be moved. It does not
// look for a pile to move the run to; SetValidMoves does that.
//
// A run descends by exactly one rank per card and every card matches the
// bottom card's suit (sameSuit) or color. Unless splitSameSuitRuns is set,
// a run may not be taken off a card of its own suit that is one rank
// higher than the run's top card.
func (s *State) MovablePrefixes(pile int, sameSuit, splitSameSuitRuns bool) []int {
	p := s.exposed[pile]
	if len(p) == 0 {
		return nil
	}
	var ret []int
	bottom := p[len(p)-1]
	for i := 0; i < len(p); i++ {
		c := p[len(p)-1-i]
		if c.Rank-i != bottom.Rank {
			break
		}
		if c.Suit != bottom.Suit && (sameSuit || !c.SameColor(bottom)) {
			break
		}
		if !splitSameSuitRuns && len(p)-2-i >= 0 {
			above := p[len(p)-2-i]
			if above.Rank == c.Rank+1 && above.Suit == c.Suit {
				continue
			}
		}
		ret = append(ret, i+1)
	}
	return ret
}

// SetValidMoves replaces the state's candidate moves with the legal moves
// of this position. Moves are appended in a fixed order: the deal, then
// for each pile its tableau moves followed by its move to the foundation.
// The search tries them last to first.
//
// A move to the foundation is forced when the card is at most two ranks
// above the foundation of the other suit of its color, since no card that
// could still go onto it in the tableau is needed there. If any move is
// forced the candidates collapse to the forced move from the last pile
// that has one.
func (s *State) SetValidMoves(r Rules) {
	moves := make([]move.Move, 0, 8)
	var forced move.Move

	if s.stockLeft > 0 {
		moves = append(moves, move.NewDeal())
	}

	for pile := 0; pile < NumPiles; pile++ {
		exp := s.exposed[pile]
		for _, n := range s.MovablePrefixes(pile, r.MoveSameSuit, r.SplitSameSuitRuns) {
			src := exp[len(exp)-n]
			exposes := n == len(exp) && len(s.hidden[pile]) > 0

			for target := 0; target < NumPiles; target++ {
				if target == pile {
					continue
				}
				tp := s.exposed[target]
				if len(tp) == 0 {
					if !r.EmptyPile.allows(src.Rank, n) {
						continue
					}
				} else {
					dst := tp[len(tp)-1]
					if src.Rank != dst.Rank-1 || !src.SameColor(dst) {
						continue
					}
				}
				moves = append(moves, move.NewTableau(pile, n, target, exposes))
			}
		}

		if len(exp) == 0 {
			continue
		}
		last := exp[len(exp)-1]
		if last.Rank-1 != s.foundation[last.Suit] {
			continue
		}
		m := move.NewToFoundation(pile, last.Suit, len(exp) == 1 && len(s.hidden[pile]) > 0)
		moves = append(moves, m)
		if last.Rank <= s.foundation[cards.SameColorSuit(last.Suit)]+2 {
			forced = m
		}
	}

	if !forced.IsNone() {
		moves = []move.Move{forced}
	}
	s.validMoves = moves
}
