package game

import (
	"fmt"
	"strings"

	"github.com/domino14/agnes/cards"
	"github.com/domino14/agnes/move"
	"github.com/samber/lo"
)

// Snapshot is a read-only copy of a State, for history export and
// display.
type Snapshot struct {
	Move       move.Move
	Depth      int
	StockLeft  int
	Foundation [cards.NumSuits]int
	Exposed    [NumPiles][]cards.Card
	Hidden     [NumPiles][]cards.Card
	ValidMoves []move.Move
}

// Snapshot copies the state.
func (s *State) Snapshot() Snapshot {
	c := s.Copy()
	return Snapshot{
		Move:       c.currentMove,
		Depth:      c.depth,
		StockLeft:  c.stockLeft,
		Foundation: c.foundation,
		Exposed:    c.exposed,
		Hidden:     c.hidden,
		ValidMoves: c.validMoves,
	}
}

// ToDisplayText turns the state into a multi-line string.
func (s *State) ToDisplayText() string {
	return s.Snapshot().String()
}

func pileText(pile []cards.Card) string {
	return strings.Join(lo.Map(pile, func(c cards.Card, _ int) string {
		return c.TwoChar()
	}), " ")
}

// String lists the hidden and exposed cards of each pile, hidden first.
func (sn Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move: %s\n", sn.Move)
	fmt.Fprintf(&b, "depth: %d, stock left: %d, valid moves: %d\n",
		sn.Depth, sn.StockLeft, len(sn.ValidMoves))

	found := lo.Map(sn.Foundation[:], func(top int, suit int) string {
		if top < 0 {
			return "--"
		}
		return cards.Card{Rank: top, Suit: suit}.TwoChar()
	})
	fmt.Fprintf(&b, "Foundations: %s\n", strings.Join(found, " "))

	for i := 0; i < NumPiles; i++ {
		fmt.Fprintf(&b, "T%d: %s | %s\n", i, pileText(sn.Hidden[i]), pileText(sn.Exposed[i]))
	}
	return b.String()
}
