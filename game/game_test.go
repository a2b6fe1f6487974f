package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/agnes/cards"
	"github.com/domino14/agnes/move"
	"github.com/domino14/agnes/testhelpers"
)

func laidOut(d cards.Deck, faceUp bool) *State {
	s := NewState(d.Normalized())
	s.Layout(faceUp)
	return s
}

// fillDeck places the given cards at the given deck positions and fills
// the rest with the remaining cards in order.
func fillDeck(fixed map[int]cards.Card) cards.Deck {
	used := map[cards.Card]bool{}
	for _, c := range fixed {
		used[c] = true
	}
	var rest []cards.Card
	for r := 0; r < cards.NumRanks; r++ {
		for s := 0; s < cards.NumSuits; s++ {
			c := cards.Card{Rank: r, Suit: s}
			if !used[c] {
				rest = append(rest, c)
			}
		}
	}
	cs := make([]cards.Card, cards.DeckSize)
	for i := range cs {
		if c, ok := fixed[i]; ok {
			cs[i] = c
		} else {
			cs[i], rest = rest[0], rest[1:]
		}
	}
	return cards.MustDeck(cs)
}

func TestLayout(t *testing.T) {
	is := is.New(t)
	s := laidOut(cards.WinningDeck(), false)

	is.Equal(s.StockLeft(), 23)
	is.Equal(s.Foundations(), [4]int{-1, -1, 0, -1})
	for i := 0; i < NumPiles; i++ {
		is.Equal(len(s.Exposed(i)), 1)
		is.Equal(len(s.Hidden(i)), i)
	}
	is.Equal(s.Score(), 1)
	is.True(!s.Won())
	is.NoErr(s.Validate())

	up := laidOut(cards.WinningDeck(), true)
	for i := 0; i < NumPiles; i++ {
		is.Equal(len(up.Exposed(i)), i+1)
		is.Equal(len(up.Hidden(i)), 0)
	}
}

func TestMovablePrefixes(t *testing.T) {
	is := is.New(t)
	s := NewState(cards.WinningDeck())
	s.exposed[0] = []cards.Card{{Rank: 5, Suit: 0}, {Rank: 4, Suit: 2}, {Rank: 3, Suit: 0}}
	s.exposed[1] = []cards.Card{{Rank: 5, Suit: 0}, {Rank: 4, Suit: 0}, {Rank: 3, Suit: 0}}
	s.exposed[2] = []cards.Card{{Rank: 9, Suit: 1}, {Rank: 4, Suit: 1}, {Rank: 3, Suit: 0}}

	is.Equal(s.MovablePrefixes(0, false, true), []int{1, 2, 3})
	is.Equal(s.MovablePrefixes(0, true, true), []int{1})
	is.Equal(s.MovablePrefixes(1, false, true), []int{1, 2, 3})
	is.Equal(s.MovablePrefixes(1, false, false), []int{3})
	is.Equal(s.MovablePrefixes(2, false, true), []int{1})
	is.Equal(len(s.MovablePrefixes(3, false, true)), 0)
}

func TestForcedFoundationMoveLastPileWins(t *testing.T) {
	is := is.New(t)
	s := NewState(cards.WinningDeck())
	s.stockLeft = 0
	s.foundation = [4]int{0, -1, 0, -1}
	s.exposed[1] = []cards.Card{{Rank: 1, Suit: 0}}
	s.exposed[4] = []cards.Card{{Rank: 1, Suit: 2}}

	s.SetValidMoves(DefaultRules())
	is.Equal(s.ValidMoves(), []move.Move{move.NewToFoundation(4, 2, false)})
}

func TestUnforcedFoundationMove(t *testing.T) {
	is := is.New(t)
	s := NewState(cards.WinningDeck())
	s.stockLeft = 9
	s.foundation = [4]int{3, -1, -1, -1}
	s.exposed[0] = []cards.Card{{Rank: 4, Suit: 0}}
	s.exposed[1] = []cards.Card{{Rank: 5, Suit: 2}}
	s.hidden[0] = []cards.Card{{Rank: 7, Suit: 3}}

	s.SetValidMoves(DefaultRules())
	is.Equal(s.ValidMoves(), []move.Move{
		move.NewDeal(),
		move.NewTableau(0, 1, 1, true),
		move.NewToFoundation(0, 0, true),
	})
}

func TestEmptyPilePolicies(t *testing.T) {
	is := is.New(t)
	s := NewState(cards.WinningDeck())
	s.foundation = [4]int{0, 0, 0, 0}
	for i := 0; i < NumPiles-1; i++ {
		s.exposed[i] = []cards.Card{{Rank: 8, Suit: 3}}
	}
	s.exposed[0] = []cards.Card{{Rank: highRank, Suit: 1}, {Rank: highRank - 1, Suit: 3}}

	count := func(p EmptyPilePolicy) int {
		r := DefaultRules()
		r.EmptyPile = p
		s.SetValidMoves(r)
		n := 0
		for _, m := range s.ValidMoves() {
			if m.Type() == move.MoveTypeTableau && m.To() == NumPiles-1 {
				n++
			}
		}
		return n
	}
	// Pile 0 can move 1 or 2 cards; the other piles 1 card each.
	is.Equal(count(EmptyPileNone), 0)
	is.Equal(count(EmptyPileAnyOne), 6)
	is.Equal(count(EmptyPileHighOne), 0)
	is.Equal(count(EmptyPileAnyRun), 7)
	is.Equal(count(EmptyPileHighRun), 1)
}

func TestAnyPileBlocked(t *testing.T) {
	is := is.New(t)
	d := fillDeck(map[int]cards.Card{
		0:  {Rank: 0, Suit: 0},
		2:  {Rank: 5, Suit: 3},
		8:  {Rank: highRank, Suit: 1},
		3:  {Rank: 5, Suit: 1},
		14: {Rank: highRank, Suit: 3},
	})
	s := laidOut(d, false)
	before := s.Fingerprint(nil)
	is.True(s.AnyPileBlocked())
	// No side effects, and the same answer every time.
	is.True(s.AnyPileBlocked())
	is.Equal(string(s.Fingerprint(nil)), string(before))

	is.True(!laidOut(cards.WinningDeck(), false).AnyPileBlocked())
}

func TestSuitGraphCycles(t *testing.T) {
	is := is.New(t)
	is.True(suitGraph{1 << 0, 0, 0, 0}.cyclic())
	is.True(suitGraph{1 << 1, 1 << 2, 1 << 0, 0}.cyclic())
	is.True(!suitGraph{1<<1 | 1<<2, 1 << 2, 1 << 3, 0}.cyclic())
	is.True(!suitGraph{}.cyclic())
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	s := NewState(cards.WinningDeck())
	is.Equal(string(s.Fingerprint(nil)), "+|+|+|+|+|+|+|+|+|+|+|+|+|+")

	s.exposed[0] = []cards.Card{{Rank: 0, Suit: 0}, {Rank: 12, Suit: 3}}
	s.hidden[6] = []cards.Card{{Rank: 1, Suit: 1}}
	is.Equal(string(s.Fingerprint([]byte("7"))), "7+0c|+|+|+|+|+|+|+|+|+|+|+|+|+>")
}

func TestDealMoves(t *testing.T) {
	is := is.New(t)
	s := laidOut(cards.WinningDeck(), false)
	start := string(s.Fingerprint(nil))

	for _, stock := range []int{16, 9, 2, 0} {
		s.PlayMove(move.NewDeal())
		is.Equal(s.StockLeft(), stock)
		is.NoErr(s.Validate())
	}
	is.Equal(len(s.Exposed(0)), 5)
	is.Equal(len(s.Exposed(2)), 4)
	is.Equal(s.Depth(), 4)
	for i := 0; i < 4; i++ {
		s.UnplayMove(move.NewDeal())
	}
	is.Equal(s.StockLeft(), 23)
	is.Equal(s.Depth(), 0)
	is.Equal(string(s.Fingerprint(nil)), start)
}

// Play random legal moves, checking that every card stays in exactly
// one place, then unplay them all and check we are back at the start.
func TestPlayUnplayIsExact(t *testing.T) {
	is := is.New(t)
	rules := []Rules{
		DefaultRules(),
		{EmptyPile: EmptyPileAnyRun, MoveSameSuit: true},
		{EmptyPile: EmptyPileAnyOne, SplitSameSuitRuns: true},
	}
	for seed := uint64(0); seed < 30; seed++ {
		r := rules[seed%uint64(len(rules))]
		s := laidOut(testhelpers.RandomDeck(seed), seed%2 == 0)
		start := s.Copy()
		var played []move.Move
		for i := 0; i < 60; i++ {
			s.SetValidMoves(r)
			vm := s.ValidMoves()
			if len(vm) == 0 {
				break
			}
			m := vm[(int(seed)+i)%len(vm)]
			s.PlayMove(m)
			is.NoErr(s.Validate())
			is.Equal(s.CurrentMove(), m)
			played = append(played, m)
		}
		for i := len(played) - 1; i >= 0; i-- {
			s.UnplayMove(played[i])
			is.NoErr(s.Validate())
		}
		is.Equal(s.Depth(), 0)
		is.Equal(s.StockLeft(), start.StockLeft())
		is.Equal(s.Foundations(), start.Foundations())
		is.Equal(string(s.Fingerprint(nil)), string(start.Fingerprint(nil)))
	}
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	s := laidOut(cards.WinningDeck(), false)
	c := s.Copy()
	s.PlayMove(move.NewDeal())
	is.Equal(c.StockLeft(), 23)
	is.Equal(len(c.Exposed(3)), 1)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	s := laidOut(cards.WinningDeck(), false)
	txt := s.ToDisplayText()
	is.True(len(txt) > 0)
	is.Equal(txt[:len("Move: Initial layout")], "Move: Initial layout")
}
