// Package game holds the mutable state of a game of Agnes: the tableau,
// foundations and stock, the rules deciding which moves are legal, and
// the exact play and unplay of a move.
//
// A search mutates a single State in place. Nothing here copies a State
// except Copy, which is meant for one-off uses such as history export.
package game

import (
	"fmt"

	"github.com/domino14/agnes/cards"
	"github.com/domino14/agnes/move"
	"github.com/samber/lo"
)

const (
	NumPiles = 7
	highRank = cards.HighRank
)

// State is one position in the game.
type State struct {
	// deck is the normalized deck; the stock is its last stockLeft cards.
	deck cards.Deck

	exposed [NumPiles][]cards.Card
	hidden  [NumPiles][]cards.Card
	// foundation holds the rank of the top card of each suit's
	// foundation, or -1 if it is empty.
	foundation [cards.NumSuits]int
	stockLeft  int
	depth      int

	currentMove move.Move
	validMoves  []move.Move
}

// NewState creates an empty game for a normalized deck. Nothing has been
// dealt yet; see Layout.
func NewState(deck cards.Deck) *State {
	s := &State{deck: deck, stockLeft: cards.DeckSize}
	for i := range s.foundation {
		s.foundation[i] = -1
	}
	return s
}

// Layout plays the base card to its foundation and deals the tableau:
// pile j gets one card from each deal round i <= j. A card is dealt face
// up if it is the last card of its pile or if faceUp is set.
func (s *State) Layout(faceUp bool) {
	s.playBaseCard()
	for i := 0; i < NumPiles; i++ {
		for j := i; j < NumPiles; j++ {
			s.dealOntoPile(j, faceUp || i == j)
		}
	}
}

func (s *State) playBaseCard() {
	s.foundation[s.deck[0].Suit] = 0
	s.stockLeft--
}

// dealOntoPile deals the next card of the stock onto a pile.
func (s *State) dealOntoPile(pile int, faceUp bool) {
	c := s.deck[cards.DeckSize-s.stockLeft]
	if faceUp {
		s.exposed[pile] = append(s.exposed[pile], c)
	} else {
		s.hidden[pile] = append(s.hidden[pile], c)
	}
	s.stockLeft--
}

func (s *State) Exposed(pile int) []cards.Card { return s.exposed[pile] }
func (s *State) Hidden(pile int) []cards.Card  { return s.hidden[pile] }
func (s *State) Foundation(suit int) int       { return s.foundation[suit] }
func (s *State) Foundations() [cards.NumSuits]int {
	return s.foundation
}
func (s *State) StockLeft() int             { return s.stockLeft }
func (s *State) Depth() int                 { return s.depth }
func (s *State) CurrentMove() move.Move     { return s.currentMove }
func (s *State) ValidMoves() []move.Move    { return s.validMoves }
func (s *State) Deck() cards.Deck           { return s.deck }
func (s *State) SetCurrentMove(m move.Move) { s.currentMove = m }

// RestoreValidMoves replaces the candidate moves, eg with what is left of
// them when the search backtracks to this state.
func (s *State) RestoreValidMoves(ms []move.Move) { s.validMoves = ms }

// Score is the number of cards on the foundations.
func (s *State) Score() int {
	return lo.SumBy(s.foundation[:], func(top int) int { return top + 1 })
}

// Won is true once every card is on a foundation.
func (s *State) Won() bool {
	return s.Score() == cards.DeckSize
}

// Copy returns a deep copy of the state.
func (s *State) Copy() *State {
	c := &State{
		deck:        s.deck,
		foundation:  s.foundation,
		stockLeft:   s.stockLeft,
		depth:       s.depth,
		currentMove: s.currentMove,
		validMoves:  append([]move.Move(nil), s.validMoves...),
	}
	for i := 0; i < NumPiles; i++ {
		c.exposed[i] = append([]cards.Card(nil), s.exposed[i]...)
		c.hidden[i] = append([]cards.Card(nil), s.hidden[i]...)
	}
	return c
}

// Validate checks that every card of the deck is in exactly one place:
// a pile, a foundation, or the stock.
func (s *State) Validate() error {
	var seen [cards.NumSuits][cards.NumRanks]int
	for i := 0; i < NumPiles; i++ {
		for _, c := range s.hidden[i] {
			seen[c.Suit][c.Rank]++
		}
		for _, c := range s.exposed[i] {
			seen[c.Suit][c.Rank]++
		}
	}
	for suit, top := range s.foundation {
		for r := 0; r <= top; r++ {
			seen[suit][r]++
		}
	}
	if s.stockLeft < 0 || s.stockLeft > cards.DeckSize {
		return fmt.Errorf("stock count %d out of range", s.stockLeft)
	}
	for _, c := range s.deck[cards.DeckSize-s.stockLeft:] {
		seen[c.Suit][c.Rank]++
	}
	for suit := range seen {
		for r, n := range seen[suit] {
			if n != 1 {
				return fmt.Errorf("card %v found %d times", cards.Card{Rank: r, Suit: suit}, n)
			}
		}
	}
	return nil
}
