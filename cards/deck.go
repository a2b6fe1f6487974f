package cards

import (
	"errors"
	"fmt"
)

var ErrInvalidDeck = errors.New("invalid deck")

// Deck is an ordered set of all 52 cards. The first card is the base card.
type Deck [DeckSize]Card

// NewDeck validates cs and copies it into a Deck. Every (rank, suit) pair
// must appear exactly once.
func NewDeck(cs []Card) (Deck, error) {
	var d Deck
	if len(cs) != DeckSize {
		return d, fmt.Errorf("%w: expected %d cards, found %d", ErrInvalidDeck, DeckSize, len(cs))
	}
	var seen [NumSuits][NumRanks]bool
	for i, c := range cs {
		if !c.Valid() {
			return d, fmt.Errorf("%w: card %d is %v; rank must be in 0..%d and suit in 0..%d",
				ErrInvalidDeck, i, c, NumRanks-1, NumSuits-1)
		}
		if seen[c.Suit][c.Rank] {
			return d, fmt.Errorf("%w: duplicate card %v at position %d", ErrInvalidDeck, c, i)
		}
		seen[c.Suit][c.Rank] = true
		d[i] = c
	}
	return d, nil
}

// MustDeck is NewDeck for fixtures; it panics on an invalid deck.
func MustDeck(cs []Card) Deck {
	d, err := NewDeck(cs)
	if err != nil {
		panic(err)
	}
	return d
}

// Base returns the base card, which is dealt straight to the foundation.
func (d Deck) Base() Card {
	return d[0]
}

// Normalized returns a copy of the deck with every rank shifted so that
// the base card has rank 0. Suits are unchanged.
func (d Deck) Normalized() Deck {
	var n Deck
	base := d[0].Rank
	for i, c := range d {
		n[i] = Card{Rank: ((c.Rank-base)%NumRanks + NumRanks) % NumRanks, Suit: c.Suit}
	}
	return n
}

// Cards returns the deck as a slice.
func (d Deck) Cards() []Card {
	cs := make([]Card, DeckSize)
	copy(cs, d[:])
	return cs
}
