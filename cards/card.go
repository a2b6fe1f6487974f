// Package cards defines the cards and decks dealt in a game of Agnes.
// Suits 0 and 2 share a color, as do suits 1 and 3.
package cards

import "fmt"

const (
	NumRanks = 13
	NumSuits = 4
	DeckSize = NumRanks * NumSuits

	// HighRank is the highest rank once a deck has been normalized so
	// that the base card has rank 0.
	HighRank = NumRanks - 1
)

var suitSymbols = [NumSuits]string{"♣", "♦", "♠", "♥"}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank int
	Suit int
}

// String returns the card the way it is written in deck files, eg (4, 2).
func (c Card) String() string {
	return fmt.Sprintf("(%d, %d)", c.Rank, c.Suit)
}

// TwoChar returns a short display name such as 3♦ or K♠.
func (c Card) TwoChar() string {
	var r string
	switch c.Rank {
	case 0:
		r = "A"
	case 10:
		r = "J"
	case 11:
		r = "Q"
	case 12:
		r = "K"
	default:
		r = fmt.Sprint(c.Rank + 1)
	}
	if c.Suit < 0 || c.Suit >= NumSuits {
		return r + "?"
	}
	return r + suitSymbols[c.Suit]
}

// Code is a one-byte printable encoding of the card. Distinct cards have
// distinct codes, in the range '0' to 'c'.
func (c Card) Code() byte {
	return byte('0' + NumRanks*c.Suit + c.Rank)
}

// SameColor reports whether two cards are of the same color.
func (c Card) SameColor(o Card) bool {
	return (c.Suit-o.Suit)%2 == 0
}

// Valid reports whether rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank >= 0 && c.Rank < NumRanks && c.Suit >= 0 && c.Suit < NumSuits
}

// SameColorSuit returns the other suit of the same color.
func SameColorSuit(suit int) int {
	return (suit + 2) % NumSuits
}
