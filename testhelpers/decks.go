// Package testhelpers has deck generators shared by the tests of several
// packages.
package testhelpers

import (
	"encoding/binary"

	"github.com/domino14/agnes/cards"
	"lukechampine.com/frand"
)

func orderedCards() []cards.Card {
	cs := make([]cards.Card, 0, cards.DeckSize)
	for r := 0; r < cards.NumRanks; r++ {
		for s := 0; s < cards.NumSuits; s++ {
			cs = append(cs, cards.Card{Rank: r, Suit: s})
		}
	}
	return cs
}

// RandomDeck returns a shuffled deck. The same seed always gives the
// same deck.
func RandomDeck(seed uint64) cards.Deck {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	rng := frand.NewCustom(key, 1024, 12)

	cs := orderedCards()
	rng.Shuffle(len(cs), func(i, j int) {
		cs[i], cs[j] = cs[j], cs[i]
	})
	return cards.MustDeck(cs)
}

// RandomDecks returns n decks for seeds first, first+1, ...
func RandomDecks(first uint64, n int) []cards.Deck {
	decks := make([]cards.Deck, n)
	for i := range decks {
		decks[i] = RandomDeck(first + uint64(i))
	}
	return decks
}

// DeckFromPairs builds a deck from (rank, suit) pairs. It panics if they
// don't form a full deck.
func DeckFromPairs(pairs [][2]int) cards.Deck {
	cs := make([]cards.Card, len(pairs))
	for i, p := range pairs {
		cs[i] = cards.Card{Rank: p[0], Suit: p[1]}
	}
	return cards.MustDeck(cs)
}
