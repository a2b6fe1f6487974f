package cards

// WinningDeck returns a fixed deck that is known to win with the default
// rules (no moves to empty piles, runs by color, splitting allowed, the
// usual face-down deal). The base card is the six of spades.
func WinningDeck() Deck {
	rows := [][][2]int{
		{{6, 2}},
		{{9, 1}, {5, 1}, {7, 3}, {5, 3}, {3, 3}, {9, 0}, {5, 0}},
		{{12, 2}, {2, 1}, {6, 0}, {4, 2}, {0, 3}, {2, 2}},
		{{8, 1}, {4, 3}, {7, 0}, {8, 2}, {3, 2}},
		{{10, 0}, {1, 3}, {11, 1}, {8, 0}},
		{{0, 1}, {9, 3}, {4, 0}},
		{{9, 2}, {1, 1}},
		{{7, 1}},
		// stock
		{{6, 3}, {11, 2}, {5, 2}, {3, 0}, {2, 0}, {11, 0}, {0, 0}},
		{{10, 3}, {3, 1}, {8, 3}, {1, 0}, {10, 1}, {11, 3}, {7, 2}},
		{{12, 0}, {10, 2}, {4, 1}, {12, 3}, {12, 1}, {6, 1}, {0, 2}},
		{{1, 2}, {2, 3}},
	}
	cs := make([]Card, 0, DeckSize)
	for _, row := range rows {
		for _, rs := range row {
			cs = append(cs, Card{Rank: rs[0], Suit: rs[1]})
		}
	}
	return MustDeck(cs)
}
