package solver

import (
	"github.com/domino14/agnes/cards"
	"github.com/domino14/agnes/game"
	"github.com/domino14/agnes/testhelpers"
)

// Known deals and their search counters. The counters were checked
// against an independent implementation of the same search.

// blockedDeck is lost at once: its layout has kings blocking each other.
var blockedDeck = testhelpers.DeckFromPairs([][2]int{
	{6, 0}, {12, 0}, {6, 2}, {0, 2}, {4, 0}, {8, 0}, {7, 3}, {6, 1}, {4, 3}, {7, 2},
	{5, 2}, {9, 1}, {3, 1}, {11, 2}, {2, 0}, {4, 2}, {10, 0}, {1, 2}, {11, 3}, {2, 1},
	{10, 3}, {0, 3}, {5, 3}, {12, 2}, {6, 3}, {5, 1}, {2, 2}, {3, 3}, {4, 1}, {10, 2},
	{2, 3}, {9, 3}, {11, 0}, {8, 2}, {7, 1}, {12, 3}, {3, 2}, {5, 0}, {8, 3}, {1, 0},
	{0, 0}, {8, 1}, {12, 1}, {0, 1}, {9, 0}, {1, 1}, {1, 3}, {9, 2}, {10, 1}, {11, 1},
	{3, 0}, {7, 0},
})

var losingDeck = testhelpers.DeckFromPairs([][2]int{
	{10, 3}, {0, 2}, {8, 1}, {1, 3}, {8, 0}, {3, 0}, {6, 1}, {5, 2}, {12, 1}, {4, 2},
	{9, 1}, {2, 1}, {9, 2}, {4, 0}, {1, 2}, {9, 3}, {6, 2}, {5, 0}, {4, 1}, {10, 1},
	{8, 2}, {7, 0}, {10, 0}, {0, 0}, {10, 2}, {4, 3}, {11, 3}, {12, 2}, {11, 1}, {0, 3},
	{12, 3}, {3, 2}, {11, 2}, {6, 0}, {11, 0}, {3, 1}, {7, 2}, {0, 1}, {7, 1}, {2, 3},
	{5, 3}, {8, 3}, {12, 0}, {1, 0}, {6, 3}, {2, 2}, {1, 1}, {5, 1}, {7, 3}, {9, 0},
	{3, 3}, {2, 0},
})

var longDeck = testhelpers.DeckFromPairs([][2]int{
	{1, 0}, {3, 1}, {2, 1}, {4, 3}, {11, 0}, {3, 3}, {7, 3}, {0, 1}, {0, 2}, {1, 2},
	{5, 0}, {8, 0}, {5, 1}, {0, 3}, {8, 1}, {7, 2}, {5, 3}, {0, 0}, {2, 0}, {8, 2},
	{11, 1}, {8, 3}, {6, 0}, {6, 2}, {10, 2}, {7, 0}, {12, 1}, {6, 3}, {3, 2}, {10, 3},
	{2, 2}, {9, 2}, {11, 3}, {4, 0}, {10, 1}, {1, 1}, {9, 0}, {10, 0}, {7, 1}, {11, 2},
	{3, 0}, {9, 1}, {4, 2}, {4, 1}, {5, 2}, {9, 3}, {1, 3}, {12, 2}, {12, 0}, {6, 1},
	{12, 3}, {2, 3},
})

type expected struct {
	outcome      Outcome
	counters     Counters
	currentDepth int
	losingStates int
}

type knownDeal struct {
	name string
	deck cards.Deck
	cfg  func(*Config)
	want expected
}

var knownDeals = []knownDeal{
	{
		name: "winning deck",
		deck: cards.WinningDeck(),
		want: expected{Won, Counters{138, 5, 67, 51, 15, 106, 52}, 107, 15},
	},
	{
		name: "winning deck maximizing score",
		deck: cards.WinningDeck(),
		cfg:  func(c *Config) { c.MaximizeScore = true },
		want: expected{Won, Counters{138, 5, 67, 51, 15, 106, 52}, 107, 15},
	},
	{
		name: "winning deck face up",
		deck: cards.WinningDeck(),
		cfg:  func(c *Config) { c.FaceUp = true },
		want: expected{Won, Counters{184, 5, 98, 51, 30, 122, 52}, 123, 26},
	},
	{
		name: "blocked layout",
		deck: blockedDeck,
		want: expected{Lost, Counters{1, 1, 0, 0, 0, 0, 1}, 0, 0},
	},
	{
		name: "blocked layout maximizing score",
		deck: blockedDeck,
		cfg:  func(c *Config) { c.MaximizeScore = true },
		want: expected{Lost, Counters{1460, 119, 503, 108, 730, 18, 2}, 0, 333},
	},
	{
		name: "losing deck",
		deck: losingDeck,
		want: expected{Lost, Counters{1210, 214, 248, 143, 605, 22, 12}, 0, 478},
	},
	{
		name: "losing deck maximizing score",
		deck: losingDeck,
		cfg:  func(c *Config) { c.MaximizeScore = true },
		want: expected{Lost, Counters{30152, 1618, 13180, 278, 15076, 35, 13}, 0, 8122},
	},
	{
		name: "losing deck track threshold",
		deck: losingDeck,
		cfg:  func(c *Config) { c.TrackThreshold = 10 },
		want: expected{Lost, Counters{1426, 268, 302, 143, 713, 22, 12}, 0, 154},
	},
	{
		name: "losing deck unsplit runs",
		deck: losingDeck,
		cfg:  func(c *Config) { c.SplitSameSuitRuns = false },
		want: expected{Lost, Counters{1068, 200, 195, 139, 534, 21, 12}, 0, 450},
	},
	{
		name: "losing deck same suit",
		deck: losingDeck,
		cfg:  func(c *Config) { c.MoveSameSuit = true },
		want: expected{Lost, Counters{1096, 193, 218, 137, 548, 20, 12}, 0, 436},
	},
	{
		name: "losing deck wins with any single card to empty piles",
		deck: losingDeck,
		cfg: func(c *Config) {
			c.EmptyPile = game.EmptyPileAnyOne
			c.MaxStates = 20000
		},
		want: expected{Won, Counters{8143, 69, 3752, 371, 3951, 239, 52}, 240, 899},
	},
	{
		name: "losing deck terminated with high runs to empty piles",
		deck: losingDeck,
		cfg: func(c *Config) {
			c.EmptyPile = game.EmptyPileHighRun
			c.MaxStates = 20000
		},
		want: expected{Terminated, Counters{20001, 870, 9040, 108, 9982, 57, 13}, 35, 5202},
	},
	{
		name: "long deck terminated",
		deck: longDeck,
		cfg:  func(c *Config) { c.MaxStates = 500 },
		want: expected{Terminated, Counters{501, 44, 177, 42, 237, 34, 4}, 25, 122},
	},
}
