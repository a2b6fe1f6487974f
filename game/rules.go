package game

import "fmt"

// EmptyPilePolicy says which cards may be moved from the tableau onto an
// empty pile. Empty piles are always refilled by deals.
type EmptyPilePolicy uint8

const (
	// EmptyPileNone never allows a tableau move to an empty pile.
	EmptyPileNone EmptyPilePolicy = iota
	// EmptyPileAnyOne allows any single card.
	EmptyPileAnyOne
	// EmptyPileHighOne allows a single card of the highest rank.
	EmptyPileHighOne
	// EmptyPileAnyRun allows any movable run.
	EmptyPileAnyRun
	// EmptyPileHighRun allows a movable run headed by a card of the
	// highest rank.
	EmptyPileHighRun
)

var policyNames = [...]string{"none", "any 1", "high 1", "any run", "high run"}

func (p EmptyPilePolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("EmptyPilePolicy(%d)", p)
}

// Valid reports whether p is one of the known policies.
func (p EmptyPilePolicy) Valid() bool {
	return int(p) < len(policyNames)
}

// allows reports whether a run of n cards headed by a card of rank
// `rank` may be moved onto an empty pile.
func (p EmptyPilePolicy) allows(rank, n int) bool {
	switch p {
	case EmptyPileAnyOne:
		return n == 1
	case EmptyPileHighOne:
		return n == 1 && rank == highRank
	case EmptyPileAnyRun:
		return true
	case EmptyPileHighRun:
		return rank == highRank
	}
	return false
}

// Rules are the rule variants that affect move generation.
type Rules struct {
	EmptyPile EmptyPilePolicy
	// MoveSameSuit only permits moving runs of a single suit. Otherwise
	// runs of a single color can be moved.
	MoveSameSuit bool
	// SplitSameSuitRuns permits a move that leaves behind a card of the
	// same suit and one rank higher than the top of the moved run.
	SplitSameSuitRuns bool
}

// DefaultRules are the standard rules.
func DefaultRules() Rules {
	return Rules{EmptyPile: EmptyPileNone, SplitSameSuitRuns: true}
}
