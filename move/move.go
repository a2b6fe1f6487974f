// Package move defines the moves of a game of Agnes. A Move is a small
// immutable value; the zero Move stands for "no move" (the initial layout).
package move

import "fmt"

// MoveType is the kind of a move.
type MoveType uint8

const (
	MoveTypeNone MoveType = iota
	// MoveTypeDeal deals one card from the stock face up onto each pile,
	// or onto the first two piles when only two cards remain.
	MoveTypeDeal
	// MoveTypeToFoundation moves the bottom card of a pile to its
	// foundation.
	MoveTypeToFoundation
	// MoveTypeTableau moves a run from the bottom of one pile onto another.
	MoveTypeTableau
)

// Move carries exactly the fields needed to play the move and to unplay
// it again.
type Move struct {
	action  MoveType
	from    int
	to      int
	nCards  int
	suit    int
	exposes bool
}

// NewDeal creates a deal from the stock.
func NewDeal() Move {
	return Move{action: MoveTypeDeal}
}

// NewToFoundation creates a move of the bottom card of pile `from` to the
// foundation of `suit`. exposes is true if this turns over a hidden card.
func NewToFoundation(from, suit int, exposes bool) Move {
	return Move{action: MoveTypeToFoundation, from: from, suit: suit, nCards: 1, exposes: exposes}
}

// NewTableau creates a move of the bottom nCards exposed cards of pile
// `from` onto pile `to`.
func NewTableau(from, nCards, to int, exposes bool) Move {
	return Move{action: MoveTypeTableau, from: from, to: to, nCards: nCards, exposes: exposes}
}

func (m Move) Type() MoveType { return m.action }
func (m Move) From() int      { return m.from }
func (m Move) To() int        { return m.to }
func (m Move) NumCards() int  { return m.nCards }
func (m Move) Suit() int      { return m.suit }
func (m Move) Exposes() bool  { return m.exposes }

// IsNone is true for the zero Move.
func (m Move) IsNone() bool { return m.action == MoveTypeNone }

// Irreversible is true for moves that can never be undone by later play:
// deals and moves to a foundation.
func (m Move) Irreversible() bool {
	return m.action == MoveTypeDeal || m.action == MoveTypeToFoundation
}

func (m Move) String() string {
	var s string
	switch m.action {
	case MoveTypeNone:
		return "Initial layout"
	case MoveTypeDeal:
		return "Deal"
	case MoveTypeToFoundation:
		s = fmt.Sprintf("Move bottom card from pile %d to foundation %d", m.from, m.suit)
	case MoveTypeTableau:
		s = fmt.Sprintf("Move %d card(s) from pile %d to pile %d", m.nCards, m.from, m.to)
	default:
		return "<Unhandled move>"
	}
	if m.exposes {
		s += " (exposes a card)"
	}
	return s
}

func (m Move) MoveTypeString() string {
	switch m.action {
	case MoveTypeNone:
		return "None"
	case MoveTypeDeal:
		return "Deal"
	case MoveTypeToFoundation:
		return "ToFoundation"
	case MoveTypeTableau:
		return "Tableau"
	}
	return "UNHANDLED"
}
