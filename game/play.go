package game

import (
	"fmt"

	"github.com/domino14/agnes/cards"
	"github.com/domino14/agnes/move"
)

// PlayMove applies m to the state. The move must have been generated for
// this exact position; PlayMove does not check that it is legal.
func (s *State) PlayMove(m move.Move) {
	switch m.Type() {
	case move.MoveTypeToFoundation:
		from := m.From()
		s.exposed[from] = s.exposed[from][:len(s.exposed[from])-1]
		if m.Exposes() {
			s.flip(from)
		}
		s.foundation[m.Suit()]++

	case move.MoveTypeDeal:
		if s.stockLeft == 2 {
			s.dealOntoPile(0, true)
			s.dealOntoPile(1, true)
		} else {
			for pile := 0; pile < NumPiles; pile++ {
				s.dealOntoPile(pile, true)
			}
		}

	case move.MoveTypeTableau:
		from, to := m.From(), m.To()
		src := s.exposed[from]
		cut := len(src) - m.NumCards()
		s.exposed[to] = append(s.exposed[to], src[cut:]...)
		s.exposed[from] = src[:cut]
		if m.Exposes() {
			s.flip(from)
		}

	default:
		panic(fmt.Sprintf("cannot play move of type %v", m.Type()))
	}
	s.depth++
	s.currentMove = m
}

// UnplayMove exactly reverses PlayMove(m), where m is the last move
// played. The caller is responsible for restoring the current and valid
// moves.
func (s *State) UnplayMove(m move.Move) {
	switch m.Type() {
	case move.MoveTypeToFoundation:
		from := m.From()
		if m.Exposes() {
			s.unflip(from)
		}
		suit := m.Suit()
		s.exposed[from] = append(s.exposed[from], cards.Card{Rank: s.foundation[suit], Suit: suit})
		s.foundation[suit]--

	case move.MoveTypeDeal:
		// The only deal that empties the stock is the final two-card one.
		if s.stockLeft == 0 {
			s.stockLeft = 2
			s.exposed[0] = s.exposed[0][:len(s.exposed[0])-1]
			s.exposed[1] = s.exposed[1][:len(s.exposed[1])-1]
		} else {
			s.stockLeft += NumPiles
			for pile := 0; pile < NumPiles; pile++ {
				s.exposed[pile] = s.exposed[pile][:len(s.exposed[pile])-1]
			}
		}

	case move.MoveTypeTableau:
		from, to := m.From(), m.To()
		if m.Exposes() {
			s.unflip(from)
		}
		dst := s.exposed[to]
		cut := len(dst) - m.NumCards()
		s.exposed[from] = append(s.exposed[from], dst[cut:]...)
		s.exposed[to] = dst[:cut]

	default:
		panic(fmt.Sprintf("cannot unplay move of type %v", m.Type()))
	}
	s.depth--
}

// flip turns over the last hidden card of a pile whose exposed cards
// have all been moved away.
func (s *State) flip(pile int) {
	h := s.hidden[pile]
	s.exposed[pile] = append(s.exposed[pile], h[len(h)-1])
	s.hidden[pile] = h[:len(h)-1]
}

func (s *State) unflip(pile int) {
	e := s.exposed[pile]
	s.hidden[pile] = append(s.hidden[pile], e[len(e)-1])
	s.exposed[pile] = e[:len(e)-1]
}
