package game

// Fingerprint appends a compact encoding of the tableau to dst and
// returns the extended buffer. Two states with the same exposed and
// hidden piles have the same fingerprint.
//
// Each of the seven exposed piles and then each of the seven hidden
// piles is written as '+' followed by one byte per card (see
// cards.Card.Code), with '|' between piles. Foundations and stock are
// not part of it; the stock count is added by the caller where needed,
// and the foundations follow from the tableau and the stock.
func (s *State) Fingerprint(dst []byte) []byte {
	for i := 0; i < 2*NumPiles; i++ {
		if i > 0 {
			dst = append(dst, '|')
		}
		dst = append(dst, '+')
		pile := s.exposed[i%NumPiles]
		if i >= NumPiles {
			pile = s.hidden[i-NumPiles]
		}
		for _, c := range pile {
			dst = append(dst, c.Code())
		}
	}
	return dst
}
