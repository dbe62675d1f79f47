package game

// Move is a (card, slot) pair: play card onto slot.
type Move struct {
	Card Card
	Slot Slot
}

// LegalMoves returns every (card, slot) pair playable from hand onto
// field. A card legal on both slots appears twice — the slot is a
// genuine decision, not a tie-break to be collapsed.
func LegalMoves(hand *Hand, field *Field) []Move {
	var moves []Move
	for _, c := range hand.Cards() {
		if CanPlay(c, field, Slot1) {
			moves = append(moves, Move{Card: c, Slot: Slot1})
		}
		if CanPlay(c, field, Slot2) {
			moves = append(moves, Move{Card: c, Slot: Slot2})
		}
	}
	return moves
}

// CanPlay reports whether c may be placed on slot s: the slot is
// empty, or c shares suit or rank with the slot's top card.
func CanPlay(c Card, field *Field, s Slot) bool {
	top, ok := field.Slot(s).Top()
	if !ok {
		return true
	}
	return c.Suit == top.Suit || c.Rank == top.Rank
}

// HasLegalMove reports whether any move is playable. Equivalent to
// len(LegalMoves(hand, field)) > 0 but avoids building the slice.
func HasLegalMove(hand *Hand, field *Field) bool {
	for _, c := range hand.Cards() {
		if CanPlay(c, field, Slot1) || CanPlay(c, field, Slot2) {
			return true
		}
	}
	return false
}

// Less orders moves by (card.Suit, card.Rank, slot), giving a total
// order over the move space independent of map/slice iteration order.
// Used to make tree-child scans reproducible under a fixed seed.
func (m Move) Less(other Move) bool {
	if m.Card != other.Card {
		return m.Card.Less(other.Card)
	}
	return m.Slot < other.Slot
}

// SortMoves orders moves in place by Move.Less.
func SortMoves(moves []Move) {
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && moves[j].Less(moves[j-1]); j-- {
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
}
