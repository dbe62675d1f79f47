package game

// ObservableGameState is the public projection of a GameState: what
// the acting player actually knows. Deck contents and the identity of
// the excluded 10 cards are never exposed.
type ObservableGameState struct {
	Hand              *Hand
	Field             *Field
	Played            []Card
	BonusPoints       int
	TurnCount         int
	RemainingDeckSize int
	ExcludedCount     int
}

// IsTerminal reports whether no legal move remains, from the
// observable projection alone (legality depends only on hand and
// field, both fully known to the player).
func (o *ObservableGameState) IsTerminal() bool {
	return !HasLegalMove(o.Hand, o.Field)
}

// UnknownCards returns every card not in hand and not yet played:
// Universe \ (hand ∪ played). Its size equals RemainingDeckSize +
// ExcludedCount, and it is exactly the pool the Determinizer samples
// the deck and excluded set from.
func (o *ObservableGameState) UnknownCards() []Card {
	known := make(map[Card]struct{}, o.Hand.Len()+len(o.Played))
	for _, c := range o.Hand.Cards() {
		known[c] = struct{}{}
	}
	for _, c := range o.Played {
		known[c] = struct{}{}
	}

	var out []Card
	for _, c := range Universe() {
		if _, ok := known[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy.
func (o *ObservableGameState) Clone() *ObservableGameState {
	return &ObservableGameState{
		Hand:              o.Hand.Clone(),
		Field:             o.Field.Clone(),
		Played:            append([]Card(nil), o.Played...),
		BonusPoints:       o.BonusPoints,
		TurnCount:         o.TurnCount,
		RemainingDeckSize: o.RemainingDeckSize,
		ExcludedCount:     o.ExcludedCount,
	}
}
