package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// GameState is the fully-determinized, mutable state of one game in
// progress: deck, hand, field, running scalars, and the play history.
// Created either by a fresh deal or by a Determinizer reconstructing a
// plausible hidden state from an ObservableGameState.
type GameState struct {
	deck        *Deck
	hand        *Hand
	field       *Field
	played      []Card
	bonusPoints int
	turnCount   int
}

// NewGame deals a fresh game state from the given deck and hand.
// Returns an InvalidConfiguration-kind error (a *multierror.Error
// wrapped with a message) if hand is not exactly InitialHandSize cards
// or contains a card outside the Universe.
func NewGame(deck *Deck, hand []Card) (*GameState, error) {
	var result *multierror.Error

	if len(hand) != InitialHandSize {
		result = multierror.Append(result, errors.Errorf("initial hand must have %d cards, got %d", InitialHandSize, len(hand)))
	}
	for _, c := range hand {
		if !InUniverse(c) {
			result = multierror.Append(result, errors.Errorf("hand contains card %s outside the Universe", c))
		}
	}
	if result != nil {
		return nil, errors.WithMessage(result.ErrorOrNil(), "invalid game configuration")
	}

	g := &GameState{
		deck:  deck,
		hand:  NewHand(hand),
		field: NewField(),
	}
	g.bonusPoints = CalculatePoints(g.hand.Cards())
	return g, nil
}

// NewDeterminizedGame constructs a GameState directly from an already
// observed hand, field and played log plus a synthetic deck — the
// constructor the Determinizer uses instead of NewGame, since the hand
// and field here are copies of already-observed state rather than a
// fresh deal. Returns an InvalidConfiguration-kind error if hand holds
// more than InitialHandSize cards or any card in hand, field or played
// falls outside the Universe.
func NewDeterminizedGame(deck *Deck, hand *Hand, field *Field, played []Card, bonusPoints, turnCount int) (*GameState, error) {
	var result *multierror.Error

	if hand.Len() > InitialHandSize {
		result = multierror.Append(result, errors.Errorf("hand must have at most %d cards, got %d", InitialHandSize, hand.Len()))
	}

	check := func(label string, cards []Card) {
		for _, c := range cards {
			if !InUniverse(c) {
				result = multierror.Append(result, errors.Errorf("%s contains card %s outside the Universe", label, c))
			}
		}
	}
	check("hand", hand.Cards())
	check("field slot 1", field.Slot(Slot1).Cards())
	check("field slot 2", field.Slot(Slot2).Cards())
	check("played log", played)

	if result != nil {
		return nil, errors.WithMessage(result.ErrorOrNil(), "invalid game configuration")
	}

	return &GameState{
		deck:        deck,
		hand:        hand,
		field:       field,
		played:      append([]Card(nil), played...),
		bonusPoints: bonusPoints,
		turnCount:   turnCount,
	}, nil
}

// Hand returns the live hand. Callers in the search path must treat it
// as read-only except through Play/DealToHand.
func (g *GameState) Hand() *Hand { return g.hand }

// Field returns the live field.
func (g *GameState) Field() *Field { return g.field }

// Deck returns the live deck.
func (g *GameState) Deck() *Deck { return g.deck }

// Played returns a copy of the play history, in the order cards left
// the hand.
func (g *GameState) Played() []Card {
	out := make([]Card, len(g.played))
	copy(out, g.played)
	return out
}

// BonusPoints returns the current hand's pattern score.
func (g *GameState) BonusPoints() int { return g.bonusPoints }

// TurnCount returns the number of plays made so far.
func (g *GameState) TurnCount() int { return g.turnCount }

// CardsPlayedCount returns the number of cards that have left the hand
// to a field slot.
func (g *GameState) CardsPlayedCount() int { return len(g.played) }

// TotalPoints is an alias for BonusPoints kept for callers that think
// in terms of "points accrued", matching the external-interface naming
// in the engine's game-state convenience API.
func (g *GameState) TotalPoints() int { return g.bonusPoints }

// IsTerminal reports whether no legal move remains.
func (g *GameState) IsTerminal() bool {
	return !HasLegalMove(g.hand, g.field)
}

// LegalMoves returns every move currently playable.
func (g *GameState) LegalMoves() []Move {
	return LegalMoves(g.hand, g.field)
}

// Play attempts card onto slot. Returns false, leaving the state
// unchanged, if the card is not in hand or the placement is illegal.
// On success: the card moves from hand to slot, is appended to the
// play log, a replacement is drawn from the deck if one is available,
// bonus points are recomputed from the resulting hand, and turnCount
// increments.
func (g *GameState) Play(card Card, slot Slot) bool {
	if !g.hand.Contains(card) || !CanPlay(card, g.field, slot) {
		return false
	}

	g.hand.Remove(card)
	g.field.Slot(slot).Push(card)
	g.played = append(g.played, card)

	if drawn, ok := g.deck.Draw(); ok {
		g.hand.Add(drawn)
	}

	g.bonusPoints = CalculatePoints(g.hand.Cards())
	g.turnCount++
	return true
}

// DealToHand moves card from the deck's playable pile directly into
// the hand, recomputing bonus points. Fails if card is not currently
// in the deck (it may already be in hand, excluded, or played). This
// is a convenience operation for external drivers, not used by search.
func (g *GameState) DealToHand(card Card) bool {
	if g.hand.Contains(card) {
		return false
	}
	remaining := g.deck.Playable()
	idx := -1
	for i, c := range remaining {
		if c == card {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	remaining = append(remaining[:idx], remaining[idx+1:]...)
	excluded := g.deck.Excluded()
	newDeck, err := NewDeck(remaining, excluded)
	if err != nil {
		panic(err)
	}
	g.deck = newDeck
	g.hand.Add(card)
	g.bonusPoints = CalculatePoints(g.hand.Cards())
	return true
}

// Clone returns a deep copy of the state, safe to mutate
// independently — the workhorse of selection descent and simulation,
// both of which need an isolated working copy per iteration.
func (g *GameState) Clone() *GameState {
	return &GameState{
		deck:        g.deck.Clone(),
		hand:        g.hand.Clone(),
		field:       g.field.Clone(),
		played:      append([]Card(nil), g.played...),
		bonusPoints: g.bonusPoints,
		turnCount:   g.turnCount,
	}
}

// Observable projects this state to what the acting player knows:
// hand, field, played log, and the three scalar counters. Deck
// contents and excluded-set identities are omitted.
func (g *GameState) Observable() *ObservableGameState {
	return &ObservableGameState{
		Hand:              g.hand.Clone(),
		Field:             g.field.Clone(),
		Played:            g.Played(),
		BonusPoints:       g.bonusPoints,
		TurnCount:         g.turnCount,
		RemainingDeckSize: g.deck.RemainingSize(),
		ExcludedCount:     ExcludedSize,
	}
}
