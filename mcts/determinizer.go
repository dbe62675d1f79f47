package mcts

import (
	"golang.org/x/exp/rand"

	"github.com/cardsolo/game"
)

// Determinize samples a fully-specified GameState consistent with the
// given observable state: hidden cards (deck candidates plus excluded
// set) are shuffled, the first ExcludedSize become the hidden excluded
// set, and the remainder — reshuffled again to decorrelate draw order
// from the excluded choice — become the new deck's playable pile.
func Determinize(obs *game.ObservableGameState, rng *rand.Rand) *game.GameState {
	hidden := obs.UnknownCards()

	shuffled := make([]game.Card, len(hidden))
	copy(shuffled, hidden)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	excluded := make([]game.Card, game.ExcludedSize)
	copy(excluded, shuffled[:game.ExcludedSize])

	deckContents := make([]game.Card, len(shuffled)-game.ExcludedSize)
	copy(deckContents, shuffled[game.ExcludedSize:])
	rng.Shuffle(len(deckContents), func(i, j int) { deckContents[i], deckContents[j] = deckContents[j], deckContents[i] })

	deck, err := game.NewDeck(deckContents, excluded)
	if err != nil {
		// hidden is exactly UnknownCards(), partitioned without overlap
		// by construction; a failure here means the observable state's
		// own invariant (§3 in the design notes) was violated upstream.
		panic(err)
	}

	determinized, err := game.NewDeterminizedGame(deck, obs.Hand.Clone(), obs.Field.Clone(), obs.Played, obs.BonusPoints, obs.TurnCount)
	if err != nil {
		// obs is a real observable projection of a live GameState, so its
		// hand/field/played are already Universe-valid and size-bounded;
		// a failure here means that invariant was violated upstream.
		panic(err)
	}
	return determinized
}
