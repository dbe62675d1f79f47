package mcts

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/stretchr/testify/require"

	"github.com/cardsolo/game"
)

func TestDeterminizeConsistentWithObservable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck, handCards := game.Deal(rng)
	g, err := game.NewGame(deck, handCards)
	require.NoError(t, err)
	g.Play(g.LegalMoves()[0].Card, g.LegalMoves()[0].Slot)

	observable := g.Observable()
	det := Determinize(observable, rng)

	require.Equal(t, observable.Hand.Sorted(), det.Hand().Sorted())
	require.Equal(t, observable.Played, det.Played())
	require.Equal(t, observable.RemainingDeckSize, det.Deck().RemainingSize())
	require.Len(t, det.Deck().Excluded(), game.ExcludedSize)
}

func TestDeterminizeExcludedAndDeckPartitionUnknown(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	deck, handCards := game.Deal(rng)
	g, err := game.NewGame(deck, handCards)
	require.NoError(t, err)

	observable := g.Observable()
	det := Determinize(observable, rng)

	unknown := make(map[game.Card]struct{})
	for _, c := range observable.UnknownCards() {
		unknown[c] = struct{}{}
	}
	for _, c := range det.Deck().Playable() {
		_, ok := unknown[c]
		require.True(t, ok)
	}
	for _, c := range det.Deck().Excluded() {
		_, ok := unknown[c]
		require.True(t, ok)
	}
}
