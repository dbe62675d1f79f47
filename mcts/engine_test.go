package mcts

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/stretchr/testify/require"

	"github.com/cardsolo/game"
)

func freshOpeningObservable(seed int64) *game.ObservableGameState {
	rng := rand.New(rand.NewSource(uint64(seed)))
	deck, hand := game.Deal(rng)
	g, err := game.NewGame(deck, hand)
	if err != nil {
		// Deal always produces an InitialHandSize hand drawn from the
		// Universe; a failure here means that invariant broke upstream.
		panic(err)
	}
	return g.Observable()
}

func TestSearchReturnsLegalMove(t *testing.T) {
	observable := freshOpeningObservable(100)
	eng, err := NewSeededEngine(Config{Iterations: 100, ExplorationWeight: DefaultExplorationWeight}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	move, ok := eng.Search(observable)
	require.True(t, ok)

	legal := game.LegalMoves(observable.Hand, observable.Field)
	require.Contains(t, legal, move)
}

func TestSearchIsDeterministicUnderFixedSeed(t *testing.T) {
	observable := freshOpeningObservable(200)

	eng1, err := NewSeededEngine(Config{Iterations: 100, ExplorationWeight: DefaultExplorationWeight}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	move1, ok1 := eng1.Search(observable.Clone())

	eng2, err := NewSeededEngine(Config{Iterations: 100, ExplorationWeight: DefaultExplorationWeight}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	move2, ok2 := eng2.Search(observable.Clone())

	require.Equal(t, ok1, ok2)
	require.Equal(t, move1, move2)
}

func TestSearchOnTerminalStateReturnsNoMove(t *testing.T) {
	deck, err := game.NewDeck(nil, game.Universe()[:10])
	require.NoError(t, err)
	hand := game.NewHand([]game.Card{{Suit: game.SuitC, Rank: 3}, {Suit: game.SuitD, Rank: 4}})
	field := game.NewField()
	field.Slot(game.Slot1).Push(game.Card{Suit: game.SuitA, Rank: 1})
	field.Slot(game.Slot2).Push(game.Card{Suit: game.SuitB, Rank: 2})
	g, err := game.NewDeterminizedGame(deck, hand, field, nil, 0, 0)
	require.NoError(t, err)

	eng, err := NewSeededEngine(Config{Iterations: 50, ExplorationWeight: DefaultExplorationWeight}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, ok := eng.Search(g.Observable())
	require.False(t, ok)
}

// playGreedilyWithEngine deals a game from seed, repeatedly asks eng for
// a move on its observable projection and applies it to the true game
// state, returning the number of cards played once no legal move remains.
func playGreedilyWithEngine(eng *Engine, seed int64) int {
	rng := rand.New(rand.NewSource(uint64(seed)))
	deck, hand := game.Deal(rng)
	g, err := game.NewGame(deck, hand)
	if err != nil {
		panic(err)
	}

	for !g.IsTerminal() {
		move, ok := eng.Search(g.Observable())
		if !ok {
			break
		}
		g.Play(move.Card, move.Slot)
	}
	return g.CardsPlayedCount()
}

func playGreedilyRandom(seed int64) int {
	rng := rand.New(rand.NewSource(uint64(seed)))
	deck, hand := game.Deal(rng)
	g, err := game.NewGame(deck, hand)
	if err != nil {
		panic(err)
	}

	for !g.IsTerminal() {
		moves := g.LegalMoves()
		move := moves[rng.Intn(len(moves))]
		g.Play(move.Card, move.Slot)
	}
	return g.CardsPlayedCount()
}

func TestSearchBeatsRandomOnAverage(t *testing.T) {
	if testing.Short() {
		t.Skip("full 20-seed comparison is slow; skipped under -short")
	}

	const seeds = 20
	var searchTotal, randomTotal int

	for s := int64(0); s < seeds; s++ {
		eng, err := NewSeededEngine(Config{Iterations: 500, ExplorationWeight: DefaultExplorationWeight}, rand.New(rand.NewSource(uint64(1000+s))))
		require.NoError(t, err)
		searchTotal += playGreedilyWithEngine(eng, s)
		randomTotal += playGreedilyRandom(s)
	}

	searchAvg := float64(searchTotal) / float64(seeds)
	randomAvg := float64(randomTotal) / float64(seeds)
	require.Greater(t, searchAvg, randomAvg)
}
