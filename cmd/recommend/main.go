// Command recommend runs one IS-MCTS search against an observable
// game state and prints the recommended move. With -new it deals a
// fresh opening hand instead of reading one from stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/cardsolo"
	"github.com/cardsolo/game"
)

var (
	iterations = flag.Int("iterations", 1000, "search iterations")
	exploreC   = flag.Float64("exploration", 1.41, "UCB1 exploration weight")
	verbose    = flag.Bool("verbose", false, "print search statistics")
	seed       = flag.Int64("seed", 0, "RNG seed (0 picks a time-based seed)")
	fresh      = flag.Bool("new", false, "deal a fresh opening hand instead of reading stdin")
)

type wireCard struct {
	Suit int `json:"suit"`
	Rank int `json:"rank"`
}

type wireObservable struct {
	Hand              []wireCard `json:"hand"`
	Slot1             []wireCard `json:"slot1"`
	Slot2             []wireCard `json:"slot2"`
	Played            []wireCard `json:"played"`
	BonusPoints       int        `json:"bonus_points"`
	TurnCount         int        `json:"turn_count"`
	RemainingDeckSize int        `json:"remaining_deck_size"`
}

func toCards(ws []wireCard) []game.Card {
	out := make([]game.Card, len(ws))
	for i, w := range ws {
		out[i] = game.Card{Suit: game.Suit(w.Suit), Rank: w.Rank}
	}
	return out
}

func (w wireObservable) toObservable() *game.ObservableGameState {
	field := game.NewField()
	for _, c := range toCards(w.Slot1) {
		field.Slot(game.Slot1).Push(c)
	}
	for _, c := range toCards(w.Slot2) {
		field.Slot(game.Slot2).Push(c)
	}
	return &game.ObservableGameState{
		Hand:              game.NewHand(toCards(w.Hand)),
		Field:             field,
		Played:            toCards(w.Played),
		BonusPoints:       w.BonusPoints,
		TurnCount:         w.TurnCount,
		RemainingDeckSize: w.RemainingDeckSize,
		ExcludedCount:     game.ExcludedSize,
	}
}

func main() {
	flag.Parse()

	var observable *game.ObservableGameState
	if *fresh {
		dealSeed := uint64(*seed)
		if dealSeed == 0 {
			dealSeed = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewSource(dealSeed))
		deck, hand := game.Deal(rng)
		g, err := game.NewGame(deck, hand)
		if err != nil {
			log.Fatal(err)
		}
		observable = g.Observable()
	} else {
		var wire wireObservable
		if err := json.NewDecoder(os.Stdin).Decode(&wire); err != nil {
			log.Fatalf("decoding observable state: %s", err)
		}
		observable = wire.toObservable()
	}

	strategy := cardsolo.New(cardsolo.Config{
		Iterations:        *iterations,
		ExplorationWeight: float32(*exploreC),
		Verbose:           *verbose,
		Seed:              *seed,
	})

	move, ok := strategy.Recommend(observable)
	if !ok {
		fmt.Println("no legal move: state is terminal")
		return
	}
	fmt.Printf("recommended: play %s onto slot %d\n", move.Card, move.Slot)

	if *verbose {
		stats := strategy.Statistics()
		log.Printf("root visits=%d children=%d tree size=%d best-move visits=%d",
			stats.RootVisits, stats.ChildCount, stats.TreeSize, stats.BestMoveCount)
	}
}
