// Command deal emits sample full deals as JSON, one per line, for use
// as test fixtures. Grounded on the teacher's cmd/generatemoves, which
// generates and dedups sample data into a file rather than driving an
// actual search.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"golang.org/x/exp/rand"

	"github.com/cardsolo/game"
)

var (
	numDeals = flag.Int("num_deals", 10, "number of sample deals to emit")
	seed     = flag.Int64("seed", 1, "base RNG seed; deal i uses seed+i")
	path     = flag.String("path", "", "output path; empty writes to stdout")
)

type dealFixture struct {
	Hand     []game.Card `json:"hand"`
	Deck     []game.Card `json:"deck"`
	Excluded []game.Card `json:"excluded"`
}

func main() {
	flag.Parse()

	out := os.Stdout
	if *path != "" {
		f, err := os.Create(*path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	for i := 0; i < *numDeals; i++ {
		rng := rand.New(rand.NewSource(uint64(*seed + int64(i))))
		deck, hand := game.Deal(rng)
		fixture := dealFixture{
			Hand:     hand,
			Deck:     deck.Playable(),
			Excluded: deck.Excluded(),
		}
		if err := enc.Encode(fixture); err != nil {
			log.Fatal(err)
		}
	}
}
