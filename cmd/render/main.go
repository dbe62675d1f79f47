// Command render draws a fresh deal's observable state to a PNG file,
// for eyeballing hands and field state during debugging.
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/exp/rand"

	"github.com/cardsolo/game"
	"github.com/cardsolo/render"
)

var (
	seed = flag.Int64("seed", 1, "deal seed")
	path = flag.String("path", "state.png", "output PNG path")
)

func main() {
	flag.Parse()

	rng := rand.New(rand.NewSource(uint64(*seed)))
	deck, hand := game.Deal(rng)
	g, err := game.NewGame(deck, hand)
	if err != nil {
		log.Fatal(err)
	}
	observable := g.Observable()

	f, err := os.Create(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := render.RenderObservable(observable, f); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *path)
}
