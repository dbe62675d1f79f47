// Command play runs an interactive terminal loop: the engine
// recommends a move, the human confirms or overrides it, and the game
// continues until no legal move remains. Grounded on the teacher's
// cmd/infer human-vs-agent loop (bufio.Scanner reading stdin).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"github.com/cardsolo"
	"github.com/cardsolo/game"
)

var (
	iterations = flag.Int("iterations", 1000, "search iterations per recommendation")
	seed       = flag.Int64("seed", 0, "deal seed (0 picks a time-based seed)")
)

func main() {
	flag.Parse()

	dealSeed := uint64(*seed)
	if dealSeed == 0 {
		dealSeed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(dealSeed))
	deck, hand := game.Deal(rng)
	g, err := game.NewGame(deck, hand)
	if err != nil {
		fmt.Println("could not start game:", err)
		return
	}

	strategy := cardsolo.New(cardsolo.Config{Iterations: *iterations, ExplorationWeight: 1.41})
	scanner := bufio.NewScanner(os.Stdin)

	for !g.IsTerminal() {
		printState(g)

		move, ok := strategy.Recommend(g.Observable())
		if !ok {
			break
		}
		fmt.Printf("engine recommends: %s -> slot %d\n", move.Card, move.Slot)
		fmt.Print("play this move? [Y/n/<card> <slot>]: ")

		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		chosen := move
		if line != "" && !strings.EqualFold(line, "y") {
			parsed, err := parseMove(line)
			if err != nil {
				fmt.Println("could not parse move, using recommendation:", err)
			} else {
				chosen = parsed
			}
		}

		if !g.Play(chosen.Card, chosen.Slot) {
			fmt.Println("illegal move, try again")
			continue
		}
	}

	fmt.Printf("game over: %d cards played, %d bonus points\n", g.CardsPlayedCount(), g.TotalPoints())
}

func printState(g *game.GameState) {
	fmt.Printf("turn %d | hand: %v | slot1 top: %v | slot2 top: %v | deck: %d\n",
		g.TurnCount(), g.Hand().Cards(), topOrDash(g, game.Slot1), topOrDash(g, game.Slot2), g.Deck().RemainingSize())
}

func topOrDash(g *game.GameState, s game.Slot) string {
	if top, ok := g.Field().Slot(s).Top(); ok {
		return top.String()
	}
	return "-"
}

func parseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("expected \"<card> <slot>\", got %q", line)
	}
	cardStr := strings.ToUpper(fields[0])
	if len(cardStr) < 2 {
		return game.Move{}, fmt.Errorf("invalid card %q", cardStr)
	}
	suit := game.Suit(cardStr[0] - 'A')
	rank, err := strconv.Atoi(cardStr[1:])
	if err != nil {
		return game.Move{}, err
	}
	slotNum, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, err
	}
	slot := game.Slot(slotNum)
	if slot != game.Slot1 && slot != game.Slot2 {
		return game.Move{}, fmt.Errorf("slot must be 1 or 2, got %d", slotNum)
	}
	return game.Move{Card: game.Card{Suit: suit, Rank: rank}, Slot: slot}, nil
}
