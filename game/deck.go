package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// InitialPlayableSize is the number of cards the deck holds at the
// start of a game, before any cards are dealt to the hand.
const InitialPlayableSize = 70

// ExcludedSize is the fixed size of the hidden excluded set.
const ExcludedSize = 10

// Deck holds the playable pile (a stack, top is the end of the
// slice) and the excluded set (cards removed from play entirely and
// never observable).
type Deck struct {
	playable []Card
	excluded map[Card]struct{}
}

// NewDeck builds a deck from an explicit playable stack and excluded
// set, validating the invariants in one pass and aggregating every
// violation found rather than stopping at the first.
func NewDeck(playable []Card, excluded []Card) (*Deck, error) {
	var result *multierror.Error

	if len(excluded) != ExcludedSize {
		result = multierror.Append(result, errors.Errorf("excluded set must have %d cards, got %d", ExcludedSize, len(excluded)))
	}

	seen := make(map[Card]struct{}, len(playable)+len(excluded))
	excludedSet := make(map[Card]struct{}, len(excluded))
	for _, c := range excluded {
		if !InUniverse(c) {
			result = multierror.Append(result, errors.Errorf("excluded set contains card %s outside the Universe", c))
		}
		if _, dup := excludedSet[c]; dup {
			result = multierror.Append(result, errors.Errorf("excluded set contains duplicate card %s", c))
			continue
		}
		excludedSet[c] = struct{}{}
		seen[c] = struct{}{}
	}
	for _, c := range playable {
		if !InUniverse(c) {
			result = multierror.Append(result, errors.Errorf("playable pile contains card %s outside the Universe", c))
		}
		if _, dup := seen[c]; dup {
			result = multierror.Append(result, errors.Errorf("card %s appears more than once across playable and excluded", c))
			continue
		}
		seen[c] = struct{}{}
	}

	if result != nil {
		return nil, errors.WithMessage(result.ErrorOrNil(), "invalid deck configuration")
	}

	pl := make([]Card, len(playable))
	copy(pl, playable)
	return &Deck{playable: pl, excluded: excludedSet}, nil
}

// Draw removes and returns the top card of the playable pile. The
// second return value is false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.playable) == 0 {
		return Card{}, false
	}
	n := len(d.playable) - 1
	c := d.playable[n]
	d.playable = d.playable[:n]
	return c, true
}

// RemainingSize returns the number of cards left in the playable pile.
func (d *Deck) RemainingSize() int {
	return len(d.playable)
}

// Playable returns a copy of the current playable stack, bottom first.
// Intended for diagnostics and cloning, not for search-path use.
func (d *Deck) Playable() []Card {
	out := make([]Card, len(d.playable))
	copy(out, d.playable)
	return out
}

// Excluded returns a copy of the excluded set as a slice, in no
// particular order.
func (d *Deck) Excluded() []Card {
	out := make([]Card, 0, len(d.excluded))
	for c := range d.excluded {
		out = append(out, c)
	}
	return out
}

// IsExcluded reports whether c is in the hidden excluded set.
func (d *Deck) IsExcluded(c Card) bool {
	_, ok := d.excluded[c]
	return ok
}

// Clone returns a deep copy, safe to mutate independently.
func (d *Deck) Clone() *Deck {
	n := &Deck{
		playable: make([]Card, len(d.playable)),
		excluded: make(map[Card]struct{}, len(d.excluded)),
	}
	copy(n.playable, d.playable)
	for c := range d.excluded {
		n.excluded[c] = struct{}{}
	}
	return n
}

// Deal builds a fresh deck and initial hand from the full Universe:
// shuffle, take the first ExcludedSize cards as excluded, take the
// next InitialHandSize as the starting hand, shuffle the remainder
// again so draw order is independent of the excluded/hand split, and
// return the result as the playable pile.
func Deal(rng *rand.Rand) (deck *Deck, hand []Card) {
	universe := Universe()
	rng.Shuffle(len(universe), func(i, j int) { universe[i], universe[j] = universe[j], universe[i] })

	excluded := make([]Card, ExcludedSize)
	copy(excluded, universe[:ExcludedSize])

	dealt := make([]Card, InitialHandSize)
	copy(dealt, universe[ExcludedSize:ExcludedSize+InitialHandSize])

	rest := make([]Card, len(universe)-ExcludedSize-InitialHandSize)
	copy(rest, universe[ExcludedSize+InitialHandSize:])
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	d, err := NewDeck(rest, excluded)
	if err != nil {
		// Deal always produces ExcludedSize-sized, disjoint sets by
		// construction; a failure here means Universe/InitialHandSize
		// were changed inconsistently.
		panic(err)
	}
	return d, dealt
}
