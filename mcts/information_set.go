// Package mcts implements Information-Set Monte Carlo Tree Search over
// the card game defined in package game: a tree keyed by information
// set rather than by full game state, so that statistics gathered
// under one sampled hidden state generalize to every other sampled
// hidden state that looks the same to the acting player.
package mcts

import (
	"fmt"
	"strings"

	"github.com/cardsolo/game"
)

// InformationSet is the canonical, hashable key shared by every
// GameState indistinguishable to the acting player: the sorted hand,
// the top card of each field slot, and the count (not identity) of
// cards played so far. Two states with the same InformationSet are
// treated as the same node by the search.
type InformationSet struct {
	hand        string
	slot1Top    game.Card
	slot1Filled bool
	slot2Top    game.Card
	slot2Filled bool
	playedCount int
}

// NewInformationSet derives the information set of an observable
// state.
func NewInformationSet(obs *game.ObservableGameState) InformationSet {
	sorted := obs.Hand.Sorted()
	key := InformationSet{playedCount: len(obs.Played)}
	key.hand = encodeHand(sorted)

	if top, ok := obs.Field.Slot(game.Slot1).Top(); ok {
		key.slot1Top, key.slot1Filled = top, true
	}
	if top, ok := obs.Field.Slot(game.Slot2).Top(); ok {
		key.slot2Top, key.slot2Filled = top, true
	}
	return key
}

// InformationSetOf derives the information set directly from a fully
// determinized GameState, by way of its observable projection.
func InformationSetOf(g *game.GameState) InformationSet {
	return NewInformationSet(g.Observable())
}

func encodeHand(sorted []game.Card) string {
	var b strings.Builder
	for i, c := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d:%d", c.Suit, c.Rank)
	}
	return b.String()
}

// String renders the information set for diagnostics (DOT export,
// logging), not for hashing — Go structs with comparable fields are
// already valid map keys.
func (k InformationSet) String() string {
	s1, s2 := "-", "-"
	if k.slot1Filled {
		s1 = k.slot1Top.String()
	}
	if k.slot2Filled {
		s2 = k.slot2Top.String()
	}
	return fmt.Sprintf("hand=[%s] slot1=%s slot2=%s played=%d", k.hand, s1, s2, k.playedCount)
}
