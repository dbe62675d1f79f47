package game

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/stretchr/testify/require"
)

func TestNewDeckRejectsWrongExcludedSize(t *testing.T) {
	universe := Universe()
	_, err := NewDeck(universe[:70], universe[70:79])
	require.Error(t, err)
}

func TestNewDeckRejectsOverlap(t *testing.T) {
	universe := Universe()
	excluded := universe[:10]
	playable := universe[5:75] // overlaps with excluded
	_, err := NewDeck(playable, excluded)
	require.Error(t, err)
}

func TestNewDeckAccepts70And10(t *testing.T) {
	universe := Universe()
	d, err := NewDeck(universe[:70], universe[70:])
	require.NoError(t, err)
	require.Equal(t, 70, d.RemainingSize())
	require.Len(t, d.Excluded(), 10)
}

func TestDeckDrawIsStackDiscipline(t *testing.T) {
	universe := Universe()
	playable := append([]Card(nil), universe[:70]...)
	d, err := NewDeck(playable, universe[70:])
	require.NoError(t, err)

	top := playable[len(playable)-1]
	c, ok := d.Draw()
	require.True(t, ok)
	require.Equal(t, top, c)
	require.Equal(t, 69, d.RemainingSize())
}

func TestDeckDrawOnEmptyReturnsFalse(t *testing.T) {
	d, err := NewDeck(nil, Universe()[:10])
	require.NoError(t, err)
	_, ok := d.Draw()
	require.False(t, ok)
}

func TestDealProducesDisjointSets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck, hand := Deal(rng)

	require.Len(t, hand, InitialHandSize)
	require.Equal(t, InitialPlayableSize-InitialHandSize, deck.RemainingSize())

	seen := make(map[Card]struct{}, 80)
	for _, c := range hand {
		seen[c] = struct{}{}
	}
	for _, c := range deck.Playable() {
		_, dup := seen[c]
		require.False(t, dup)
		seen[c] = struct{}{}
	}
	for _, c := range deck.Excluded() {
		_, dup := seen[c]
		require.False(t, dup)
		seen[c] = struct{}{}
	}
	require.Len(t, seen, 80)
}
