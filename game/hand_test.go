package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandAddRemoveContains(t *testing.T) {
	h := NewHand([]Card{{Suit: SuitA, Rank: 1}})
	require.True(t, h.Contains(Card{Suit: SuitA, Rank: 1}))
	require.False(t, h.Contains(Card{Suit: SuitB, Rank: 1}))

	h.Add(Card{Suit: SuitB, Rank: 2})
	require.Equal(t, 2, h.Len())

	require.True(t, h.Remove(Card{Suit: SuitA, Rank: 1}))
	require.False(t, h.Remove(Card{Suit: SuitA, Rank: 1}))
	require.Equal(t, 1, h.Len())
}

func TestHandSortedIndependentOfDealOrder(t *testing.T) {
	a := NewHand([]Card{{Suit: SuitC, Rank: 2}, {Suit: SuitA, Rank: 9}})
	b := NewHand([]Card{{Suit: SuitA, Rank: 9}, {Suit: SuitC, Rank: 2}})
	require.Equal(t, a.Sorted(), b.Sorted())
}

func TestHandCloneIsIndependent(t *testing.T) {
	h := NewHand([]Card{{Suit: SuitA, Rank: 1}})
	clone := h.Clone()
	clone.Add(Card{Suit: SuitB, Rank: 2})
	require.Equal(t, 1, h.Len())
	require.Equal(t, 2, clone.Len())
}
