package mcts

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"

	"github.com/cardsolo/game"
)

func TestUnvisitedNodeScoresInfinity(t *testing.T) {
	n := NewNode(InformationSet{}, nil, game.Move{})
	require.True(t, math32.IsInf(n.UCB1(10, DefaultExplorationWeight), 1))
}

func TestNodeUpdateAccumulates(t *testing.T) {
	n := NewNode(InformationSet{}, nil, game.Move{})
	n.Update(10)
	n.Update(20)
	require.Equal(t, 2, n.Visits)
	require.Equal(t, 15.0, n.AverageReward())
}

func TestEnsureUntriedMovesIsOneShot(t *testing.T) {
	n := NewNode(InformationSet{}, nil, game.Move{})
	first := []game.Move{{Card: game.Card{Suit: game.SuitA, Rank: 1}, Slot: game.Slot1}}
	n.EnsureUntriedMoves(first)
	require.True(t, n.Initialized)
	require.Len(t, n.UntriedMoves, 1)

	n.EnsureUntriedMoves(nil)
	require.Len(t, n.UntriedMoves, 1, "a later call with a different legal set must not re-initialize")
}

func TestIsFullyExpandedAfterPoppingAllMoves(t *testing.T) {
	n := NewNode(InformationSet{}, nil, game.Move{})
	n.EnsureUntriedMoves([]game.Move{{Card: game.Card{Suit: game.SuitA, Rank: 1}, Slot: game.Slot1}})
	require.False(t, n.IsFullyExpanded())
	n.PopUntriedMove()
	require.True(t, n.IsFullyExpanded())
}

func TestIsTerminalRequiresNoChildrenToo(t *testing.T) {
	n := NewNode(InformationSet{}, nil, game.Move{})
	require.False(t, n.IsTerminal(), "uninitialized node is not terminal")

	n.EnsureUntriedMoves(nil)
	require.True(t, n.IsTerminal(), "initialized with no legal moves and no children")

	move := game.Move{Card: game.Card{Suit: game.SuitA, Rank: 1}, Slot: game.Slot1}
	childKey := InformationSet{}
	n.Children[move] = childKey
	require.False(t, n.IsTerminal(), "a node with a child is not terminal, even with no untried moves left")
}
