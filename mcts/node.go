package mcts

import (
	"github.com/chewxy/math32"

	"github.com/cardsolo/game"
)

// DefaultExplorationWeight is UCB1's c constant, √2, the standard
// choice absent domain-specific tuning.
var DefaultExplorationWeight = math32.Sqrt(2)

// Node holds per-information-set statistics. Nodes are owned by the
// Engine's tree map, keyed by InformationSet; a node's parent is
// recorded as a key into that same map rather than an owning pointer,
// so the tree is a flat collection with no back-reference cycle to
// manage — the map is the only thing that owns a Node.
type Node struct {
	InfoSet      InformationSet
	ParentKey    *InformationSet
	Move         game.Move // edge label from parent; zero value at root
	Visits       int
	RewardSum    float64
	Children     map[game.Move]InformationSet
	UntriedMoves []game.Move
	Initialized  bool
}

// NewNode creates an unvisited node for the given information set.
func NewNode(infoSet InformationSet, parentKey *InformationSet, move game.Move) *Node {
	return &Node{
		InfoSet:   infoSet,
		ParentKey: parentKey,
		Move:      move,
		Children:  make(map[game.Move]InformationSet),
	}
}

// IsFullyExpanded reports whether every legal move at this node has
// already been tried at least once.
func (n *Node) IsFullyExpanded() bool {
	return n.Initialized && len(n.UntriedMoves) == 0
}

// IsTerminal reports whether this node has no legal moves at all: it
// was initialized, has no untried moves, and has no children.
func (n *Node) IsTerminal() bool {
	return n.Initialized && len(n.UntriedMoves) == 0 && len(n.Children) == 0
}

// EnsureUntriedMoves populates UntriedMoves on first call only;
// subsequent calls (from later determinizations reaching the same
// information set) are no-ops. Sound because legality depends only on
// hand and field, both part of the information set and therefore
// invariant across determinizations that share a key.
func (n *Node) EnsureUntriedMoves(legal []game.Move) {
	if n.Initialized {
		return
	}
	moves := append([]game.Move(nil), legal...)
	game.SortMoves(moves)
	n.UntriedMoves = moves
	n.Initialized = true
}

// PopUntriedMove removes and returns the first untried move in
// deterministic (sorted) order.
func (n *Node) PopUntriedMove() game.Move {
	m := n.UntriedMoves[0]
	n.UntriedMoves = n.UntriedMoves[1:]
	return m
}

// Update adds reward to this node's cumulative reward and increments
// its visit count. Called once per node along the backpropagation
// path; rewards are not discounted.
func (n *Node) Update(reward float64) {
	n.Visits++
	n.RewardSum += reward
}

// AverageReward returns W/n, or 0 for an unvisited node.
func (n *Node) AverageReward() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.RewardSum / float64(n.Visits)
}

// UCB1 returns the upper-confidence-bound score of this node given its
// parent's visit count. Unvisited nodes score +Inf so they are always
// selected before any visited sibling.
func (n *Node) UCB1(parentVisits int, explorationWeight float32) float32 {
	if n.Visits == 0 {
		return math32.Inf(1)
	}
	exploitation := float32(n.AverageReward())
	exploration := explorationWeight * math32.Sqrt(math32.Log(float32(parentVisits))/float32(n.Visits))
	return exploitation + exploration
}
