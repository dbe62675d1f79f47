package mcts

import (
	"log"
	"time"

	"golang.org/x/exp/rand"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/cardsolo/game"
)

// Engine runs the four-phase IS-MCTS loop described in the design:
// selection, expansion, simulation, backpropagation, repeated for a
// fixed iteration budget, then a robust-child root decision. One
// Engine instance is meant to be reused across many Search calls; the
// tree map it builds is owned by a single call and discarded when that
// call returns.
type Engine struct {
	config Config
	rng    *rand.Rand
	logger *log.Logger

	tree     map[InformationSet]*Node
	lastTree map[InformationSet]*Node
	stats    Stats
}

// NewEngine builds an Engine with its own time-seeded RNG, mirroring
// the teacher's `rand.New(rand.NewSource(time.Now().UnixNano()))` seed
// idiom in mcts/tree.go. Returns an error if conf is invalid.
func NewEngine(conf Config) (*Engine, error) {
	return NewSeededEngine(conf, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
}

// NewSeededEngine builds an Engine against a caller-supplied RNG —
// the constructor the determinism property in the design depends on:
// the same rng (same seed, same stream position) plus the same
// observable state must produce the same recommendation.
func NewSeededEngine(conf Config, rng *rand.Rand) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.WithMessage(err, "cannot build mcts engine")
	}
	return &Engine{
		config: conf,
		rng:    rng,
		logger: log.New(log.Writer(), "mcts: ", log.LstdFlags),
	}, nil
}

// Search runs the configured number of iterations against obs and
// returns the root child move with the most visits (the robust-child
// rule). ok is false iff obs is already terminal, in which case Move
// is the zero value.
func (e *Engine) Search(obs *game.ObservableGameState) (move game.Move, ok bool) {
	if obs.IsTerminal() {
		return game.Move{}, false
	}

	rootKey := NewInformationSet(obs)
	e.tree = map[InformationSet]*Node{rootKey: NewNode(rootKey, nil, game.Move{})}

	for i := 0; i < e.config.Iterations; i++ {
		working := Determinize(obs, e.rng)
		e.runIteration(rootKey, working)
	}

	best, bestVisits := e.robustChild(rootKey)
	e.stats = e.snapshotStats(rootKey, best, bestVisits)
	if e.config.Verbose {
		e.lastTree = e.tree
		e.logger.Printf("search done: %+v", e.stats)
	} else {
		e.lastTree = nil
	}
	e.tree = nil
	return best, true
}

// runIteration performs selection, expansion, simulation and
// backpropagation for one sampled determinization.
func (e *Engine) runIteration(rootKey InformationSet, working *game.GameState) {
	path := []InformationSet{rootKey}
	currentKey := rootKey

	for {
		node := e.tree[currentKey]
		node.EnsureUntriedMoves(working.LegalMoves())

		if working.IsTerminal() || !node.IsFullyExpanded() {
			break
		}

		child := e.selectBestChild(node)
		working.Play(child.Move.Card, child.Move.Slot)
		currentKey = child.InfoSet
		path = append(path, currentKey)
	}

	node := e.tree[currentKey]
	if !working.IsTerminal() && len(node.UntriedMoves) > 0 {
		move := node.PopUntriedMove()
		working.Play(move.Card, move.Slot)

		childKey := InformationSetOf(working)
		child, exists := e.tree[childKey]
		if !exists {
			parentKey := node.InfoSet
			child = NewNode(childKey, &parentKey, move)
			e.tree[childKey] = child
		}
		node.Children[move] = childKey
		path = append(path, childKey)
	}

	reward := e.simulate(working)
	for _, key := range path {
		e.tree[key].Update(reward)
	}
}

// selectBestChild scans node's children in deterministic (sorted
// move) order and returns the one with the highest UCB1 score.
// Unvisited children score +Inf and are therefore chosen first.
func (e *Engine) selectBestChild(node *Node) *Node {
	moves := make([]game.Move, 0, len(node.Children))
	for m := range node.Children {
		moves = append(moves, m)
	}
	game.SortMoves(moves)

	var best *Node
	bestScore := math32.Inf(-1)
	for _, m := range moves {
		child := e.tree[node.Children[m]]
		score := child.UCB1(node.Visits, e.config.ExplorationWeight)
		if best == nil || score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

// simulate plays uniformly random legal moves from working until
// terminal and returns the evaluated reward. working is mutated in
// place; callers must not reuse it afterward.
func (e *Engine) simulate(working *game.GameState) float64 {
	for !working.IsTerminal() {
		moves := working.LegalMoves()
		move := moves[e.rng.Intn(len(moves))]
		working.Play(move.Card, move.Slot)
	}
	return Evaluate(working)
}

// robustChild returns the root's child move with the highest visit
// count, scanning in deterministic move order so ties resolve the
// same way on every run with the same seed.
func (e *Engine) robustChild(rootKey InformationSet) (game.Move, int) {
	root := e.tree[rootKey]

	moves := make([]game.Move, 0, len(root.Children))
	for m := range root.Children {
		moves = append(moves, m)
	}
	game.SortMoves(moves)

	var best game.Move
	bestVisits := -1
	for _, m := range moves {
		child := e.tree[root.Children[m]]
		if child.Visits > bestVisits {
			best, bestVisits = m, child.Visits
		}
	}
	return best, bestVisits
}
