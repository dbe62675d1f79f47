// Package cardsolo is the façade over the IS-MCTS engine in package
// mcts: configure a Strategy once, then call Recommend for each
// decision point in a game.
package cardsolo

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/pkg/errors"

	"github.com/cardsolo/game"
	"github.com/cardsolo/mcts"
)

// Strategy wraps an mcts.Engine behind the recommend(observable) ->
// move? contract. Grounded on original_source's ISMCTSStrategy facade
// and shaped like the teacher's Agent (agent.go): a thin wrapper whose
// only real job is to own the engine and expose one entry point.
type Strategy struct {
	engine *mcts.Engine
}

// New builds a Strategy from conf. Panics if conf is invalid, matching
// the teacher's agogo.New, which panics rather than returning an error
// for a malformed Config — configuration is a startup-time concern,
// not a per-call one.
func New(conf Config) *Strategy {
	engineConf := mcts.Config{
		Iterations:        conf.Iterations,
		ExplorationWeight: conf.ExplorationWeight,
		Verbose:           conf.Verbose,
	}
	if err := engineConf.Validate(); err != nil {
		panic(errors.WithMessage(err, "cardsolo: invalid configuration"))
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := mcts.NewSeededEngine(engineConf, rand.New(rand.NewSource(uint64(seed))))
	if err != nil {
		panic(errors.WithStack(err))
	}
	return &Strategy{engine: engine}
}

// Recommend runs the configured search against observable and returns
// the recommended move. ok is false iff observable has no legal move.
func (s *Strategy) Recommend(observable *game.ObservableGameState) (move game.Move, ok bool) {
	return s.engine.Search(observable)
}

// Statistics returns diagnostics captured by the most recent Recommend
// call. Config.Verbose does not gate this — it only controls whether
// DOT() has a tree to render afterward.
func (s *Strategy) Statistics() mcts.Stats {
	return s.engine.Statistics()
}

// DOT renders the most recent search's tree as Graphviz source, or ""
// if the last Recommend call was not verbose.
func (s *Strategy) DOT() (string, error) {
	return s.engine.DOT()
}
