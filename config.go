package cardsolo

import "github.com/cardsolo/mcts"

// Config configures a Strategy: how many iterations to spend per
// decision, UCB1's exploration constant, whether to keep diagnostics
// around after a search, and the RNG seed (0 picks a time-based seed,
// sacrificing the determinism property — set a non-zero seed whenever
// reproducibility matters).
type Config struct {
	Iterations        int
	ExplorationWeight float32
	Verbose           bool
	Seed              int64
}

// DefaultConfig mirrors mcts.DefaultConfig with Seed left at 0
// (time-based).
func DefaultConfig() Config {
	def := mcts.DefaultConfig()
	return Config{
		Iterations:        def.Iterations,
		ExplorationWeight: def.ExplorationWeight,
		Verbose:           def.Verbose,
	}
}
