package mcts

import (
	rng "github.com/leesper/go_rng"

	"github.com/cardsolo/game"
)

// Stats summarizes one completed search — grounded on
// ismcts_engine.py's `_get_statistics`, which reports total visits,
// child count, and the chosen move's own visits/reward so a caller
// can judge how confident the recommendation is.
type Stats struct {
	RootVisits    int
	ChildCount    int
	BestMove      game.Move
	BestMoveCount int
	TreeSize      int
}

func (e *Engine) snapshotStats(rootKey InformationSet, best game.Move, bestVisits int) Stats {
	root := e.tree[rootKey]
	return Stats{
		RootVisits:    root.Visits,
		ChildCount:    len(root.Children),
		BestMove:      best,
		BestMoveCount: bestVisits,
		TreeSize:      len(e.tree),
	}
}

// Statistics returns the Stats captured by the most recent Search
// call, whether or not Config.Verbose is set. Verbose only controls
// whether the full tree is retained afterward for DOT(); root-level
// statistics are cheap enough to always compute. Returns the zero
// value if Search has not yet been called.
func (e *Engine) Statistics() Stats {
	return e.stats
}

// BootstrapConfidence estimates a mean and a 90% confidence interval
// for a batch of reward samples by case resampling — a diagnostic
// companion to SummarizeRewards, useful when comparing the engine's
// average outcome against a baseline over several seeds. reps
// controls the number of resamples; 1000 is a reasonable default.
//
// This never runs inside the search loop: it is a read-only,
// post-hoc statistic over rewards the caller already collected.
func BootstrapConfidence(rewards []float64, reps int, seed int64) (mean, lo, hi float64) {
	if len(rewards) == 0 || reps <= 0 {
		return 0, 0, 0
	}

	gen := rng.NewUniformGenerator(seed)
	means := make([]float64, reps)
	for i := 0; i < reps; i++ {
		var sum float64
		for j := 0; j < len(rewards); j++ {
			idx := int(gen.Uniform(0, float64(len(rewards))))
			if idx >= len(rewards) {
				idx = len(rewards) - 1
			}
			sum += rewards[idx]
		}
		means[i] = sum / float64(len(rewards))
	}
	sortFloats(means)

	var total float64
	for _, r := range rewards {
		total += r
	}
	mean = total / float64(len(rewards))

	loIdx := int(0.05 * float64(reps))
	hiIdx := int(0.95 * float64(reps))
	if hiIdx >= reps {
		hiIdx = reps - 1
	}
	return mean, means[loIdx], means[hiIdx]
}

func sortFloats(vals []float64) {
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0 && vals[j] < vals[j-1]; j-- {
			vals[j], vals[j-1] = vals[j-1], vals[j]
		}
	}
}
