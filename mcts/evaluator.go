package mcts

import (
	"github.com/cardsolo/game"
	"gonum.org/v1/gonum/stat"
)

// RewardCardWeight and RewardBonusWeight are the fixed weights used to
// turn a terminal rollout into the scalar UCB1 compares against: cards
// played dominates hand-pattern bonus by a factor of ten.
const (
	RewardCardWeight  = 10.0
	RewardBonusWeight = 1.0
)

// Evaluate scores a terminal (or any) GameState into the reward used
// by backpropagation. Unnormalized and used only inside the search;
// do not compare this value across different iteration budgets.
func Evaluate(g *game.GameState) float64 {
	return RewardCardWeight*float64(g.CardsPlayedCount()) + RewardBonusWeight*float64(g.TotalPoints())
}

// NormalizeScore maps (cardsPlayed, totalPoints) onto [0, 1] for
// diagnostics and reporting. Never used inside the search loop — only
// the raw, unnormalized Evaluate result feeds UCB1.
func NormalizeScore(cardsPlayed, totalPoints int, maxCards int) float64 {
	if maxCards <= 0 {
		maxCards = game.InitialPlayableSize
	}
	cardComponent := 0.8 * (float64(cardsPlayed) / float64(maxCards))
	bonusComponent := 0.2 * minFloat(float64(totalPoints)/50.0, 1.0)
	return cardComponent + bonusComponent
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// RewardStats summarizes a sample of terminal rewards gathered across
// several rollouts or several seeded searches — a read-only
// diagnostic, computed with gonum's stat package the way the teacher
// reaches for gonum for its exploration-noise distribution.
type RewardStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// SummarizeRewards computes descriptive statistics over a batch of
// reward samples. Returns the zero value for an empty batch.
func SummarizeRewards(rewards []float64) RewardStats {
	if len(rewards) == 0 {
		return RewardStats{}
	}
	mean, stddev := stat.MeanStdDev(rewards, nil)
	lo, hi := rewards[0], rewards[0]
	for _, r := range rewards {
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	return RewardStats{Mean: mean, StdDev: stddev, Min: lo, Max: hi}
}
