package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlexibilityScoreCountsSuitOrRankMatches(t *testing.T) {
	unknown := []Card{c(SuitA, 2), c(SuitA, 3), c(SuitB, 5), c(SuitC, 9)}
	score := FlexibilityScore(c(SuitA, 5), unknown)
	require.Equal(t, 3, score) // A2, A3 (suit) + B5 (rank)
}

func TestFlexibilityScoresMatchesPerCard(t *testing.T) {
	hand := []Card{c(SuitA, 5), c(SuitD, 7)}
	unknown := []Card{c(SuitA, 2), c(SuitB, 5), c(SuitD, 1)}

	scores := FlexibilityScores(hand, unknown)
	require.Equal(t, FlexibilityScore(c(SuitA, 5), unknown), scores[c(SuitA, 5)])
	require.Equal(t, FlexibilityScore(c(SuitD, 7), unknown), scores[c(SuitD, 7)])
}
