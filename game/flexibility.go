package game

// FlexibilityScore counts how many unknown cards (deck candidates,
// identified by suit or rank match) a card could connect to — a
// measure of how "stuck" a card is likely to become. Grounded on
// original_source's flexibility_calculator.py. This is a read-only
// diagnostic: nothing in the search path calls it, so it does not
// affect the uniform-random rollout policy.
func FlexibilityScore(c Card, unknown []Card) int {
	score := 0
	for _, u := range unknown {
		if u.Suit == c.Suit || u.Rank == c.Rank {
			score++
		}
	}
	return score
}

// FlexibilityScores computes FlexibilityScore for every card in hand
// in one pass, using suit/rank bucket counts instead of a nested scan
// — the optimization original_source's calculate_all_flexibility_scores
// applies for larger hands.
func FlexibilityScores(hand []Card, unknown []Card) map[Card]int {
	bySuit := make(map[Suit]int, NumSuits)
	byRank := make(map[int]int, NumRanks)
	for _, u := range unknown {
		bySuit[u.Suit]++
		byRank[u.Rank]++
	}

	// A card u in the unknown pool can match c on suit or on rank but
	// never both unless u == c, which cannot happen since unknown
	// excludes every card in hand — so the two bucket counts never
	// double-count the same card.
	scores := make(map[Card]int, len(hand))
	for _, c := range hand {
		scores[c] = bySuit[c.Suit] + byRank[c.Rank]
	}
	return scores
}
