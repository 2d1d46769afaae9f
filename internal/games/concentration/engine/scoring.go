package engine

// Scoring is the points policy applied by ChooseCard.
type Scoring struct {
	// MatchBonus is added when two cards of the same pair are chosen.
	MatchBonus int
	// MismatchPenalty is subtracted for every card in a mismatch that
	// had already been seen before this pick.
	MismatchPenalty int
}

// DefaultScoring returns the classic policy: +2 per match, -1 per
// re-exposed card in a mismatch.
func DefaultScoring() Scoring {
	return Scoring{
		MatchBonus:      2,
		MismatchPenalty: 1,
	}
}
