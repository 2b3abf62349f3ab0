package poker

import "fivecardshowdown/pkg/deck"

// royalRanks are the ranks of a royal flush, high to low
var royalRanks = [deck.HandSize]int{deck.Ace, deck.King, deck.Queen, deck.Jack, 10}

// checkStraight requires five distinct ranks in a consecutive run.
// Ace only ever plays high, so A-2-3-4-5 is not a straight.
func (h *HandAnalyzer) checkStraight() bool {
	if h.nGroups != deck.HandSize {
		return false
	}

	return h.ranks[0]-h.ranks[deck.HandSize-1] == deck.HandSize-1
}

// checkRoyal returns true if the ranks are exactly 10 through Ace
func (h *HandAnalyzer) checkRoyal() bool {
	return h.ranks == royalRanks
}
