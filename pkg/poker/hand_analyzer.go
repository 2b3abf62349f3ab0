package poker

import (
	"fmt"
	"sort"

	"fivecardshowdown/pkg/deck"
)

// HandAnalyzer can analyze a five-card hand
type HandAnalyzer struct {
	cards []*deck.Card

	// ranks high to low, duplicates kept
	ranks [deck.HandSize]int

	// distinct ranks, ordered by count then rank (both descending)
	groups  [deck.HandSize]rankGroup
	nGroups int

	flush    bool
	straight bool

	hand       Hand
	tiebreaker []int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The hand must contain exactly five cards from a standard deck. Anything else is a
// programming error in the caller and will panic.
func NewHandAnalyzer(cards []*deck.Card) *HandAnalyzer {
	if len(cards) != deck.HandSize {
		panic(fmt.Sprintf("hand must contain %d cards, got %d", deck.HandSize, len(cards)))
	}

	newCards := make([]*deck.Card, len(cards))
	for i, card := range cards {
		if card == nil || !card.Valid() {
			panic(fmt.Sprintf("invalid card in hand at index %d: %#v", i, card))
		}

		newCards[i] = card
	}

	sort.Stable(sort.Reverse(sortByRank(newCards)))

	h := &HandAnalyzer{
		cards: newCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// analyzeHand computes the rank groups, flush and straight flags
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	suit := h.cards[0].Suit
	h.flush = true

	for i, card := range h.cards {
		h.ranks[i] = card.Rank

		if card.Suit != suit {
			h.flush = false
		}

		// cards are sorted, so equal ranks are always adjacent
		if h.nGroups > 0 && h.groups[h.nGroups-1].rank == card.Rank {
			h.groups[h.nGroups-1].count++
			continue
		}

		h.groups[h.nGroups] = rankGroup{rank: card.Rank, count: 1}
		h.nGroups++
	}

	sort.Sort(sortByCount(h.groups[:h.nGroups]))

	h.straight = h.checkStraight()
}

// count returns the size of the i-th largest group, or zero
func (h *HandAnalyzer) count(i int) int {
	if i >= h.nGroups {
		return 0
	}

	return h.groups[i].count
}

// groupRanks returns the rank of each group in tie-break order
func (h *HandAnalyzer) groupRanks() []int {
	ranks := make([]int, h.nGroups)
	for i := 0; i < h.nGroups; i++ {
		ranks[i] = h.groups[i].rank
	}

	return ranks
}

// descendingRanks returns all five ranks, high to low
func (h *HandAnalyzer) descendingRanks() []int {
	ranks := make([]int, deck.HandSize)
	copy(ranks, h.ranks[:])
	return ranks
}

// GetHand will return the hand the cards make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetTiebreaker returns the values used to break a tie with a hand of the same type
func (h *HandAnalyzer) GetTiebreaker() []int {
	tb := make([]int, len(h.tiebreaker))
	copy(tb, h.tiebreaker)
	return tb
}

// GetEvaluation returns the hand and its tie-breaker
func (h *HandAnalyzer) GetEvaluation() Evaluation {
	return Evaluation{
		Hand:       h.hand,
		Tiebreaker: h.GetTiebreaker(),
	}
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.flush && h.checkRoyal()
}

// GetStraightFlush will return the high card of the straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.flush && h.straight {
		return h.ranks[0], true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if h.count(0) == 4 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetFullHouse will return the trips and pair ranks, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if h.count(0) == 3 && h.count(1) == 2 {
		return []int{h.groups[0].rank, h.groups[1].rank}, true
	}

	return nil, false
}

// GetFlush will return the ranks of the flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush {
		return h.descendingRanks(), true
	}

	return nil, false
}

// GetStraight will return the high card of the straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight {
		return h.ranks[0], true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if h.count(0) == 3 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetTwoPair will return both pairs (high first), if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if h.count(0) == 2 && h.count(1) == 2 {
		return []int{h.groups[0].rank, h.groups[1].rank}, true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if h.count(0) == 2 {
		return h.groups[0].rank, true
	}

	return 0, false
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() (int, bool) {
	return h.ranks[0], true
}

// calculateHand will determine the hand and its tie-breaker
// Checks run strongest first and the first match wins.
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.hand = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}

	switch h.hand {
	case FourOfAKind, FullHouse, ThreeOfAKind, TwoPair, OnePair:
		h.tiebreaker = h.groupRanks()
	default:
		h.tiebreaker = h.descendingRanks()
	}
}

// Classify returns the hand category and tie-breaker for exactly five cards
func Classify(cards []*deck.Card) Evaluation {
	return NewHandAnalyzer(cards).GetEvaluation()
}
