package poker

import (
	"testing"

	"fivecardshowdown/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		cards      string
		hand       Hand
		tiebreaker []int
	}{
		{"royal flush", "10s,11s,12s,13s,14s", RoyalFlush, []int{14, 13, 12, 11, 10}},
		{"royal flush unordered", "14h,12h,10h,13h,11h", RoyalFlush, []int{14, 13, 12, 11, 10}},
		{"straight flush", "5h,6h,7h,8h,9h", StraightFlush, []int{9, 8, 7, 6, 5}},
		{"king high straight flush", "9d,10d,11d,12d,13d", StraightFlush, []int{13, 12, 11, 10, 9}},
		{"four of a kind", "2s,2h,2d,2c,5s", FourOfAKind, []int{2, 5}},
		{"four aces", "14s,3d,14h,14d,14c", FourOfAKind, []int{14, 3}},
		{"full house", "3s,3h,3d,9s,9h", FullHouse, []int{3, 9}},
		{"full house pair higher", "13s,13h,4d,4s,4h", FullHouse, []int{4, 13}},
		{"flush", "2h,5h,9h,11h,13h", Flush, []int{13, 11, 9, 5, 2}},
		{"straight", "5s,6h,7d,8c,9s", Straight, []int{9, 8, 7, 6, 5}},
		{"ace high straight", "10s,11h,12d,13c,14s", Straight, []int{14, 13, 12, 11, 10}},
		{"three of a kind", "7s,7h,7d,13c,2s", ThreeOfAKind, []int{7, 13, 2}},
		{"two pair", "4s,4h,11d,11c,9s", TwoPair, []int{11, 4, 9}},
		{"two pair low kicker", "14s,14h,13d,13c,2s", TwoPair, []int{14, 13, 2}},
		{"one pair", "10s,10h,9d,7c,4s", OnePair, []int{10, 9, 7, 4}},
		{"high card", "2s,5h,9d,11c,13s", HighCard, []int{13, 11, 9, 5, 2}},
		{"ace high", "14s,5h,9d,11c,13s", HighCard, []int{14, 13, 11, 9, 5}},

		// ace always plays high, so the wheel is not a straight
		{"wheel is not a straight", "14s,2h,3d,4c,5s", HighCard, []int{14, 5, 4, 3, 2}},
		{"suited wheel is only a flush", "14c,2c,3c,4c,5c", Flush, []int{14, 5, 4, 3, 2}},
		{"no wrap around", "12s,13h,14d,2c,3s", HighCard, []int{14, 13, 12, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Classify(deck.CardsFromString(tt.cards))
			assert.Equal(t, tt.hand, e.Hand)
			assert.Equal(t, tt.tiebreaker, e.Tiebreaker)
		})
	}
}

func TestClassify_doesNotModifyInput(t *testing.T) {
	cards := deck.CardsFromString("2s,14h,7d,7c,4s")
	Classify(cards)
	assert.Equal(t, "2s,14h,7d,7c,4s", deck.CardsToString(cards))
}

func TestClassify_tiebreakerLength(t *testing.T) {
	tiebreakerLen := map[Hand]int{
		HighCard:      5,
		OnePair:       4,
		TwoPair:       3,
		ThreeOfAKind:  3,
		Straight:      5,
		Flush:         5,
		FullHouse:     2,
		FourOfAKind:   2,
		StraightFlush: 5,
		RoyalFlush:    5,
	}

	for seed := int64(1); seed <= 500; seed++ {
		d := deck.New()
		d.Shuffle(seed)
		cards := d.Cards[0:5]

		e := Classify(cards)
		assert.Equal(t, tiebreakerLen[e.Hand], len(e.Tiebreaker), deck.CardsToString(cards))
		assert.GreaterOrEqual(t, e.Hand, HighCard)
		assert.LessOrEqual(t, e.Hand, RoyalFlush)
	}
}

func TestClassify_panics(t *testing.T) {
	assert.PanicsWithValue(t, "hand must contain 5 cards, got 4", func() {
		Classify(deck.CardsFromString("2s,3s,4s,5s"))
	})

	assert.PanicsWithValue(t, "hand must contain 5 cards, got 6", func() {
		Classify(deck.CardsFromString("2s,3s,4s,5s,6s,7s"))
	})

	assert.Panics(t, func() {
		cards := deck.CardsFromString("2s,3s,4s,5s,6s")
		cards[2] = &deck.Card{Rank: 1, Suit: deck.Spades}
		Classify(cards)
	})

	assert.Panics(t, func() {
		cards := deck.CardsFromString("2s,3s,4s,5s,6s")
		cards[4] = nil
		Classify(cards)
	})
}

func TestHandAnalyzer_getters(t *testing.T) {
	a := assert.New(t)

	h := NewHandAnalyzer(deck.CardsFromString("2c,3c,3d,3h,3s"))
	r, ok := h.GetFourOfAKind()
	a.True(ok)
	a.Equal(3, r)
	_, ok = h.GetThreeOfAKind()
	a.False(ok)
	_, ok = h.GetPair()
	a.False(ok)

	h = NewHandAnalyzer(deck.CardsFromString("14c,2c,14d,2d,14h"))
	fh, ok := h.GetFullHouse()
	a.True(ok)
	a.Equal([]int{14, 2}, fh)

	h = NewHandAnalyzer(deck.CardsFromString("5c,5d,6h,6d,3h"))
	tp, ok := h.GetTwoPair()
	a.True(ok)
	a.Equal([]int{6, 5}, tp)
	_, ok = h.GetFullHouse()
	a.False(ok)

	h = NewHandAnalyzer(deck.CardsFromString("2c,3c,4c,5c,6c"))
	sf, ok := h.GetStraightFlush()
	a.True(ok)
	a.Equal(6, sf)
	a.False(h.GetRoyalFlush())

	h = NewHandAnalyzer(deck.CardsFromString("2c,3d,4h,5s,6c"))
	s, ok := h.GetStraight()
	a.True(ok)
	a.Equal(6, s)
	_, ok = h.GetFlush()
	a.False(ok)

	h = NewHandAnalyzer(deck.CardsFromString("14c,2c,5c,8d,3h"))
	hc, ok := h.GetHighCard()
	a.True(ok)
	a.Equal(14, hc)
	_, ok = h.GetStraight()
	a.False(ok)

	// the tie-breaker is a copy
	h = NewHandAnalyzer(deck.CardsFromString("14c,2c,5c,8d,3h"))
	tb := h.GetTiebreaker()
	tb[0] = 0
	a.Equal(14, h.GetTiebreaker()[0])
}

func BenchmarkClassify(b *testing.B) {
	cards := deck.CardsFromString("3s,5s,6h,7h,11c")
	for i := 0; i < b.N; i++ {
		Classify(cards)
	}
}
