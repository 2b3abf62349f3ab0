package poker

import (
	"testing"

	"fivecardshowdown/pkg/deck"
	chpoker "github.com/chehsunliu/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oracleRanks = "23456789TJQKA"

var oracleSuits = map[deck.Suit]string{
	deck.Clubs:    "c",
	deck.Diamonds: "d",
	deck.Hearts:   "h",
	deck.Spades:   "s",
}

func toOracleCards(cards []*deck.Card) []chpoker.Card {
	out := make([]chpoker.Card, len(cards))
	for i, c := range cards {
		out[i] = chpoker.NewCard(string(oracleRanks[c.Rank-2]) + oracleSuits[c.Suit])
	}

	return out
}

// isWheel is true for A-2-3-4-5, which the oracle scores as a five-high straight
func isWheel(cards []*deck.Card) bool {
	seen := make(map[int]bool)
	for _, c := range cards {
		seen[c.Rank] = true
	}

	return len(seen) == 5 && seen[deck.Ace] && seen[2] && seen[3] && seen[4] && seen[5]
}

// oracleClass maps our hands onto the oracle's rank classes (1 is best)
var oracleClass = map[Hand]int32{
	RoyalFlush:    1,
	StraightFlush: 1,
	FourOfAKind:   2,
	FullHouse:     3,
	Flush:         4,
	Straight:      5,
	ThreeOfAKind:  6,
	TwoPair:       7,
	OnePair:       8,
	HighCard:      9,
}

func TestCompare_matchesReferenceEvaluator(t *testing.T) {
	checked := 0
	for seed := int64(1); seed <= 2000; seed++ {
		d := deck.New()
		d.Shuffle(seed)
		first, second := d.Cards[0:5], d.Cards[5:10]
		if isWheel(first) || isWheel(second) {
			continue
		}

		firstScore := chpoker.Evaluate(toOracleCards(first))
		secondScore := chpoker.Evaluate(toOracleCards(second))

		assert.Equal(t, oracleClass[Classify(first).Hand], chpoker.RankClass(firstScore), deck.CardsToString(first))

		// the oracle scores lower as better
		want := Tie
		if firstScore < secondScore {
			want = Win
		} else if firstScore > secondScore {
			want = Lose
		}

		o := Compare(first, second)
		require.Equal(t, want, o.Result, "%s vs %s", deck.CardsToString(first), deck.CardsToString(second))
		checked++
	}

	assert.Greater(t, checked, 1900)
}

func TestClassify_specialHandsMatchReferenceEvaluator(t *testing.T) {
	for _, cards := range []string{
		"10s,11s,12s,13s,14s",
		"5h,6h,7h,8h,9h",
		"2s,2h,2d,2c,5s",
		"3s,3h,3d,9s,9h",
		"2h,5h,9h,11h,13h",
		"5s,6h,7d,8c,9s",
		"7s,7h,7d,13c,2s",
		"4s,4h,11d,11c,9s",
		"10s,10h,9d,7c,4s",
		"2s,5h,9d,11c,13s",
	} {
		t.Run(cards, func(t *testing.T) {
			hand := deck.CardsFromString(cards)
			score := chpoker.Evaluate(toOracleCards(hand))
			assert.Equal(t, oracleClass[Classify(hand).Hand], chpoker.RankClass(score))
		})
	}
}
