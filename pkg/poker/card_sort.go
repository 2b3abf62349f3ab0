package poker

import "fivecardshowdown/pkg/deck"

type sortByRank []*deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// rankGroup is a distinct rank and the number of cards holding it
type rankGroup struct {
	rank  int
	count int
}

// sortByCount orders groups by count, then rank, both descending
type sortByCount []rankGroup

func (s sortByCount) Len() int {
	return len(s)
}

func (s sortByCount) Less(i, j int) bool {
	if s[i].count != s[j].count {
		return s[i].count > s[j].count
	}

	return s[i].rank > s[j].rank
}

func (s sortByCount) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
