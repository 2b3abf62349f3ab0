package poker

import (
	"encoding/json"
	"fmt"

	"fivecardshowdown/pkg/deck"
)

// Evaluation is a classified hand
type Evaluation struct {
	Hand Hand `json:"hand"`
	// Tiebreaker is only meaningful against another hand of the same type
	Tiebreaker []int `json:"tiebreaker"`
}

// Compare returns 1 if e beats other, -1 if other beats e, and 0 on a tie
func (e Evaluation) Compare(other Evaluation) int {
	if e.Hand != other.Hand {
		if e.Hand > other.Hand {
			return 1
		}

		return -1
	}

	for i := 0; i < len(e.Tiebreaker) && i < len(other.Tiebreaker); i++ {
		if e.Tiebreaker[i] > other.Tiebreaker[i] {
			return 1
		}

		if e.Tiebreaker[i] < other.Tiebreaker[i] {
			return -1
		}
	}

	return 0
}

// String returns the hand name and tie-breaker, i.e., Full House [3 9]
func (e Evaluation) String() string {
	return fmt.Sprintf("%s %v", e.Hand, e.Tiebreaker)
}

// Result is the result of a comparison from the first hand's point of view
type Result int

// Result constants
const (
	Lose Result = -1
	Tie  Result = 0
	Win  Result = 1
)

// String returns the result as a lowercase word
func (r Result) String() string {
	switch r {
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	case Win:
		return "win"
	}

	panic(fmt.Sprintf("unknown result: %d", r))
}

// MarshalJSON encodes the result as a string
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a result from its string form
func (r *Result) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	switch s {
	case "lose":
		*r = Lose
	case "tie":
		*r = Tie
	case "win":
		*r = Win
	default:
		return fmt.Errorf("unknown result: %q", s)
	}

	return nil
}

// Outcome is the result of comparing two hands
type Outcome struct {
	Result Result `json:"result"`
	// Hand is the winning hand, or the shared hand on a tie
	Hand   Hand       `json:"hand"`
	First  Evaluation `json:"first"`
	Second Evaluation `json:"second"`
}

// Name returns the display name of the winning hand
func (o Outcome) Name() string {
	return o.Hand.String()
}

// Compare classifies both hands and decides the outcome for the first one.
// Both hands must contain exactly five cards.
func Compare(first, second []*deck.Card) Outcome {
	return CompareEvaluations(Classify(first), Classify(second))
}

// CompareEvaluations decides the outcome between two already classified hands
func CompareEvaluations(first, second Evaluation) Outcome {
	o := Outcome{
		Result: Result(first.Compare(second)),
		First:  first,
		Second: second,
	}

	if o.Result == Lose {
		o.Hand = second.Hand
	} else {
		o.Hand = first.Hand
	}

	return o
}
