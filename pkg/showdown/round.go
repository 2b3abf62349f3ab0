package showdown

import (
	"fmt"

	"fivecardshowdown/pkg/deck"
	"fivecardshowdown/pkg/poker"
	"github.com/google/uuid"
)

// RoundState is the state of a round
type RoundState string

// RoundState constants
const (
	// RoundStatePendingBet means both hands are dealt and we are waiting on the player's bet
	RoundStatePendingBet RoundState = "pending-bet"

	// RoundStateComplete means the dealer's hand was revealed and tokens were settled
	RoundStateComplete RoundState = "complete"
)

// Round is a single deal of five cards to the player and the dealer
type Round struct {
	UUID       string     `json:"uuid"`
	State      RoundState `json:"state"`
	PlayerHand deck.Hand  `json:"playerHand"`
	DealerHand deck.Hand  `json:"dealerHand"`
	Bet        int        `json:"bet"`
	Adjustment int        `json:"adjustment"`

	// Outcome is from the player's point of view, nil until the round is complete
	Outcome *poker.Outcome `json:"outcome"`

	seed     int64
	deckHash string
}

// newRound shuffles a fresh deck and deals both hands, alternating player then dealer
func newRound(seed int64) (*Round, error) {
	d := deck.New()
	d.Shuffle(seed)

	r := &Round{
		UUID:       uuid.New().String(),
		State:      RoundStatePendingBet,
		PlayerHand: make(deck.Hand, 0, deck.HandSize),
		DealerHand: make(deck.Hand, 0, deck.HandSize),
		seed:       d.GetSeed(),
		deckHash:   d.HashCode(),
	}

	for i := 0; i < deck.HandSize; i++ {
		for _, hand := range []*deck.Hand{&r.PlayerHand, &r.DealerHand} {
			card, err := d.Draw()
			if err != nil {
				return nil, fmt.Errorf("could not deal round: %w", err)
			}

			hand.AddCard(card)
		}
	}

	return r, nil
}

// Seed returns the seed the round's deck was shuffled with
func (r *Round) Seed() int64 {
	return r.seed
}

// DeckHash returns the hash code of the shuffled deck before any card was dealt
func (r *Round) DeckHash() string {
	return r.deckHash
}

// PlayerEvaluation classifies the player's hand
func (r *Round) PlayerEvaluation() poker.Evaluation {
	return poker.Classify(r.PlayerHand)
}

// DealerEvaluation classifies the dealer's hand
func (r *Round) DealerEvaluation() poker.Evaluation {
	return poker.Classify(r.DealerHand)
}

// settle compares the hands and applies the bet
func (r *Round) settle(bet int) {
	outcome := poker.Compare(r.PlayerHand, r.DealerHand)

	r.Bet = bet
	r.Outcome = &outcome
	r.Adjustment = int(outcome.Result) * bet
	r.State = RoundStateComplete
}

// Message returns the status line shown once the round is complete
func (r *Round) Message() string {
	if r.Outcome == nil {
		return ""
	}

	switch r.Outcome.Result {
	case poker.Win:
		return fmt.Sprintf("You win with %s!", r.Outcome.Name())
	case poker.Lose:
		return fmt.Sprintf("Dealer wins with %s!", r.Outcome.Name())
	default:
		return fmt.Sprintf("Tie with %s!", r.Outcome.Name())
	}
}
