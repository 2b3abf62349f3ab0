package showdown

import (
	"fivecardshowdown/pkg/deck"
	"fivecardshowdown/pkg/poker"
)

// State is the player's view of the session
type State struct {
	UUID   string        `json:"uuid"`
	Name   string        `json:"name"`
	Tokens int           `json:"tokens"`
	Busted bool          `json:"busted"`
	Round  *RoundView    `json:"round"`
	Log    []*LogMessage `json:"log"`
}

// RoundView is the player's view of a round
// The dealer's cards stay hidden until the round is complete.
type RoundView struct {
	UUID           string        `json:"uuid"`
	State          RoundState    `json:"state"`
	PlayerHand     deck.Hand     `json:"playerHand"`
	PlayerHandName string        `json:"playerHandName"`
	DealerHand     deck.Hand     `json:"dealerHand"`
	DealerHandName string        `json:"dealerHandName,omitempty"`
	HiddenCards    int           `json:"hiddenCards"`
	Bet            int           `json:"bet"`
	Adjustment     int           `json:"adjustment"`
	Result         *poker.Result `json:"result"`
	WinningHand    string        `json:"winningHand,omitempty"`
	Message        string        `json:"message,omitempty"`
}

// PlayerState returns the current state of the session for the player
func (s *Session) PlayerState() *State {
	state := &State{
		UUID:   s.UUID,
		Name:   s.Name,
		Tokens: s.tokens,
		Busted: s.IsBusted(),
		Log:    s.Log(),
	}

	if r := s.CurrentRound(); r != nil {
		state.Round = r.view()
	}

	return state
}

func (r *Round) view() *RoundView {
	v := &RoundView{
		UUID:           r.UUID,
		State:          r.State,
		PlayerHand:     r.PlayerHand,
		PlayerHandName: r.PlayerEvaluation().Hand.String(),
		DealerHand:     deck.Hand{},
		HiddenCards:    len(r.DealerHand),
		Bet:            r.Bet,
		Adjustment:     r.Adjustment,
	}

	if r.State == RoundStateComplete {
		result := r.Outcome.Result
		v.DealerHand = r.DealerHand
		v.DealerHandName = r.Outcome.Second.Hand.String()
		v.HiddenCards = 0
		v.Result = &result
		v.WinningHand = r.Outcome.Name()
		v.Message = r.Message()
	}

	return v
}
