package mux

import (
	"net/http"

	"fivecardshowdown/pkg/deck"
	"fivecardshowdown/pkg/poker"
)

type evaluatePayload struct {
	Cards string `json:"cards"`
}

type evaluationResponse struct {
	Hand       poker.Hand `json:"hand"`
	Name       string     `json:"name"`
	Tiebreaker []int      `json:"tiebreaker"`
	Cards      deck.Hand  `json:"cards"`
}

func newEvaluationResponse(hand deck.Hand, e poker.Evaluation) evaluationResponse {
	return evaluationResponse{
		Hand:       e.Hand,
		Name:       e.Hand.String(),
		Tiebreaker: e.Tiebreaker,
		Cards:      hand,
	}
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload evaluatePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		hand, err := parseHand("cards", payload.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, newEvaluationResponse(hand, poker.Classify(hand)))
	}
}

type comparePayload struct {
	Player string `json:"player"`
	Dealer string `json:"dealer"`
}

type compareResponse struct {
	Result poker.Result       `json:"result"`
	Hand   poker.Hand         `json:"hand"`
	Name   string             `json:"name"`
	Player evaluationResponse `json:"player"`
	Dealer evaluationResponse `json:"dealer"`
}

func (m *Mux) postCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload comparePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		player, err := parseHand("player", payload.Player)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer, err := parseHand("dealer", payload.Dealer)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		for _, card := range dealer {
			if player.HasCard(card) {
				writeJSONError(w, http.StatusBadRequest, deck.ErrDuplicateCard)
				return
			}
		}

		o := poker.Compare(player, dealer)
		writeJSON(w, http.StatusOK, compareResponse{
			Result: o.Result,
			Hand:   o.Hand,
			Name:   o.Name(),
			Player: newEvaluationResponse(player, o.First),
			Dealer: newEvaluationResponse(dealer, o.Second),
		})
	}
}
