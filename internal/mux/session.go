package mux

import (
	"errors"
	"net/http"

	"fivecardshowdown/pkg/showdown"
)

type postSessionPayload struct {
	Name string `json:"name"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// the body is optional
		var payload postSessionPayload
		if r.ContentLength > 0 && !decodeRequest(w, r, &payload) {
			return
		}

		if len(payload.Name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name cannot be more than 40 characters"))
			return
		}

		session, err := showdown.NewSession(m.logger, m.options.Generator, showdown.Options{
			StartingTokens: m.options.StartingTokens,
			Name:           payload.Name,
		})
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.sessions.add(session)
		writeJSON(w, http.StatusCreated, session.PlayerState())
	}
}

func (m *Mux) getSessionUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionFromRequest(r).PlayerState())
	}
}

func (m *Mux) postSessionUUIDRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromRequest(r)
		if _, err := session.StartRound(); err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session.PlayerState())
	}
}

type postRevealPayload struct {
	Bet int `json:"bet"`
}

func (m *Mux) postSessionUUIDReveal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRevealPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		session := sessionFromRequest(r)
		if _, err := session.Reveal(payload.Bet); err != nil {
			writeSessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session.PlayerState())
	}
}

func (m *Mux) postSessionUUIDRestart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromRequest(r)
		session.Restart()
		writeJSON(w, http.StatusOK, session.PlayerState())
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, showdown.ErrInvalidBet):
		writeJSONError(w, http.StatusBadRequest, err)
	case errors.Is(err, showdown.ErrRoundInProgress),
		errors.Is(err, showdown.ErrRoundNotPending),
		errors.Is(err, showdown.ErrBusted):
		writeJSONError(w, http.StatusConflict, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
