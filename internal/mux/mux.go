package mux

import (
	"context"
	"net/http"
	"time"

	"fivecardshowdown/internal/rng"
	"fivecardshowdown/pkg/showdown"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

// Options configures the HTTP API
type Options struct {
	// StartingTokens is the balance of every new session
	StartingTokens int
	// SessionTTL is how long an idle session is kept around
	SessionTTL time.Duration
	// Generator seeds the decks. crypto/rand is used if nil
	Generator rng.Generator
	Logger    logrus.FieldLogger
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	options  Options
	sessions *sessionStore
	logger   logrus.FieldLogger
}

// NewMux returns a new HTTP mux
func NewMux(version string, options Options) *Mux {
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}

	if options.StartingTokens <= 0 {
		options.StartingTokens = showdown.DefaultOptions().StartingTokens
	}

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		options:  options,
		sessions: newSessionStore(options.SessionTTL),
		logger:   options.Logger,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
		r.Methods(http.MethodPost).Path("/compare").Handler(this.postCompare())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	// requires a live session
	{
		sr := this.Router.PathPrefix("/session/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		sr.Use(this.sessionMiddleware)

		sr.Methods(http.MethodGet).Path("").Handler(this.getSessionUUID())
		sr.Methods(http.MethodPost).Path("/round").Handler(this.postSessionUUIDRound())
		sr.Methods(http.MethodPost).Path("/reveal").Handler(this.postSessionUUIDReveal())
		sr.Methods(http.MethodPost).Path("/restart").Handler(this.postSessionUUIDRestart())
	}

	return this
}

// sessionMiddleware loads the session and holds its lock for the rest of the request
func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stored, ok := m.sessions.get(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		stored.mu.Lock()
		defer stored.mu.Unlock()

		newCtx := context.WithValue(r.Context(), ctxSessionKey, stored.session)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func sessionFromRequest(r *http.Request) *showdown.Session {
	return r.Context().Value(ctxSessionKey).(*showdown.Session)
}
