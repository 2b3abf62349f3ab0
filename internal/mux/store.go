package mux

import (
	"strings"
	"sync"
	"time"

	"fivecardshowdown/pkg/showdown"
)

type storedSession struct {
	mu         sync.Mutex
	session    *showdown.Session
	lastActive time.Time
}

// sessionStore keeps sessions in memory until they sit idle longer than the ttl
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*storedSession
	ttl      time.Duration
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*storedSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *sessionStore) add(session *showdown.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	s.sessions[strings.ToLower(session.UUID)] = &storedSession{
		session:    session,
		lastActive: s.now(),
	}
}

func (s *sessionStore) get(id string) (*storedSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	stored, ok := s.sessions[strings.ToLower(id)]
	if !ok {
		return nil, false
	}

	stored.lastActive = s.now()
	return stored, true
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	return len(s.sessions)
}

// pruneLocked drops idle sessions. A ttl <= 0 keeps sessions forever
func (s *sessionStore) pruneLocked() {
	if s.ttl <= 0 {
		return
	}

	cutoff := s.now().Add(-s.ttl)
	for id, stored := range s.sessions {
		if stored.lastActive.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
