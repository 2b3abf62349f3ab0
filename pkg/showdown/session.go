package showdown

import (
	"errors"
	"fmt"
	"strings"

	"fivecardshowdown/internal/rng"
	"fivecardshowdown/internal/util"
	"fivecardshowdown/pkg/deck"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// session errors
var (
	ErrRoundInProgress = errors.New("a round is already in progress")
	ErrRoundNotPending = errors.New("there is no round waiting for a bet")
	ErrInvalidBet      = errors.New("invalid bet")
	ErrBusted          = errors.New("no tokens left, restart to play again")
)

// Session is one player's sitting against the dealer
// A Session is not safe for concurrent use.
type Session struct {
	UUID string
	Name string

	options Options
	tokens  int
	rounds  []*Round
	log     []*LogMessage
	gen     rng.Generator
	logger  logrus.FieldLogger
}

// NewSession returns a new session
// If gen is nil, decks are shuffled with seeds from crypto/rand
func NewSession(logger logrus.FieldLogger, gen rng.Generator, options Options) (*Session, error) {
	if options.StartingTokens <= 0 {
		return nil, errors.New("starting tokens must be > 0")
	}

	if options.Name == "" {
		options.Name = util.GetRandomName()
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	id := uuid.New().String()
	s := &Session{
		UUID:    id,
		Name:    options.Name,
		options: options,
		tokens:  options.StartingTokens,
		gen:     gen,
		logger:  logger.WithField("session", id),
	}

	return s, nil
}

// Tokens returns the current token balance
func (s *Session) Tokens() int {
	return s.tokens
}

// IsBusted returns true if the player has nothing left to bet
func (s *Session) IsBusted() bool {
	return s.tokens <= 0
}

// Rounds returns all rounds played since the session started or was restarted
func (s *Session) Rounds() []*Round {
	rounds := make([]*Round, len(s.rounds))
	copy(rounds, s.rounds)
	return rounds
}

// CurrentRound returns the latest round, or nil if none has been dealt
func (s *Session) CurrentRound() *Round {
	if len(s.rounds) == 0 {
		return nil
	}

	return s.rounds[len(s.rounds)-1]
}

// Log returns the game log
func (s *Session) Log() []*LogMessage {
	log := make([]*LogMessage, len(s.log))
	copy(log, s.log)
	return log
}

// StartRound shuffles a new deck and deals five cards each to the player and the dealer
func (s *Session) StartRound() (*Round, error) {
	if r := s.CurrentRound(); r != nil && r.State == RoundStatePendingBet {
		return nil, ErrRoundInProgress
	}

	if s.IsBusted() {
		return nil, ErrBusted
	}

	r, err := newRound(rng.Seed(s.gen))
	if err != nil {
		return nil, err
	}

	s.rounds = append(s.rounds, r)
	s.sendLogMessage(r, r.PlayerHand, "{} dealt %s", r.PlayerEvaluation().Hand)

	s.logger.WithFields(logrus.Fields{
		"round":    r.UUID,
		"seed":     r.Seed(),
		"deckHash": r.DeckHash(),
	}).Info("round started")

	return r, nil
}

// Reveal places the bet, shows the dealer's hand and settles the round
// The bet must be greater than zero and no more than the current balance.
func (s *Session) Reveal(bet int) (*Round, error) {
	r := s.CurrentRound()
	if r == nil || r.State != RoundStatePendingBet {
		return nil, ErrRoundNotPending
	}

	if bet <= 0 || bet > s.tokens {
		return nil, fmt.Errorf("%w: bet must be between 1 and %d", ErrInvalidBet, s.tokens)
	}

	r.settle(bet)
	s.tokens += r.Adjustment

	s.sendLogMessage(r, r.DealerHand, "Dealer shows %s", r.Outcome.Second.Hand)
	s.sendLogMessage(r, nil, "%s", r.Message())

	s.logger.WithFields(logrus.Fields{
		"round":   r.UUID,
		"bet":     bet,
		"result":  r.Outcome.Result.String(),
		"hand":    r.Outcome.Name(),
		"player":  r.Outcome.First.String(),
		"dealer":  r.Outcome.Second.String(),
		"balance": s.tokens,
	}).Info("round complete")

	if s.IsBusted() {
		s.sendLogMessage(nil, nil, "{} is out of tokens")
		s.logger.Info("player busted")
	}

	return r, nil
}

// Restart resets the balance to the starting amount and clears all rounds
func (s *Session) Restart() {
	s.tokens = s.options.StartingTokens
	s.rounds = nil
	s.log = nil

	s.logger.WithField("balance", s.tokens).Info("session restarted")
}

// sendLogMessage appends to the game log
// {} in the message is replaced by the player's name.
func (s *Session) sendLogMessage(r *Round, cards deck.Hand, format string, a ...interface{}) {
	lm := newLogMessage(r, cards, format, a...)
	lm.Message = strings.ReplaceAll(lm.Message, "{}", s.Name)
	s.log = append(s.log, lm)
}
