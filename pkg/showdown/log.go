package showdown

import (
	"fmt"
	"time"

	"fivecardshowdown/pkg/deck"
	"github.com/google/uuid"
)

// LogMessage is an entry in the session's game log
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Round   string       `json:"round,omitempty"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newLogMessage(round *Round, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	lm := &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}

	if round != nil {
		lm.Round = round.UUID
	}

	return lm
}
