package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in a complete hand
const HandSize = 5

// ErrDuplicateCard is returned when a card is used more than once
var ErrDuplicateCard = errors.New("the same card cannot appear twice")

// Hand represents a collection of cards
// Cards are only ever appended while dealing.
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// IsComplete returns true once all five cards have been dealt
func (h Hand) IsComplete() bool {
	return len(h) == HandSize
}

// HasDuplicates returns true if the same card appears more than once
func (h Hand) HasDuplicates() bool {
	for i, c := range h {
		if h[i+1:].HasCard(c) {
			return true
		}
	}

	return false
}

// Labels returns the display label of each card
func (h Hand) Labels() []string {
	labels := make([]string, len(h))
	for i, c := range h {
		labels[i] = c.String()
	}

	return labels
}

// String returns the hand as space separated display labels, i.e., "10♠ J♠ Q♠"
func (h Hand) String() string {
	return strings.Join(h.Labels(), " ")
}

// MarshalJSON encodes the hand as a list of cards with their labels
func (h Hand) MarshalJSON() ([]byte, error) {
	type cardJSON struct {
		Rank  int    `json:"rank"`
		Suit  Suit   `json:"suit"`
		Label string `json:"label"`
	}

	cards := make([]cardJSON, len(h))
	for i, c := range h {
		cards[i] = cardJSON{
			Rank:  c.Rank,
			Suit:  c.Suit,
			Label: c.String(),
		}
	}

	return json.Marshal(cards)
}

// ParseHand parses a comma separated list of exactly five distinct cards
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}

	hand := Hand(cards)
	if !hand.IsComplete() {
		return nil, fmt.Errorf("hand must contain %d cards, got %d", HandSize, len(hand))
	}

	if hand.HasDuplicates() {
		return nil, ErrDuplicateCard
	}

	return hand, nil
}
