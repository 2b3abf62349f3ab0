package tui

import (
	"fivecardshowdown/pkg/deck"
	"github.com/charmbracelet/lipgloss"
)

// HiddenCard is shown in place of a card that is face down
const HiddenCard = "🂠"

// RenderCard renders a single face up card
func RenderCard(card *deck.Card) string {
	if card.Suit.IsRed() {
		return RedCardStyle.Render(card.String())
	}

	return BlackCardStyle.Render(card.String())
}

// RenderHand renders the cards side by side
func RenderHand(hand deck.Hand) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = RenderCard(card)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// RenderHidden renders n face down cards
func RenderHidden(n int) string {
	cards := make([]string, n)
	for i := range cards {
		cards[i] = HiddenCardStyle.Render(HiddenCard)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
