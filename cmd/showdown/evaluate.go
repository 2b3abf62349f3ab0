package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"fivecardshowdown/internal/tui"
	"fivecardshowdown/pkg/deck"
	"fivecardshowdown/pkg/poker"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	tiebreakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// EvaluateCmd classifies a hand
type EvaluateCmd struct {
	Cards string `arg:"" help:"Five cards, i.e., 'As Ks Qs Js Ts' or 14s,13s,12s,11s,10s"`
}

// Run prints the hand category and its tie-breaker
func (cmd EvaluateCmd) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd EvaluateCmd) run(w io.Writer) error {
	hand, err := parseHand(cmd.Cards)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, renderEvaluation("Hand", hand, poker.Classify(hand)))
	return err
}

// CompareCmd compares the player's hand against the dealer's
type CompareCmd struct {
	Player string `arg:"" help:"The player's five cards"`
	Dealer string `arg:"" help:"The dealer's five cards"`
}

// Run prints both evaluations and the result for the player
func (cmd CompareCmd) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd CompareCmd) run(w io.Writer) error {
	player, err := parseHand(cmd.Player)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	dealer, err := parseHand(cmd.Dealer)
	if err != nil {
		return fmt.Errorf("dealer: %w", err)
	}

	for _, card := range dealer {
		if player.HasCard(card) {
			return fmt.Errorf("%w: %s", deck.ErrDuplicateCard, card)
		}
	}

	o := poker.Compare(player, dealer)

	var status string
	switch o.Result {
	case poker.Win:
		status = tui.SuccessStyle.Render(fmt.Sprintf("Player wins with %s", o.Name()))
	case poker.Lose:
		status = tui.ErrorStyle.Render(fmt.Sprintf("Dealer wins with %s", o.Name()))
	default:
		status = tui.WarningStyle.Render(fmt.Sprintf("Tie with %s", o.Name()))
	}

	_, err = fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
		renderEvaluation("Player", player, o.First),
		renderEvaluation("Dealer", dealer, o.Second),
		status,
	))
	return err
}

// parseHand accepts cards separated by commas, spaces or both
func parseHand(s string) (deck.Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	return deck.ParseHand(strings.Join(fields, ","))
}

func renderEvaluation(label string, hand deck.Hand, e poker.Evaluation) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label)+" "+tui.HandInfoStyle.Render(e.Hand.String())+" "+tiebreakerStyle.Render(fmt.Sprint(e.Tiebreaker)),
		tui.RenderHand(hand),
	)
}
