package tui

import (
	"math/rand"
	"testing"

	"fivecardshowdown/pkg/deck"
	"fivecardshowdown/pkg/showdown"
	tea "github.com/charmbracelet/bubbletea"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, tokens int) *Model {
	t.Helper()

	logger, _ := logrustest.NewNullLogger()
	session, err := showdown.NewSession(logger, rand.New(rand.NewSource(7)), showdown.Options{ // nolint:gosec
		StartingTokens: tokens,
		Name:           "Tester",
	})
	require.NoError(t, err)

	return NewModel(session)
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, key := range keys {
		m.Update(key)
	}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_playRound(t *testing.T) {
	a := assert.New(t)
	m := newTestModel(t, 100)

	a.Equal(screenStart, m.screen)
	a.Contains(m.View(), "Welcome, Tester")

	press(m, enter)
	a.Equal(screenTable, m.screen)
	require.NotNil(t, m.session.CurrentRound())
	a.Equal(5, len(m.session.CurrentRound().PlayerHand))

	view := m.View()
	a.Contains(view, HiddenCard)
	for _, card := range m.session.CurrentRound().DealerHand {
		a.NotContains(view, card.String())
	}

	// letters are ignored in the bet input
	press(m, runes("x"), runes("2"), runes("5"))
	a.Equal("25", m.betInput.Value())

	press(m, enter)
	a.Equal(screenRevealed, m.screen)
	a.NoError(m.err)

	r := m.session.CurrentRound()
	a.Equal(showdown.RoundStateComplete, r.State)
	a.Equal(25, r.Bet)
	a.Equal(100+r.Adjustment, m.session.Tokens())
	a.Contains(m.View(), r.Message())
	a.NotContains(m.View(), HiddenCard)

	press(m, runes("n"))
	a.Equal(screenTable, m.screen)
	a.Len(m.session.Rounds(), 2)
	a.Equal("", m.betInput.Value())
}

func TestModel_invalidBet(t *testing.T) {
	a := assert.New(t)
	m := newTestModel(t, 10)

	press(m, enter, enter)
	a.Equal(screenTable, m.screen)
	a.ErrorIs(m.err, showdown.ErrInvalidBet)
	a.Contains(m.View(), "Invalid bet. Enter between 1 and 10.")

	press(m, runes("11"), enter)
	a.Equal(screenTable, m.screen)
	a.ErrorIs(m.err, showdown.ErrInvalidBet)

	m.betInput.SetValue("10")
	press(m, enter)
	a.Equal(screenRevealed, m.screen)
	a.NoError(m.err)
}

func TestModel_busted(t *testing.T) {
	a := assert.New(t)
	m := newTestModel(t, 10)

	press(m, enter)

	// rig a losing hand
	r := m.session.CurrentRound()
	r.PlayerHand = deck.CardsFromString("2c,3d,4h,5s,7c")
	r.DealerHand = deck.CardsFromString("14c,14d,14h,14s,13c")

	press(m, runes("10"), enter)
	a.Equal(screenRevealed, m.screen)
	a.True(m.session.IsBusted())
	a.Contains(m.View(), "Dealer wins with Four of a Kind!")
	a.Contains(m.View(), "You are out of tokens")

	press(m, runes("n"))
	a.ErrorIs(m.err, showdown.ErrBusted)
	a.Equal(screenRevealed, m.screen)

	press(m, runes("r"))
	a.NoError(m.err)
	a.Equal(screenTable, m.screen)
	a.Equal(10, m.session.Tokens())
	a.Len(m.session.Rounds(), 1)
}

func TestModel_quit(t *testing.T) {
	m := newTestModel(t, 100)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}

func TestRenderHand(t *testing.T) {
	hand := deck.Hand(deck.CardsFromString("10h,11s"))
	out := RenderHand(hand)
	assert.Contains(t, out, "10♥")
	assert.Contains(t, out, "J♠")

	assert.Contains(t, RenderHidden(2), HiddenCard)
}
