package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"fivecardshowdown/pkg/poker"
	"fivecardshowdown/pkg/showdown"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenStart screen = iota
	screenTable
	screenRevealed
)

// Model is the Bubble Tea model for a game of showdown against the dealer
type Model struct {
	session  *showdown.Session
	screen   screen
	betInput textinput.Model

	err      error
	quitting bool
}

// NewModel returns a model on the start screen
func NewModel(session *showdown.Session) *Model {
	ti := textinput.New()
	ti.Placeholder = "bet"
	ti.CharLimit = 9
	ti.Width = 12
	ti.Prompt = "Bet: "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))

	return &Model{
		session:  session,
		screen:   screenStart,
		betInput: ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenStart:
		if keyMsg.Type == tea.KeyEnter {
			return m, m.deal()
		}

	case screenTable:
		switch {
		case keyMsg.Type == tea.KeyEnter:
			m.reveal()
			return m, nil
		case keyMsg.String() == "r":
			return m, m.restart()
		case keyMsg.Type == tea.KeyRunes && !isDigits(keyMsg.Runes):
			return m, nil
		}

		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd

	case screenRevealed:
		switch keyMsg.String() {
		case "n", "enter":
			return m, m.deal()
		case "r":
			return m, m.restart()
		}
	}

	return m, nil
}

// deal starts the next round and moves to the table
func (m *Model) deal() tea.Cmd {
	if _, err := m.session.StartRound(); err != nil {
		m.err = err
		return nil
	}

	m.err = nil
	m.screen = screenTable
	m.betInput.Reset()
	return m.betInput.Focus()
}

func (m *Model) reveal() {
	bet, err := strconv.Atoi(strings.TrimSpace(m.betInput.Value()))
	if err != nil {
		bet = 0
	}

	if _, err := m.session.Reveal(bet); err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.screen = screenRevealed
	m.betInput.Blur()
}

func (m *Model) restart() tea.Cmd {
	m.session.Restart()
	return m.deal()
}

func isDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// View renders the current screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Five Card Showdown"))
	b.WriteString("\n\n")

	switch m.screen {
	case screenStart:
		b.WriteString(fmt.Sprintf("Welcome, %s. You have %s.\n\n", m.session.Name, m.renderTokens()))
		b.WriteString(InfoStyle.Render("enter: deal • esc: quit"))

	case screenTable:
		b.WriteString(m.renderTable())
		b.WriteString(m.betInput.View())
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("enter: reveal • r: restart • esc: quit"))

	case screenRevealed:
		b.WriteString(m.renderTable())
		b.WriteString(m.renderStatus())
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("n: next round • r: restart • esc: quit"))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(m.errorMessage()))
	}

	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTokens() string {
	return TokensStyle.Render(fmt.Sprintf("%d tokens", m.session.Tokens()))
}

func (m *Model) renderTable() string {
	r := m.session.CurrentRound()

	var b strings.Builder
	b.WriteString("Dealer")
	if r.State == showdown.RoundStateComplete {
		b.WriteString(" " + HandInfoStyle.Render(r.Outcome.Second.Hand.String()))
		b.WriteString("\n")
		b.WriteString(RenderHand(r.DealerHand))
	} else {
		b.WriteString("\n")
		b.WriteString(RenderHidden(len(r.DealerHand)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.session.Name + " " + HandInfoStyle.Render(r.PlayerEvaluation().Hand.String()))
	b.WriteString("\n")
	b.WriteString(RenderHand(r.PlayerHand))
	b.WriteString("\n\n")
	b.WriteString(m.renderTokens())
	b.WriteString("\n\n")

	return b.String()
}

func (m *Model) renderStatus() string {
	r := m.session.CurrentRound()

	var style lipgloss.Style
	switch r.Outcome.Result {
	case poker.Win:
		style = SuccessStyle
	case poker.Lose:
		style = ErrorStyle
	default:
		style = WarningStyle
	}

	status := style.Render(r.Message())
	if m.session.IsBusted() {
		status += "\n" + WarningStyle.Render("You are out of tokens. Press r to start over.")
	}

	return status
}

func (m *Model) errorMessage() string {
	switch {
	case errors.Is(m.err, showdown.ErrInvalidBet):
		return fmt.Sprintf("Invalid bet. Enter between 1 and %d.", m.session.Tokens())
	default:
		return m.err.Error()
	}
}
