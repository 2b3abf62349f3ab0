package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fivecardshowdown/internal/config"
	"fivecardshowdown/internal/rng"
	"fivecardshowdown/internal/tui"
	"fivecardshowdown/pkg/showdown"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// PlayCmd starts the terminal game
type PlayCmd struct {
	Name    string `short:"n" help:"Player name (random if empty)"`
	Tokens  int    `short:"t" help:"Starting tokens (defaults to the configured amount)"`
	Seed    int64  `help:"Seed the deals for a reproducible game"`
	LogFile string `help:"Write the game log to this file"`
}

// Run runs the game until the player quits
func (cmd PlayCmd) Run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play requires an interactive terminal")
	}

	cfg := config.Instance()
	tokens := cmd.Tokens
	if tokens == 0 {
		tokens = cfg.StartingTokens
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = cfg.Seed
	}

	logger, closer, err := newLogger(cmd.LogFile, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer()

	var gen rng.Generator
	if seed > 0 {
		gen = rng.NewSeeded(seed)
	}

	session, err := showdown.NewSession(logger, gen, showdown.Options{
		StartingTokens: tokens,
		Name:           cmd.Name,
	})
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("could not run game: %w", err)
	}

	fmt.Printf("%s finished with %d tokens after %d rounds\n", session.Name, session.Tokens(), len(session.Rounds()))
	return nil
}

// newLogger returns a logger that writes to path, or discards everything if path is empty
// The terminal belongs to the game while it runs.
func newLogger(path, level string) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}

	if path == "" {
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	logger.SetOutput(f)
	logger.SetFormatter(&logrus.JSONFormatter{})

	return logger, func() { _ = f.Close() }, nil
}
