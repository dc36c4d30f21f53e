package main

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/tui"
)

// PlayCmd runs the interactive terminal table
type PlayCmd struct {
	Difficulty string        `short:"d" help:"Bot difficulty: easy, medium, hard (overrides config)"`
	Guided     bool          `short:"g" help:"Step through each bot move with 'next'"`
	NoColor    bool          `help:"Disable colours"`
	BotDelay   time.Duration `help:"Bot thinking delay in automatic mode (overrides config)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	// the TUI owns the terminal, so logs only go to a file
	cfg, logger, closeLog, err := g.setup(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := cfg.EngineOptions()
	if c.Difficulty != "" {
		d, err := bot.ParseDifficulty(c.Difficulty)
		if err != nil {
			return err
		}
		opts = append(opts, game.WithDifficulty(d))
	}
	if c.Guided {
		opts = append(opts, game.WithGuidedMode(true))
	}

	delay := time.Duration(cfg.Server.BotDelayMS) * time.Millisecond
	if c.BotDelay > 0 {
		delay = c.BotDelay
	}

	logger.Info("Starting tutor", "config", g.Config, "difficulty", cfg.Game.Difficulty)
	engine := game.New(logger, opts...)
	model := tui.NewModel(engine, logger, tui.Options{BotDelay: delay, NoColor: c.NoColor})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	s := engine.Snapshot()
	fmt.Printf("Hands played: %d  Won: %d  Lost: %d  Split: %d\n",
		s.Stats.HandsPlayed, s.Stats.HumanWins, s.Stats.BotWins, s.Stats.Ties)
	return nil
}
