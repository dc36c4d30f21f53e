package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/guidance"
)

var helpLines = []string{
	"Commands:",
	"  deal              start the next hand (Enter also works between hands)",
	"  fold, check, call",
	"  raise N           raise N over the amount to call",
	"  next              play the bot's turn in guided mode",
	"  hint              toggle the guidance panel",
	"  guided            switch between guided and automatic mode",
	"  difficulty [lvl]  cycle or set easy, medium, hard",
	"  rankings          show the hand rankings",
	"  quit",
}

// Execute runs one typed command and returns a tea.Cmd when the program
// should react, such as quitting.
func (m *Model) Execute(input string) tea.Cmd {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return m.continueGame()
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "q", "exit":
		return m.quit()
	case "help", "?":
		for _, line := range helpLines {
			m.AddLogEntry(line)
		}
		return nil
	case "deal", "d", "new":
		m.report(m.engine.StartNewRound())
	case "next", "n":
		m.report(m.engine.AdvanceTurn())
	case "hint", "h":
		m.showHint = !m.showHint
		if m.showHint {
			m.AddLogEntry(HintStyle.Render("Hint: " + m.hint().Advice))
		}
		return nil
	case "guided", "g":
		m.engine.SetGuidedMode(!m.engine.Guided())
		if m.engine.Guided() {
			m.pacer.Cancel()
			m.AddLogEntry("Guided mode on. Type 'next' to play each bot move.")
		} else {
			m.AddLogEntry("Automatic mode on. The bot plays after a short pause.")
		}
	case "difficulty", "diff":
		m.changeDifficulty(args)
		return nil
	case "rankings":
		for _, r := range guidance.HandRankings() {
			m.AddLogEntry(fmt.Sprintf("  %-16s %-36s %s", r.Hand, r.Description, r.Odds))
		}
		return nil
	default:
		action, ok := game.ParseAction(cmd)
		if !ok {
			m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("Unknown command %q. Type 'help' for commands.", cmd)))
			return nil
		}
		raise := 0
		if action == game.Raise && len(args) > 0 {
			n, err := strconv.Atoi(strings.TrimPrefix(args[0], "$"))
			if err != nil || n < 0 {
				m.AddLogEntry(ErrorStyle.Render("Raise amount must be a whole number"))
				return nil
			}
			raise = n
		}
		m.report(m.engine.HandlePlayerAction(action, raise))
	}

	m.sync()
	return nil
}

// continueGame handles a bare Enter: deal between hands, advance a held bot turn
func (m *Model) continueGame() tea.Cmd {
	s := m.engine.Snapshot()
	switch {
	case s.GameOver:
		m.AddLogEntry("Game over! Type 'quit' to exit.")
		return nil
	case s.HandNumber == 0 || s.HandOver():
		m.report(m.engine.StartNewRound())
	case s.AwaitingAdvance:
		m.report(m.engine.AdvanceTurn())
	default:
		return nil
	}
	m.sync()
	return nil
}

func (m *Model) changeDifficulty(args []string) {
	d := m.engine.Difficulty()
	if len(args) == 0 {
		d = m.engine.CycleDifficulty()
	} else {
		parsed, err := bot.ParseDifficulty(args[0])
		if err != nil {
			m.AddLogEntry(ErrorStyle.Render(err.Error()))
			return
		}
		m.engine.SetDifficulty(parsed)
		d = parsed
	}
	m.AddLogEntry(fmt.Sprintf("Bot difficulty: %s", d))
}

// report logs engine errors the player should see
func (m *Model) report(err error) {
	var actionErr *game.ActionError
	switch {
	case err == nil:
	case errors.Is(err, game.ErrOutOfTurn), errors.Is(err, game.ErrHandOver),
		errors.Is(err, game.ErrHandInProgress):
		// the engine message explains these
		m.lastMessage = m.engine.Snapshot().Message
		m.AddLogEntry(WarningStyle.Render(m.lastMessage))
	case errors.Is(err, game.ErrNotAwaitingAdvance):
		m.AddLogEntry(WarningStyle.Render("Nothing to advance."))
	case errors.As(err, &actionErr):
		m.AddLogEntry(ErrorStyle.Render(actionErr.Error()))
	case errors.Is(err, game.ErrGameOver):
		// the engine message already says so
	default:
		m.logger.Error("Engine error", "error", err)
	}
}
