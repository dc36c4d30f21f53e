package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/guidance"
)

const sidebarMinWidth = 32

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	s := m.engine.Snapshot()

	actionContent := m.renderActionPane(s)
	actionHeight := lipgloss.Height(actionContent)
	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Width(max(1, m.width-2)).
		Height(max(1, actionHeight-2)).
		Render(actionContent)

	sidebarContent := m.renderSidebar(s)
	sidebarWidth := max(sidebarMinWidth, lipgloss.Width(sidebarContent))
	paneHeight := max(1, m.height-actionHeight-4)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(1, m.width-sidebarWidth-4)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(accentColor)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, logStyle.Render(m.logViewport.View()), sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, top, actionPane)
}

// renderSidebar shows the table, the players and, when enabled, guidance
func (m *Model) renderSidebar(s game.Snapshot) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Hand #%d  %s", s.HandNumber, guidance.StageLabel(s.Stage))))
	b.WriteString("\n\n")
	b.WriteString(WarningStyle.Render(fmt.Sprintf("Pot: $%d", s.Pot)))
	if s.CurrentBet > 0 {
		b.WriteString(" | ")
		b.WriteString(WarningStyle.Render(fmt.Sprintf("Bet: $%d", s.CurrentBet)))
	}
	b.WriteString("\n")
	b.WriteString("Board: " + renderCards(s.Community, false))
	b.WriteString("\n\n")

	for _, p := range s.Players {
		marker := "  "
		if p.Seat == s.CurrentActor {
			marker = "> "
		}
		status := ""
		switch {
		case p.Out:
			status = " (out)"
		case p.Folded:
			status = " (folded)"
		case p.AllIn:
			status = " (all-in)"
		}
		dealer := ""
		if p.Seat == s.Dealer {
			dealer = " (D)"
		}
		b.WriteString(fmt.Sprintf("%s%s%s: $%d%s\n", marker, p.Name, dealer, p.Chips, status))
		hidden := !p.Human && !s.Revealed()
		if len(p.Hand) > 0 {
			b.WriteString("    " + renderCards(p.Hand, hidden) + "\n")
		}
	}

	b.WriteString("\n")
	mode := "automatic"
	if s.Guided {
		mode = "guided"
	}
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Bot: %s, %s mode", s.Difficulty, mode)))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Won %d / Lost %d / Split %d",
		s.Stats.HumanWins, s.Stats.BotWins, s.Stats.Ties)))

	if m.showHint && s.HandNumber > 0 {
		info := m.hint()
		b.WriteString("\n\n")
		b.WriteString(HandInfoStyle.Render("Guidance"))
		b.WriteString("\n")
		b.WriteString("Strength: " + info.Strength + "\n")
		if info.StartingHand != "" {
			b.WriteString(fmt.Sprintf("Starting hand: %s (top %.0f%%)\n", info.StartingHand, (1-info.Percentile)*100))
		}
		if info.PotOdds != "" {
			b.WriteString("Pot odds: " + info.PotOdds + "\n")
		}
		b.WriteString(HintStyle.Width(sidebarMinWidth).Render(info.Advice))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Width(sidebarMinWidth).Render(info.Tip))
	}

	return b.String()
}

// renderActionPane renders the prompt, the legal actions and the input
func (m *Model) renderActionPane(s game.Snapshot) string {
	var b strings.Builder

	human := s.Human()
	switch {
	case s.HumanToAct:
		b.WriteString(HandInfoStyle.Render(fmt.Sprintf("Hand: %s  Pot: $%d", renderCards(human.Hand, false), s.Pot)))
		b.WriteString("\n")
		b.WriteString(renderActions(s.ToCall(human.Seat), s.BigBlind))
	case s.AwaitingAdvance:
		b.WriteString(HandInfoStyle.Render("Bot's turn. Type 'next' or press Enter."))
	case s.BotToAct:
		b.WriteString(HandInfoStyle.Render(s.Bot().Name + " is thinking..."))
	case s.GameOver:
		b.WriteString(ErrorStyle.Render("Game over."))
	default:
		b.WriteString(HandInfoStyle.Render("Press Enter to deal the next hand."))
	}
	b.WriteString("\n")
	b.WriteString(m.actionInput.View())
	b.WriteString("\n")

	if m.focusedPane == 0 {
		b.WriteString(HelpStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		b.WriteString(HelpStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return b.String()
}

// renderActions lists what the human may do facing toCall
func renderActions(toCall, bigBlind int) string {
	var actions []string
	if toCall > 0 {
		actions = append(actions,
			ErrorStyle.Render("[fold]"),
			SuccessStyle.Render(fmt.Sprintf("[call $%d]", toCall)))
	} else {
		actions = append(actions, SuccessStyle.Render("[check]"))
	}
	actions = append(actions, WarningStyle.Render(fmt.Sprintf("[raise N, min %d]", bigBlind)))
	return ActionsStyle.Render("Actions: " + strings.Join(actions, " "))
}
