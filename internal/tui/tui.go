package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/guidance"
	"github.com/lox/holdem-tutor/internal/pacer"
)

// DefaultBotDelay is how long the bot "thinks" in automatic mode
const DefaultBotDelay = 1500 * time.Millisecond

// Options configure a Model
type Options struct {
	Clock    quartz.Clock
	BotDelay time.Duration
	NoColor  bool
	TestMode bool
}

// Model is the Bubble Tea model for a tutorial session against the bot
type Model struct {
	engine *game.Engine
	pacer  *pacer.Pacer
	logger *log.Logger

	logViewport viewport.Model
	actionInput textinput.Model

	gameLog     []string
	lastMessage string
	lastHand    int
	showHint    bool
	botReady    chan struct{}
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	width       int
	height      int
	initialized bool

	testMode    bool
	capturedLog []string
}

// botTurnMsg is delivered once the pacer's delay for a bot turn has elapsed
type botTurnMsg struct{}

// NewModel creates a TUI over engine
func NewModel(engine *game.Engine, logger *log.Logger, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.BotDelay <= 0 {
		opts.BotDelay = DefaultBotDelay
	}
	if opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "deal, fold, check, call, raise 200, next, hint, help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		engine:      engine,
		pacer:       pacer.New(opts.Clock, opts.BotDelay, logger),
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		botReady:    make(chan struct{}, 1),
		focusedPane: 1,
		testMode:    opts.TestMode,
	}
	m.AddLogEntry("=== Texas Hold'em Tutor ===")
	m.AddLogEntry("Type 'help' for commands. Press Enter to deal.")
	m.lastMessage = engine.Snapshot().Message
	m.AddLogEntry(m.lastMessage)
	return m
}

// Init starts listening for paced bot turns
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForBot())
}

func (m *Model) waitForBot() tea.Cmd {
	return func() tea.Msg {
		<-m.botReady
		return botTurnMsg{}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case botTurnMsg:
		m.playBot()
		return m, m.waitForBot()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, m.quit()
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := strings.TrimSpace(m.actionInput.Value())
				m.actionInput.SetValue("")
				if cmd := m.Execute(input); cmd != nil {
					return m, cmd
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.pacer.Cancel()
	return tea.Sequence(tea.ClearScreen, tea.Quit)
}

// playBot runs the bot turn the pacer was holding
func (m *Model) playBot() {
	if err := m.engine.TriggerBotAction(); err != nil {
		m.logger.Debug("Skipping bot turn", "error", err)
	}
	m.sync()
}

// sync logs whatever the engine reported since the last command and hands
// the next bot turn to the pacer.
func (m *Model) sync() {
	s := m.engine.Snapshot()
	if s.HandNumber != m.lastHand {
		m.lastHand = s.HandNumber
		m.AddLogEntry("")
		m.AddLogEntry(fmt.Sprintf("--- Hand #%d ---", s.HandNumber))
	}
	if s.Message != m.lastMessage {
		m.lastMessage = s.Message
		m.AddLogEntry(s.Message)
	}
	if s.Revealed() {
		for _, p := range s.Players {
			if p.InHand() {
				m.AddLogEntry(fmt.Sprintf("  %s shows %s", p.Name, renderCards(p.Hand, false)))
			}
		}
		if d := s.LastHandResult.Detail; d != "" {
			m.AddLogEntry("  Winning hand: " + d)
		}
	}
	if s.BotToAct && !m.pacer.Pending() {
		m.pacer.Schedule(func() {
			select {
			case m.botReady <- struct{}{}:
			default:
			}
		})
	}
}

// AddLogEntry appends a line to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *Model) ClearLog() {
	m.gameLog = []string{}
	m.logViewport.SetContent("")
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// Engine returns the engine the model drives
func (m *Model) Engine() *game.Engine {
	return m.engine
}

// hint returns the current advice for the human seat
func (m *Model) hint() guidance.Info {
	s := m.engine.Snapshot()
	return guidance.Advise(guidance.FromSnapshot(s, s.Human().Seat, s.Revealed()))
}
