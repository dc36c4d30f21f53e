package server

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/guidance"
	"github.com/lox/holdem-tutor/internal/pacer"
)

// Session is one browser's game against the bot
type Session struct {
	id     string
	logger *log.Logger
	pacer  *pacer.Pacer
	send   func(*Message)

	mu     sync.Mutex
	engine *game.Engine
	closed bool
}

func newSession(engine *game.Engine, p *pacer.Pacer, logger *log.Logger, send func(*Message)) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		logger: logger.With("session", id),
		pacer:  p,
		send:   send,
		engine: engine,
	}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Close stops any pending bot turn
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.pacer.Cancel()
}

// Handle applies one request and replies with the resulting state, guidance
// or an error.
func (s *Session) Handle(req *Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.logger.Debug("Handling request", "type", req.Type, "action", req.Action)

	var err error
	switch req.Type {
	case MessageTypeNewRound:
		err = s.engine.StartNewRound()
	case MessageTypeAction:
		action, ok := game.ParseAction(strings.ToLower(req.Action))
		if !ok {
			s.reply(req, errorMessage(ErrCodeInvalidAction, "unknown action: "+req.Action))
			return
		}
		err = s.engine.HandlePlayerAction(action, req.Amount)
	case MessageTypeAdvance:
		err = s.engine.AdvanceTurn()
	case MessageTypeBot:
		s.pacer.Cancel()
		err = s.engine.TriggerBotAction()
	case MessageTypeDifficulty:
		if req.Difficulty == "" {
			s.engine.CycleDifficulty()
		} else {
			d, perr := bot.ParseDifficulty(req.Difficulty)
			if perr != nil {
				s.reply(req, errorMessage(ErrCodeInvalidMessage, perr.Error()))
				return
			}
			s.engine.SetDifficulty(d)
		}
	case MessageTypeGuided:
		guided := !s.engine.Guided()
		if req.Guided != nil {
			guided = *req.Guided
		}
		s.engine.SetGuidedMode(guided)
		if guided {
			s.pacer.Cancel()
		}
	case MessageTypeGuidance:
		snap := s.engine.Snapshot()
		info := guidance.Advise(guidance.FromSnapshot(snap, snap.Human().Seat, snap.Revealed()))
		s.reply(req, &Message{Type: MessageTypeGuidance, Guidance: &info})
		return
	case MessageTypeState:
	default:
		s.reply(req, errorMessage(ErrCodeInvalidMessage, "unknown message type: "+string(req.Type)))
		return
	}

	if err != nil && !errors.Is(err, game.ErrGameOver) {
		// a cancelled hand or failed deal still changed the state
		s.logger.Warn("Request rejected", "type", req.Type, "error", err)
		s.reply(req, errorMessage(errorCode(err), err.Error()))
	}
	s.pushState(req)
}

// pushState sends the current state and, in automatic mode, schedules the
// bot's next move. Callers hold mu.
func (s *Session) pushState(req *Request) {
	snap := s.engine.Snapshot()
	if snap.BotToAct && !s.pacer.Pending() {
		s.pacer.Schedule(s.playBot)
	}
	s.reply(req, &Message{Type: MessageTypeState, State: publicState(snap)})
}

// playBot runs a paced bot turn
func (s *Session) playBot() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if err := s.engine.TriggerBotAction(); err != nil {
		s.logger.Debug("Skipping bot turn", "error", err)
		return
	}
	s.pushState(nil)
}

func (s *Session) reply(req *Request, msg *Message) {
	msg.Session = s.id
	msg.Timestamp = time.Now()
	if req != nil {
		msg.RequestID = req.RequestID
	}
	s.send(msg)
}

func errorMessage(code, message string) *Message {
	return &Message{Type: MessageTypeError, Error: &ErrorData{Code: code, Message: message}}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrOutOfTurn):
		return ErrCodeOutOfTurn
	case errors.Is(err, game.ErrHandOver):
		return ErrCodeHandOver
	case errors.Is(err, game.ErrHandInProgress):
		return ErrCodeHandInProgress
	case errors.Is(err, game.ErrGameOver):
		return ErrCodeGameOver
	case errors.Is(err, game.ErrNotBotTurn), errors.Is(err, game.ErrAwaitingAdvance),
		errors.Is(err, game.ErrNotAwaitingAdvance):
		return ErrCodeNotBotTurn
	case errors.Is(err, game.ErrInvalidAction):
		return ErrCodeInvalidAction
	default:
		return ErrCodeEngine
	}
}
