package server

import (
	"time"

	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/guidance"
)

// MessageType names a request or reply
type MessageType string

// Client → Server
const (
	MessageTypeNewRound   MessageType = "new_round"
	MessageTypeAction     MessageType = "action"
	MessageTypeAdvance    MessageType = "advance"
	MessageTypeBot        MessageType = "bot"
	MessageTypeDifficulty MessageType = "difficulty"
	MessageTypeGuided     MessageType = "guided"
	MessageTypeGuidance   MessageType = "guidance"
	MessageTypeState      MessageType = "state"
)

// Server → Client. State replies reuse MessageTypeState.
const (
	MessageTypeError MessageType = "error"
)

// Request is a command sent by the browser
type Request struct {
	Type       MessageType `json:"type"`
	Action     string      `json:"action,omitempty"`
	Amount     int         `json:"amount,omitempty"`
	Difficulty string      `json:"difficulty,omitempty"`
	Guided     *bool       `json:"guided,omitempty"`
	RequestID  string      `json:"requestId,omitempty"`
}

// Message is every reply the server sends
type Message struct {
	Type      MessageType    `json:"type"`
	Session   string         `json:"session"`
	State     *game.Snapshot `json:"state,omitempty"`
	Guidance  *guidance.Info `json:"guidance,omitempty"`
	Error     *ErrorData     `json:"error,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// ErrorData describes a rejected request
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeInvalidAction  = "invalid_action"
	ErrCodeOutOfTurn      = "out_of_turn"
	ErrCodeHandOver       = "hand_over"
	ErrCodeHandInProgress = "hand_in_progress"
	ErrCodeGameOver       = "game_over"
	ErrCodeNotBotTurn     = "not_bot_turn"
	ErrCodeEngine         = "engine_error"
)

// publicState hides the bot's hole cards until they are shown down
func publicState(s game.Snapshot) *game.Snapshot {
	if !s.Revealed() {
		for i := range s.Players {
			if !s.Players[i].Human {
				s.Players[i].Hand = nil
			}
		}
	}
	return &s
}
