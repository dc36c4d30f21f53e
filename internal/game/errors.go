package game

import (
	"errors"
	"fmt"
)

var (
	// ErrGameOver is returned by StartNewRound once the human or every bot is out
	ErrGameOver = errors.New("game over")
	// ErrHandInProgress is returned by StartNewRound while the current hand is still being played
	ErrHandInProgress = errors.New("hand in progress")
	// ErrHandOver is returned for actions submitted after the hand has finished
	ErrHandOver = errors.New("hand is over")
	// ErrOutOfTurn is returned when a seat acts while it is not its turn
	ErrOutOfTurn = errors.New("not your turn")
	// ErrNotBotTurn is returned when a bot turn is requested on the human's turn
	ErrNotBotTurn = errors.New("not the bot's turn")
	// ErrAwaitingAdvance is returned by TriggerBotAction while guided mode holds the bot's turn
	ErrAwaitingAdvance = errors.New("waiting for a manual advance")
	// ErrNotAwaitingAdvance is returned by AdvanceTurn outside a guided-mode pause
	ErrNotAwaitingAdvance = errors.New("not waiting for a manual advance")
	// ErrInvalidAction is wrapped by ActionError
	ErrInvalidAction = errors.New("invalid action")
)

// ActionError describes an action that was illegal in the current state.
// The engine recovers from these locally (an illegal check becomes a fold)
// and reports them so callers can explain what happened.
type ActionError struct {
	Seat   int
	Action Action
	Reason string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("seat %d cannot %s: %s", e.Seat, e.Action, e.Reason)
}

func (e *ActionError) Unwrap() error {
	return ErrInvalidAction
}
