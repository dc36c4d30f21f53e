package game

import (
	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/deck"
)

// Snapshot is an owned copy of the engine's observable state. Mutating it
// has no effect on the engine.
type Snapshot struct {
	Players         []Player       `json:"players"`
	Community       []deck.Card    `json:"community"`
	Stage           Stage          `json:"stage"`
	Pot             int            `json:"pot"`
	CurrentBet      int            `json:"current_bet"`
	CurrentActor    int            `json:"current_actor"` // -1 when nobody is to act
	Dealer          int            `json:"dealer"`
	LastAggressor   int            `json:"last_aggressor"`
	Message         string         `json:"message"`
	LastHandResult  *HandResult    `json:"last_hand_result,omitempty"`
	Difficulty      bot.Difficulty `json:"difficulty"`
	Guided          bool           `json:"guided"`
	AwaitingAdvance bool           `json:"awaiting_advance"`
	HumanToAct      bool           `json:"human_to_act"`
	BotToAct        bool           `json:"bot_to_act"` // automatic mode: host should call TriggerBotAction
	GameOver        bool           `json:"game_over"`
	HandNumber      int            `json:"hand_number"`
	SmallBlind      int            `json:"small_blind"`
	BigBlind        int            `json:"big_blind"`
	Actions         []ActionRecord `json:"actions"`
	Stats           Stats          `json:"stats"`
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Players:         make([]Player, len(e.players)),
		Community:       append([]deck.Card(nil), e.community...),
		Stage:           e.stage,
		Pot:             e.pot,
		CurrentBet:      e.betting.CurrentBet,
		CurrentActor:    e.actor,
		Dealer:          e.dealer,
		LastAggressor:   e.betting.LastAggressor,
		Message:         e.message,
		Difficulty:      e.difficulty,
		Guided:          e.guided,
		AwaitingAdvance: e.awaitingAdvance,
		GameOver:        e.IsGameOver(),
		HandNumber:      e.handNumber,
		SmallBlind:      e.cfg.smallBlind,
		BigBlind:        e.cfg.bigBlind,
		Actions:         append([]ActionRecord(nil), e.actions...),
		Stats:           e.stats,
	}
	for i, p := range e.players {
		s.Players[i] = p.clone()
	}
	if e.result != nil {
		r := *e.result
		r.WinnerNames = append([]string(nil), e.result.WinnerNames...)
		s.LastHandResult = &r
	}
	if e.actor >= 0 && e.stage < Showdown {
		if e.players[e.actor].Human {
			s.HumanToAct = true
		} else {
			s.BotToAct = !e.awaitingAdvance
		}
	}
	return s
}

// HandOver reports whether no hand is in progress
func (s Snapshot) HandOver() bool {
	return s.Stage >= Showdown
}

// ToCall returns what seat owes in this snapshot
func (s Snapshot) ToCall(seat int) int {
	if seat < 0 || seat >= len(s.Players) {
		return 0
	}
	return max(0, s.CurrentBet-s.Players[seat].BetThisRound)
}

// Human returns the human seat
func (s Snapshot) Human() Player {
	for _, p := range s.Players {
		if p.Human {
			return p
		}
	}
	return Player{}
}

// Bot returns the bot seat
func (s Snapshot) Bot() Player {
	for _, p := range s.Players {
		if !p.Human {
			return p
		}
	}
	return Player{}
}

// ChipTotal returns the chips in stacks plus the pot
func (s Snapshot) ChipTotal() int {
	total := s.Pot
	for _, p := range s.Players {
		total += p.Chips
	}
	return total
}

// Revealed reports whether the last hand went to showdown, so every hand
// still in it may be shown.
func (s Snapshot) Revealed() bool {
	return s.Stage == HandOver && s.LastHandResult != nil && s.LastHandResult.WinningHand != DefaultWinHand
}
