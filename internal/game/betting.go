package game

import "fmt"

// Stage is the phase of a hand
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	Showdown
	HandOver
)

func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case HandOver:
		return "hand over"
	default:
		return "unknown"
	}
}

// Action is a betting action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// ParseAction parses an action name as typed by a user or sent over the wire
func ParseAction(s string) (Action, bool) {
	switch s {
	case "fold", "f":
		return Fold, true
	case "check", "k", "x":
		return Check, true
	case "call", "c":
		return Call, true
	case "raise", "r", "bet", "b":
		return Raise, true
	default:
		return Fold, false
	}
}

// BettingRound tracks the bet to match and who has acted on the current street
type BettingRound struct {
	CurrentBet     int
	LastAggressor  int
	ActedThisRound []bool
}

// NewBettingRound creates a betting round for numPlayers seats
func NewBettingRound(numPlayers int) *BettingRound {
	return &BettingRound{
		LastAggressor:  -1,
		ActedThisRound: make([]bool, numPlayers),
	}
}

// Reset starts a new street
func (br *BettingRound) Reset() {
	br.CurrentBet = 0
	br.LastAggressor = -1
	clear(br.ActedThisRound)
}

// AmountToCall returns what the player still owes to match the current bet
func (br *BettingRound) AmountToCall(p *Player) int {
	return max(0, br.CurrentBet-p.BetThisRound)
}

// MarkActed records that seat has acted on this street
func (br *BettingRound) MarkActed(seat int) {
	if seat >= 0 && seat < len(br.ActedThisRound) {
		br.ActedThisRound[seat] = true
	}
}

// ResetActed clears everyone's acted flag except the given seat; used after a raise
func (br *BettingRound) ResetActed(except int) {
	for i := range br.ActedThisRound {
		br.ActedThisRound[i] = i == except
	}
}

// IsComplete reports whether the street's betting is finished: at most one
// player still contests the pot, or every player able to act has acted and
// matched the current bet.
func (br *BettingRound) IsComplete(players []*Player) bool {
	inHand := 0
	for _, p := range players {
		if p.InHand() {
			inHand++
		}
	}
	if inHand <= 1 {
		return true
	}

	for _, p := range players {
		if !p.CanAct() {
			continue
		}
		if !br.ActedThisRound[p.Seat] || p.BetThisRound != br.CurrentBet {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Stage) UnmarshalText(b []byte) error {
	for st := PreFlop; st <= HandOver; st++ {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", b)
}

// MarshalText implements encoding.TextMarshaler
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
