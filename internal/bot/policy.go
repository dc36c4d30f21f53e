// Package bot contains the heads-up opponent's decision rules.
//
// Decide is a pure function of the situation, the difficulty and a single
// random factor in [0, 1). Policy supplies that factor from an RNG and logs
// what it chose.
package bot

import (
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-tutor/internal/evaluator"
)

// Action is what the bot chooses to do
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

// Situation is everything the bot is allowed to see when deciding
type Situation struct {
	Category evaluator.Category // best category from hole and community cards
	ToCall   int
	Pot      int
	Stack    int
	BigBlind int
}

// PotOdds is the share of the pot a call would represent, call/(pot+call)
func (s Situation) PotOdds() float64 {
	if s.ToCall <= 0 {
		return 0
	}
	return float64(s.ToCall) / float64(s.Pot+s.ToCall)
}

// Decision is the bot's chosen action. For Raise, Amount is the increment
// on top of the amount to call.
type Decision struct {
	Action Action
	Amount int
	Reason string
}

// Decide applies the bot rules in priority order. r is a random factor in
// [0, 1) shared by every probabilistic rule.
func Decide(s Situation, d Difficulty, r float64) Decision {
	p := d.Params()
	hasPair := s.Category >= evaluator.Pair

	if s.ToCall <= 0 {
		if hasPair && r < p.Aggression && s.Stack > 0 {
			size := max(s.BigBlind, int(math.Floor(float64(s.Pot)*(0.3+p.Aggression*0.5))))
			return Decision{Action: Raise, Amount: min(size, s.Stack), Reason: "value bet"}
		}
		return Decision{Action: Check, Reason: "nothing to call"}
	}

	if s.Stack <= s.ToCall {
		if hasPair {
			return Decision{Action: Call, Reason: "all-in with a made hand"}
		}
		return Decision{Action: Fold, Reason: "bet covers stack"}
	}

	if s.Category >= evaluator.ThreeOfAKind && r < p.Aggression {
		size := max(2*s.ToCall, int(math.Floor(float64(s.Pot)*(0.5+p.Aggression*0.5))))
		return raise(size, s, "strong hand")
	}

	potOdds := s.PotOdds()
	if hasPair && potOdds < 0.5-p.CallStickiness*0.3 {
		return Decision{Action: Call, Reason: "pot odds"}
	}

	if r < p.BluffChance && potOdds < 0.2 {
		return raise(max(3*s.ToCall, 3*s.BigBlind), s, "bluff")
	}

	return Decision{Action: Fold, Reason: "weak hand"}
}

func raise(size int, s Situation, reason string) Decision {
	size = min(size, s.Stack-s.ToCall)
	if size <= 0 {
		return Decision{Action: Call, Reason: reason}
	}
	return Decision{Action: Raise, Amount: size, Reason: reason}
}

// Policy draws the random factor for Decide
type Policy struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewPolicy creates a policy using rng for its random factor
func NewPolicy(rng *rand.Rand, logger *log.Logger) *Policy {
	return &Policy{rng: rng, logger: logger.WithPrefix("bot")}
}

// Decide picks an action for the situation at the given difficulty
func (p *Policy) Decide(s Situation, d Difficulty) Decision {
	r := p.rng.Float64()
	dec := Decide(s, d, r)
	p.logger.Debug("Bot decision",
		"difficulty", d,
		"category", s.Category,
		"toCall", s.ToCall,
		"pot", s.Pot,
		"stack", s.Stack,
		"roll", r,
		"action", dec.Action,
		"amount", dec.Amount,
		"reason", dec.Reason)
	return dec
}
