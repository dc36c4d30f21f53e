// Package guidance turns a table snapshot into tutorial advice for the human
// seat. It never changes game state.
package guidance

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-tutor/internal/deck"
	"github.com/lox/holdem-tutor/internal/evaluator"
	"github.com/lox/holdem-tutor/internal/game"
)

// HiddenHand is shown in place of the opponent's hand unless it is revealed
const HiddenHand = "(Hidden Hand)"

// Input is what the advisor looks at
type Input struct {
	PlayerHand     []deck.Card
	OpponentHand   []deck.Card
	Community      []deck.Card
	Stage          game.Stage
	RevealOpponent bool
	Pot            int
	CurrentBet     int
	ToCall         int
}

// Info is the advice shown next to the table
type Info struct {
	Stage        string  `json:"stage"`
	PlayerHand   string  `json:"player_hand"`
	OpponentHand string  `json:"opponent_hand"`
	Strength     string  `json:"strength"`
	PotOdds      string  `json:"pot_odds,omitempty"`
	Advice       string  `json:"advice"`
	StartingHand string  `json:"starting_hand,omitempty"`
	Percentile   float64 `json:"percentile,omitempty"`
	Tip          string  `json:"tip"`
}

// FromSnapshot builds advisor input for seat. The opponent's cards are only
// included when reveal is set.
func FromSnapshot(s game.Snapshot, seat int, reveal bool) Input {
	in := Input{
		Community:      s.Community,
		Stage:          s.Stage,
		RevealOpponent: reveal,
		Pot:            s.Pot,
		CurrentBet:     s.CurrentBet,
		ToCall:         s.ToCall(seat),
	}
	for _, p := range s.Players {
		switch {
		case p.Seat == seat:
			in.PlayerHand = p.Hand
		case reveal:
			in.OpponentHand = p.Hand
		}
	}
	return in
}

// Advise produces the guidance for in
func Advise(in Input) Info {
	player := cardsWith(in.PlayerHand, in.Community)
	category := evaluator.BestCategory(player)

	info := Info{
		Stage:        StageLabel(in.Stage),
		PlayerHand:   category.Article(),
		OpponentHand: HiddenHand,
		Strength:     StrengthLabel(category),
		Tip:          TutorialTip(in.Stage),
	}
	if in.RevealOpponent {
		opp := evaluator.BestCategory(cardsWith(in.OpponentHand, in.Community))
		info.OpponentHand = fmt.Sprintf("%s (Strength: %d)", opp.Article(), int(opp))
	}

	odds := PotOdds(in.ToCall, in.Pot)
	if odds > 0 {
		info.PotOdds = fmt.Sprintf("%.1f%%", odds*100)
	}

	if in.Stage == game.PreFlop && len(in.PlayerHand) == 2 {
		info.StartingHand = StartingHandKey(in.PlayerHand)
		info.Percentile = StartingHandPercentile(in.PlayerHand)
	}

	info.Advice = baseline(category, odds) + ". " + stageAdvice(in, category)
	return info
}

// PotOdds is the share of the final pot a call represents, toCall/(pot+toCall)
func PotOdds(toCall, pot int) float64 {
	if toCall <= 0 || pot+toCall <= 0 {
		return 0
	}
	return float64(toCall) / float64(pot+toCall)
}

// StageLabel returns the display name for a stage
func StageLabel(s game.Stage) string {
	switch s {
	case game.PreFlop:
		return "Pre-Flop"
	case game.Flop:
		return "Flop"
	case game.Turn:
		return "Turn"
	case game.River:
		return "River"
	case game.Showdown:
		return "Showdown"
	case game.HandOver:
		return "Hand Complete"
	default:
		return "Unknown"
	}
}

// StrengthLabel grades a category from Weak to Very Strong
func StrengthLabel(c evaluator.Category) string {
	switch {
	case c >= evaluator.Straight:
		return "Very Strong"
	case c >= evaluator.ThreeOfAKind:
		return "Strong"
	case c >= evaluator.TwoPair:
		return "Good"
	case c >= evaluator.Pair:
		return "Decent"
	default:
		return "Weak"
	}
}

func baseline(c evaluator.Category, potOdds float64) string {
	switch {
	case c >= evaluator.ThreeOfAKind:
		return "Strong hand - consider raising"
	case c >= evaluator.Pair && potOdds < 0.3:
		return "Decent hand - calling might be safe"
	case c >= evaluator.Pair:
		return "Consider folding if facing large bets"
	default:
		return "Weak hand - consider folding unless pot odds are very favorable"
	}
}

func stageAdvice(in Input, c evaluator.Category) string {
	switch in.Stage {
	case game.PreFlop:
		return preFlopAdvice(in.PlayerHand)
	case game.Flop:
		return flopAdvice(in.PlayerHand, in.Community, c)
	case game.Turn, game.River:
		return turnRiverAdvice(in.PlayerHand, in.Community, c)
	default:
		return "Play based on your hand strength and position."
	}
}

func preFlopAdvice(hole []deck.Card) string {
	if len(hole) < 2 {
		return "Wait for your cards."
	}
	a, b := hole[0], hole[1]
	pair := a.Rank == b.Rank
	suited := a.Suit == b.Suit
	connected := a.Rank-b.Rank <= 1 && b.Rank-a.Rank <= 1
	high := a.Rank >= deck.Jack || b.Rank >= deck.Jack

	switch {
	case pair && a.Rank >= deck.Ten:
		return "Premium pair - consider raising aggressively"
	case pair && a.Rank >= deck.Seven:
		return "Good pair - play cautiously but confidently"
	case pair:
		return "Small pair - consider calling to see the flop"
	case high && suited:
		return "Strong suited high cards - good raising hand"
	case high && connected:
		return "Connected high cards - solid calling hand"
	case high:
		return "High cards - play carefully, position matters"
	case suited && connected:
		return "Suited connectors - speculative hand, good in late position"
	default:
		return "Marginal hand - consider folding unless in late position"
	}
}

func flopAdvice(hole, board []deck.Card, c evaluator.Category) string {
	d := AnalyzeDraws(hole, board)
	switch {
	case c >= evaluator.ThreeOfAKind:
		return "Strong made hand - bet for value and protection"
	case c >= evaluator.Pair && (d.FlushDraw || d.StraightDraw):
		return "Pair with draws - good semi-bluffing opportunity"
	case c >= evaluator.Pair:
		return "Made pair - bet for value if top pair, check-call if weak"
	case d.FlushDraw && d.StraightDraw:
		return "Monster draw - play aggressively, many outs"
	case d.FlushDraw || d.StraightDraw:
		return "Drawing hand - consider semi-bluffing or calling"
	default:
		return "Missed flop - consider folding unless you have position"
	}
}

func turnRiverAdvice(hole, board []deck.Card, c evaluator.Category) string {
	if c >= evaluator.TwoPair {
		return "Strong hand - bet for value, don't slow play"
	}
	if c >= evaluator.Pair {
		if AnalyzeBoard(board).Dangerous {
			return "Decent hand but dangerous board - proceed with caution"
		}
		return "Made hand - bet for value if strong, check-call if marginal"
	}
	if d := AnalyzeDraws(hole, board); d.FlushDraw || d.StraightDraw {
		return "Still drawing - calculate pot odds carefully"
	}
	return "Weak hand - consider folding unless pot odds are very favorable"
}

// Draws summarises drawing chances
type Draws struct {
	FlushDraw    bool
	StraightDraw bool
	Outs         int
}

// AnalyzeDraws looks for exactly four cards of a suit and four consecutive
// ranks among the hole and board cards. Outs are a rough estimate.
func AnalyzeDraws(hole, board []deck.Card) Draws {
	cards := cardsWith(hole, board)

	var suits [4]int
	for _, c := range cards {
		suits[c.Suit]++
	}
	d := Draws{FlushDraw: slices.Contains(suits[:], 4)}

	ranks := uniqueRanks(cards)
	for i := 0; i+3 < len(ranks); i++ {
		if ranks[i+3]-ranks[i] == 3 {
			d.StraightDraw = true
			break
		}
	}

	switch {
	case d.FlushDraw && d.StraightDraw:
		d.Outs = 15
	case d.FlushDraw:
		d.Outs = 9
	case d.StraightDraw:
		d.Outs = 8
	}
	return d
}

// Texture describes the board
type Texture struct {
	FlushPossible    bool
	StraightPossible bool
	Dangerous        bool // a flush or straight could already be made
	Wet              bool // dangerous, or showing a ten or higher
}

// AnalyzeBoard classifies community cards. Fewer than three cards is never dangerous.
func AnalyzeBoard(board []deck.Card) Texture {
	if len(board) < 3 {
		return Texture{}
	}

	var suits [4]int
	high := false
	for _, c := range board {
		suits[c.Suit]++
		if c.Rank >= deck.Ten {
			high = true
		}
	}

	var t Texture
	for _, n := range suits {
		if n >= 3 {
			t.FlushPossible = true
		}
	}
	ranks := uniqueRanks(board)
	t.StraightPossible = len(ranks) >= 3 && ranks[len(ranks)-1]-ranks[0] <= 4
	t.Dangerous = t.FlushPossible || t.StraightPossible
	t.Wet = t.Dangerous || high
	return t
}

func uniqueRanks(cards []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, 0, len(cards))
	for _, c := range cards {
		ranks = append(ranks, c.Rank)
	}
	slices.Sort(ranks)
	return slices.Compact(ranks)
}

func cardsWith(hole, board []deck.Card) []deck.Card {
	cards := make([]deck.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	return append(cards, board...)
}
