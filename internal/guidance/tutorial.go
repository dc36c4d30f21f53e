package guidance

import (
	"github.com/lox/holdem-tutor/internal/evaluator"
	"github.com/lox/holdem-tutor/internal/game"
)

// TutorialTip returns the teaching note for a stage
func TutorialTip(s game.Stage) string {
	switch s {
	case game.PreFlop:
		return "Pre-flop is about starting hand selection. Play tight and aggressive with premium hands."
	case game.Flop:
		return "The flop reveals 60% of your final hand. Look for pairs, draws, and board texture."
	case game.Turn:
		return "The turn card can change everything. Re-evaluate your hand strength and drawing odds."
	case game.River:
		return "Final betting round. Focus on value betting strong hands and bluff catching."
	default:
		return "Observe the action and learn from each decision."
	}
}

// Ranking is one row of the hand rankings cheat sheet
type Ranking struct {
	Category    evaluator.Category `json:"-"`
	Hand        string             `json:"hand"`
	Description string             `json:"description"`
	Example     string             `json:"example"`
	Odds        string             `json:"odds"`
}

var rankings = []struct {
	category    evaluator.Category
	description string
	example     string
}{
	{evaluator.RoyalFlush, "A, K, Q, J, 10, all same suit", "A♠ K♠ Q♠ J♠ 10♠"},
	{evaluator.StraightFlush, "Five cards in sequence, same suit", "9♥ 8♥ 7♥ 6♥ 5♥"},
	{evaluator.FourOfAKind, "Four cards of same rank", "K♠ K♥ K♦ K♣ 3♠"},
	{evaluator.FullHouse, "Three of a kind + pair", "A♠ A♥ A♦ 8♠ 8♥"},
	{evaluator.Flush, "Five cards of same suit", "K♠ J♠ 9♠ 6♠ 4♠"},
	{evaluator.Straight, "Five cards in sequence", "10♠ 9♥ 8♦ 7♣ 6♠"},
	{evaluator.ThreeOfAKind, "Three cards of same rank", "Q♠ Q♥ Q♦ 7♠ 4♥"},
	{evaluator.TwoPair, "Two different pairs", "A♠ A♥ 8♦ 8♣ K♠"},
	{evaluator.Pair, "Two cards of same rank", "10♠ 10♥ K♦ 6♣ 4♠"},
	{evaluator.HighCard, "No matching cards", "A♠ J♥ 9♦ 7♣ 5♠"},
}

// HandRankings returns the cheat sheet, strongest hand first
func HandRankings() []Ranking {
	out := make([]Ranking, len(rankings))
	for i, r := range rankings {
		hand := r.category.String()
		if r.category == evaluator.Pair {
			hand = "One Pair"
		}
		out[i] = Ranking{
			Category:    r.category,
			Hand:        hand,
			Description: r.description,
			Example:     r.example,
			Odds:        r.category.Odds(),
		}
	}
	return out
}
