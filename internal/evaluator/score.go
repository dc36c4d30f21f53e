package evaluator

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/lox/holdem-tutor/internal/deck"
)

// Score is a kicker-accurate hand value. Larger is better; equal scores are
// genuine ties.
type Score int16

func toPoker(c deck.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	default:
		var zero poker.Card
		return zero, fmt.Errorf("invalid suit in %v", c)
	}
	// aces are rank 1 in the poker package
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

func toPokerCards(cards []deck.Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPoker(c)
		if err != nil {
			return nil, err
		}
		out[i] = pc
	}
	return out, nil
}

// ScoreCards returns the score of the best five-card hand in five to seven cards.
func ScoreCards(cards []deck.Card) (Score, error) {
	_, score, err := bestFive(cards)
	return score, err
}

// Detail describes the best five-card hand in plain English, including
// kickers.
func Detail(cards []deck.Card) (string, error) {
	best, _, err := bestFive(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(best[:])
}

func bestFive(cards []deck.Card) ([5]poker.Card, Score, error) {
	var best [5]poker.Card
	if len(cards) < 5 || len(cards) > 7 {
		return best, 0, fmt.Errorf("need 5 to 7 cards, got %d", len(cards))
	}
	pcs, err := toPokerCards(cards)
	if err != nil {
		return best, 0, err
	}

	first := true
	var top int16
	for _, five := range fives(pcs) {
		if s := poker.Eval5(&five); first || s > top {
			best, top, first = five, s, false
		}
	}
	return best, Score(top), nil
}

func fives(pcs []poker.Card) [][5]poker.Card {
	var out [][5]poker.Card
	n := len(pcs)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						out = append(out, [5]poker.Card{pcs[a], pcs[b], pcs[c], pcs[d], pcs[e]})
					}
				}
			}
		}
	}
	return out
}
