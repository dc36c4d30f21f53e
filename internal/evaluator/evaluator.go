// Package evaluator classifies poker hands into categories.
//
// Showdowns in the tutor compare categories only; two pairs of different
// ranks tie. Score7 offers a kicker-accurate score for callers that opt in.
package evaluator

import (
	"github.com/lox/holdem-tutor/internal/deck"
)

// EvaluateFive classifies exactly five cards. The result does not depend on
// the order of the cards.
func EvaluateFive(cards [5]deck.Card) Category {
	var counts [deck.Ace + 1]int
	flush := true
	for i, c := range cards {
		counts[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	var pairs, trips, quads int
	for r := deck.Two; r <= deck.Ace; r++ {
		switch counts[r] {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}
	straight := isStraight(counts[:])

	switch {
	case flush && straight:
		if counts[deck.Ace] > 0 && counts[deck.King] > 0 {
			return RoyalFlush
		}
		return StraightFlush
	case quads > 0:
		return FourOfAKind
	case trips > 0 && pairs > 0:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case trips > 0:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs == 1:
		return Pair
	default:
		return HighCard
	}
}

// isStraight reports five consecutive distinct ranks, or the A-2-3-4-5 wheel.
func isStraight(counts []int) bool {
	run := 0
	for r := deck.Two; r <= deck.Ace; r++ {
		if counts[r] == 0 {
			run = 0
			continue
		}
		run++
		if run >= 5 {
			return true
		}
	}
	return counts[deck.Ace] > 0 && counts[deck.Two] > 0 && counts[deck.Three] > 0 &&
		counts[deck.Four] > 0 && counts[deck.Five] > 0
}

// BestCategory returns the strongest category available in cards.
//
// With five or more cards every five-card subset is evaluated (21 for seven
// cards). With fewer than five cards a partial heuristic is used that only
// looks for quads, trips, a pair, or cards that all share a suit; it is meant
// for bot heuristics on early streets, never for showdown.
func BestCategory(cards []deck.Card) Category {
	if len(cards) < 5 {
		return partialCategory(cards)
	}

	best := HighCard
	forEachFive(cards, func(five [5]deck.Card) {
		if c := EvaluateFive(five); c > best {
			best = c
		}
	})
	return best
}

func partialCategory(cards []deck.Card) Category {
	if len(cards) == 0 {
		return HighCard
	}

	var counts [deck.Ace + 1]int
	suited := true
	for _, c := range cards {
		counts[c.Rank]++
		if c.Suit != cards[0].Suit {
			suited = false
		}
	}

	most := 0
	for _, n := range counts {
		most = max(most, n)
	}
	switch {
	case most >= 4:
		return FourOfAKind
	case most == 3:
		return ThreeOfAKind
	case most == 2:
		return Pair
	case suited:
		return Flush
	default:
		return HighCard
	}
}

// forEachFive calls fn with every five-card combination of cards.
func forEachFive(cards []deck.Card, fn func([5]deck.Card)) {
	n := len(cards)
	var five [5]deck.Card
	for a := 0; a < n-4; a++ {
		five[0] = cards[a]
		for b := a + 1; b < n-3; b++ {
			five[1] = cards[b]
			for c := b + 1; c < n-2; c++ {
				five[2] = cards[c]
				for d := c + 1; d < n-1; d++ {
					five[3] = cards[d]
					for e := d + 1; e < n; e++ {
						five[4] = cards[e]
						fn(five)
					}
				}
			}
		}
	}
}
