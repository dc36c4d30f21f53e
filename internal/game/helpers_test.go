package game

import (
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/deck"
	"github.com/lox/holdem-tutor/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithRNG(randutil.New(1))}, opts...)
	return New(quietLogger(), opts...)
}

// stacked puts front on top of an otherwise ordered full deck
func stacked(front ...deck.Card) []deck.Card {
	used := make(map[deck.Card]bool, len(front))
	for _, c := range front {
		used[c] = true
	}
	cards := append([]deck.Card(nil), front...)
	for _, c := range deck.FullDeck() {
		if !used[c] {
			cards = append(cards, c)
		}
	}
	return cards
}

// humanDeals orders hole cards for a hand where the human is the dealer:
// the bot, left of the dealer, receives the first card of each round.
func humanDeals(human, botHand, board string) []deck.Card {
	h, b := deck.MustParseCards(human), deck.MustParseCards(botHand)
	return stacked(append([]deck.Card{b[0], h[0], b[1], h[1]}, deck.MustParseCards(board)...)...)
}

// botDeals orders hole cards for a hand where the bot is the dealer
func botDeals(human, botHand, board string) []deck.Card {
	h, b := deck.MustParseCards(human), deck.MustParseCards(botHand)
	return stacked(append([]deck.Card{h[0], b[0], h[1], b[1]}, deck.MustParseCards(board)...)...)
}

// deckSequence deals the given decks for successive hands; a nil entry or
// running off the end shuffles a fresh deck.
func deckSequence(decks ...[]deck.Card) Option {
	i := 0
	return WithDeckSource(func(rng *rand.Rand) (*deck.Deck, error) {
		defer func() { i++ }()
		if i < len(decks) && decks[i] != nil {
			return deck.FromCards(decks[i]...), nil
		}
		return deck.New(rng)
	})
}

// checkDown calls or checks for both seats until the hand is over
func checkDown(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 20; i++ {
		s := e.Snapshot()
		switch {
		case s.HandOver():
			return
		case s.HumanToAct:
			require.NoError(t, e.HandlePlayerAction(Call, 0))
		case s.CurrentActor >= 0:
			require.NoError(t, e.ApplyDecision(bot.Decision{Action: bot.Call}))
		default:
			t.Fatalf("nobody to act at %v", s.Stage)
		}
	}
	t.Fatal("hand did not finish")
}
