package game

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/deck"
)

const (
	DefaultStartingChips = 2000
	DefaultSmallBlind    = 50
	DefaultBigBlind      = 100
	DefaultHumanName     = "You"
	DefaultBotName       = "Bot 1"
)

// DeckSource builds the deck for each new hand
type DeckSource func(rng *rand.Rand) (*deck.Deck, error)

// Option configures an Engine during creation
type Option func(*engineConfig)

type engineConfig struct {
	rng           *rand.Rand
	smallBlind    int
	bigBlind      int
	startingChips int
	humanName     string
	botName       string
	difficulty    bot.Difficulty
	guided        bool
	button        int // seat that deals the first hand, -1 for default
	deckSource    DeckSource
	kickers       bool
}

func defaultConfig() *engineConfig {
	return &engineConfig{
		smallBlind:    DefaultSmallBlind,
		bigBlind:      DefaultBigBlind,
		startingChips: DefaultStartingChips,
		humanName:     DefaultHumanName,
		botName:       DefaultBotName,
		difficulty:    bot.Easy,
		button:        -1,
		deckSource:    deck.New,
	}
}

// WithRNG sets the random source for shuffling and bot decisions
func WithRNG(rng *rand.Rand) Option {
	return func(c *engineConfig) {
		c.rng = rng
	}
}

// WithBlinds sets the small and big blind
func WithBlinds(small, big int) Option {
	return func(c *engineConfig) {
		c.smallBlind = small
		c.bigBlind = big
	}
}

// WithStartingChips sets every seat's opening stack
func WithStartingChips(chips int) Option {
	return func(c *engineConfig) {
		c.startingChips = chips
	}
}

// WithPlayerNames names the human and bot seats
func WithPlayerNames(human, botName string) Option {
	return func(c *engineConfig) {
		if human != "" {
			c.humanName = human
		}
		if botName != "" {
			c.botName = botName
		}
	}
}

// WithDifficulty sets the bot's starting difficulty
func WithDifficulty(d bot.Difficulty) Option {
	return func(c *engineConfig) {
		c.difficulty = d
	}
}

// WithGuidedMode starts the engine in guided mode
func WithGuidedMode(guided bool) Option {
	return func(c *engineConfig) {
		c.guided = guided
	}
}

// WithButton makes seat the dealer of the first hand
func WithButton(seat int) Option {
	return func(c *engineConfig) {
		c.button = seat
	}
}

// WithDeckSource replaces the shuffled deck, typically with deck.FromCards in tests
func WithDeckSource(src DeckSource) Option {
	return func(c *engineConfig) {
		c.deckSource = src
	}
}

// WithKickerTiebreak breaks showdown ties between equal categories on kickers.
// Off by default: equal categories split the pot.
func WithKickerTiebreak(enabled bool) Option {
	return func(c *engineConfig) {
		c.kickers = enabled
	}
}
