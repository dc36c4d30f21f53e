// Package simulator plays bot-against-bot sessions on the tutorial engine to
// compare difficulty levels and check that the engine stays consistent over
// many hands.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/deck"
	"github.com/lox/holdem-tutor/internal/evaluator"
	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/randutil"
	"github.com/lox/holdem-tutor/internal/statistics"
)

// maxStepsPerHand bounds the actions in a single hand. Heads-up betting with
// capped raises never comes close.
const maxStepsPerHand = 500

// Config holds configuration for running simulations
type Config struct {
	Sessions       int
	MaxHands       int // per session; 0 plays until someone busts
	Workers        int
	Seed           int64
	HeroDifficulty bot.Difficulty // plays the human seat
	BotDifficulty  bot.Difficulty
	EngineOptions  []game.Option
	Logger         *log.Logger
}

// SessionResult is the outcome of one session
type SessionResult struct {
	Seed       int64
	Hands      int
	HeroWins   int
	BotWins    int
	Ties       int
	Showdowns  int
	HeroChips  int
	BotChips   int
	HeroBusted bool
	BotBusted  bool
	Stats      statistics.Statistics
}

// Summary aggregates every session
type Summary struct {
	Sessions   int
	Hands      int
	HeroWins   int
	BotWins    int
	Ties       int
	Showdowns  int
	HeroBusts  int
	BotBusts   int
	Unfinished int
	Stats      statistics.Statistics // hero results in big blinds
	Results    []SessionResult
}

// HeroWinRate is the share of hands the hero seat won outright
func (s *Summary) HeroWinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.HeroWins) / float64(s.Hands)
}

// ShowdownRate is the share of hands decided at showdown
func (s *Summary) ShowdownRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Showdowns) / float64(s.Hands)
}

func (s *Summary) add(r SessionResult) {
	s.Sessions++
	s.Hands += r.Hands
	s.HeroWins += r.HeroWins
	s.BotWins += r.BotWins
	s.Ties += r.Ties
	s.Showdowns += r.Showdowns
	switch {
	case r.HeroBusted:
		s.HeroBusts++
	case r.BotBusted:
		s.BotBusts++
	default:
		s.Unfinished++
	}
	s.Stats.Merge(&r.Stats)
	s.Results = append(s.Results, r)
}

// Run plays cfg.Sessions sessions in parallel. Session i is seeded with
// randutil.Split(cfg.Seed, i), so results do not depend on the worker count.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if cfg.Sessions <= 0 {
		return nil, fmt.Errorf("sessions must be positive, got %d", cfg.Sessions)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]SessionResult, cfg.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cfg.Sessions {
		seed := randutil.Split(cfg.Seed, i)
		g.Go(func() error {
			r, err := playSession(ctx, cfg, seed)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i, seed, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, r := range results {
		summary.add(r)
	}
	if summary.Hands > 0 {
		if err := summary.Stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed: %w", err)
		}
	}
	cfg.Logger.Info("Simulation complete",
		"sessions", summary.Sessions,
		"hands", summary.Hands,
		"heroWins", summary.HeroWins,
		"botWins", summary.BotWins,
		"ties", summary.Ties)
	return summary, nil
}

// playSession plays one engine until a seat busts or MaxHands is reached
func playSession(ctx context.Context, cfg Config, seed int64) (SessionResult, error) {
	logger := cfg.Logger.With("seed", seed)
	opts := append([]game.Option{}, cfg.EngineOptions...)
	opts = append(opts,
		game.WithRNG(randutil.New(seed)),
		game.WithDifficulty(cfg.BotDifficulty),
		game.WithGuidedMode(false))
	engine := game.New(logger, opts...)
	hero := bot.NewPolicy(randutil.New(randutil.Split(seed, 1)), logger.WithPrefix("hero"))

	result := SessionResult{Seed: seed}
	total := engine.Snapshot().ChipTotal()

	for cfg.MaxHands == 0 || result.Hands < cfg.MaxHands {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		heroBefore := engine.Snapshot().Human().Chips
		if err := engine.StartNewRound(); err != nil {
			if engine.IsGameOver() {
				break
			}
			return result, err
		}
		if err := playHand(engine, hero, cfg.HeroDifficulty); err != nil {
			return result, err
		}

		s := engine.Snapshot()
		result.Hands++
		if s.Revealed() {
			result.Showdowns++
		}
		hr := statistics.HandResult{
			NetBB:    float64(s.Human().Chips-heroBefore) / float64(s.BigBlind),
			Button:   s.Dealer == s.Human().Seat,
			Showdown: s.Revealed(),
		}
		if s.LastHandResult != nil {
			hr.PotBB = float64(s.LastHandResult.Amount) / float64(s.BigBlind)
		}
		result.Stats.Add(hr)
		if got := s.ChipTotal(); got != total {
			return result, fmt.Errorf("hand %d: chip total changed from %d to %d", s.HandNumber, total, got)
		}
		if s.GameOver {
			break
		}
	}

	s := engine.Snapshot()
	result.HeroWins = s.Stats.HumanWins
	result.BotWins = s.Stats.BotWins
	result.Ties = s.Stats.Ties
	result.HeroChips = s.Human().Chips
	result.BotChips = s.Bot().Chips
	result.HeroBusted = s.Human().Out
	result.BotBusted = s.Bot().Out
	return result, nil
}

// playHand drives both seats until the hand is over
func playHand(engine *game.Engine, hero *bot.Policy, difficulty bot.Difficulty) error {
	for range maxStepsPerHand {
		s := engine.Snapshot()
		switch {
		case s.HandOver():
			return nil
		case s.HumanToAct:
			p := s.Human()
			d := hero.Decide(bot.Situation{
				Category: evaluator.BestCategory(append(append([]deck.Card(nil), p.Hand...), s.Community...)),
				ToCall:   s.ToCall(p.Seat),
				Pot:      s.Pot,
				Stack:    p.Chips,
				BigBlind: s.BigBlind,
			}, difficulty)
			if err := engine.HandlePlayerAction(gameAction(d.Action), d.Amount); err != nil {
				return err
			}
		case s.BotToAct:
			if err := engine.TriggerBotAction(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("hand %d stalled at %s with no one to act", s.HandNumber, s.Stage)
		}
	}
	return fmt.Errorf("hand did not finish within %d actions", maxStepsPerHand)
}

func gameAction(a bot.Action) game.Action {
	switch a {
	case bot.Check:
		return game.Check
	case bot.Call:
		return game.Call
	case bot.Raise:
		return game.Raise
	default:
		return game.Fold
	}
}
