package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/fileutil"
	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/randutil"
	"github.com/lox/holdem-tutor/internal/simulator"
)

// SimulateCmd pits two bot difficulties against each other
type SimulateCmd struct {
	Sessions int    `default:"100" help:"Number of sessions to play"`
	Hands    int    `default:"200" help:"Maximum hands per session (0 plays until a bust)"`
	Workers  int    `default:"0" help:"Parallel workers (0 uses every CPU)"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Hero     string `default:"medium" help:"Difficulty playing the human seat"`
	Bot      string `default:"hard" help:"Difficulty of the bot seat"`
	Details  bool   `help:"Print a row per session"`
	Output   string `short:"o" help:"Also write the full summary as JSON to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, closeLog, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	hero, err := bot.ParseDifficulty(c.Hero)
	if err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	opponent, err := bot.ParseDifficulty(c.Bot)
	if err != nil {
		return fmt.Errorf("bot: %w", err)
	}
	seed := randutil.Seed(c.Seed)

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d sessions (seed %d)...", c.Sessions, seed))
	start := time.Now()
	summary, err := simulator.Run(context.Background(), simulator.Config{
		Sessions:       c.Sessions,
		MaxHands:       c.Hands,
		Workers:        c.Workers,
		Seed:           seed,
		HeroDifficulty: hero,
		BotDifficulty:  opponent,
		EngineOptions: []game.Option{
			game.WithStartingChips(cfg.Game.StartingChips),
			game.WithBlinds(cfg.Game.SmallBlind, cfg.Game.BigBlind),
			game.WithKickerTiebreak(cfg.Game.KickerTiebreak),
		},
		Logger: logger,
	})
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success(fmt.Sprintf("Played %d hands in %s", summary.Hands, time.Since(start).Round(time.Millisecond)))

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, summary); err != nil {
			return err
		}
		pterm.Info.Printfln("Summary written to %s", c.Output)
	}

	pct := func(n int) string {
		if summary.Hands == 0 {
			return "0.0%"
		}
		return fmt.Sprintf("%.1f%%", float64(n)/float64(summary.Hands)*100)
	}
	data := pterm.TableData{
		{"Result", "Count", "Share"},
		{"Hero (" + hero.String() + ") wins", strconv.Itoa(summary.HeroWins), pct(summary.HeroWins)},
		{"Bot (" + opponent.String() + ") wins", strconv.Itoa(summary.BotWins), pct(summary.BotWins)},
		{"Split pots", strconv.Itoa(summary.Ties), pct(summary.Ties)},
		{"Showdowns", strconv.Itoa(summary.Showdowns), pct(summary.Showdowns)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	st := summary.Stats
	low, high := st.ConfidenceInterval95()
	results := pterm.TableData{
		{"Hero result", "bb/hand"},
		{"Mean", fmt.Sprintf("%.3f", st.Mean())},
		{"95% CI", fmt.Sprintf("[%.3f, %.3f]", low, high)},
		{"Median", fmt.Sprintf("%.3f", st.Median())},
		{"On the button", fmt.Sprintf("%.3f", st.Button.Mean())},
		{"In the big blind", fmt.Sprintf("%.3f", st.BigBlind.Mean())},
		{"Largest pot (bb)", fmt.Sprintf("%.1f", st.MaxPotBB)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(results).Render(); err != nil {
		return err
	}

	sessions := pterm.TableData{
		{"Sessions", "Hero busted", "Bot busted", "Hand limit reached"},
		{strconv.Itoa(summary.Sessions), strconv.Itoa(summary.HeroBusts), strconv.Itoa(summary.BotBusts), strconv.Itoa(summary.Unfinished)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(sessions).Render(); err != nil {
		return err
	}

	if c.Details {
		rows := pterm.TableData{{"Seed", "Hands", "Hero", "Bot", "Split", "Hero chips", "Bot chips"}}
		for _, r := range summary.Results {
			rows = append(rows, []string{
				strconv.FormatInt(r.Seed, 10),
				strconv.Itoa(r.Hands),
				strconv.Itoa(r.HeroWins),
				strconv.Itoa(r.BotWins),
				strconv.Itoa(r.Ties),
				strconv.Itoa(r.HeroChips),
				strconv.Itoa(r.BotChips),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	}
	return nil
}
