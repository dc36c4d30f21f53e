// Package config loads the tutor's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/randutil"
)

// DefaultFile is read when no config path is given
const DefaultFile = "holdem-tutor.hcl"

// Config is the complete configuration
type Config struct {
	Game   *GameSettings   `hcl:"game,block"`
	Server *ServerSettings `hcl:"server,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// GameSettings configures the engine for a session
type GameSettings struct {
	StartingChips  int    `hcl:"starting_chips,optional"`
	SmallBlind     int    `hcl:"small_blind,optional"`
	BigBlind       int    `hcl:"big_blind,optional"`
	Difficulty     string `hcl:"difficulty,optional"`
	Guided         bool   `hcl:"guided,optional"`
	HumanName      string `hcl:"human_name,optional"`
	BotName        string `hcl:"bot_name,optional"`
	KickerTiebreak bool   `hcl:"kicker_tiebreak,optional"`
	Seed           int64  `hcl:"seed,optional"`
}

// ServerSettings configures the websocket server
type ServerSettings struct {
	Address    string `hcl:"address,optional"`
	Port       int    `hcl:"port,optional"`
	BotDelayMS int    `hcl:"bot_delay_ms,optional"`
}

// LogSettings configures logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	if diags := gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}

	g := c.Game
	if g.StartingChips == 0 {
		g.StartingChips = game.DefaultStartingChips
	}
	if g.SmallBlind == 0 {
		g.SmallBlind = game.DefaultSmallBlind
	}
	if g.BigBlind == 0 {
		g.BigBlind = game.DefaultBigBlind
	}
	if g.Difficulty == "" {
		g.Difficulty = "easy"
	}
	if g.HumanName == "" {
		g.HumanName = game.DefaultHumanName
	}
	if g.BotName == "" {
		g.BotName = game.DefaultBotName
	}

	s := c.Server
	if s.Address == "" {
		s.Address = "localhost"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.BotDelayMS == 0 {
		s.BotDelayMS = 1500
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the configuration for values the engine cannot run with
func (c *Config) Validate() error {
	g := c.Game
	if g.SmallBlind <= 0 {
		return fmt.Errorf("game: small blind must be positive")
	}
	if g.BigBlind <= g.SmallBlind {
		return fmt.Errorf("game: big blind must be greater than small blind")
	}
	if g.StartingChips < g.BigBlind {
		return fmt.Errorf("game: starting chips must cover the big blind")
	}
	if _, err := bot.ParseDifficulty(g.Difficulty); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server: invalid port: %d", c.Server.Port)
	}
	if c.Server.BotDelayMS < 0 {
		return fmt.Errorf("server: bot delay must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Address returns the server listen address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// EngineOptions translates the game block into engine options. The seed is
// resolved here, so a zero seed gets a fresh time-based one each call.
func (c *Config) EngineOptions() []game.Option {
	g := c.Game
	difficulty, _ := bot.ParseDifficulty(g.Difficulty)
	return []game.Option{
		game.WithRNG(randutil.New(randutil.Seed(g.Seed))),
		game.WithStartingChips(g.StartingChips),
		game.WithBlinds(g.SmallBlind, g.BigBlind),
		game.WithPlayerNames(g.HumanName, g.BotName),
		game.WithDifficulty(difficulty),
		game.WithGuidedMode(g.Guided),
		game.WithKickerTiebreak(g.KickerTiebreak),
	}
}
