package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem-tutor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 2000, c.Game.StartingChips)
	assert.Equal(t, 50, c.Game.SmallBlind)
	assert.Equal(t, 100, c.Game.BigBlind)
	assert.Equal(t, "easy", c.Game.Difficulty)
	assert.Equal(t, "You", c.Game.HumanName)
	assert.Equal(t, "Bot 1", c.Game.BotName)
	assert.Equal(t, "localhost:8080", c.Address())
	assert.Equal(t, 1500, c.Server.BotDelayMS)
	assert.Equal(t, "info", c.Log.Level)
	assert.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
game {
  starting_chips  = 500
  small_blind     = 10
  big_blind       = 20
  difficulty      = "hard"
  guided          = true
  bot_name        = "Robo"
  kicker_tiebreak = true
  seed            = 42
}

server {
  port         = 9000
  bot_delay_ms = 250
}

log {
  level = "debug"
  file  = "tutor.log"
}
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 500, c.Game.StartingChips)
	assert.Equal(t, 20, c.Game.BigBlind)
	assert.Equal(t, "hard", c.Game.Difficulty)
	assert.True(t, c.Game.Guided)
	assert.True(t, c.Game.KickerTiebreak)
	assert.Equal(t, "You", c.Game.HumanName)
	assert.Equal(t, "Robo", c.Game.BotName)
	assert.Equal(t, int64(42), c.Game.Seed)
	assert.Equal(t, "localhost:9000", c.Address())
	assert.Equal(t, 250, c.Server.BotDelayMS)
	assert.Equal(t, "tutor.log", c.Log.File)
	assert.Len(t, c.EngineOptions(), 7)
}

func TestLoadPartialFile(t *testing.T) {
	c, err := Load(writeConfig(t, `log { level = "warn" }`))
	require.NoError(t, err)
	assert.Equal(t, 2000, c.Game.StartingChips)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoadInvalidHCL(t *testing.T) {
	_, err := Load(writeConfig(t, `game { starting_chips = `))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `game { unknown_field = 1 }`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero small blind", func(c *Config) { c.Game.SmallBlind = -1 }},
		{"big blind not above small", func(c *Config) { c.Game.BigBlind = c.Game.SmallBlind }},
		{"stack below big blind", func(c *Config) { c.Game.StartingChips = 50 }},
		{"bad difficulty", func(c *Config) { c.Game.Difficulty = "insane" }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
		{"negative delay", func(c *Config) { c.Server.BotDelayMS = -5 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
