package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("holdem-tutor"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestPlayIsTheDefaultCommand(t *testing.T) {
	cli, ctx := parse(t)
	assert.Equal(t, "play", ctx.Command())
	assert.Equal(t, "holdem-tutor.hcl", cli.Config)
}

func TestSimulateFlags(t *testing.T) {
	cli, ctx := parse(t, "simulate", "--sessions", "5", "--hero", "easy", "-o", "out.json")
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 5, cli.Simulate.Sessions)
	assert.Equal(t, 200, cli.Simulate.Hands)
	assert.Equal(t, "easy", cli.Simulate.Hero)
	assert.Equal(t, "hard", cli.Simulate.Bot)
	assert.Equal(t, "out.json", cli.Simulate.Output)
}

func TestSetupAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tutor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
game {
  difficulty = "hard"
}
log {
  level = "warn"
}
`), 0o644))

	g := &Globals{Config: path, LogLevel: "debug"}
	var buf bytes.Buffer
	cfg, logger, closeFn, err := g.setup(&buf)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, "hard", cfg.Game.Difficulty)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetupWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "tutor.log")
	g := &Globals{Config: filepath.Join(dir, "missing.hcl"), LogFile: logPath}

	var buf bytes.Buffer
	_, logger, closeFn, err := g.setup(&buf)
	require.NoError(t, err)
	logger.Info("to file")
	closeFn()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, buf.String())
}

func TestSetupRejectsInvalidLevel(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), LogLevel: "loud"}
	_, _, _, err := g.setup(&bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid configuration")
}
