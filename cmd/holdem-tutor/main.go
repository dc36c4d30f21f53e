package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"holdem-tutor.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	LogFile  string `help:"Write logs to this file (overrides config)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play against the bot in the terminal"`
	Serve    ServeCmd         `cmd:"" help:"Serve tutorial sessions over websockets"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-vs-bot sessions and report results"`
	Rankings RankingsCmd      `cmd:"" help:"Print the hand rankings cheat sheet"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-tutor"),
		kong.Description("Heads-up Texas Hold'em tutor: play a bot and learn as you go"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
