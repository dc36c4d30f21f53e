package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-tutor/internal/game"
	"github.com/lox/holdem-tutor/internal/server"
)

// ServeCmd serves tutorial sessions to browsers
type ServeCmd struct {
	Addr string `help:"Listen address, host:port (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, closeLog, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	addr := cfg.Address()
	if c.Addr != "" {
		addr = c.Addr
	}

	s := server.NewServer(addr, logger,
		server.WithBotDelay(time.Duration(cfg.Server.BotDelayMS)*time.Millisecond),
		server.WithEngineFactory(func(l *log.Logger) *game.Engine {
			return game.New(l, cfg.EngineOptions()...)
		}))

	logger.Info("Starting holdem-tutor server",
		"address", addr,
		"small_blind", cfg.Game.SmallBlind,
		"big_blind", cfg.Game.BigBlind,
		"starting_chips", cfg.Game.StartingChips,
		"difficulty", cfg.Game.Difficulty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}
