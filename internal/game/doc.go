// Package game implements the heads-up Texas Hold'em round controller used
// by the tutor.
//
// The main type is Engine, which owns the two seats (a human and a bot), the
// deck, the pot and the betting state, and moves a hand through
// pre-flop, flop, turn, river and showdown.
//
// # Basic Usage
//
//	e := game.New(logger, game.WithRNG(randutil.New(42)))
//	if err := e.StartNewRound(); err != nil {
//	    // game over, or the deck could not be built
//	}
//	snap := e.Snapshot()
//	if snap.HumanToAct {
//	    _ = e.HandlePlayerAction(game.Call, 0)
//	}
//	if e.Snapshot().BotToAct {
//	    _ = e.TriggerBotAction()
//	}
//
// # Bot turns
//
// The engine never sleeps or schedules work. In automatic mode the caller
// invokes TriggerBotAction when Snapshot reports BotToAct, after whatever
// delay it likes. In guided mode the engine parks on the bot's turn until
// AdvanceTurn is called. ComputeBotDecision and ApplyDecision split a bot
// turn in two for callers that want to show the decision before applying it.
//
// # Deterministic Testing
//
// Inject a seeded RNG with WithRNG, or a fixed card order with
// WithDeckSource and deck.FromCards.
package game
