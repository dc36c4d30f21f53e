package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/deck"
	"github.com/lox/holdem-tutor/internal/evaluator"
)

// HandlePlayerAction applies the human seat's action. raise is the requested
// increment over the amount to call and is only read for Raise.
//
// Actions submitted when the hand is over or it is not the human's turn are
// ignored and return ErrHandOver or ErrOutOfTurn; only the message changes. A check while a bet is owed
// is converted to a fold. Any error from dealing the next street aborts the
// hand and is returned.
func (e *Engine) HandlePlayerAction(action Action, raise int) error {
	if e.stage >= Showdown {
		e.logger.Warn("Ignoring action, hand is over", "action", action)
		e.message = "The hand is over. Deal a new hand to continue."
		return ErrHandOver
	}
	if e.actor != humanSeat {
		e.logger.Warn("Ignoring action out of turn", "action", action, "actor", e.actor)
		e.message = "It's not your turn."
		return ErrOutOfTurn
	}
	if action < Fold || action > Raise {
		return &ActionError{Seat: humanSeat, Action: action, Reason: "unknown action"}
	}

	e.apply(humanSeat, action, raise)
	return e.advance(humanSeat)
}

// ComputeBotDecision asks the bot policy what the seat to act would do,
// without changing any state.
func (e *Engine) ComputeBotDecision() (bot.Decision, error) {
	if err := e.checkBotTurn(); err != nil {
		return bot.Decision{}, err
	}
	p := e.players[e.actor]
	cards := e.cardsFor(p)
	return e.policy.Decide(bot.Situation{
		Category: evaluator.BestCategory(cards),
		ToCall:   e.betting.AmountToCall(p),
		Pot:      e.pot,
		Stack:    p.Chips,
		BigBlind: e.cfg.bigBlind,
	}, e.difficulty), nil
}

// ApplyDecision applies a bot decision for the seat to act
func (e *Engine) ApplyDecision(d bot.Decision) error {
	if err := e.checkBotTurn(); err != nil {
		return err
	}
	seat := e.actor
	e.awaitingAdvance = false

	var action Action
	switch d.Action {
	case bot.Fold:
		action = Fold
	case bot.Check:
		action = Check
	case bot.Call:
		action = Call
	case bot.Raise:
		action = Raise
	default:
		return &ActionError{Seat: seat, Action: Fold, Reason: fmt.Sprintf("unknown bot action %d", d.Action)}
	}

	e.apply(seat, action, d.Amount)
	return e.advance(seat)
}

// TriggerBotAction computes and applies one bot turn. Used in automatic mode
// after the host's thinking delay.
func (e *Engine) TriggerBotAction() error {
	if err := e.checkBotTurn(); err != nil {
		return err
	}
	if e.awaitingAdvance {
		return ErrAwaitingAdvance
	}
	return e.botTurn()
}

// AdvanceTurn releases a bot turn held by guided mode and plays it
func (e *Engine) AdvanceTurn() error {
	if !e.guided || !e.awaitingAdvance || e.actor < 0 || e.players[e.actor].Human {
		return ErrNotAwaitingAdvance
	}
	e.awaitingAdvance = false
	return e.botTurn()
}

func (e *Engine) botTurn() error {
	d, err := e.ComputeBotDecision()
	if err != nil {
		return err
	}
	return e.ApplyDecision(d)
}

func (e *Engine) checkBotTurn() error {
	if e.stage >= Showdown {
		return ErrHandOver
	}
	if e.actor < 0 || e.players[e.actor].Human {
		return ErrNotBotTurn
	}
	return nil
}

// apply performs one betting action for seat and records it
func (e *Engine) apply(seat int, action Action, raise int) {
	p := e.players[seat]
	toCall := e.betting.AmountToCall(p)

	var msg string
	amount := 0
	switch action {
	case Fold:
		p.Folded = true
		msg = fmt.Sprintf("%s folds.", p.Name)

	case Check:
		if toCall == 0 {
			msg = fmt.Sprintf("%s checks.", p.Name)
			break
		}
		p.Folded = true
		action = Fold
		msg = fmt.Sprintf("%s folds (cannot check with bet to call).", p.Name)
		e.logger.Warn("Illegal check converted to fold",
			"error", &ActionError{Seat: seat, Action: Check, Reason: fmt.Sprintf("$%d to call", toCall)})

	case Call, Raise:
		increment := 0
		if action == Raise {
			increment = min(max(e.cfg.bigBlind, raise), p.Chips-toCall)
			if increment <= 0 {
				action = Call
			}
		}
		if action == Call && toCall == 0 {
			action = Check
			msg = fmt.Sprintf("%s checks.", p.Name)
			break
		}

		amount = p.commit(toCall + increment)
		e.pot += amount
		if action == Raise && p.BetThisRound > e.betting.CurrentBet {
			e.betting.CurrentBet = p.BetThisRound
			e.betting.LastAggressor = seat
			e.betting.ResetActed(seat)
		}

		switch {
		case p.AllIn:
			msg = fmt.Sprintf("%s is all-in with $%d!", p.Name, amount)
		case action == Call:
			msg = fmt.Sprintf("%s calls $%d.", p.Name, amount)
		default:
			msg = fmt.Sprintf("%s raises to $%d.", p.Name, e.betting.CurrentBet)
		}
	}

	e.betting.MarkActed(seat)
	e.message = msg
	e.record(p, action.String(), amount, msg)
}

// advance moves play on after seat acted: to the next actor, the next street
// or the end of the hand.
func (e *Engine) advance(seat int) error {
	if e.betting.IsComplete(e.players) {
		return e.endBettingRound()
	}
	next := e.nextSeat(seat, (*Player).CanAct)
	if next < 0 {
		return e.endBettingRound()
	}
	e.setActor(next)
	return nil
}

// endBettingRound closes the street and deals the next one, or resolves the hand
func (e *Engine) endBettingRound() error {
	for _, p := range e.players {
		p.BetThisRound = 0
	}
	e.betting.Reset()
	e.actor = -1
	e.awaitingAdvance = false

	inHand, canAct := 0, 0
	for _, p := range e.players {
		if p.InHand() {
			inHand++
		}
		if p.CanAct() {
			canAct++
		}
	}
	if inHand <= 1 {
		e.defaultWin()
		return nil
	}

	if canAct < 2 {
		for e.stage < River {
			if err := e.dealStreet(); err != nil {
				return err
			}
		}
		e.showdown()
		return nil
	}

	if e.stage == River {
		e.showdown()
		return nil
	}
	if err := e.dealStreet(); err != nil {
		return err
	}
	e.setActor(e.nextSeat(e.dealer, (*Player).CanAct))
	return nil
}

// dealStreet moves to the next stage and deals its community cards
func (e *Engine) dealStreet() error {
	var n int
	var msg string
	switch e.stage {
	case PreFlop:
		n, msg = 3, "Flop dealt!"
	case Flop:
		n, msg = 1, "Turn dealt!"
	case Turn:
		n, msg = 1, "River dealt!"
	default:
		return nil
	}

	cards, err := e.deck.DrawN(n)
	if err != nil {
		err = fmt.Errorf("deal %s: %w", e.stage+1, err)
		e.abortHand(err)
		return err
	}
	e.stage++
	e.community = append(e.community, cards...)
	e.message = joinMessage(e.message, msg)
	e.logger.Debug("Street dealt", "stage", e.stage, "board", cards, "pot", e.pot)
	return nil
}

// refundUncalled returns chips a player committed beyond what anyone else
// put in, which nobody could call.
func (e *Engine) refundUncalled() {
	top := 0
	for _, p := range e.players {
		if p.TotalBet > e.players[top].TotalBet {
			top = p.Seat
		}
	}
	second := 0
	for _, p := range e.players {
		if p.Seat != top {
			second = max(second, p.TotalBet)
		}
	}

	p := e.players[top]
	excess := p.TotalBet - second
	if excess <= 0 || !p.InHand() {
		return
	}
	p.TotalBet -= excess
	p.Chips += excess
	p.AllIn = false
	e.pot -= excess
	e.logger.Debug("Uncalled bet returned", "player", p.Name, "amount", excess)
}

// showdown splits the pot between the players holding the best category
func (e *Engine) showdown() {
	e.stage = Showdown
	e.refundUncalled()

	type contender struct {
		p        *Player
		category evaluator.Category
		score    evaluator.Score
	}
	var contenders []contender
	for _, p := range e.players {
		if !p.InHand() {
			continue
		}
		cards := e.cardsFor(p)
		c := contender{p: p, category: evaluator.BestCategory(cards)}
		if e.cfg.kickers {
			score, err := evaluator.ScoreCards(cards)
			if err != nil {
				e.logger.Warn("Kicker scoring failed, using category only", "player", p.Name, "error", err)
			}
			c.score = score
		}
		contenders = append(contenders, c)
	}

	var winners []contender
	for _, c := range contenders {
		switch {
		case len(winners) == 0 || c.category > winners[0].category ||
			(c.category == winners[0].category && c.score > winners[0].score):
			winners = []contender{c}
		case c.category == winners[0].category && c.score == winners[0].score:
			winners = append(winners, c)
		}
	}

	pot := e.pot
	share := pot / len(winners)
	remainder := pot % len(winners)
	names := make([]string, len(winners))
	for i, w := range winners {
		payout := share
		if i < remainder {
			payout++
		}
		w.p.Chips += payout
		names[i] = w.p.Name
	}

	desc := winners[0].category.String()
	e.result = &HandResult{
		WinnerNames: names,
		WinningHand: desc,
		WinnerIndex: winners[0].p.Seat,
		Amount:      pot,
	}
	if detail, err := evaluator.Detail(e.cardsFor(winners[0].p)); err == nil {
		e.result.Detail = detail
	}

	if len(winners) == 1 {
		e.message = fmt.Sprintf("%s wins $%d with %s!", names[0], pot, desc)
	} else {
		e.message = fmt.Sprintf("Split pot! %s win $%d each with %s!", strings.Join(names, " and "), share, desc)
	}

	e.logger.Info("Showdown",
		"hand", e.handNumber,
		"winners", names,
		"category", desc,
		"pot", pot)

	e.pot = 0
	e.stage = HandOver
	e.concludeHand(len(winners) > 1)
}

// defaultWin awards the pot to the only player left in the hand
func (e *Engine) defaultWin() {
	seat := e.nextSeat(-1, (*Player).InHand)
	if seat < 0 {
		e.logger.Error("No player left in hand", "hand", e.handNumber, "pot", e.pot)
		e.stage = HandOver
		return
	}
	winner := e.players[seat]
	pot := e.pot
	winner.Chips += pot
	winner.AllIn = false

	e.message = fmt.Sprintf("%s wins $%d by default!", winner.Name, pot)
	e.result = &HandResult{
		WinnerNames: []string{winner.Name},
		WinningHand: DefaultWinHand,
		WinnerIndex: seat,
		Amount:      pot,
	}
	e.logger.Info("Hand won by default", "hand", e.handNumber, "winner", winner.Name, "pot", pot)

	e.pot = 0
	e.stage = HandOver
	e.concludeHand(false)
}

// concludeHand busts empty stacks, updates session stats and checks that no
// chips were created or lost.
func (e *Engine) concludeHand(split bool) {
	total := 0
	for _, p := range e.players {
		p.BetThisRound = 0
		if p.Chips <= 0 && !p.Out {
			p.Out = true
			p.AllIn = false
			e.logger.Info("Player is out", "player", p.Name)
		}
		total += p.Chips
	}
	if total != e.handChips {
		e.logger.Error("Chip conservation violated",
			"hand", e.handNumber,
			"before", e.handChips,
			"after", total)
	}

	e.stats.HandsPlayed++
	switch {
	case split:
		e.stats.Ties++
	case e.result != nil && e.players[e.result.WinnerIndex].Human:
		e.stats.HumanWins++
	case e.result != nil:
		e.stats.BotWins++
	}

	if e.IsGameOver() {
		e.message = joinMessage(e.message, "Game over!")
	}
}

// cardsFor returns the player's hole cards followed by the board
func (e *Engine) cardsFor(p *Player) []deck.Card {
	cards := make([]deck.Card, 0, len(p.Hand)+len(e.community))
	cards = append(cards, p.Hand...)
	return append(cards, e.community...)
}
