package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-tutor/internal/bot"
	"github.com/lox/holdem-tutor/internal/deck"
	"github.com/lox/holdem-tutor/internal/randutil"
)

const (
	humanSeat = 0
	botSeat   = 1
	numSeats  = 2
)

// Engine runs a heads-up session between a human seat and a bot seat. It is
// not safe for concurrent use; hosts serialise calls.
type Engine struct {
	logger *log.Logger
	rng    *rand.Rand
	policy *bot.Policy
	cfg    *engineConfig

	players   []*Player
	deck      *deck.Deck
	community []deck.Card
	stage     Stage
	pot       int
	betting   *BettingRound
	actor     int
	dealer    int
	message   string
	result    *HandResult

	difficulty      bot.Difficulty
	guided          bool
	awaitingAdvance bool

	handNumber int
	handChips  int // chips on the table when the hand started
	actions    []ActionRecord
	stats      Stats
}

// New creates an engine with two seats: seat 0 is the human, seat 1 the bot.
// No hand is dealt until StartNewRound.
func New(logger *log.Logger, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randutil.New(time.Now().UnixNano())
	}

	e := &Engine{
		logger:     logger.WithPrefix("game"),
		rng:        cfg.rng,
		policy:     bot.NewPolicy(cfg.rng, logger),
		cfg:        cfg,
		betting:    NewBettingRound(numSeats),
		stage:      HandOver,
		actor:      -1,
		difficulty: cfg.difficulty,
		guided:     cfg.guided,
		message:    "Welcome! Deal a hand to begin.",
	}
	e.players = []*Player{
		{Seat: humanSeat, Name: cfg.humanName, Human: true, Chips: cfg.startingChips},
		{Seat: botSeat, Name: cfg.botName, Chips: cfg.startingChips},
	}

	// the dealer rotates before every hand, so start one seat behind the first button
	button := cfg.button
	if button < 0 || button >= numSeats {
		button = botSeat
	}
	e.dealer = (button + numSeats - 1) % numSeats
	return e
}

// IsGameOver reports whether the human or every bot seat is out of chips
func (e *Engine) IsGameOver() bool {
	human := e.players[humanSeat]
	if human.Out || human.Chips <= 0 {
		return true
	}
	for _, p := range e.players {
		if !p.Human && !p.Out && p.Chips > 0 {
			return false
		}
	}
	return true
}

// AmountToCall returns what seat still owes to match the current bet
func (e *Engine) AmountToCall(seat int) int {
	if seat < 0 || seat >= len(e.players) {
		return 0
	}
	return e.betting.AmountToCall(e.players[seat])
}

// StartNewRound deals a new hand: rotate the dealer, shuffle a fresh deck,
// deal hole cards and post blinds. It returns ErrGameOver once the session
// has ended, ErrHandInProgress while the current hand is unfinished, or a
// deck error if the hand could not be dealt.
func (e *Engine) StartNewRound() error {
	if e.handNumber > 0 && e.stage < Showdown {
		e.logger.Warn("Ignoring new round, hand in progress", "hand", e.handNumber, "stage", e.stage)
		e.message = "Finish the current hand before dealing a new one."
		return ErrHandInProgress
	}
	if e.IsGameOver() {
		e.message = "Game over! Thank you for playing."
		e.actor = -1
		e.stage = HandOver
		return ErrGameOver
	}

	e.stage = PreFlop
	e.community = e.community[:0]
	e.pot = 0
	e.result = nil
	e.actor = -1
	e.awaitingAdvance = false
	e.actions = e.actions[:0]
	e.betting.Reset()
	e.handChips = 0
	for _, p := range e.players {
		if !p.Out {
			p.resetForHand()
		}
		e.handChips += p.Chips
	}

	e.dealer = e.nextSeat(e.dealer, func(p *Player) bool { return !p.Out })
	e.handNumber++

	d, err := e.cfg.deckSource(e.rng)
	if err != nil {
		e.logger.Error("Deck initialization failed", "error", err)
		e.message = "Error: Deck initialization failed."
		e.stage = HandOver
		return err
	}
	e.deck = d

	if err := e.dealHoleCards(); err != nil {
		e.abortHand(err)
		return err
	}
	e.postBlinds()

	e.logger.Info("Hand started",
		"hand", e.handNumber,
		"dealer", e.players[e.dealer].Name,
		"pot", e.pot,
		"currentBet", e.betting.CurrentBet)

	e.message = "New hand started. Cards dealt!"
	if e.betting.IsComplete(e.players) {
		return e.endBettingRound()
	}
	e.setActor(e.nextSeat(e.dealer-1, (*Player).CanAct))
	return nil
}

// dealHoleCards deals two rounds of one card per seat, starting left of the dealer
func (e *Engine) dealHoleCards() error {
	for round := 0; round < 2; round++ {
		for i := 1; i <= numSeats; i++ {
			p := e.players[(e.dealer+i)%numSeats]
			if p.Out {
				continue
			}
			c, err := e.deck.Draw()
			if err != nil {
				return fmt.Errorf("deal hole cards: %w", err)
			}
			p.Hand = append(p.Hand, c)
		}
	}
	return nil
}

// postBlinds has the dealer post the small blind and the other seat the big blind
func (e *Engine) postBlinds() {
	sb := e.players[e.dealer]
	bb := e.players[e.nextSeat(e.dealer, func(p *Player) bool { return !p.Out })]

	sbAmount := sb.commit(e.cfg.smallBlind)
	e.pot += sbAmount
	e.record(sb, "small blind", sbAmount, fmt.Sprintf("%s posts small blind $%d", sb.Name, sbAmount))

	bbAmount := bb.commit(e.cfg.bigBlind)
	e.pot += bbAmount
	e.record(bb, "big blind", bbAmount, fmt.Sprintf("%s posts big blind $%d", bb.Name, bbAmount))

	e.betting.CurrentBet = max(sb.BetThisRound, bb.BetThisRound)
}

// nextSeat returns the first seat after from satisfying ok, or -1
func (e *Engine) nextSeat(from int, ok func(*Player) bool) int {
	for i := 1; i <= numSeats; i++ {
		seat := ((from+i)%numSeats + numSeats) % numSeats
		if ok(e.players[seat]) {
			return seat
		}
	}
	return -1
}

// setActor hands the turn to seat and sets the prompt for it
func (e *Engine) setActor(seat int) {
	e.actor = seat
	e.awaitingAdvance = false
	if seat < 0 {
		return
	}

	p := e.players[seat]
	var prompt string
	switch {
	case p.Human:
		prompt = "Your turn to act."
	case e.guided:
		prompt = fmt.Sprintf("%s's turn - Click 'Next Move' to continue", p.Name)
		e.awaitingAdvance = true
	default:
		prompt = fmt.Sprintf("%s is thinking...", p.Name)
	}
	e.message = joinMessage(e.message, prompt)
}

func joinMessage(event, prompt string) string {
	if event == "" {
		return prompt
	}
	return event + " " + prompt
}

// abortHand returns every contribution after a dealing failure and ends the hand
func (e *Engine) abortHand(err error) {
	e.logger.Error("Hand aborted", "hand", e.handNumber, "error", err)
	for _, p := range e.players {
		p.Chips += p.TotalBet
		p.BetThisRound = 0
		p.TotalBet = 0
		p.AllIn = false
	}
	e.pot = 0
	e.betting.Reset()
	e.actor = -1
	e.awaitingAdvance = false
	e.stage = HandOver
	if errors.Is(err, deck.ErrEmptyDeck) {
		e.message = "Error: ran out of cards. The hand was cancelled and bets returned."
	} else {
		e.message = fmt.Sprintf("Error: %v. The hand was cancelled and bets returned.", err)
	}
}

func (e *Engine) record(p *Player, action string, amount int, message string) {
	e.actions = append(e.actions, ActionRecord{
		Stage:   e.stage,
		Seat:    p.Seat,
		Name:    p.Name,
		Action:  action,
		Amount:  amount,
		Message: message,
	})
	e.logger.Debug("Action", "player", p.Name, "action", action, "amount", amount, "pot", e.pot)
}

// Difficulty returns the bot's current difficulty
func (e *Engine) Difficulty() bot.Difficulty {
	return e.difficulty
}

// SetDifficulty changes the difficulty used for the bot's next decision
func (e *Engine) SetDifficulty(d bot.Difficulty) {
	e.difficulty = d
	e.logger.Info("Difficulty changed", "difficulty", d)
}

// CycleDifficulty moves to the next difficulty and returns it
func (e *Engine) CycleDifficulty() bot.Difficulty {
	e.SetDifficulty(e.difficulty.Next())
	return e.difficulty
}

// Guided reports whether guided mode is on
func (e *Engine) Guided() bool {
	return e.guided
}

// SetGuidedMode toggles guided mode. Switching it on while the bot is due to
// act parks the turn until AdvanceTurn; switching it off releases a parked turn.
func (e *Engine) SetGuidedMode(guided bool) {
	e.guided = guided
	if e.actor < 0 || e.players[e.actor].Human || e.stage >= Showdown || e.awaitingAdvance == guided {
		return
	}
	e.awaitingAdvance = guided
	name := e.players[e.actor].Name
	if guided {
		e.message = fmt.Sprintf("%s's turn - Click 'Next Move' to continue", name)
	} else {
		e.message = fmt.Sprintf("%s is thinking...", name)
	}
}
