package game

import (
	"github.com/lox/holdem-tutor/internal/deck"
)

// Player is one seat at the table
type Player struct {
	Seat         int         `json:"seat"`
	Name         string      `json:"name"`
	Human        bool        `json:"human"`
	Chips        int         `json:"chips"`
	Hand         []deck.Card `json:"hand"`
	Folded       bool        `json:"folded"`
	AllIn        bool        `json:"all_in"`
	Out          bool        `json:"out"`            // busted; never cleared within a session
	BetThisRound int         `json:"bet_this_round"` // committed in the current betting round
	TotalBet     int         `json:"total_bet"`      // committed over the whole hand
}

// InHand reports whether the player still contests the pot
func (p *Player) InHand() bool {
	return !p.Folded && !p.Out
}

// CanAct reports whether the player can still take a betting action
func (p *Player) CanAct() bool {
	return !p.Folded && !p.Out && !p.AllIn
}

// commit moves up to amount chips from the stack into the pot and returns
// what was actually committed. An emptied stack marks the player all-in.
func (p *Player) commit(amount int) int {
	amount = max(0, min(amount, p.Chips))
	p.Chips -= amount
	p.BetThisRound += amount
	p.TotalBet += amount
	if p.Chips == 0 && amount > 0 {
		p.AllIn = true
	}
	return amount
}

func (p *Player) resetForHand() {
	p.Hand = p.Hand[:0]
	p.Folded = false
	p.AllIn = false
	p.BetThisRound = 0
	p.TotalBet = 0
}

func (p *Player) clone() Player {
	c := *p
	c.Hand = append([]deck.Card(nil), p.Hand...)
	return c
}
