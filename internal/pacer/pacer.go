// Package pacer delays bot turns so a human can follow the action.
//
// The engine never waits on its own; hosts in automatic mode hand the bot's
// turn to a Pacer, which runs it after the configured thinking delay.
package pacer

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Pacer runs at most one pending callback after a fixed delay
type Pacer struct {
	clock  quartz.Clock
	delay  time.Duration
	logger *log.Logger

	mu    sync.Mutex
	timer *quartz.Timer
	gen   uint64
}

// New creates a pacer. Use quartz.NewReal() outside tests.
func New(clock quartz.Clock, delay time.Duration, logger *log.Logger) *Pacer {
	return &Pacer{
		clock:  clock,
		delay:  delay,
		logger: logger.WithPrefix("pacer"),
	}
}

// Delay returns the configured delay
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Schedule runs fn after the delay, replacing any callback still pending
func (p *Pacer) Schedule(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	gen := p.gen
	p.timer = p.clock.AfterFunc(p.delay, func() {
		p.mu.Lock()
		if gen != p.gen {
			p.mu.Unlock()
			return
		}
		p.timer = nil
		p.mu.Unlock()
		fn()
	}, "pacer")
	p.logger.Debug("Scheduled", "delay", p.delay)
}

// Cancel drops the pending callback. It reports whether one was pending.
func (p *Pacer) Cancel() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer == nil {
		return false
	}
	p.timer.Stop()
	p.timer = nil
	p.gen++
	return true
}

// Pending reports whether a callback is waiting to run
func (p *Pacer) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.timer != nil
}
