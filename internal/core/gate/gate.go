// Package gate is the admission and cooldown state machine in front of the
// resolver
//
//	Idle --Admit--> Resolving --Reject--> Idle
//	                Resolving --Accept--> Cooldown --Elapse--> Idle
//	any  --Close--> Closed
//
// Events offered while not Idle are dropped, never queued. A Gate is not safe
// for concurrent use, the owning session serializes access
package gate

import (
	"time"

	ptime "stockcount/internal/platform/time"
)

// DefaultCooldown is how long the gate stays shut after an accepted scan
const DefaultCooldown = 2000 * time.Millisecond

// State of the gate
type State uint8

const (
	Idle State = iota
	Resolving
	Cooldown
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Cooldown:
		return "cooldown"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Snapshot is the externally visible gate state
type Snapshot struct {
	State    State
	IsOpen   bool
	InFlight bool
}

// Token identifies one armed cooldown, a stale token never reopens the gate
type Token uint64

// Gate owns the gate state and the single outstanding cooldown timer
type Gate struct {
	state    State
	cooldown time.Duration
	sched    ptime.Scheduler
	timer    ptime.Handle
	gen      Token
}

// New returns an Idle gate, a zero cooldown means DefaultCooldown and a nil
// scheduler means real timers
func New(cooldown time.Duration, sched ptime.Scheduler) *Gate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if sched == nil {
		sched = ptime.Real()
	}
	return &Gate{state: Idle, cooldown: cooldown, sched: sched}
}

// State returns the current state
func (g *Gate) State() State { return g.state }

// Cooldown returns the configured cooldown duration
func (g *Gate) Cooldown() time.Duration { return g.cooldown }

// Snapshot returns isOpen and inFlight for the current state
func (g *Gate) Snapshot() Snapshot {
	return Snapshot{
		State:    g.state,
		IsOpen:   g.state == Idle,
		InFlight: g.state == Resolving,
	}
}

// Admit moves Idle to Resolving, false means the event must be dropped
func (g *Gate) Admit() bool {
	if g.state != Idle {
		return false
	}
	g.state = Resolving
	return true
}

// Reject moves Resolving back to Idle with no cooldown
func (g *Gate) Reject() {
	if g.state == Resolving {
		g.state = Idle
	}
}

// Accept moves Resolving to Cooldown and arms the timer, onElapsed receives
// the token to hand back to Elapse
func (g *Gate) Accept(onElapsed func(Token)) Token {
	if g.state != Resolving {
		return 0
	}
	ptime.Cancel(g.timer)
	g.gen++
	tok := g.gen
	g.state = Cooldown
	g.timer = g.sched.Schedule(g.cooldown, func() { onElapsed(tok) })
	return tok
}

// Elapse reopens the gate if tok is the armed cooldown
func (g *Gate) Elapse(tok Token) bool {
	if g.state != Cooldown || tok != g.gen {
		return false
	}
	g.state = Idle
	g.timer = nil
	return true
}

// Close cancels any pending cooldown and shuts the gate for good
func (g *Gate) Close() {
	if g.state == Closed {
		return
	}
	ptime.Cancel(g.timer)
	g.timer = nil
	g.gen++
	g.state = Closed
}
