package pet

import (
	"fmt"
	"log"
)

// Activity is what the pet is currently doing
type Activity int

const (
	Idle Activity = iota
	Playing
	Sleeping
	Eating
	Bathing
)

func (a Activity) String() string {
	switch a {
	case Idle:
		return "Idle"
	case Playing:
		return "Playing"
	case Sleeping:
		return "Sleeping"
	case Eating:
		return "Eating"
	case Bathing:
		return "Bathing"
	default:
		return fmt.Sprintf("Activity(%d)", int(a))
	}
}

// Emoji returns the status icon for the activity
func (a Activity) Emoji() string {
	switch a {
	case Playing:
		return StatusEmojiPlaying
	case Sleeping:
		return StatusEmojiSleeping
	case Eating:
		return StatusEmojiEating
	case Bathing:
		return StatusEmojiBathing
	default:
		return StatusEmojiIdle
	}
}

// dwellEpsilon absorbs float drift when dwell time is counted down in frames
const dwellEpsilon = 1e-9

// begin moves an idle pet into a timed activity. It reports false when the
// pet is already busy, in which case nothing changes.
func (p *Pet) begin(a Activity, duration float64) bool {
	if p.activity != Idle {
		log.Printf("%s is busy %s, ignoring %s", p.Name, p.activity, a)
		return false
	}
	p.activity = a
	p.dwell = duration
	p.dwellTotal = duration
	p.emit(Event{
		Kind:     EventActivityStarted,
		Activity: a,
		Message:  fmt.Sprintf("%s started %s", p.Name, activityVerb(a)),
	})
	return true
}

// finish returns the pet to Idle and clears every countdown
func (p *Pet) finish(reason string) {
	if p.activity == Idle {
		return
	}
	prev := p.activity
	p.activity = Idle
	p.dwell = 0
	p.dwellTotal = 0
	if prev == Sleeping {
		log.Printf("%s woke up (%s, energy: %.0f)", p.Name, reason, p.stats.Energy)
	}
	p.emit(Event{
		Kind:     EventActivityEnded,
		Activity: prev,
		Message:  fmt.Sprintf("%s finished %s", p.Name, activityVerb(prev)),
	})
}

// advanceActivity counts down the current dwell and returns to Idle when it
// runs out, or for sleep when energy is fully restored.
func (p *Pet) advanceActivity(dt float64) {
	if p.activity == Idle {
		return
	}
	p.dwell -= dt
	if p.dwell <= dwellEpsilon {
		p.finish("duration elapsed")
		return
	}
	if p.activity == Sleeping && p.stats.Energy >= AutoWakeEnergy {
		p.finish("fully rested")
	}
}

// Interrupt cancels the current activity and returns to Idle immediately.
// Effects already granted at the start of the activity are kept.
func (p *Pet) Interrupt() bool {
	if p.activity == Idle {
		return false
	}
	p.finish("interrupted")
	return true
}

// Wake interrupts sleep. It is a no-op for a pet that is not sleeping.
func (p *Pet) Wake() bool {
	if p.activity != Sleeping {
		return false
	}
	p.finish("woken by player")
	return true
}

// Engaged reports whether a player-driven activity is in progress, during
// which autonomous decisions are suppressed.
func (p *Pet) Engaged() bool {
	return p.activity != Idle && p.activity != Sleeping
}

// DwellRemaining returns the seconds left in the current activity
func (p *Pet) DwellRemaining() float64 {
	if p.dwell < 0 {
		return 0
	}
	return p.dwell
}

// DwellProgress returns how far through the current activity the pet is, in [0,1]
func (p *Pet) DwellProgress() float64 {
	if p.activity == Idle || p.dwellTotal <= 0 {
		return 0
	}
	progress := 1 - p.dwell/p.dwellTotal
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func activityVerb(a Activity) string {
	switch a {
	case Playing:
		return "playing"
	case Sleeping:
		return "sleeping"
	case Eating:
		return "eating"
	case Bathing:
		return "bathing"
	default:
		return "idling"
	}
}
