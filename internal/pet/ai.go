package pet

import (
	"fmt"
	"log"
)

// Idle behaviors picked at random when no need is urgent
const (
	idleHappy = iota
	idleWander
	idleNothing
	idleBehaviorCount
)

// runAI advances the decision and wander timers. It only acts on an idle
// pet; energy below ForceSleepThreshold bypasses the decision interval.
func (p *Pet) runAI(dt float64) {
	if p.activity == Idle && p.stats.Energy < ForceSleepThreshold {
		log.Printf("%s fell asleep from exhaustion (energy: %.0f)", p.Name, p.stats.Energy)
		p.beginSleep()
	}

	p.decisionTimer -= dt
	if p.decisionTimer <= 0 {
		p.decisionTimer = randRange(MinDecisionInterval, MaxDecisionInterval)
		if p.activity == Idle {
			p.decide()
		}
	}

	p.wanderTimer -= dt
	if p.wanderTimer <= 0 {
		p.wanderTimer = randRange(MinWanderInterval, MaxWanderInterval)
		if p.activity == Idle {
			p.wander()
		}
	}
}

// decide evaluates needs in fixed priority: hunger, cleanliness, mood,
// energy, then a random idle behavior.
func (p *Pet) decide() {
	switch {
	case p.stats.Hunger < UrgentNeedThreshold:
		p.emit(Event{Kind: EventSeekingFood, Message: fmt.Sprintf("%s is looking for food", p.Name)})
	case p.stats.Cleanliness < UrgentNeedThreshold:
		p.emit(Event{Kind: EventWantsCleaning, Message: fmt.Sprintf("%s wants to be cleaned", p.Name)})
	case p.stats.Mood < UrgentNeedThreshold:
		p.emit(Event{Kind: EventWantsPlay, Message: fmt.Sprintf("%s wants to play", p.Name)})
	case p.stats.Energy < UrgentNeedThreshold:
		log.Printf("%s is tired and goes to bed (energy: %.0f)", p.Name, p.stats.Energy)
		p.beginSleep()
	default:
		switch randIndex(idleBehaviorCount) {
		case idleHappy:
			p.emit(Event{Kind: EventHappy, Message: fmt.Sprintf("%s is happy!", p.Name)})
		case idleWander:
			p.wander()
		case idleNothing:
		}
	}
}

func (p *Pet) wander() {
	p.emit(Event{
		Kind:    EventWander,
		Target:  RandFloat64(),
		Message: fmt.Sprintf("%s wanders around", p.Name),
	})
}

func (p *Pet) beginSleep() bool {
	return p.begin(Sleeping, randRange(MinSleepSeconds, MaxSleepSeconds))
}

func randRange(lo, hi float64) float64 {
	return lo + RandFloat64()*(hi-lo)
}

func randIndex(n int) int {
	i := int(RandFloat64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
