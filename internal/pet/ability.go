package pet

import (
	"fmt"
	"log"

	"animora/internal/balancing"
)

// Ability is a species-specific special move. Activate applies the effect
// and returns a message, or "" when the ability could not take effect; in
// that case no cooldown is consumed.
type Ability struct {
	Name        string
	Description string
	Cooldown    float64 // seconds of simulated time
	Activate    func(p *Pet) string
}

// Special ability tuning
const (
	DefaultAbilityCooldown = 60.0
	HealingAuraAmount      = 20.0
	RebirthHealthBoost     = 50.0
	RebirthCooldown        = 1440.0
	RebirthHealthTrigger   = 10.0
	RechargeAmount         = 40.0
	SplitDuration          = 30.0
	SplitMoodBoost         = 10.0
)

// Abilities is the capability table keyed by species. Species without an
// entry have no special ability.
var Abilities = map[balancing.PetType]Ability{
	balancing.Dragon: {
		Name:        "Fire Breath",
		Description: "Breathes fire that can light candles and campfires.",
		Cooldown:    DefaultAbilityCooldown,
		Activate: func(p *Pet) string {
			return fmt.Sprintf("%s breathes a plume of fire!", p.Name)
		},
	},
	balancing.Unicorn: {
		Name:        "Healing Aura",
		Description: "Creates a magical aura that heals.",
		Cooldown:    DefaultAbilityCooldown,
		Activate: func(p *Pet) string {
			p.stats.ClampAdd(StatHealth, HealingAuraAmount)
			return fmt.Sprintf("%s glows with a healing aura (+%.0f health)", p.Name, HealingAuraAmount)
		},
	},
	balancing.Phoenix: {
		Name:        "Rebirth",
		Description: "Is reborn from its ashes, restoring health. Triggers on its own when near death.",
		Cooldown:    RebirthCooldown,
		Activate: func(p *Pet) string {
			p.stats.ClampAdd(StatHealth, RebirthHealthBoost)
			return fmt.Sprintf("%s rises from the ashes! (+%.0f health)", p.Name, RebirthHealthBoost)
		},
	},
	balancing.Robot: {
		Name:        "Recharge",
		Description: "Recharges its battery, restoring some energy.",
		Cooldown:    DefaultAbilityCooldown,
		Activate: func(p *Pet) string {
			gain := RechargeAmount * 0.5
			p.stats.ClampAdd(StatEnergy, gain)
			return fmt.Sprintf("%s recharges its battery (+%.0f energy)", p.Name, gain)
		},
	},
	balancing.Slime: {
		Name:        "Split",
		Description: "Temporarily splits into two slimes.",
		Cooldown:    DefaultAbilityCooldown,
		Activate: func(p *Pet) string {
			if p.splitRemaining > 0 {
				return ""
			}
			p.splitRemaining = SplitDuration
			return fmt.Sprintf("%s splits in two!", p.Name)
		},
	},
}

// Ability returns the pet's special ability, if its species has one
func (p *Pet) Ability() (Ability, bool) {
	a, ok := Abilities[p.Type]
	return a, ok
}

// AbilityCooldown returns the seconds until the ability can be used again
func (p *Pet) AbilityCooldown() float64 {
	if p.clock >= p.abilityReadyAt {
		return 0
	}
	return p.abilityReadyAt - p.clock
}

// CanUseAbility reports whether the pet has an ability that is off cooldown
func (p *Pet) CanUseAbility() bool {
	_, ok := p.Ability()
	return ok && p.AbilityCooldown() == 0
}

// UseAbility activates the special ability. It reports false when the pet
// has none, it is cooling down, or it could not take effect.
func (p *Pet) UseAbility() (string, bool) {
	a, ok := p.Ability()
	if !ok || !p.CanUseAbility() {
		return "", false
	}
	msg := a.Activate(p)
	if msg == "" {
		return "", false
	}
	p.abilityReadyAt = p.clock + a.Cooldown
	log.Printf("%s used %s", p.Name, a.Name)
	p.emit(Event{Kind: EventAbility, Message: msg})
	return msg, true
}

// advanceAbilities runs timed ability effects and automatic triggers
func (p *Pet) advanceAbilities(dt float64) {
	if p.splitRemaining > 0 {
		p.splitRemaining -= dt
		if p.splitRemaining <= 0 {
			p.splitRemaining = 0
			p.stats.ClampAdd(StatMood, SplitMoodBoost)
			p.emit(Event{
				Kind:    EventAbility,
				Message: fmt.Sprintf("%s reabsorbs its other half (+%.0f mood)", p.Name, SplitMoodBoost),
			})
		}
	}

	if p.Type == balancing.Phoenix && p.stats.Health < RebirthHealthTrigger && p.CanUseAbility() {
		p.UseAbility()
	}
}

// Split reports whether a slime currently has its other half out
func (p *Pet) Split() bool {
	return p.splitRemaining > 0
}
