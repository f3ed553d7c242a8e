package pet

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"animora/internal/balancing"
	"animora/internal/world"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now().UTC() }
	RandFloat64 = rand.Float64
)

// Pet is a single simulated pet. It owns its stats and references the
// shared balancing profile for its species. A Pet is driven from one
// goroutine through Tick and the action methods.
type Pet struct {
	Name       string
	Type       balancing.PetType
	Level      int
	Experience float64

	stats    Stats
	profile  *balancing.Profile
	settings balancing.Settings
	engine   *DecayEngine

	mood       Mood
	activity   Activity
	dwell      float64
	dwellTotal float64

	// decayScale shrinks the primary decay rates by LevelDecayFactor per level gained
	decayScale float64

	clock          float64 // Simulated seconds since the pet was created or loaded
	decisionTimer  float64
	wanderTimer    float64
	abilityReadyAt float64
	splitRemaining float64

	events []Event
}

// Snapshot is the persisted part of a pet
type Snapshot struct {
	Name       string
	Type       balancing.PetType
	Level      int
	Experience float64
	Stats      Stats
}

// New creates a pet with full stats at level 1
func New(name string, t balancing.PetType, reg *balancing.Registry) *Pet {
	if name == "" {
		name = DefaultPetName
	}
	p := Restore(Snapshot{
		Name:  name,
		Type:  t,
		Level: StartingLevel,
		Stats: FullStats(),
	}, reg)
	log.Printf("Created new %s: %s", t, p.Name)
	return p
}

// Restore rebuilds a pet from persisted state. Out-of-range values are
// clamped; the level bonus is recomputed from the level.
func Restore(s Snapshot, reg *balancing.Registry) *Pet {
	settings := reg.Settings()
	level := s.Level
	if level < StartingLevel {
		level = StartingLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	exp := s.Experience
	if exp < 0 || math.IsNaN(exp) || math.IsInf(exp, 0) {
		exp = 0
	}

	p := &Pet{
		Name:          s.Name,
		Type:          s.Type,
		Level:         level,
		Experience:    exp,
		stats:         s.Stats.Clamped(),
		profile:       reg.Resolve(s.Type),
		settings:      settings,
		engine:        NewDecayEngine(settings),
		activity:      Idle,
		decayScale:    math.Pow(settings.LevelDecayFactor, float64(level-StartingLevel)),
		decisionTimer: randRange(MinDecisionInterval, MaxDecisionInterval),
		wanderTimer:   randRange(MinWanderInterval, MaxWanderInterval),
	}
	p.mood = Classify(p.stats)
	return p
}

// Snapshot captures the persisted part of the pet
func (p *Pet) Snapshot() Snapshot {
	return Snapshot{
		Name:       p.Name,
		Type:       p.Type,
		Level:      p.Level,
		Experience: p.Experience,
		Stats:      p.stats,
	}
}

// Stats returns a copy of the current stat vector
func (p *Pet) Stats() Stats {
	return p.stats
}

// Mood classifies the current stats
func (p *Pet) Mood() Mood {
	return Classify(p.stats)
}

// Activity returns what the pet is doing
func (p *Pet) Activity() Activity {
	return p.activity
}

// Profile returns the shared balancing profile for the pet's species
func (p *Pet) Profile() *balancing.Profile {
	return p.profile
}

// DecayScale returns the cumulative level-up reduction applied to decay rates
func (p *Pet) DecayScale() float64 {
	return p.decayScale
}

// ExperienceToNextLevel returns the experience needed to leave the current level
func (p *Pet) ExperienceToNextLevel() float64 {
	return float64(p.Level) * p.settings.ExperiencePerLevel
}

// Engine returns the decay engine driving this pet
func (p *Pet) Engine() *DecayEngine {
	return p.engine
}

// Tick advances the simulation by elapsedSeconds: decay, sleep recovery,
// activity dwell, ability timers, autonomous decisions, then mood.
func (p *Pet) Tick(elapsedSeconds float64, env world.Environment) {
	if elapsedSeconds <= 0 {
		return
	}
	p.clock += elapsedSeconds

	p.engine.Apply(p, p.engine.Compute(p, env, elapsedSeconds))

	if p.activity == Sleeping {
		p.stats.ClampAdd(StatEnergy, p.sleepRecoveryRate(env)*elapsedSeconds/60)
	}

	p.advanceActivity(elapsedSeconds)
	p.advanceAbilities(elapsedSeconds)
	p.runAI(elapsedSeconds)
	p.updateMood()
}

// sleepRecoveryRate returns energy restored per minute of sleep
func (p *Pet) sleepRecoveryRate(env world.Environment) float64 {
	rate := p.profile.SleepingEffect
	if env.IsNight() {
		rate *= p.settings.SleepRecoveryNightMultiplier
	}
	return rate
}

func (p *Pet) updateMood() {
	mood := Classify(p.stats)
	if mood == p.mood {
		return
	}
	prev := p.mood
	p.mood = mood
	log.Printf("%s mood changed from %s to %s", p.Name, prev, mood)
	p.emit(Event{
		Kind:    EventMoodChanged,
		Mood:    mood,
		Message: fmt.Sprintf("%s is feeling %s", p.Name, mood),
	})
}

// Feed gives the pet food. It reports false when the pet is busy.
func (p *Pet) Feed() bool {
	if !p.begin(Eating, EatingDuration) {
		return false
	}
	p.stats.ClampAdd(StatHunger, p.profile.FeedingEffect)
	log.Printf("Fed %s. Hunger is now %.0f", p.Name, p.stats.Hunger)
	p.updateMood()
	return true
}

// Play plays with the pet. It reports false when the pet is busy.
func (p *Pet) Play() bool {
	if !p.begin(Playing, PlayingDuration) {
		return false
	}
	p.stats.ClampAdd(StatMood, p.profile.PlayingEffect)
	p.stats.ClampAdd(StatEnergy, -PlayEnergyCost)
	log.Printf("Played with %s. Mood is now %.0f, Energy is now %.0f", p.Name, p.stats.Mood, p.stats.Energy)
	p.updateMood()
	return true
}

// Clean bathes the pet. It reports false when the pet is busy.
func (p *Pet) Clean() bool {
	if !p.begin(Bathing, BathingDuration) {
		return false
	}
	p.stats.ClampAdd(StatCleanliness, p.profile.CleaningEffect)
	log.Printf("Cleaned %s. Cleanliness is now %.0f", p.Name, p.stats.Cleanliness)
	p.updateMood()
	return true
}

// Heal restores health instantly. Like every action it is refused while
// the pet is busy.
func (p *Pet) Heal() bool {
	if p.activity != Idle {
		log.Printf("%s is busy %s, ignoring heal", p.Name, p.activity)
		return false
	}
	p.stats.ClampAdd(StatHealth, p.profile.HealingEffect)
	log.Printf("Healed %s. Health is now %.0f", p.Name, p.stats.Health)
	p.updateMood()
	return true
}

// Sleep puts the pet to bed for a random duration. It reports false when
// the pet is busy or already asleep.
func (p *Pet) Sleep() bool {
	if !p.beginSleep() {
		return false
	}
	log.Printf("%s went to sleep", p.Name)
	return true
}

// Adjust applies an outside stat change, such as an item bonus
func (p *Pet) Adjust(d StatDelta) {
	p.engine.Apply(p, d)
	p.updateMood()
}

// AddExperience accumulates experience and levels the pet up. The
// threshold is Level*ExperiencePerLevel as of the call; every level gained
// makes decay slower by LevelDecayFactor. Non-finite amounts are ignored.
func (p *Pet) AddExperience(amount float64) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}
	exp := p.Experience + amount
	if math.IsInf(exp, 0) {
		log.Printf("%s: ignoring experience award %v", p.Name, amount)
		return
	}
	p.Experience = exp

	needed := p.ExperienceToNextLevel()
	if needed <= 0 || p.Experience < needed {
		return
	}

	gained := math.Floor(p.Experience / needed)
	if room := float64(MaxLevel - p.Level); gained >= room {
		gained = room
		p.Experience = 0
	} else {
		p.Experience -= gained * needed
	}
	if gained <= 0 {
		return
	}

	from := p.Level
	levels := int(gained)
	p.Level += levels
	p.decayScale *= math.Pow(p.settings.LevelDecayFactor, gained)
	log.Printf("%s leveled up from %d to %d", p.Name, from, p.Level)

	if levels > MaxLevelUpEvents {
		p.emit(Event{
			Kind:    EventLevelUp,
			Level:   p.Level,
			Message: fmt.Sprintf("%s jumped %d levels to level %d!", p.Name, levels, p.Level),
		})
		return
	}
	for lvl := from + 1; lvl <= p.Level; lvl++ {
		p.emit(Event{
			Kind:    EventLevelUp,
			Level:   lvl,
			Message: fmt.Sprintf("%s leveled up to level %d!", p.Name, lvl),
		})
	}
}

// GrantExperience awards a base amount scaled by species and level
func (p *Pet) GrantExperience(base float64) float64 {
	amount := balancing.ExperienceGain(p.profile, p.settings, p.Level, base)
	p.AddExperience(amount)
	return amount
}
