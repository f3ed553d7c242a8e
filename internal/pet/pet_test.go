package pet

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"animora/internal/balancing"
	"animora/internal/world"
)

// mockRand pins RandFloat64 to a fixed value and auto-restores after the test
func mockRand(t *testing.T, v float64) {
	original := RandFloat64
	RandFloat64 = func() float64 { return v }
	t.Cleanup(func() { RandFloat64 = original })
}

func newTestPet(t *testing.T, pt balancing.PetType, stats Stats) *Pet {
	t.Helper()
	p := New("Testy", pt, balancing.NewRegistry(balancing.DefaultSettings()))
	p.stats = stats
	p.mood = Classify(stats)
	// Keep autonomous behavior out of the way unless a test asks for it
	p.decisionTimer = 1e9
	p.wanderTimer = 1e9
	return p
}

func uniformStats(v float64) Stats {
	return Stats{Hunger: v, Mood: v, Energy: v, Cleanliness: v, Health: v}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

var (
	morningIndoor = world.Environment{Indoor: true, Weather: world.Cloudy, TimeOfDay: world.Morning}
)

func TestClampAddKeepsStatsInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := FullStats()

	for i := 0; i < 5000; i++ {
		stat := AllStats[rng.Intn(len(AllStats))]
		delta := (rng.Float64() - 0.5) * 400
		got := s.ClampAdd(stat, delta)

		if got != s.Get(stat) {
			t.Fatalf("ClampAdd returned %v but field is %v", got, s.Get(stat))
		}
		for _, st := range AllStats {
			if v := s.Get(st); v < MinStat || v > MaxStat {
				t.Fatalf("step %d: %s out of range: %v", i, st, v)
			}
		}
	}
}

func TestClampAdd(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{"normal add", 50, 20, 70},
		{"overflow clamps to max", 90, 50, MaxStat},
		{"underflow clamps to min", 10, -50, MinStat},
		{"zero delta", 42, 0, 42},
		{"nan delta is ignored", 42, math.NaN(), 42},
		{"infinite delta clamps to max", 42, math.Inf(1), MaxStat},
		{"negative infinite delta clamps to min", 42, math.Inf(-1), MinStat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := uniformStats(tt.start)
			if got := s.ClampAdd(StatEnergy, tt.delta); got != tt.want {
				t.Errorf("ClampAdd(%v) from %v = %v, want %v", tt.delta, tt.start, got, tt.want)
			}
			if s.Hunger != tt.start {
				t.Errorf("other stats must not change, hunger = %v", s.Hunger)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Mood
	}{
		{"perfect", 100, Happy},
		{"just above 80", 80.1, Happy},
		{"exactly 80 is content", 80, Content},
		{"exactly 60 is neutral", 60, Neutral},
		{"exactly 40 is sad", 40, Sad},
		{"exactly 20 is sick", 20, Sick},
		{"zero", 0, Sick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(uniformStats(tt.value)); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestMoodMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		s := Stats{
			Hunger:      rng.Float64() * MaxStat,
			Mood:        rng.Float64() * MaxStat,
			Energy:      rng.Float64() * MaxStat,
			Cleanliness: rng.Float64() * MaxStat,
			Health:      rng.Float64() * MaxStat,
		}
		before := Classify(s).Rank()

		stat := AllStats[rng.Intn(len(AllStats))]
		s.ClampAdd(stat, rng.Float64()*50)

		if after := Classify(s).Rank(); after < before {
			t.Fatalf("raising %s lowered mood rank from %d to %d", stat, before, after)
		}
	}
}

func TestComputeIsDeterministicAndPure(t *testing.T) {
	p := newTestPet(t, balancing.Fox, Stats{Hunger: 15, Mood: 45, Energy: 18, Cleanliness: 8, Health: 19})
	env := world.Environment{Indoor: false, Weather: world.Snowy, TimeOfDay: world.Night}
	before := p.Stats()

	first := p.Engine().Compute(p, env, 12.5)
	second := p.Engine().Compute(p, env, 12.5)

	if first != second {
		t.Errorf("Compute is not deterministic: %+v vs %+v", first, second)
	}
	if p.Stats() != before {
		t.Error("Compute must not modify the pet")
	}
	if (p.Engine().Compute(p, env, 0) != StatDelta{}) {
		t.Error("zero elapsed time must produce no change")
	}
}

func TestRainyDislikeCompoundsBeforeHungerPenalty(t *testing.T) {
	// Robot dislikes rain and has no location preference
	p := newTestPet(t, balancing.Robot, Stats{Hunger: 15, Mood: 80, Energy: 80, Cleanliness: 80, Health: 80})
	env := world.Environment{Indoor: false, Weather: world.Rainy, TimeOfDay: world.Morning}
	s := balancing.DefaultSettings()
	prof := balancing.DefaultProfile(balancing.Robot)

	delta := p.Engine().Compute(p, env, 60)

	wantMoodDecay := (prof.MoodDecay*1.0*s.DislikedWeatherMoodFactor + s.LowHungerMoodPenalty) * 1.0
	if !approxEqual(-delta.Mood, wantMoodDecay) {
		t.Errorf("mood decay = %v, want %v", -delta.Mood, wantMoodDecay)
	}
	if approxEqual(-delta.Mood, (prof.MoodDecay+s.LowHungerMoodPenalty)*s.DislikedWeatherMoodFactor) {
		t.Error("penalty must be added after the weather multiplier")
	}

	wantEnergyDecay := prof.EnergyDecay * s.RainyEnergyMultiplier
	if !approxEqual(-delta.Energy, wantEnergyDecay) {
		t.Errorf("energy decay = %v, want %v", -delta.Energy, wantEnergyDecay)
	}
	if delta.Health != 0 {
		t.Errorf("hunger 15 is outside the health windows, got health delta %v", delta.Health)
	}
}

func TestDecayRates(t *testing.T) {
	healthy := uniformStats(80)

	tests := []struct {
		name string
		pt   balancing.PetType
		env  world.Environment
		want DecayRates
	}{
		{
			name: "indoor cat during the day",
			pt:   balancing.Cat,
			env:  morningIndoor,
			want: DecayRates{Hunger: 1.8, Mood: 2.0, Energy: 1.5 * 1.2, Cleanliness: 1.0 * 0.7, Health: -3},
		},
		{
			name: "owl at night",
			pt:   balancing.Owl,
			env:  world.Environment{Indoor: true, Weather: world.Cloudy, TimeOfDay: world.Night},
			want: DecayRates{Hunger: 1.7, Mood: 1.5 * 0.8, Energy: 1.3 * 0.7, Cleanliness: 0.7 * 0.7, Health: -3},
		},
		{
			name: "dog outdoors at night",
			pt:   balancing.Dog,
			env:  world.Environment{Indoor: false, Weather: world.Cloudy, TimeOfDay: world.Night},
			want: DecayRates{Hunger: 2.5, Mood: 1.8 * 0.8, Energy: 2.2 * 1.2, Cleanliness: 2.0 * 1.5, Health: -3},
		},
		{
			name: "dog stuck indoors on a sunny day",
			pt:   balancing.Dog,
			env:  world.Environment{Indoor: true, Weather: world.Sunny, TimeOfDay: world.Afternoon},
			want: DecayRates{Hunger: 2.5, Mood: 1.8 * 1.2 * 0.7, Energy: 2.2, Cleanliness: 2.0 * 0.7, Health: -3},
		},
		{
			name: "dragon in disliked snow",
			pt:   balancing.Dragon,
			env:  world.Environment{Indoor: false, Weather: world.Snowy, TimeOfDay: world.Morning},
			want: DecayRates{Hunger: 3.0, Mood: 1.5 * 1.3, Energy: 1.0 * 1.5 * 1.2, Cleanliness: 0.8 * 1.5, Health: -3},
		},
		{
			name: "penguin in preferred snow",
			pt:   balancing.Penguin,
			env:  world.Environment{Indoor: false, Weather: world.Snowy, TimeOfDay: world.Morning},
			want: DecayRates{Hunger: 2.3, Mood: 1.6 * 0.7, Energy: 1.5 * 1.5, Cleanliness: 1.0 * 1.5, Health: -3},
		},
		{
			name: "penguin dislikes sun",
			pt:   balancing.Penguin,
			env:  world.Environment{Indoor: true, Weather: world.Sunny, TimeOfDay: world.Morning},
			want: DecayRates{Hunger: 2.3, Mood: 1.6 * 1.3, Energy: 1.5, Cleanliness: 1.0 * 0.7, Health: -3},
		},
		{
			name: "slime rain dislike outranks its preference",
			pt:   balancing.Slime,
			env:  world.Environment{Indoor: false, Weather: world.Rainy, TimeOfDay: world.Morning},
			want: DecayRates{Hunger: 1.5, Mood: 1.3 * 1.3, Energy: 1.0 * 1.3, Cleanliness: 0, Health: -3},
		},
		{
			name: "indoor slime in the rain",
			pt:   balancing.Slime,
			env:  world.Environment{Indoor: true, Weather: world.Rainy, TimeOfDay: world.Morning},
			want: DecayRates{Hunger: 1.5, Mood: 1.3 * 1.3, Energy: 1.0 * 1.3, Cleanliness: 0, Health: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, tt.pt, healthy)
			got := p.Engine().Rates(p, tt.env)
			if !approxEqual(got.Hunger, tt.want.Hunger) ||
				!approxEqual(got.Mood, tt.want.Mood) ||
				!approxEqual(got.Energy, tt.want.Energy) ||
				!approxEqual(got.Cleanliness, tt.want.Cleanliness) ||
				!approxEqual(got.Health, tt.want.Health) {
				t.Errorf("Rates() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCrossStatPenalties(t *testing.T) {
	s := balancing.DefaultSettings()
	prof := balancing.DefaultProfile(balancing.Cat)

	tests := []struct {
		name       string
		stats      Stats
		wantMood   float64
		wantHealth float64
	}{
		{
			name:       "starving and filthy",
			stats:      Stats{Hunger: 5, Mood: 80, Energy: 80, Cleanliness: 5, Health: 80},
			wantMood:   prof.MoodDecay + s.LowHungerMoodPenalty + s.LowCleanlinessMoodPenalty,
			wantHealth: s.LowHungerHealthPenalty + s.LowCleanlinessHealthPenalty + prof.HealthDecay,
		},
		{
			name:       "hungry but not starving",
			stats:      Stats{Hunger: 15, Mood: 80, Energy: 80, Cleanliness: 80, Health: 80},
			wantMood:   prof.MoodDecay + s.LowHungerMoodPenalty,
			wantHealth: 0,
		},
		{
			name:       "exhausted and unwell",
			stats:      Stats{Hunger: 80, Mood: 80, Energy: 10, Cleanliness: 80, Health: 10},
			wantMood:   prof.MoodDecay + s.LowEnergyMoodPenalty + s.LowHealthMoodPenalty,
			wantHealth: 0,
		},
		{
			name:       "healthy pet regenerates",
			stats:      Stats{Hunger: 60, Mood: 80, Energy: 60, Cleanliness: 80, Health: 70},
			wantMood:   prof.MoodDecay,
			wantHealth: -s.HealthRegenRate,
		},
		{
			name:       "full health does not regenerate",
			stats:      Stats{Hunger: 60, Mood: 80, Energy: 60, Cleanliness: 80, Health: 100},
			wantMood:   prof.MoodDecay,
			wantHealth: 0,
		},
	}

	// Daytime indoors with no weather preference: the cat's mood rate is its base rate
	env := world.Environment{Indoor: true, Weather: world.Cloudy, TimeOfDay: world.Afternoon}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, balancing.Cat, tt.stats)
			r := p.Engine().Rates(p, env)
			if !approxEqual(r.Mood, tt.wantMood) {
				t.Errorf("mood rate = %v, want %v", r.Mood, tt.wantMood)
			}
			if !approxEqual(r.Health, tt.wantHealth) {
				t.Errorf("health rate = %v, want %v", r.Health, tt.wantHealth)
			}
		})
	}
}

func TestHealthRegenerationStopsAtMax(t *testing.T) {
	p := newTestPet(t, balancing.Dog, Stats{Hunger: 90, Mood: 90, Energy: 90, Cleanliness: 90, Health: 99.99})
	p.Tick(60, morningIndoor)
	if p.Stats().Health != MaxStat {
		t.Errorf("health should cap at %v, got %v", MaxStat, p.Stats().Health)
	}
}

func TestAddExperienceLevelsUpTwice(t *testing.T) {
	p := newTestPet(t, balancing.Dog, uniformStats(80))
	baseRate := p.Engine().Rates(p, morningIndoor).Hunger

	p.AddExperience(250)

	if p.Level != 3 {
		t.Errorf("Level = %d, want 3", p.Level)
	}
	if !approxEqual(p.Experience, 50) {
		t.Errorf("Experience = %v, want 50", p.Experience)
	}
	if !approxEqual(p.DecayScale(), 0.95*0.95) {
		t.Errorf("DecayScale = %v, want %v", p.DecayScale(), 0.95*0.95)
	}
	if got := p.Engine().Rates(p, morningIndoor).Hunger; !approxEqual(got, baseRate*0.95*0.95) {
		t.Errorf("hunger rate after level ups = %v, want %v", got, baseRate*0.95*0.95)
	}
	if n := countEvents(p.DrainEvents(), EventLevelUp); n != 2 {
		t.Errorf("expected 2 level up events, got %d", n)
	}
}

func TestAddExperienceLargeAwards(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		wantLevel  int
		wantExp    float64
		wantEvents int
	}{
		{"several levels collapse into one event", 600, 7, 0, 1},
		{"exactly the event limit", 500, 6, 0, 5},
		{"huge award stops at max level", 1e9, MaxLevel, 0, 1},
		{"max float stops at max level", math.MaxFloat64, MaxLevel, 0, 1},
		{"positive infinity is ignored", math.Inf(1), StartingLevel, 0, 0},
		{"negative infinity is ignored", math.Inf(-1), StartingLevel, 0, 0},
		{"nan is ignored", math.NaN(), StartingLevel, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, balancing.Dog, uniformStats(80))
			p.AddExperience(tt.amount)

			if p.Level != tt.wantLevel || p.Experience != tt.wantExp {
				t.Errorf("got level %d exp %v, want level %d exp %v", p.Level, p.Experience, tt.wantLevel, tt.wantExp)
			}
			if math.IsNaN(p.DecayScale()) || p.DecayScale() <= 0 || p.DecayScale() > 1 {
				t.Errorf("DecayScale = %v, want within (0, 1]", p.DecayScale())
			}
			events := p.DrainEvents()
			if n := countEvents(events, EventLevelUp); n != tt.wantEvents {
				t.Errorf("expected %d level up events, got %d", tt.wantEvents, n)
			}
			if tt.wantEvents > 0 && events[len(events)-1].Level != tt.wantLevel {
				t.Errorf("last event level = %d, want %d", events[len(events)-1].Level, tt.wantLevel)
			}
		})
	}
}

func TestAddExperienceKeepsFiniteTotal(t *testing.T) {
	p := newTestPet(t, balancing.Dog, uniformStats(80))
	p.Experience = math.MaxFloat64 / 2
	p.Level = MaxLevel

	p.AddExperience(math.MaxFloat64)
	if math.IsInf(p.Experience, 0) || math.IsNaN(p.Experience) {
		t.Errorf("Experience = %v, want a finite value", p.Experience)
	}
	if p.Level != MaxLevel {
		t.Errorf("Level = %d, want %d", p.Level, MaxLevel)
	}
}

func TestAdjustIgnoresNaN(t *testing.T) {
	p := newTestPet(t, balancing.Cat, uniformStats(60))
	p.Adjust(StatDelta{Mood: math.NaN(), Hunger: 10})

	s := p.Stats()
	if s.Mood != 60 || s.Hunger != 70 {
		t.Errorf("got mood %v hunger %v, want 60 and 70", s.Mood, s.Hunger)
	}
}

func TestAddExperienceBelowThreshold(t *testing.T) {
	p := newTestPet(t, balancing.Cat, uniformStats(80))
	p.AddExperience(99)
	p.AddExperience(-10)

	if p.Level != 1 || !approxEqual(p.Experience, 99) {
		t.Errorf("got level %d exp %v, want level 1 exp 99", p.Level, p.Experience)
	}

	p.AddExperience(1)
	if p.Level != 2 || p.Experience != 0 {
		t.Errorf("got level %d exp %v, want level 2 exp 0", p.Level, p.Experience)
	}
	if p.ExperienceToNextLevel() != 200 {
		t.Errorf("ExperienceToNextLevel = %v, want 200", p.ExperienceToNextLevel())
	}
}

func TestActionEffects(t *testing.T) {
	tests := []struct {
		name     string
		action   func(p *Pet) bool
		activity Activity
		check    func(before, after Stats) bool
	}{
		{"feed", (*Pet).Feed, Eating, func(b, a Stats) bool { return a.Hunger == b.Hunger+50 }},
		{"play", (*Pet).Play, Playing, func(b, a Stats) bool { return a.Mood == b.Mood+40 && a.Energy == b.Energy-10 }},
		{"clean", (*Pet).Clean, Bathing, func(b, a Stats) bool { return a.Cleanliness == b.Cleanliness+60 }},
		{"heal", (*Pet).Heal, Idle, func(b, a Stats) bool { return a.Health == b.Health+40 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, balancing.Dog, uniformStats(30))
			before := p.Stats()

			if !tt.action(p) {
				t.Fatal("expected action to be accepted from Idle")
			}
			if !tt.check(before, p.Stats()) {
				t.Errorf("unexpected stats after %s: before %+v after %+v", tt.name, before, p.Stats())
			}
			if p.Activity() != tt.activity {
				t.Errorf("Activity = %s, want %s", p.Activity(), tt.activity)
			}
		})
	}
}

func TestActionsAreIdempotentWhileBusy(t *testing.T) {
	p := newTestPet(t, balancing.Dog, uniformStats(30))

	if !p.Feed() {
		t.Fatal("first feed should be accepted")
	}
	p.Tick(1, morningIndoor)
	stats := p.Stats()
	dwell := p.DwellRemaining()

	for _, action := range []func() bool{p.Feed, p.Play, p.Clean, p.Heal, p.Sleep} {
		if action() {
			t.Error("action must be refused while eating")
		}
	}

	if p.Stats() != stats {
		t.Errorf("stats changed while busy: %+v -> %+v", stats, p.Stats())
	}
	if p.DwellRemaining() != dwell {
		t.Errorf("dwell timer changed while busy: %v -> %v", dwell, p.DwellRemaining())
	}
	if p.Activity() != Eating {
		t.Errorf("Activity = %s, want Eating", p.Activity())
	}
}

func TestFeedWhileSleepingIsNoop(t *testing.T) {
	p := newTestPet(t, balancing.Cat, uniformStats(50))
	if !p.Sleep() {
		t.Fatal("expected pet to fall asleep")
	}
	before := p.Stats()

	if p.Feed() {
		t.Error("feeding a sleeping pet must be refused")
	}
	if p.Stats() != before {
		t.Error("stats must not change")
	}
	if p.Activity() != Sleeping {
		t.Errorf("Activity = %s, want Sleeping", p.Activity())
	}
}

func TestIdleReturnGuarantee(t *testing.T) {
	mockRand(t, 0.999) // Longest sleep

	tests := []struct {
		name     string
		start    func(p *Pet) bool
		duration float64
	}{
		{"eating", (*Pet).Feed, EatingDuration},
		{"playing", (*Pet).Play, PlayingDuration},
		{"bathing", (*Pet).Clean, BathingDuration},
		{"sleeping", (*Pet).Sleep, MinSleepSeconds + 0.999*(MaxSleepSeconds-MinSleepSeconds)},
	}

	steps := []float64{1.0 / 60, 0.1, 0.7, 2.5}

	for _, tt := range tests {
		for _, step := range steps {
			t.Run(tt.name, func(t *testing.T) {
				p := newTestPet(t, balancing.Dog, uniformStats(60))
				if !tt.start(p) {
					t.Fatal("activity did not start")
				}

				elapsed := 0.0
				for p.Activity() != Idle {
					p.Tick(step, morningIndoor)
					elapsed += step
					if elapsed > tt.duration+step+1e-6 {
						t.Fatalf("still %s after %.3fs (duration %.3fs, step %.3f)", p.Activity(), elapsed, tt.duration, step)
					}
				}
			})
		}
	}
}

func TestLowEnergyForcesSleep(t *testing.T) {
	p := newTestPet(t, balancing.Dog, Stats{Hunger: 80, Mood: 80, Energy: 15, Cleanliness: 80, Health: 80})

	p.Tick(1.0/60, morningIndoor)

	if p.Activity() != Sleeping {
		t.Errorf("Activity = %s, want Sleeping", p.Activity())
	}
}

func TestLowEnergyDoesNotInterruptEngagedPet(t *testing.T) {
	p := newTestPet(t, balancing.Dog, Stats{Hunger: 80, Mood: 80, Energy: 25, Cleanliness: 80, Health: 80})
	p.Play() // Energy drops to 15

	p.Tick(0.5, morningIndoor)
	if p.Activity() != Playing {
		t.Fatalf("Activity = %s, want Playing", p.Activity())
	}

	for p.Activity() == Playing {
		p.Tick(0.5, morningIndoor)
	}
	if p.Activity() != Sleeping {
		t.Errorf("after playing an exhausted pet should fall asleep, got %s", p.Activity())
	}
}

func TestDecisionUrgencyOrder(t *testing.T) {
	tests := []struct {
		name         string
		stats        Stats
		wantKind     EventKind
		wantActivity Activity
	}{
		{
			name:         "hunger beats everything",
			stats:        Stats{Hunger: 25, Mood: 25, Energy: 25, Cleanliness: 25, Health: 80},
			wantKind:     EventSeekingFood,
			wantActivity: Idle,
		},
		{
			name:         "cleanliness beats mood",
			stats:        Stats{Hunger: 80, Mood: 25, Energy: 25, Cleanliness: 25, Health: 80},
			wantKind:     EventWantsCleaning,
			wantActivity: Idle,
		},
		{
			name:         "mood beats energy",
			stats:        Stats{Hunger: 80, Mood: 25, Energy: 25, Cleanliness: 80, Health: 80},
			wantKind:     EventWantsPlay,
			wantActivity: Idle,
		},
		{
			name:         "tired pet goes to bed",
			stats:        Stats{Hunger: 80, Mood: 80, Energy: 25, Cleanliness: 80, Health: 80},
			wantKind:     EventActivityStarted,
			wantActivity: Sleeping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, balancing.Dog, tt.stats)
			p.decisionTimer = 0.05

			p.Tick(0.1, morningIndoor)

			events := p.DrainEvents()
			if countEvents(events, tt.wantKind) != 1 {
				t.Errorf("expected one %v event, got %+v", tt.wantKind, events)
			}
			for _, other := range []EventKind{EventSeekingFood, EventWantsCleaning, EventWantsPlay} {
				if other != tt.wantKind && countEvents(events, other) > 0 {
					t.Errorf("unexpected lower-priority event %v", other)
				}
			}
			if p.Activity() != tt.wantActivity {
				t.Errorf("Activity = %s, want %s", p.Activity(), tt.wantActivity)
			}
		})
	}
}

func TestDecisionIdleBehaviors(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want EventKind
	}{
		{"happy animation", 0.1, EventHappy},
		{"wander", 0.5, EventWander},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, balancing.Cat, uniformStats(90))
			mockRand(t, tt.roll)
			p.decisionTimer = 0.05

			p.Tick(0.1, morningIndoor)

			if countEvents(p.DrainEvents(), tt.want) != 1 {
				t.Errorf("expected one %v event", tt.want)
			}
			if p.decisionTimer < MinDecisionInterval || p.decisionTimer > MaxDecisionInterval {
				t.Errorf("decision timer reset to %v, want within [%v,%v]", p.decisionTimer, MinDecisionInterval, MaxDecisionInterval)
			}
		})
	}
}

func TestEngagedPetSkipsDecisions(t *testing.T) {
	p := newTestPet(t, balancing.Dog, Stats{Hunger: 80, Mood: 80, Energy: 80, Cleanliness: 10, Health: 80})
	p.Play()
	p.DrainEvents()
	p.decisionTimer = 0.05
	p.wanderTimer = 0.05

	p.Tick(0.1, morningIndoor)

	events := p.DrainEvents()
	if countEvents(events, EventWantsCleaning) != 0 || countEvents(events, EventWander) != 0 {
		t.Errorf("no autonomous events expected while playing, got %+v", events)
	}
}

func TestWanderTimer(t *testing.T) {
	p := newTestPet(t, balancing.Dog, uniformStats(90))
	mockRand(t, 0.25)
	p.wanderTimer = 0.05

	p.Tick(0.1, morningIndoor)

	events := p.DrainEvents()
	if countEvents(events, EventWander) != 1 {
		t.Fatalf("expected a wander event, got %+v", events)
	}
	for _, e := range events {
		if e.Kind == EventWander && e.Target != 0.25 {
			t.Errorf("wander target = %v, want 0.25", e.Target)
		}
	}
	if want := MinWanderInterval + 0.25*(MaxWanderInterval-MinWanderInterval); !approxEqual(p.wanderTimer, want) {
		t.Errorf("wander timer = %v, want %v", p.wanderTimer, want)
	}
}

func TestWakeInterruptsSleep(t *testing.T) {
	p := newTestPet(t, balancing.Dog, uniformStats(50))
	if p.Wake() {
		t.Error("waking an idle pet should be a no-op")
	}

	p.Sleep()
	p.Tick(1, morningIndoor)
	energy := p.Stats().Energy

	if !p.Wake() {
		t.Fatal("expected Wake to interrupt sleep")
	}
	if p.Activity() != Idle || p.DwellRemaining() != 0 {
		t.Errorf("expected Idle with cleared dwell, got %s / %v", p.Activity(), p.DwellRemaining())
	}
	if p.Stats().Energy != energy {
		t.Error("waking must not change energy")
	}
	if !p.Feed() {
		t.Error("pet should accept actions after waking")
	}
}

func TestInterruptKeepsGrantedEffects(t *testing.T) {
	p := newTestPet(t, balancing.Dog, uniformStats(30))
	p.Clean()
	after := p.Stats()

	if !p.Interrupt() {
		t.Fatal("expected interrupt to succeed")
	}
	if p.Activity() != Idle {
		t.Errorf("Activity = %s, want Idle", p.Activity())
	}
	if p.Stats() != after {
		t.Error("interrupt must not re-apply or undo effects")
	}
	if p.Interrupt() {
		t.Error("interrupting an idle pet should report false")
	}
}

func TestSleepRecoversEnergy(t *testing.T) {
	tests := []struct {
		name string
		env  world.Environment
		want float64
	}{
		{
			name: "daytime",
			env:  morningIndoor,
			want: 50 + (40-2.2)/60,
		},
		{
			name: "night boost",
			env:  world.Environment{Indoor: true, Weather: world.Cloudy, TimeOfDay: world.Night},
			want: 50 + (40*1.5-2.2*1.2)/60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, balancing.Dog, uniformStats(50))
			p.Sleep()
			p.Tick(1, tt.env)
			if got := p.Stats().Energy; !approxEqual(got, tt.want) {
				t.Errorf("energy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSleepEndsWhenFullyRested(t *testing.T) {
	mockRand(t, 0.999)
	p := newTestPet(t, balancing.Dog, Stats{Hunger: 80, Mood: 80, Energy: 99.9, Cleanliness: 80, Health: 80})
	p.Sleep()

	p.Tick(1, morningIndoor)

	if p.Activity() != Idle {
		t.Errorf("a fully rested pet should wake, got %s", p.Activity())
	}
}

func TestMoodChangeEvent(t *testing.T) {
	p := newTestPet(t, balancing.Dog, uniformStats(79))
	p.Heal() // Average rises from 79 to 83.2

	events := p.DrainEvents()
	if countEvents(events, EventMoodChanged) != 1 {
		t.Fatalf("expected a mood change event, got %+v", events)
	}
	if p.Mood() != Happy {
		t.Errorf("Mood = %s, want Happy", p.Mood())
	}
}

func TestAbilities(t *testing.T) {
	t.Run("dog has none", func(t *testing.T) {
		p := newTestPet(t, balancing.Dog, uniformStats(50))
		if _, ok := p.UseAbility(); ok {
			t.Error("dogs have no special ability")
		}
	})

	t.Run("unicorn heals and cools down", func(t *testing.T) {
		p := newTestPet(t, balancing.Unicorn, uniformStats(50))
		if _, ok := p.UseAbility(); !ok {
			t.Fatal("expected ability to activate")
		}
		if p.Stats().Health != 70 {
			t.Errorf("health = %v, want 70", p.Stats().Health)
		}
		if _, ok := p.UseAbility(); ok {
			t.Error("ability should be on cooldown")
		}
		p.Tick(DefaultAbilityCooldown, morningIndoor)
		if !p.CanUseAbility() {
			t.Errorf("ability should be ready after cooldown, %v left", p.AbilityCooldown())
		}
	})

	t.Run("phoenix is reborn automatically", func(t *testing.T) {
		p := newTestPet(t, balancing.Phoenix, Stats{Hunger: 80, Mood: 80, Energy: 80, Cleanliness: 80, Health: 5})
		p.Tick(0.1, morningIndoor)
		if p.Stats().Health < 50 {
			t.Errorf("expected rebirth to restore health, got %v", p.Stats().Health)
		}
		if got := p.AbilityCooldown(); got < RebirthCooldown-1 {
			t.Errorf("cooldown = %v, want about %v", got, RebirthCooldown)
		}
	})

	t.Run("slime split reabsorbs with a mood boost", func(t *testing.T) {
		p := newTestPet(t, balancing.Slime, uniformStats(60))
		if _, ok := p.UseAbility(); !ok {
			t.Fatal("expected split")
		}
		if !p.Split() {
			t.Fatal("expected slime to be split")
		}
		p.DrainEvents()

		for i := 0; i < 31; i++ {
			p.Tick(1, morningIndoor)
		}
		if p.Split() {
			t.Error("split should have ended")
		}
		found := false
		for _, e := range p.DrainEvents() {
			if e.Kind == EventAbility && strings.Contains(e.Message, "reabsorbs") {
				found = true
			}
		}
		if !found {
			t.Error("expected a reabsorb event")
		}
	})
}

func TestRestore(t *testing.T) {
	reg := balancing.NewRegistry(balancing.DefaultSettings())
	p := Restore(Snapshot{
		Name:       "Ember",
		Type:       balancing.Dragon,
		Level:      4,
		Experience: 12,
		Stats:      Stats{Hunger: 150, Mood: -5, Energy: 50, Cleanliness: 50, Health: 50},
	}, reg)

	if p.Stats().Hunger != MaxStat || p.Stats().Mood != MinStat {
		t.Errorf("restored stats should be clamped, got %+v", p.Stats())
	}
	if !approxEqual(p.DecayScale(), math.Pow(0.95, 3)) {
		t.Errorf("DecayScale = %v, want 0.95^3", p.DecayScale())
	}
	if p.Profile() != reg.Resolve(balancing.Dragon) {
		t.Error("pet should share the registry profile")
	}

	broken := Restore(Snapshot{
		Name:       "Glitch",
		Type:       balancing.Robot,
		Level:      MaxLevel + 50,
		Experience: math.NaN(),
		Stats:      Stats{Hunger: math.NaN(), Mood: 50, Energy: 50, Cleanliness: 50, Health: 50},
	}, reg)
	if broken.Level != MaxLevel || broken.Experience != 0 || broken.Stats().Hunger != MinStat {
		t.Errorf("non-finite save values should be repaired, got level %d exp %v hunger %v",
			broken.Level, broken.Experience, broken.Stats().Hunger)
	}

	snap := p.Snapshot()
	if snap.Name != "Ember" || snap.Level != 4 || snap.Experience != 12 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		sleep    bool
		want     string
		wantText string
	}{
		{"happy idle pet", uniformStats(90), false, StatusEmojiIdle, "Happy"},
		{"hungry idle pet", Stats{Hunger: 10, Mood: 90, Energy: 90, Cleanliness: 90, Health: 90}, false, StatusEmojiIdle + StatusEmojiHungry, "Hungry"},
		{"dirty idle pet", Stats{Hunger: 90, Mood: 90, Energy: 90, Cleanliness: 5, Health: 90}, false, StatusEmojiIdle + StatusEmojiDirty, "Dirty"},
		{"drowsy pet", Stats{Hunger: 90, Mood: 90, Energy: 35, Cleanliness: 90, Health: 90}, false, StatusEmojiIdle + "🥱", "Drowsy"},
		{"sleeping pet", Stats{Hunger: 90, Mood: 90, Energy: 35, Cleanliness: 90, Health: 90}, true, StatusEmojiSleeping, "Sleeping"},
		{"sleeping sick pet", Stats{Hunger: 90, Mood: 90, Energy: 90, Cleanliness: 90, Health: 10}, true, StatusEmojiSleeping + StatusEmojiSick, "needs care"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(t, balancing.Dog, tt.stats)
			if tt.sleep {
				p.Sleep()
			}
			if got := GetStatus(p); got != tt.want {
				t.Errorf("GetStatus() = %q, want %q", got, tt.want)
			}
			if got := GetStatusWithLabel(p); !strings.Contains(got, tt.wantText) {
				t.Errorf("GetStatusWithLabel() = %q, want it to contain %q", got, tt.wantText)
			}
		})
	}
}
