package balancing

import "animora/internal/world"

// Profile holds the per-species tuning: decay rates are per minute, recovery
// effects are per action except SleepingEffect which is per minute of sleep.
type Profile struct {
	Type PetType `yaml:"type"`

	HungerDecay      float64 `yaml:"hunger_decay"`
	MoodDecay        float64 `yaml:"mood_decay"`
	EnergyDecay      float64 `yaml:"energy_decay"`
	CleanlinessDecay float64 `yaml:"cleanliness_decay"`
	HealthDecay      float64 `yaml:"health_decay"`

	FeedingEffect  float64 `yaml:"feeding_effect"`
	PlayingEffect  float64 `yaml:"playing_effect"`
	SleepingEffect float64 `yaml:"sleeping_effect"`
	CleaningEffect float64 `yaml:"cleaning_effect"`
	HealingEffect  float64 `yaml:"healing_effect"`

	BaseExperienceRate float64 `yaml:"base_experience_rate"`
	LevelMultiplier    float64 `yaml:"level_multiplier"`

	Nocturnal        bool          `yaml:"nocturnal"`
	PrefersIndoors   bool          `yaml:"prefers_indoors"`
	PrefersOutdoors  bool          `yaml:"prefers_outdoors"`
	PreferredWeather world.Weather `yaml:"preferred_weather"`
	DislikedWeather  world.Weather `yaml:"disliked_weather"`
}

// baseProfile carries the values shared by every species before the
// per-type adjustments in DefaultProfile.
func baseProfile(t PetType) Profile {
	return Profile{
		Type:               t,
		HungerDecay:        2.0,
		MoodDecay:          1.5,
		EnergyDecay:        1.0,
		CleanlinessDecay:   1.2,
		HealthDecay:        0.5,
		FeedingEffect:      50,
		PlayingEffect:      40,
		SleepingEffect:     40,
		CleaningEffect:     60,
		HealingEffect:      40,
		BaseExperienceRate: 1.0,
		LevelMultiplier:    1.2,
		PreferredWeather:   world.Sunny,
		DislikedWeather:    world.Rainy,
	}
}

// DefaultProfile returns the built-in tuning for a species. It panics for a
// value outside the enumeration.
func DefaultProfile(t PetType) Profile {
	if !t.Valid() {
		panic("balancing: no default profile for " + t.String())
	}

	p := baseProfile(t)
	switch t {
	case Dog:
		p.HungerDecay = 2.5
		p.MoodDecay = 1.8
		p.EnergyDecay = 2.2
		p.CleanlinessDecay = 2.0
		p.PrefersOutdoors = true

	case Cat:
		p.HungerDecay = 1.8
		p.MoodDecay = 2.0
		p.EnergyDecay = 1.5
		p.CleanlinessDecay = 1.0
		p.Nocturnal = true

	case Dragon:
		p.HungerDecay = 3.0
		p.MoodDecay = 1.5
		p.EnergyDecay = 1.0
		p.CleanlinessDecay = 0.8
		p.PreferredWeather = world.Sunny
		p.DislikedWeather = world.Snowy

	case Unicorn:
		p.HungerDecay = 1.5
		p.MoodDecay = 2.2
		p.EnergyDecay = 1.8
		p.CleanlinessDecay = 0.5
		p.PreferredWeather = world.Sunny
		p.BaseExperienceRate = 1.2

	case Fox:
		p.HungerDecay = 2.2
		p.MoodDecay = 1.7
		p.EnergyDecay = 2.0
		p.CleanlinessDecay = 1.8
		p.Nocturnal = true
		p.PrefersOutdoors = true

	case Rabbit:
		p.HungerDecay = 2.8
		p.MoodDecay = 2.0
		p.EnergyDecay = 2.5
		p.CleanlinessDecay = 1.5
		p.PrefersOutdoors = true

	case Owl:
		p.HungerDecay = 1.7
		p.MoodDecay = 1.5
		p.EnergyDecay = 1.3
		p.CleanlinessDecay = 0.7
		p.Nocturnal = true

	case Phoenix:
		p.HungerDecay = 2.0
		p.MoodDecay = 1.8
		p.EnergyDecay = 1.2
		p.CleanlinessDecay = 0.5
		p.HealthDecay = 0.3
		p.PreferredWeather = world.Sunny
		p.BaseExperienceRate = 1.3

	case Robot:
		p.HungerDecay = 1.0
		p.MoodDecay = 1.2
		p.EnergyDecay = 2.5
		p.CleanlinessDecay = 0.8
		p.HealthDecay = 0.7
		p.DislikedWeather = world.Rainy

	case Slime:
		p.HungerDecay = 1.5
		p.MoodDecay = 1.3
		p.EnergyDecay = 1.0
		p.CleanlinessDecay = 0 // Slimes never get dirty
		p.HealthDecay = 0.8
		p.PreferredWeather = world.Rainy // Still disliked: rain checks the dislike first

	case Panda:
		p.HungerDecay = 2.7
		p.MoodDecay = 1.4
		p.EnergyDecay = 1.7
		p.CleanlinessDecay = 1.3
		p.PrefersOutdoors = true

	case Penguin:
		p.HungerDecay = 2.3
		p.MoodDecay = 1.6
		p.EnergyDecay = 1.5
		p.CleanlinessDecay = 1.0
		p.PreferredWeather = world.Snowy
		p.DislikedWeather = world.Sunny
	}

	return p
}
