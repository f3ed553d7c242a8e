package pet

import (
	"animora/internal/balancing"
	"animora/internal/world"
)

// DecayRates are per-minute rates for one tick. Positive values drain a
// stat; a negative Health rate is regeneration.
type DecayRates struct {
	Hunger      float64
	Mood        float64
	Energy      float64
	Cleanliness float64
	Health      float64
}

// DecayEngine turns a pet's profile, its current stats and the environment
// into stat changes. It reads nothing but its inputs.
type DecayEngine struct {
	Settings balancing.Settings
}

// NewDecayEngine creates an engine with the given shared settings
func NewDecayEngine(settings balancing.Settings) *DecayEngine {
	return &DecayEngine{Settings: settings}
}

// Rates computes the effective per-minute rates for the pet in env
func (e *DecayEngine) Rates(p *Pet, env world.Environment) DecayRates {
	s := e.Settings
	prof := p.profile
	stats := p.stats

	// Base rates, shrunk by the pet's level bonus
	scale := s.GlobalDecayMultiplier * p.decayScale
	r := DecayRates{
		Hunger:      prof.HungerDecay * scale,
		Mood:        prof.MoodDecay * scale,
		Energy:      prof.EnergyDecay * scale,
		Cleanliness: prof.CleanlinessDecay * scale,
	}

	// Location
	if env.Indoor {
		r.Cleanliness *= s.IndoorCleanlinessMultiplier
		if prof.PrefersIndoors {
			r.Mood *= s.PreferredLocationMoodFactor
		} else if prof.PrefersOutdoors {
			r.Mood *= s.DislikedLocationMoodFactor
		}
	} else {
		r.Cleanliness *= s.OutdoorCleanlinessMultiplier
		if prof.PrefersOutdoors {
			r.Mood *= s.PreferredLocationMoodFactor
		} else if prof.PrefersIndoors {
			r.Mood *= s.DislikedLocationMoodFactor
		}
	}

	// Weather
	switch env.Weather {
	case world.Rainy, world.Snowy:
		// Precipitation checks the dislike first
		if env.Weather == world.Rainy {
			r.Energy *= s.RainyEnergyMultiplier
		} else {
			r.Energy *= s.SnowyEnergyMultiplier
		}
		if env.Weather == prof.DislikedWeather {
			r.Mood *= s.DislikedWeatherMoodFactor
			if env.Weather == world.Snowy {
				r.Energy *= s.DislikedSnowEnergyFactor
			}
		} else if env.Weather == prof.PreferredWeather {
			r.Mood *= s.PreferredWeatherMoodFactor
		}
	case prof.PreferredWeather:
		r.Mood *= s.PreferredWeatherMoodFactor
	case prof.DislikedWeather:
		r.Mood *= s.DislikedWeatherMoodFactor
	}

	// Time of day
	if env.IsNight() {
		if prof.Nocturnal {
			r.Energy *= s.NocturnalNightEnergyFactor
			r.Mood *= s.NocturnalNightMoodFactor
		} else {
			r.Energy *= s.DiurnalNightEnergyFactor
		}
	} else if prof.Nocturnal {
		r.Energy *= s.NocturnalDayEnergyFactor
	}

	// Cross-stat penalties
	healthPenalty := false
	if stats.Hunger < 20 {
		r.Mood += s.LowHungerMoodPenalty
		if stats.Hunger < 10 {
			r.Health += s.LowHungerHealthPenalty
			healthPenalty = true
		}
	}
	if stats.Energy < 20 {
		r.Mood += s.LowEnergyMoodPenalty
	}
	if stats.Cleanliness < 20 {
		r.Mood += s.LowCleanlinessMoodPenalty
		if stats.Cleanliness < 10 {
			r.Health += s.LowCleanlinessHealthPenalty
			healthPenalty = true
		}
	}
	if stats.Health < 20 {
		r.Mood += s.LowHealthMoodPenalty
	}

	// Health only moves inside a penalty window or while well fed and rested
	if healthPenalty {
		r.Health += prof.HealthDecay * s.GlobalDecayMultiplier
	} else if stats.Hunger > 50 && stats.Energy > 50 && stats.Health < MaxStat {
		r.Health = -s.HealthRegenRate
	}

	return r
}

// Compute returns the stat changes for elapsedSeconds in env without
// touching the pet.
func (e *DecayEngine) Compute(p *Pet, env world.Environment, elapsedSeconds float64) StatDelta {
	if elapsedSeconds <= 0 {
		return StatDelta{}
	}
	r := e.Rates(p, env)
	minutes := elapsedSeconds / 60
	return StatDelta{
		Hunger:      -r.Hunger * minutes,
		Mood:        -r.Mood * minutes,
		Energy:      -r.Energy * minutes,
		Cleanliness: -r.Cleanliness * minutes,
		Health:      -r.Health * minutes,
	}
}

// Apply writes a delta into the pet's stats
func (e *DecayEngine) Apply(p *Pet, d StatDelta) {
	for _, stat := range AllStats {
		p.stats.ClampAdd(stat, d.Get(stat))
	}
}
