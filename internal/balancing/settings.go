package balancing

// Settings holds the tuning shared by every species. Rates and penalties are
// per minute.
type Settings struct {
	GlobalDecayMultiplier      float64 `yaml:"global_decay_multiplier"`
	GlobalExperienceMultiplier float64 `yaml:"global_experience_multiplier"`
	ExperiencePerLevel         float64 `yaml:"experience_per_level"`
	LevelDecayFactor           float64 `yaml:"level_decay_factor"`

	// Location
	IndoorCleanlinessMultiplier  float64 `yaml:"indoor_cleanliness_multiplier"`
	OutdoorCleanlinessMultiplier float64 `yaml:"outdoor_cleanliness_multiplier"`
	PreferredLocationMoodFactor  float64 `yaml:"preferred_location_mood_factor"`
	DislikedLocationMoodFactor   float64 `yaml:"disliked_location_mood_factor"`

	// Weather
	RainyEnergyMultiplier      float64 `yaml:"rainy_energy_multiplier"`
	SnowyEnergyMultiplier      float64 `yaml:"snowy_energy_multiplier"`
	PreferredWeatherMoodFactor float64 `yaml:"preferred_weather_mood_factor"`
	DislikedWeatherMoodFactor  float64 `yaml:"disliked_weather_mood_factor"`
	DislikedSnowEnergyFactor   float64 `yaml:"disliked_snow_energy_factor"`

	// Time of day
	NocturnalNightEnergyFactor   float64 `yaml:"nocturnal_night_energy_factor"`
	NocturnalNightMoodFactor     float64 `yaml:"nocturnal_night_mood_factor"`
	DiurnalNightEnergyFactor     float64 `yaml:"diurnal_night_energy_factor"`
	NocturnalDayEnergyFactor     float64 `yaml:"nocturnal_day_energy_factor"`
	SleepRecoveryNightMultiplier float64 `yaml:"sleep_recovery_night_multiplier"`

	// Cross-stat penalties, added to decay after all multipliers
	LowHungerMoodPenalty        float64 `yaml:"low_hunger_mood_penalty"`
	LowEnergyMoodPenalty        float64 `yaml:"low_energy_mood_penalty"`
	LowCleanlinessMoodPenalty   float64 `yaml:"low_cleanliness_mood_penalty"`
	LowHealthMoodPenalty        float64 `yaml:"low_health_mood_penalty"`
	LowHungerHealthPenalty      float64 `yaml:"low_hunger_health_penalty"`
	LowCleanlinessHealthPenalty float64 `yaml:"low_cleanliness_health_penalty"`

	HealthRegenRate float64 `yaml:"health_regen_rate"`
}

// DefaultSettings returns the stock game tuning
func DefaultSettings() Settings {
	return Settings{
		GlobalDecayMultiplier:      1.0,
		GlobalExperienceMultiplier: 1.0,
		ExperiencePerLevel:         100,
		LevelDecayFactor:           0.95,

		IndoorCleanlinessMultiplier:  0.7,
		OutdoorCleanlinessMultiplier: 1.5,
		PreferredLocationMoodFactor:  0.8,
		DislikedLocationMoodFactor:   1.2,

		RainyEnergyMultiplier:      1.3,
		SnowyEnergyMultiplier:      1.5,
		PreferredWeatherMoodFactor: 0.7,
		DislikedWeatherMoodFactor:  1.3,
		DislikedSnowEnergyFactor:   1.2,

		NocturnalNightEnergyFactor:   0.7,
		NocturnalNightMoodFactor:     0.8,
		DiurnalNightEnergyFactor:     1.2,
		NocturnalDayEnergyFactor:     1.2,
		SleepRecoveryNightMultiplier: 1.5,

		LowHungerMoodPenalty:        0.5,
		LowEnergyMoodPenalty:        0.5,
		LowCleanlinessMoodPenalty:   0.5,
		LowHealthMoodPenalty:        1.0,
		LowHungerHealthPenalty:      0.2,
		LowCleanlinessHealthPenalty: 0.2,

		HealthRegenRate: 3.0, // 0.05 per second
	}
}

// ExperienceGain scales a base experience award by species, level and the
// global multiplier.
func ExperienceGain(p *Profile, s Settings, level int, base float64) float64 {
	amount := base * p.BaseExperienceRate * s.GlobalExperienceMultiplier
	if level > 1 {
		amount *= 1 + float64(level-1)*(p.LevelMultiplier-1)
	}
	return amount
}
