package balancing

import (
	"fmt"
	"math"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk balancing file. Settings keys left out keep their
// defaults, and each profile entry starts from its species default.
type Config struct {
	Settings Settings
	Profiles []Profile
}

type rawConfig struct {
	Settings yaml.Node   `yaml:"settings"`
	Profiles []yaml.Node `yaml:"profiles"`
}

// ParseConfig decodes balancing YAML
func ParseConfig(raw []byte) (Config, error) {
	cfg := Config{Settings: DefaultSettings()}

	var rc rawConfig
	if err := yaml.Unmarshal(raw, &rc); err != nil {
		return cfg, fmt.Errorf("balancing: %w", err)
	}

	if !rc.Settings.IsZero() {
		if err := rc.Settings.Decode(&cfg.Settings); err != nil {
			return cfg, fmt.Errorf("balancing settings: %w", err)
		}
		if err := cfg.Settings.validate(); err != nil {
			return cfg, fmt.Errorf("balancing settings: %w", err)
		}
	}

	seen := make(map[PetType]bool)
	for i := range rc.Profiles {
		node := &rc.Profiles[i]

		var head struct {
			Type *PetType `yaml:"type"`
		}
		if err := node.Decode(&head); err != nil {
			return cfg, fmt.Errorf("balancing profile %d: %w", i, err)
		}
		if head.Type == nil {
			return cfg, fmt.Errorf("balancing profile %d (line %d): missing type", i, node.Line)
		}
		if seen[*head.Type] {
			return cfg, fmt.Errorf("balancing profile %d: duplicate type %s", i, *head.Type)
		}
		seen[*head.Type] = true

		p := DefaultProfile(*head.Type)
		if err := node.Decode(&p); err != nil {
			return cfg, fmt.Errorf("balancing profile %s: %w", *head.Type, err)
		}
		if err := p.validate(); err != nil {
			return cfg, fmt.Errorf("balancing profile %s: %w", p.Type, err)
		}
		cfg.Profiles = append(cfg.Profiles, p)
	}

	return cfg, nil
}

// LoadConfig reads a balancing YAML file
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{Settings: DefaultSettings()}, err
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadRegistry builds a registry from a balancing file, or from defaults
// alone when path is empty.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(DefaultSettings()), nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(cfg.Settings, cfg.Profiles...), nil
}

func (s Settings) validate() error {
	if !(s.ExperiencePerLevel > 0) || math.IsInf(s.ExperiencePerLevel, 0) {
		return fmt.Errorf("experience_per_level must be positive (got %v)", s.ExperiencePerLevel)
	}
	if !(s.LevelDecayFactor > 0 && s.LevelDecayFactor <= 1) {
		return fmt.Errorf("level_decay_factor must be in (0, 1] (got %v)", s.LevelDecayFactor)
	}

	v := reflect.ValueOf(s)
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i).Float()
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%s must be a non-negative number (got %v)", yamlName(v.Type().Field(i)), f)
		}
	}
	return nil
}

func yamlName(f reflect.StructField) string {
	if tag := f.Tag.Get("yaml"); tag != "" {
		return tag
	}
	return f.Name
}

func (p Profile) validate() error {
	rates := map[string]float64{
		"hunger_decay":      p.HungerDecay,
		"mood_decay":        p.MoodDecay,
		"energy_decay":      p.EnergyDecay,
		"cleanliness_decay": p.CleanlinessDecay,
		"health_decay":      p.HealthDecay,
	}
	for name, v := range rates {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a non-negative number (got %v)", name, v)
		}
	}
	if p.PrefersIndoors && p.PrefersOutdoors {
		return fmt.Errorf("cannot prefer both indoors and outdoors")
	}
	return nil
}
