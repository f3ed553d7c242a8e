package pet

import (
	"fmt"
	"math"
)

// Stat names one dimension of pet well-being
type Stat int

const (
	StatHunger Stat = iota
	StatMood
	StatEnergy
	StatCleanliness
	StatHealth
)

// AllStats lists every stat in display order
var AllStats = []Stat{StatHunger, StatMood, StatEnergy, StatCleanliness, StatHealth}

func (s Stat) String() string {
	switch s {
	case StatHunger:
		return "Hunger"
	case StatMood:
		return "Mood"
	case StatEnergy:
		return "Energy"
	case StatCleanliness:
		return "Cleanliness"
	case StatHealth:
		return "Health"
	default:
		return fmt.Sprintf("Stat(%d)", int(s))
	}
}

// Stats is the five-dimensional well-being state. Every field stays in
// [MinStat, MaxStat]; writes go through ClampAdd.
type Stats struct {
	Hunger      float64 `json:"hunger"`
	Mood        float64 `json:"mood"`
	Energy      float64 `json:"energy"`
	Cleanliness float64 `json:"cleanliness"`
	Health      float64 `json:"health"`
}

// FullStats returns a vector with every stat at maximum
func FullStats() Stats {
	return Stats{
		Hunger:      MaxStat,
		Mood:        MaxStat,
		Energy:      MaxStat,
		Cleanliness: MaxStat,
		Health:      MaxStat,
	}
}

// Get returns the value of one stat
func (s Stats) Get(stat Stat) float64 {
	switch stat {
	case StatHunger:
		return s.Hunger
	case StatMood:
		return s.Mood
	case StatEnergy:
		return s.Energy
	case StatCleanliness:
		return s.Cleanliness
	case StatHealth:
		return s.Health
	default:
		panic("pet: unknown stat " + stat.String())
	}
}

func (s *Stats) field(stat Stat) *float64 {
	switch stat {
	case StatHunger:
		return &s.Hunger
	case StatMood:
		return &s.Mood
	case StatEnergy:
		return &s.Energy
	case StatCleanliness:
		return &s.Cleanliness
	case StatHealth:
		return &s.Health
	default:
		panic("pet: unknown stat " + stat.String())
	}
}

// ClampAdd adds delta to a stat, clamps it into range and returns the new value
func (s *Stats) ClampAdd(stat Stat, delta float64) float64 {
	f := s.field(stat)
	if math.IsNaN(delta) {
		return *f
	}
	*f = clamp(*f + delta)
	return *f
}

// Clamped returns a copy with every field forced into range
func (s Stats) Clamped() Stats {
	for _, stat := range AllStats {
		f := s.field(stat)
		*f = clamp(*f)
	}
	return s
}

// Average returns the overall well-being
func (s Stats) Average() float64 {
	return (s.Hunger + s.Mood + s.Energy + s.Cleanliness + s.Health) / 5
}

// StatDelta is a signed change for each stat, produced by the decay engine
type StatDelta struct {
	Hunger      float64
	Mood        float64
	Energy      float64
	Cleanliness float64
	Health      float64
}

// Get returns the change for one stat
func (d StatDelta) Get(stat Stat) float64 {
	switch stat {
	case StatHunger:
		return d.Hunger
	case StatMood:
		return d.Mood
	case StatEnergy:
		return d.Energy
	case StatCleanliness:
		return d.Cleanliness
	case StatHealth:
		return d.Health
	default:
		panic("pet: unknown stat " + stat.String())
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
