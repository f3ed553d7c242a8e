package save

import (
	"fmt"
	"time"

	"animora/internal/balancing"
	"animora/internal/pet"
)

// Record is the flat persisted form of a pet
type Record struct {
	PetName       string    `json:"petName"`
	PetType       string    `json:"petType"`
	PetLevel      int       `json:"petLevel"`
	PetExperience float64   `json:"petExperience"`
	Hunger        float64   `json:"hunger"`
	Mood          float64   `json:"mood"`
	Energy        float64   `json:"energy"`
	Cleanliness   float64   `json:"cleanliness"`
	Health        float64   `json:"health"`
	SavedAt       time.Time `json:"savedAt"`
}

// Capture flattens a pet into a record stamped with the current time
func Capture(p *pet.Pet) Record {
	s := p.Snapshot()
	return Record{
		PetName:       s.Name,
		PetType:       s.Type.String(),
		PetLevel:      s.Level,
		PetExperience: s.Experience,
		Hunger:        s.Stats.Hunger,
		Mood:          s.Stats.Mood,
		Energy:        s.Stats.Energy,
		Cleanliness:   s.Stats.Cleanliness,
		Health:        s.Stats.Health,
		SavedAt:       pet.TimeNow(),
	}
}

// Restore rebuilds the pet against the given balancing registry
func (r Record) Restore(reg *balancing.Registry) (*pet.Pet, error) {
	t, err := balancing.ParsePetType(r.PetType)
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", r.PetName, err)
	}
	return pet.Restore(pet.Snapshot{
		Name:       r.PetName,
		Type:       t,
		Level:      r.PetLevel,
		Experience: r.PetExperience,
		Stats: pet.Stats{
			Hunger:      r.Hunger,
			Mood:        r.Mood,
			Energy:      r.Energy,
			Cleanliness: r.Cleanliness,
			Health:      r.Health,
		},
	}, reg), nil
}
