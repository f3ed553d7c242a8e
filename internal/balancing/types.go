package balancing

import (
	"fmt"
	"strings"
)

// PetType identifies a species of pet
type PetType int

const (
	Dog PetType = iota
	Cat
	Dragon
	Unicorn
	Fox
	Rabbit
	Owl
	Phoenix
	Robot
	Slime
	Panda
	Penguin
)

// AllPetTypes lists every species in declaration order
var AllPetTypes = []PetType{
	Dog, Cat, Dragon, Unicorn, Fox, Rabbit,
	Owl, Phoenix, Robot, Slime, Panda, Penguin,
}

var petTypeNames = map[PetType]string{
	Dog:     "Dog",
	Cat:     "Cat",
	Dragon:  "Dragon",
	Unicorn: "Unicorn",
	Fox:     "Fox",
	Rabbit:  "Rabbit",
	Owl:     "Owl",
	Phoenix: "Phoenix",
	Robot:   "Robot",
	Slime:   "Slime",
	Panda:   "Panda",
	Penguin: "Penguin",
}

var petTypeEmoji = map[PetType]string{
	Dog:     "🐶",
	Cat:     "🐱",
	Dragon:  "🐲",
	Unicorn: "🦄",
	Fox:     "🦊",
	Rabbit:  "🐰",
	Owl:     "🦉",
	Phoenix: "🐦‍🔥",
	Robot:   "🤖",
	Slime:   "🟢",
	Panda:   "🐼",
	Penguin: "🐧",
}

func (t PetType) String() string {
	if name, ok := petTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PetType(%d)", int(t))
}

// Emoji returns the display icon for the species
func (t PetType) Emoji() string {
	if e, ok := petTypeEmoji[t]; ok {
		return e
	}
	return "❓"
}

// Valid reports whether t is one of the enumerated species
func (t PetType) Valid() bool {
	_, ok := petTypeNames[t]
	return ok
}

// ParsePetType converts a case-insensitive species name into a PetType
func ParsePetType(s string) (PetType, error) {
	for _, t := range AllPetTypes {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return Dog, fmt.Errorf("unknown pet type %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (t PetType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *PetType) UnmarshalText(text []byte) error {
	parsed, err := ParsePetType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
