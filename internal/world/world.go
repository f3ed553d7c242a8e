package world

import (
	"fmt"
	"strings"
)

// Weather is the current weather in the game world
type Weather int

const (
	Sunny Weather = iota
	Cloudy
	Rainy
	Snowy
	Foggy
)

// AllWeather lists every weather kind in declaration order
var AllWeather = []Weather{Sunny, Cloudy, Rainy, Snowy, Foggy}

func (w Weather) String() string {
	switch w {
	case Sunny:
		return "Sunny"
	case Cloudy:
		return "Cloudy"
	case Rainy:
		return "Rainy"
	case Snowy:
		return "Snowy"
	case Foggy:
		return "Foggy"
	default:
		return fmt.Sprintf("Weather(%d)", int(w))
	}
}

// Emoji returns a display icon for the weather
func (w Weather) Emoji() string {
	switch w {
	case Sunny:
		return "☀️"
	case Cloudy:
		return "☁️"
	case Rainy:
		return "🌧️"
	case Snowy:
		return "❄️"
	case Foggy:
		return "🌫️"
	default:
		return "❓"
	}
}

// ParseWeather converts a case-insensitive name into a Weather
func ParseWeather(s string) (Weather, error) {
	for _, w := range AllWeather {
		if strings.EqualFold(w.String(), s) {
			return w, nil
		}
	}
	return Sunny, fmt.Errorf("unknown weather %q", s)
}

// MarshalText implements encoding.TextMarshaler so weather reads naturally in config files
func (w Weather) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *Weather) UnmarshalText(text []byte) error {
	parsed, err := ParseWeather(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// TimeOfDay is one quarter of the in-game day
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Afternoon
	Evening
	Night
)

func (t TimeOfDay) String() string {
	switch t {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	case Night:
		return "Night"
	default:
		return fmt.Sprintf("TimeOfDay(%d)", int(t))
	}
}

// Emoji returns a display icon for the time of day
func (t TimeOfDay) Emoji() string {
	switch t {
	case Morning:
		return "🌅"
	case Afternoon:
		return "🌞"
	case Evening:
		return "🌇"
	default:
		return "🌙"
	}
}

// Environment is the read-only snapshot of world state consumed by the
// simulation on every tick.
type Environment struct {
	Indoor    bool
	Weather   Weather
	TimeOfDay TimeOfDay
}

// IsNight reports whether the environment is in the night quarter
func (e Environment) IsNight() bool {
	return e.TimeOfDay == Night
}

// Location is a place the pet can be taken to
type Location struct {
	Name   string
	Indoor bool
}

// Locations is the static table of places in the world
var Locations = []Location{
	{Name: "Pet Home", Indoor: true},
	{Name: "Pet Park", Indoor: false},
	{Name: "Pet Café", Indoor: true},
	{Name: "Pet Spa & Clinic", Indoor: true},
	{Name: "Enchanted Forest", Indoor: false},
	{Name: "Crystal Caves", Indoor: true},
	{Name: "Sky Islands", Indoor: false},
	{Name: "Underwater Realm", Indoor: false},
}

// DefaultLocation is where a new game starts
const DefaultLocation = "Pet Home"

// LookupLocation finds a location by name, ignoring case
func LookupLocation(name string) (Location, bool) {
	for _, loc := range Locations {
		if strings.EqualFold(loc.Name, name) {
			return loc, true
		}
	}
	return Location{}, false
}
