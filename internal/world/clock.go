package world

import (
	"log"
	"math/rand"
)

// Clock defaults
const (
	DefaultDayDuration     = 480.0 // Seconds per in-game day (8 minutes)
	DefaultWeatherInterval = 300.0 // Seconds between weather changes
)

// Change describes a world transition produced by Clock.Advance
type Change struct {
	Weather        bool
	TimeOfDay      bool
	PrevWeather    Weather
	PrevTimeOfDay  TimeOfDay
	CurrentWeather Weather
	CurrentTime    TimeOfDay
}

// Clock drives the day/night cycle and weather rotation. It is advanced
// explicitly by the host frame loop and never reads wall-clock time.
type Clock struct {
	DayDuration     float64
	TimeScale       float64
	WeatherInterval float64

	dayTime      float64
	weatherTimer float64
	weather      Weather
	timeOfDay    TimeOfDay

	// Rand returns a value in [0,1); defaults to math/rand
	Rand func() float64
}

// NewClock creates a clock at the start of a sunny morning
func NewClock() *Clock {
	return &Clock{
		DayDuration:     DefaultDayDuration,
		TimeScale:       1,
		WeatherInterval: DefaultWeatherInterval,
		weather:         Sunny,
		timeOfDay:       Morning,
		Rand:            rand.Float64,
	}
}

// Weather returns the current weather
func (c *Clock) Weather() Weather { return c.weather }

// TimeOfDay returns the current quarter of the day
func (c *Clock) TimeOfDay() TimeOfDay { return c.timeOfDay }

// DayProgress returns the normalized position in the day, in [0,1)
func (c *Clock) DayProgress() float64 {
	if c.DayDuration <= 0 {
		return 0
	}
	return c.dayTime / c.DayDuration
}

// SetWeather forces the weather and restarts the weather timer
func (c *Clock) SetWeather(w Weather) {
	c.weather = w
	c.weatherTimer = 0
}

// SetDayProgress moves the clock to a normalized point in the day
func (c *Clock) SetDayProgress(progress float64) {
	for progress >= 1 {
		progress--
	}
	for progress < 0 {
		progress++
	}
	c.dayTime = progress * c.DayDuration
	c.timeOfDay = timeOfDayAt(progress)
}

// Advance moves the clock forward by dt seconds of real time
func (c *Clock) Advance(dt float64) Change {
	change := Change{
		PrevWeather:   c.weather,
		PrevTimeOfDay: c.timeOfDay,
	}

	if c.DayDuration > 0 {
		c.dayTime += dt * c.TimeScale
		for c.dayTime >= c.DayDuration {
			c.dayTime -= c.DayDuration
		}
		c.timeOfDay = timeOfDayAt(c.dayTime / c.DayDuration)
	}

	if c.WeatherInterval > 0 {
		c.weatherTimer += dt
		if c.weatherTimer >= c.WeatherInterval {
			c.weatherTimer = 0
			c.changeWeather()
		}
	}

	change.CurrentWeather = c.weather
	change.CurrentTime = c.timeOfDay
	change.Weather = change.PrevWeather != c.weather
	change.TimeOfDay = change.PrevTimeOfDay != c.timeOfDay
	return change
}

// Environment builds the simulation snapshot for the given location
func (c *Clock) Environment(loc Location) Environment {
	return Environment{
		Indoor:    loc.Indoor,
		Weather:   c.weather,
		TimeOfDay: c.timeOfDay,
	}
}

func (c *Clock) changeWeather() {
	roll := c.Rand
	if roll == nil {
		roll = rand.Float64
	}
	idx := int(roll() * float64(len(AllWeather)))
	if idx >= len(AllWeather) {
		idx = len(AllWeather) - 1
	}
	next := AllWeather[idx]
	// Always move to a different weather
	if next == c.weather {
		next = AllWeather[(idx+1)%len(AllWeather)]
	}
	c.weather = next
	log.Printf("Weather changed to %s", next)
}

func timeOfDayAt(progress float64) TimeOfDay {
	switch {
	case progress < 0.25:
		return Morning
	case progress < 0.5:
		return Afternoon
	case progress < 0.75:
		return Evening
	default:
		return Night
	}
}
