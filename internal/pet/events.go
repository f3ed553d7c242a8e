package pet

// EventKind identifies something observable that happened to the pet
type EventKind int

const (
	EventMoodChanged EventKind = iota
	EventActivityStarted
	EventActivityEnded
	EventLevelUp
	EventSeekingFood
	EventWantsCleaning
	EventWantsPlay
	EventHappy
	EventWander
	EventAbility
)

// Event is queued during a tick or action and drained by the host once per
// frame. Fields other than Kind and Message are set only where relevant.
type Event struct {
	Kind     EventKind
	Message  string
	Mood     Mood
	Activity Activity
	Level    int
	Target   float64 // Wander destination as a fraction of the play area, in [0,1)
}

// String returns the event message
func (e Event) String() string {
	return e.Message
}

// Emoji returns a display icon for the event
func (e Event) Emoji() string {
	switch e.Kind {
	case EventMoodChanged:
		return e.Mood.Emoji()
	case EventActivityStarted, EventActivityEnded:
		return e.Activity.Emoji()
	case EventLevelUp:
		return "⭐"
	case EventSeekingFood:
		return StatusEmojiHungry
	case EventWantsCleaning:
		return StatusEmojiDirty
	case EventWantsPlay:
		return StatusEmojiSad
	case EventHappy:
		return "💖"
	case EventWander:
		return "🐾"
	case EventAbility:
		return "✨"
	default:
		return ""
	}
}

func (p *Pet) emit(e Event) {
	p.events = append(p.events, e)
}

// DrainEvents returns the queued events and clears the queue
func (p *Pet) DrainEvents() []Event {
	events := p.events
	p.events = nil
	return events
}
