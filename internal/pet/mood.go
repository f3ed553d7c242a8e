package pet

import "fmt"

// Mood is the discrete well-being category derived from the stat average
type Mood int

const (
	Happy Mood = iota
	Content
	Neutral
	Sad
	Sick
)

func (m Mood) String() string {
	switch m {
	case Happy:
		return "Happy"
	case Content:
		return "Content"
	case Neutral:
		return "Neutral"
	case Sad:
		return "Sad"
	case Sick:
		return "Sick"
	default:
		return fmt.Sprintf("Mood(%d)", int(m))
	}
}

// Rank orders moods from worst (Sick = 0) to best (Happy = 4)
func (m Mood) Rank() int {
	return int(Sick - m)
}

// Emoji returns a face for the mood
func (m Mood) Emoji() string {
	switch m {
	case Happy:
		return "😸"
	case Content:
		return "🙂"
	case Neutral:
		return "😐"
	case Sad:
		return StatusEmojiSad
	default:
		return StatusEmojiSick
	}
}

// Classify maps a stat vector to its mood
func Classify(s Stats) Mood {
	wellbeing := s.Average()
	switch {
	case wellbeing > 80:
		return Happy
	case wellbeing > 60:
		return Content
	case wellbeing > 40:
		return Neutral
	case wellbeing > 20:
		return Sad
	default:
		return Sick
	}
}
