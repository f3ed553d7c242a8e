package pet

// GetStatus returns the status emoji(s) for the pet: what it is doing,
// followed by its most critical need if any.
func GetStatus(p *Pet) string {
	activity := p.activity.Emoji()

	// Icon 2: Feeling (most critical need)
	lowestStat := p.stats.Health
	lowestFeeling := StatusEmojiSick

	if p.stats.Energy < lowestStat {
		lowestStat = p.stats.Energy
		lowestFeeling = StatusEmojiTired
	}
	if p.stats.Hunger < lowestStat {
		lowestStat = p.stats.Hunger
		lowestFeeling = StatusEmojiHungry
	}
	if p.stats.Cleanliness < lowestStat {
		lowestStat = p.stats.Cleanliness
		lowestFeeling = StatusEmojiDirty
	}
	if p.stats.Mood < lowestStat {
		lowestStat = p.stats.Mood
		lowestFeeling = StatusEmojiSad
	}

	if lowestStat < CriticalStatThreshold {
		return activity + lowestFeeling
	}
	if p.stats.Energy < DrowsyThreshold && p.activity != Sleeping {
		return activity + "🥱"
	}
	return activity
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(p *Pet) string {
	status := GetStatus(p)

	switch p.activity {
	case Sleeping:
		if status != StatusEmojiSleeping {
			return status + " Sleeping (needs care)"
		}
		return status + " Sleeping"
	case Eating:
		return status + " Eating"
	case Playing:
		return status + " Playing"
	case Bathing:
		return status + " Bathing"
	}

	switch status[len(p.activity.Emoji()):] {
	case StatusEmojiHungry:
		return status + " Hungry"
	case StatusEmojiTired:
		return status + " Tired"
	case StatusEmojiDirty:
		return status + " Dirty"
	case StatusEmojiSad:
		return status + " Sad"
	case StatusEmojiSick:
		return status + " Sick"
	case "🥱":
		return status + " Drowsy"
	default:
		return status + " " + p.Mood().String()
	}
}
